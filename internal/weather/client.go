package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

var (
	// ErrLocationNotFound means the upstream API has no match for the query
	ErrLocationNotFound = errors.New("location not found")
	// ErrUnavailable means the upstream API could not be reached or failed
	ErrUnavailable = errors.New("weather service unavailable")
)

// APIError is a non-200 answer from OpenWeatherMap
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenWeatherMap API error: %d", e.StatusCode)
}

// Is maps 404 to ErrLocationNotFound and everything else to ErrUnavailable
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrLocationNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnavailable:
		return e.StatusCode != http.StatusNotFound
	}
	return false
}

// Client handles OpenWeatherMap API interactions
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	// Limiter throttles outgoing requests; nil disables throttling.
	Limiter *rate.Limiter
}

// NewClient creates a new OpenWeatherMap API client
func NewClient(baseURL, apiKey string, timeout time.Duration, rps float64, burst int) *Client {
	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Limiter: limiter,
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait canceled: %v", ErrUnavailable, err)
		}
	}

	params.Set("appid", c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}

// CurrentRaw fetches the current conditions for city as upstream JSON
func (c *Client) CurrentRaw(ctx context.Context, city string) ([]byte, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	return c.get(ctx, "/weather", params)
}

// ForecastRaw fetches the 5 day / 3 hour forecast for city as upstream JSON
func (c *Client) ForecastRaw(ctx context.Context, city string) ([]byte, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	return c.get(ctx, "/forecast", params)
}

// AirQualityRaw fetches current air pollution for a point as upstream JSON
func (c *Client) AirQualityRaw(ctx context.Context, lat, lon float64) ([]byte, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.get(ctx, "/air_pollution", params)
}

// Current fetches and decodes the current conditions for city
func (c *Client) Current(ctx context.Context, city string) (*CurrentResponse, error) {
	data, err := c.CurrentRaw(ctx, city)
	if err != nil {
		return nil, err
	}

	var cur CurrentResponse
	if err := json.Unmarshal(data, &cur); err != nil {
		return nil, fmt.Errorf("%w: failed to parse weather: %v", ErrUnavailable, err)
	}
	return &cur, nil
}

// Forecast fetches and decodes the forecast for city
func (c *Client) Forecast(ctx context.Context, city string) (*ForecastResponse, error) {
	data, err := c.ForecastRaw(ctx, city)
	if err != nil {
		return nil, err
	}

	var fc ForecastResponse
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse forecast: %v", ErrUnavailable, err)
	}
	return &fc, nil
}

// AirQuality fetches and decodes air pollution for a point
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (*AirQualityResponse, error) {
	data, err := c.AirQualityRaw(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	var aq AirQualityResponse
	if err := json.Unmarshal(data, &aq); err != nil {
		return nil, fmt.Errorf("%w: failed to parse air quality: %v", ErrUnavailable, err)
	}
	return &aq, nil
}
