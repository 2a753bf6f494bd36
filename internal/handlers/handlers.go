package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/nimbusdash/nimbus/internal/favorites"
	"github.com/nimbusdash/nimbus/internal/weather"
)

// Database defines the interface for database operations needed by handlers
type Database interface {
	Ping() error
}

// Proxy passes upstream JSON through untouched
type Proxy interface {
	CurrentRaw(ctx context.Context, city string) ([]byte, error)
	ForecastRaw(ctx context.Context, city string) ([]byte, error)
	AirQualityRaw(ctx context.Context, lat, lon float64) ([]byte, error)
}

// Handlers holds dependencies for HTTP handlers
type Handlers struct {
	db        Database
	proxy     Proxy
	weather   *weather.Service
	favorites *favorites.List
}

// New creates a new Handlers instance. database and favs may be nil when no
// store could be opened.
func New(database Database, proxy Proxy, wService *weather.Service, favs *favorites.List) *Handlers {
	return &Handlers{
		db:        database,
		proxy:     proxy,
		weather:   wService,
		favorites: favs,
	}
}

// Routes registers every endpoint on a new mux wrapped in CORS headers
func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/api/weather", h.HandleWeather)
	mux.HandleFunc("/api/forecast", h.HandleForecast)
	mux.HandleFunc("/api/air-quality", h.HandleAirQuality)
	mux.HandleFunc("/api/dashboard", h.HandleDashboard)
	mux.HandleFunc("/api/favorites", h.HandleFavorites)
	mux.HandleFunc("/api/last-city", h.HandleLastCity)
	return CORS(mux)
}

// CORS allows any origin to call the API
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleHealth handles health check endpoint
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
		}
	} else {
		status = "no_database"
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

// HandleWeather proxies current conditions for a city
func (h *Handlers) HandleWeather(w http.ResponseWriter, r *http.Request) {
	h.passthrough(w, r, "Weather fetch failed", h.proxy.CurrentRaw)
}

// HandleForecast proxies the 5 day forecast for a city
func (h *Handlers) HandleForecast(w http.ResponseWriter, r *http.Request) {
	h.passthrough(w, r, "Forecast fetch failed", h.proxy.ForecastRaw)
}

func (h *Handlers) passthrough(w http.ResponseWriter, r *http.Request, failure string, fetch func(context.Context, string) ([]byte, error)) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, http.StatusBadRequest, "City is required")
		return
	}

	data, err := fetch(r.Context(), city)
	if err != nil {
		writeUpstreamError(w, err, failure)
		return
	}
	writeRaw(w, http.StatusOK, data)
}

// HandleAirQuality proxies air pollution for a coordinate pair
func (h *Handlers) HandleAirQuality(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, http.StatusBadRequest, "Invalid latitude")
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, "Invalid longitude")
		return
	}

	data, err := h.proxy.AirQualityRaw(r.Context(), lat, lon)
	if err != nil {
		log.Printf("Air quality error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch AQI")
		return
	}
	writeRaw(w, http.StatusOK, data)
}

// HandleDashboard returns the computed dashboard for a city
func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, http.StatusBadRequest, "City is required")
		return
	}

	d, err := h.weather.Dashboard(r.Context(), city)
	switch {
	case weather.IsNotFound(err):
		writeError(w, http.StatusNotFound, "City not found. Please check the spelling.")
		return
	case err != nil:
		log.Printf("Dashboard error for %s: %v", city, err)
		writeError(w, http.StatusBadGateway, "Unable to fetch weather data. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type favoriteRequest struct {
	Name string `json:"name"`
}

// HandleFavorites lists, adds and removes favorite locations
func (h *Handlers) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	if h.favorites == nil {
		writeError(w, http.StatusServiceUnavailable, "Favorites unavailable")
		return
	}

	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		// listed below
	case http.MethodPost:
		var req favoriteRequest
		body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
		if err != nil || json.Unmarshal(body, &req) != nil || strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "Name is required")
			return
		}
		if _, err := h.favorites.Add(ctx, req.Name); err != nil {
			log.Printf("Favorites add error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save favorite")
			return
		}
	case http.MethodDelete:
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "Name is required")
			return
		}
		if err := h.favorites.Remove(ctx, name); err != nil {
			log.Printf("Favorites remove error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to remove favorite")
			return
		}
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	names, err := h.favorites.All(ctx)
	if err != nil {
		log.Printf("Favorites load error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"favorites": names})
}

// HandleLastCity returns the most recently searched city
func (h *Handlers) HandleLastCity(w http.ResponseWriter, r *http.Request) {
	if h.favorites == nil {
		writeJSON(w, http.StatusOK, map[string]string{"city": ""})
		return
	}

	city, err := h.favorites.LastCity(r.Context())
	if err != nil {
		log.Printf("Last city error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load last city")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"city": city})
}

// writeUpstreamError forwards an upstream 404 verbatim and hides everything else
func writeUpstreamError(w http.ResponseWriter, err error, failure string) {
	var apiErr *weather.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound && len(apiErr.Body) > 0 {
		writeRaw(w, apiErr.StatusCode, apiErr.Body)
		return
	}
	log.Printf("Upstream error: %v", err)
	writeError(w, http.StatusInternalServerError, failure)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("JSON encode error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, data)
}

func writeRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Printf("Response write error: %v", err)
	}
}
