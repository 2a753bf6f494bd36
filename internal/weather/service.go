package weather

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/nimbusdash/nimbus/internal/favorites"
	"github.com/nimbusdash/nimbus/internal/intel"
)

// ForecastUnavailable is shown in place of the forecast when it cannot be loaded
const ForecastUnavailable = "Unable to load forecast."

// Upstream is the subset of Client the service needs
type Upstream interface {
	Current(ctx context.Context, city string) (*CurrentResponse, error)
	Forecast(ctx context.Context, city string) (*ForecastResponse, error)
	AirQuality(ctx context.Context, lat, lon float64) (*AirQualityResponse, error)
}

// Service builds dashboards from upstream data
type Service struct {
	client    Upstream
	favorites *favorites.List
	viewerLoc *time.Location
	now       func() time.Time
}

// NewService creates a new weather service. favs may be nil when no store is
// configured; viewerLoc is the zone greetings are computed in.
func NewService(client Upstream, favs *favorites.List, viewerLoc *time.Location) *Service {
	if viewerLoc == nil {
		viewerLoc = time.Local
	}
	return &Service{
		client:    client,
		favorites: favs,
		viewerLoc: viewerLoc,
		now:       time.Now,
	}
}

// Dashboard returns the full dashboard for city. Only a failure to fetch the
// current conditions is returned as an error; forecast and air quality
// failures degrade to placeholders.
func (s *Service) Dashboard(ctx context.Context, city string) (*Dashboard, error) {
	// A. Current conditions drive everything else
	cur, err := s.client.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	// B. Forecast and air quality are independent of each other
	var (
		wg sync.WaitGroup
		fc *ForecastResponse
		aq *AirQualityResponse
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		f, err := s.client.Forecast(ctx, city)
		if err != nil {
			log.Printf("Failed to get forecast for %s: %v", city, err)
			return
		}
		fc = f
	}()
	go func() {
		defer wg.Done()
		a, err := s.client.AirQuality(ctx, cur.Coord.Lat, cur.Coord.Lon)
		if err != nil {
			log.Printf("Failed to get air quality for %s: %v", city, err)
			return
		}
		aq = a
	}()
	wg.Wait()

	// C. Transform to display values
	d := transform(cur, fc, aq, s.viewerLoc)
	d.FetchedAt = s.now()

	// D. Remember the search (best effort)
	if s.favorites != nil && d.Location != "" {
		if err := s.favorites.SetLastCity(ctx, d.Location); err != nil {
			log.Printf("Failed to record last city: %v", err)
		}
	}

	return d, nil
}

func transform(cur *CurrentResponse, fc *ForecastResponse, aq *AirQualityResponse, viewerLoc *time.Location) *Dashboard {
	snap := cur.Snapshot()
	score := intel.Score(snap)

	d := &Dashboard{
		Location:    snap.Location,
		Coord:       snap.Coord,
		Temperature: intel.Round(snap.Temperature),
		FeelsLike:   intel.Round(snap.FeelsLike),
		Humidity:    snap.Humidity,
		Description: snap.Description,
		WindKmh:     intel.WindKmh(snap.WindSpeed),
		Icon:        intel.SelectPointIcon(snap.ConditionIcon, snap.Timestamp, snap.Sunrise, snap.Sunset),

		Greeting:  intel.Greet(snap.Timestamp, snap.Sunrise, snap.Sunset, viewerLoc),
		Summary:   intel.Summarize(snap),
		Outfit:    intel.SuggestOutfit(snap),
		Score:     score,
		ScoreText: intel.ExplainScore(score),
		Theme:     intel.ThemeFor(snap),

		Sunrise:     intel.FormatLocalClock(snap.Sunrise, snap.TimezoneOffset),
		Sunset:      intel.FormatLocalClock(snap.Sunset, snap.TimezoneOffset),
		DayProgress: intel.DayProgress(snap.Timestamp, snap.Sunrise, snap.Sunset),

		AirQuality: intel.AQIUnavailable,
		Hourly:     []intel.HourlyRow{},
		Daily:      []intel.DayBucket{},
	}

	if index, ok := aq.Index(); ok {
		d.AirQuality = intel.AQILabel(index)
	}

	if fc == nil {
		d.ForecastMessage = ForecastUnavailable
		return d
	}

	entries := fc.Entries()
	if err := intel.CheckSpacing(entries); err != nil {
		log.Printf("Hourly labels may be off for %s: %v", snap.Location, err)
	}

	d.ForecastAvailable = true
	d.Hourly = intel.ProjectHourly(entries, fc.City.Timezone, snap)
	d.Daily = intel.AggregateDaily(entries)
	if today, ok := intel.TodayRange(d.Daily); ok {
		d.TodayRange = &today
	}
	d.Chart = intel.ChartSeries(entries, fc.City.Timezone)

	return d
}

// IsNotFound reports whether err means the city does not exist upstream
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLocationNotFound)
}
