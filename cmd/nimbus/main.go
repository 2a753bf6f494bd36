package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nimbusdash/nimbus/internal/config"
	"github.com/nimbusdash/nimbus/internal/db"
	"github.com/nimbusdash/nimbus/internal/favorites"
	"github.com/nimbusdash/nimbus/internal/handlers"
	"github.com/nimbusdash/nimbus/internal/weather"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded: %v", err)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.OpenWeather.APIKey == "" {
		log.Println("Warning: OPENWEATHER_API_KEY is not set; upstream requests will fail")
	}

	viewerLoc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Initialize database connection
	database, err := db.NewDB(cfg.DBPath)
	if err != nil {
		log.Printf("Warning: Database connection failed: %v", err)
		log.Println("Continuing without favorites...")
	} else {
		defer database.Close()
		log.Printf("Database opened at %s", cfg.DBPath)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           newHandler(cfg, database, viewerLoc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Printf("Server starting on http://localhost%s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newHandler wires the upstream client, store and service into the routes.
// database may be nil, in which case favorites are disabled.
func newHandler(cfg config.Config, database *db.DB, viewerLoc *time.Location) http.Handler {
	ow := cfg.OpenWeather
	client := weather.NewClient(ow.BaseURL, ow.APIKey, ow.Timeout, ow.RPS, ow.Burst)

	var (
		store handlers.Database
		favs  *favorites.List
	)
	if database != nil {
		store = database
		favs = favorites.New(database)
	}

	svc := weather.NewService(client, favs, viewerLoc)
	return handlers.New(store, client, svc, favs).Routes()
}
