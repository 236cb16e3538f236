package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"
	"trip-optimizer-service/internal/adapters/archive"
	"trip-optimizer-service/internal/adapters/cache"
	"trip-optimizer-service/internal/adapters/classify"
	"trip-optimizer-service/internal/adapters/places"
	"trip-optimizer-service/internal/adapters/routing"
	"trip-optimizer-service/internal/adapters/weather"
	"trip-optimizer-service/internal/api"
	"trip-optimizer-service/internal/config"
	"trip-optimizer-service/internal/platform/db"
	"trip-optimizer-service/internal/ports"
	"trip-optimizer-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (OSRM, Open-Meteo, places, Redis, Postgres)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	osrmURL := config.Get("OSRM_BASE_URL", "")
	weatherURL := config.Get("OPENMETEO_BASE_URL", "")
	placesURL := config.Get("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")

	placesKey := os.Getenv("PLACES_API_KEY")
	if strings.TrimSpace(placesKey) == "" {
		log.Fatal("PLACES_API_KEY is required")
	}

	placesProvider, err := places.NewHTTPPlacesProvider(placesURL, placesKey)
	if err != nil {
		log.Fatal(err)
	}

	// Remote classification is optional; the local heuristic tier is always
	// the final fallback, so builds survive a missing or failing endpoint.
	tiers := make([]ports.Classifier, 0, 2)
	if endpoint := os.Getenv("CLASSIFIER_URL"); strings.TrimSpace(endpoint) != "" {
		remote, err := classify.NewRemoteClassifier(endpoint)
		if err != nil {
			log.Fatal(err)
		}
		tiers = append(tiers, remote)
	}
	tiers = append(tiers, classify.HeuristicClassifier{})

	builder := &services.PackageBuilder{
		Routes:     routing.NewOSRMRouteProvider(osrmURL),
		Weather:    weather.NewOpenMeteoProvider(weatherURL),
		Places:     placesProvider,
		Classifier: classify.NewChain(tiers...),
	}

	// Redis makes the result cache shared across instances; without it the
	// in-process TTL cache serves a single instance.
	var resultCache ports.ResultCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		redisCache, err := cache.NewRedisResultCache(addr, cache.DefaultTTL)
		if err != nil {
			log.Fatal(err)
		}
		defer redisCache.Close()
		resultCache = redisCache
	} else {
		resultCache = cache.NewMemoryResultCache(cache.DefaultTTL)
	}

	// The Postgres archive is optional; archive writes are best-effort and
	// never fail a request.
	var resultArchive ports.ResultArchive
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := archive.InitSchema(pg); err != nil {
			log.Fatal(err)
		}
		resultArchive = archive.NewPGResultArchive(pg)
	}

	engine := services.NewOptimizer(resultCache, builder, resultArchive)
	router := api.NewRouter(engine)

	// Timeouts are tuned for cold-cache optimization (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
