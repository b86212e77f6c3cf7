package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zecfly/zecfly-api/internal/amadeus"
	"github.com/zecfly/zecfly-api/internal/booking"
	"github.com/zecfly/zecfly-api/internal/geocode"
	"github.com/zecfly/zecfly-api/internal/handler"
	"github.com/zecfly/zecfly-api/internal/ratelimit"
	"github.com/zecfly/zecfly-api/internal/store"
)

type Config struct {
	Port         string
	CacheEnabled bool
	RedisHost    string
	RedisPort    string
	RedisTTL     time.Duration

	AmadeusBaseURL      string
	AmadeusClientID     string
	AmadeusClientSecret string

	BookingBaseURL string
	BookingAPIHost string
	BookingAPIKey  string

	NominatimBaseURL string
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewHostLimiterWithDefaults()
	rateLimiter.SetHostLimit("amadeus", 10, 20)
	rateLimiter.SetHostLimit("booking", 5, 10)
	rateLimiter.SetHostLimit("nominatim", 1, 2)

	flightClient := amadeus.New(amadeus.Config{
		BaseURL:      cfg.AmadeusBaseURL,
		ClientID:     cfg.AmadeusClientID,
		ClientSecret: cfg.AmadeusClientSecret,
		Limiter:      rateLimiter,
	})

	hotelClient := booking.New(booking.Config{
		BaseURL: cfg.BookingBaseURL,
		APIHost: cfg.BookingAPIHost,
		APIKey:  cfg.BookingAPIKey,
		Limiter: rateLimiter,
	})

	geocoder := geocode.New(geocode.Config{
		BaseURL: cfg.NominatimBaseURL,
		Limiter: rateLimiter,
	})

	var resultCache store.ResultCache
	if cfg.CacheEnabled {
		redisCache, err := store.NewRedisCache(store.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		resultCache = redisCache
		log.Printf("Redis result cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		resultCache = store.NewMemoryCache(cfg.RedisTTL)
		log.Println("Redis disabled, using in-memory result cache")
	}

	flightsHandler := handler.NewFlightsHandler(flightClient, resultCache)
	hotelsHandler := handler.NewHotelsHandler(hotelClient, geocoder, resultCache)
	suggestHandler := handler.NewSuggestHandler(hotelClient)

	api := e.Group("/api/v1")
	api.POST("/flights/search", flightsHandler.Search)
	api.POST("/flights/refine", flightsHandler.Refine)
	api.GET("/flights/latest", flightsHandler.Latest)
	api.POST("/hotels/search", hotelsHandler.Search)
	api.POST("/hotels/refine", hotelsHandler.Refine)
	api.GET("/suggest/airports", suggestHandler.Airports)
	api.GET("/suggest/cities", suggestHandler.Cities)
	api.GET("/suggest/destinations", suggestHandler.Destinations)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		CacheEnabled: getEnvBool("CACHE_ENABLED", true),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		RedisTTL:     getEnvDuration("REDIS_TTL", 30*time.Minute),

		AmadeusBaseURL:      getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		AmadeusClientID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),

		BookingBaseURL: getEnv("BOOKING_BASE_URL", "https://booking-com15.p.rapidapi.com/api/v1"),
		BookingAPIHost: getEnv("BOOKING_API_HOST", "booking-com15.p.rapidapi.com"),
		BookingAPIKey:  getEnv("BOOKING_API_KEY", ""),

		NominatimBaseURL: getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
