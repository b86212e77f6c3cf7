package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zecfly/zecfly-api/internal/models"
)

type ResultCache interface {
	SaveFlights(ctx context.Context, searchID string, offers []models.FlightOffer) error
	LoadFlights(ctx context.Context, searchID string) ([]models.FlightOffer, bool)
	SaveHotels(ctx context.Context, searchID string, listings []models.HotelListing) error
	LoadHotels(ctx context.Context, searchID string) ([]models.HotelListing, bool)
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  30 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) SaveFlights(ctx context.Context, searchID string, offers []models.FlightOffer) error {
	return c.save(ctx, flightKey(searchID), offers)
}

func (c *RedisCache) LoadFlights(ctx context.Context, searchID string) ([]models.FlightOffer, bool) {
	var offers []models.FlightOffer
	if !c.load(ctx, flightKey(searchID), &offers) {
		return nil, false
	}
	return offers, true
}

func (c *RedisCache) SaveHotels(ctx context.Context, searchID string, listings []models.HotelListing) error {
	return c.save(ctx, hotelKey(searchID), listings)
}

func (c *RedisCache) LoadHotels(ctx context.Context, searchID string) ([]models.HotelListing, bool) {
	var listings []models.HotelListing
	if !c.load(ctx, hotelKey(searchID), &listings) {
		return nil, false
	}
	return listings, true
}

func (c *RedisCache) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) load(ctx context.Context, key string, v any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func flightKey(searchID string) string {
	return "search:flights:" + searchID
}

func hotelKey(searchID string) string {
	return "search:hotels:" + searchID
}

// MemoryCache backs the refine endpoints when Redis is disabled. Entries
// expire lazily on read.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	flights map[string]memoryEntry[models.FlightOffer]
	hotels  map[string]memoryEntry[models.HotelListing]
}

type memoryEntry[T any] struct {
	records   []T
	expiresAt time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		flights: make(map[string]memoryEntry[models.FlightOffer]),
		hotels:  make(map[string]memoryEntry[models.HotelListing]),
	}
}

func (c *MemoryCache) SaveFlights(_ context.Context, searchID string, offers []models.FlightOffer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flights[searchID] = memoryEntry[models.FlightOffer]{
		records:   append([]models.FlightOffer(nil), offers...),
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

func (c *MemoryCache) LoadFlights(_ context.Context, searchID string) ([]models.FlightOffer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.flights[searchID]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.flights, searchID)
		return nil, false
	}
	return append([]models.FlightOffer(nil), entry.records...), true
}

func (c *MemoryCache) SaveHotels(_ context.Context, searchID string, listings []models.HotelListing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hotels[searchID] = memoryEntry[models.HotelListing]{
		records:   append([]models.HotelListing(nil), listings...),
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

func (c *MemoryCache) LoadHotels(_ context.Context, searchID string) ([]models.HotelListing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.hotels[searchID]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.hotels, searchID)
		return nil, false
	}
	return append([]models.HotelListing(nil), entry.records...), true
}

func (c *MemoryCache) Close() error {
	return nil
}
