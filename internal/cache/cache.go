package cache

import (
	"context"
	"encoding/json"
	"time"

	"streetshine/internal/db"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	bookingsKey    = "cache:bookings:all"
	serviceInfoKey = "cache:service_info"
)

// Cache is a redis read-through cache for the bookings list and the
// service-info record. A nil Cache (or an unreachable redis) behaves as a
// permanent miss: every operation degrades to the database, never fails.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func New(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

func (c *Cache) GetBookings(ctx context.Context) ([]db.Booking, bool) {
	var bookings []db.Booking
	if !c.get(ctx, bookingsKey, &bookings) {
		return nil, false
	}
	return bookings, true
}

func (c *Cache) SetBookings(ctx context.Context, bookings []db.Booking) {
	c.set(ctx, bookingsKey, bookings)
}

func (c *Cache) InvalidateBookings(ctx context.Context) {
	c.del(ctx, bookingsKey)
}

func (c *Cache) GetServiceInfo(ctx context.Context) (*db.ServiceInfo, bool) {
	var info db.ServiceInfo
	if !c.get(ctx, serviceInfoKey, &info) {
		return nil, false
	}
	return &info, true
}

func (c *Cache) SetServiceInfo(ctx context.Context, info *db.ServiceInfo) {
	c.set(ctx, serviceInfoKey, info)
}

func (c *Cache) InvalidateServiceInfo(ctx context.Context) {
	c.del(ctx, serviceInfoKey)
}

func (c *Cache) get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry unreadable, dropping")
		c.del(ctx, key)
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, v interface{}) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cache) del(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("cache invalidate failed")
	}
}
