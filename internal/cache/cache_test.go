package cache

import (
	"context"
	"testing"
	"time"

	"streetshine/internal/db"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, 5*time.Minute, zerolog.Nop()), mr
}

func TestBookingsRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, ok := c.GetBookings(ctx)
	assert.False(t, ok, "cold cache should miss")

	bookings := []db.Booking{
		{ID: 1, Name: "John Smith", Status: db.StatusPending, ServiceType: "standardDetail"},
		{ID: 2, Name: "Jane Doe", Status: db.StatusConfirmed, ServiceType: "interiorOnly"},
	}
	c.SetBookings(ctx, bookings)

	got, ok := c.GetBookings(ctx)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, db.StatusConfirmed, got[1].Status)
}

func TestInvalidateBookings(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.SetBookings(ctx, []db.Booking{{ID: 7}})
	c.InvalidateBookings(ctx)

	_, ok := c.GetBookings(ctx)
	assert.False(t, ok, "invalidation must force a store re-fetch")
}

func TestServiceInfoRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, ok := c.GetServiceInfo(ctx)
	assert.False(t, ok)

	c.SetServiceInfo(ctx, &db.ServiceInfo{Hours: "Mon – Sun: 8:00 AM – 6:00 PM", Area: "Los Angeles County"})

	info, ok := c.GetServiceInfo(ctx)
	require.True(t, ok)
	assert.Equal(t, "Los Angeles County", info.Area)

	c.InvalidateServiceInfo(ctx)
	_, ok = c.GetServiceInfo(ctx)
	assert.False(t, ok)
}

func TestCorruptEntryIsDropped(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("cache:bookings:all", "{not json"))

	_, ok := c.GetBookings(ctx)
	assert.False(t, ok)
	assert.False(t, mr.Exists("cache:bookings:all"), "corrupt entry should be deleted")
}

func TestNilCacheIsASafeMiss(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	_, ok := c.GetBookings(ctx)
	assert.False(t, ok)
	c.SetBookings(ctx, []db.Booking{{ID: 1}})
	c.InvalidateBookings(ctx)
	_, ok = c.GetServiceInfo(ctx)
	assert.False(t, ok)
}

func TestRedisDownDegradesToMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := New(client, time.Minute, zerolog.Nop())
	ctx := context.Background()

	c.SetBookings(ctx, []db.Booking{{ID: 1}})
	mr.Close()

	_, ok := c.GetBookings(ctx)
	assert.False(t, ok)
}
