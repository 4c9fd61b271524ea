package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached active-booking counts per provider/day
	capacityUsedKeyPrefix = "capacity:used:"

	// Floor for the cache TTL so entries written near midnight still expire
	capacityMinTTL = time.Minute
)

// CapacityCache caches the active-booking count per provider and day so the
// capacity endpoint does not hit the bookings table on every call. The count
// is advisory: booking enforcement happens in the booking service with a
// conditional update, so a slightly stale number here is acceptable.
type CapacityCache interface {
	GetUsed(ctx context.Context, providerID uuid.UUID, day time.Time) (int64, bool)
	SetUsed(ctx context.Context, providerID uuid.UUID, day time.Time, used int64)
}

type redisCapacityCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewCapacityCache(redisClient *redis.Client, log *logrus.Logger) CapacityCache {
	return &redisCapacityCache{
		redisClient: redisClient,
		log:         log,
	}
}

func capacityKey(providerID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("%s%s:%s", capacityUsedKeyPrefix, providerID, day.Format("2006-01-02"))
}

// GetUsed returns the cached count; the bool is false on a miss or any
// redis failure, in which case the caller falls back to the database.
func (c *redisCapacityCache) GetUsed(ctx context.Context, providerID uuid.UUID, day time.Time) (int64, bool) {
	used, err := c.redisClient.Get(ctx, capacityKey(providerID, day)).Int64()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read capacity cache for provider %s: %+v", providerID, err)
		}
		return 0, false
	}
	return used, true
}

// SetUsed stores the count with a TTL that ends at local midnight, so stale
// day counts never survive into the next day.
func (c *redisCapacityCache) SetUsed(ctx context.Context, providerID uuid.UUID, day time.Time, used int64) {
	ttl := c.ttlUntilEndOfDay(day)
	if err := c.redisClient.Set(ctx, capacityKey(providerID, day), used, ttl).Err(); err != nil {
		c.log.Warnf("Failed to write capacity cache for provider %s: %+v", providerID, err)
	}
}

func (c *redisCapacityCache) ttlUntilEndOfDay(day time.Time) time.Duration {
	endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).Add(24 * time.Hour)
	ttl := time.Until(endOfDay)
	if ttl < capacityMinTTL {
		ttl = capacityMinTTL
	}
	return ttl
}
