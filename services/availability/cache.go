package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"schedly/models"
	"schedly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ResponseCache keeps serialized day availability in Redis for a short TTL.
// It is strictly best-effort: a cache failure never fails the request.
type ResponseCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func cacheKey(req Request) string {
	return fmt.Sprintf("%s%s:%s:%s:%s:%s",
		utils.AvailabilityCachePrefix,
		req.TenantID, req.Date, req.AppointmentTypeID, req.LocationID, req.AgentID)
}

// Get returns the cached availability for the request, if any.
func (c *ResponseCache) Get(ctx context.Context, req Request) (*models.DayAvailability, bool) {
	raw, err := c.Client.Get(ctx, cacheKey(req)).Result()
	if err != nil {
		return nil, false
	}
	var day models.DayAvailability
	if err := json.Unmarshal([]byte(raw), &day); err != nil {
		utils.GetLogger().Warn("corrupt availability cache entry", zap.String("key", cacheKey(req)), zap.Error(err))
		return nil, false
	}
	return &day, true
}

// Put stores the availability response under the request key.
func (c *ResponseCache) Put(ctx context.Context, req Request, day *models.DayAvailability) {
	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, cacheKey(req), raw, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("key", cacheKey(req)), zap.Error(err))
	}
}

// InvalidateTenant drops every cached day for the tenant. Called after any
// schedule-configuration write so stale slots never outlive a config change.
func (c *ResponseCache) InvalidateTenant(ctx context.Context, tenantID string) error {
	pattern := utils.AvailabilityCachePrefix + tenantID + ":*"
	var cursor uint64
	for {
		keys, next, err := c.Client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
