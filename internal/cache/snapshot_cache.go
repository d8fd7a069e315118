package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=snapshot_cache.go -destination=snapshot_cache_mock.go -package=cache

// SnapshotCache мемоизация снимков аналитики.
// Версия данных пользователя входит в ключ: любая запись в транзакции или категории
// поднимает версию, и старые снимки просто перестают читаться, пока не истечет TTL
type SnapshotCache interface {
	Version(ctx context.Context, userID uuid.UUID) (int64, error)
	BumpVersion(ctx context.Context, userID uuid.UUID) error
	// Get nil, nil когда ключа нет
	Get(ctx context.Context, key string) (*models.AnalyticsSnapshot, error)
	Set(ctx context.Context, key string, snapshot *models.AnalyticsSnapshot) error
}

// NewSnapshotCache nil client = кэш выключен, все операции no-op
func NewSnapshotCache(client *redis.Client, ttl time.Duration) SnapshotCache {
	if client == nil {
		return noopCache{}
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisSnapshotCache{client: client, ttl: ttl}
}

func versionKey(userID uuid.UUID) string {
	return "analytics:version:" + userID.String()
}

// SnapshotKey ключ снимка: пользователь, версия данных, селектор и текущий час.
// Снимок живет не дольше текущего часа
func SnapshotKey(userID uuid.UUID, version int64, sel models.PeriodSelector, now time.Time) string {
	return fmt.Sprintf("analytics:snapshot:%s:%d:%s:%s:%s:%s",
		userID, version, sel.Period, dateOrDash(sel.StartDate), dateOrDash(sel.EndDate), now.Format("2006010215"))
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c *redisSnapshotCache) Version(ctx context.Context, userID uuid.UUID) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get data version: %w", err)
	}
	return version, nil
}

func (c *redisSnapshotCache) BumpVersion(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("bump data version: %w", err)
	}
	return nil
}

func (c *redisSnapshotCache) Get(ctx context.Context, key string) (*models.AnalyticsSnapshot, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	var snapshot models.AnalyticsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, key string, snapshot *models.AnalyticsSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.SetEx(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

type noopCache struct{}

func (noopCache) Version(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (noopCache) BumpVersion(context.Context, uuid.UUID) error { return nil }

func (noopCache) Get(context.Context, string) (*models.AnalyticsSnapshot, error) { return nil, nil }

func (noopCache) Set(context.Context, string, *models.AnalyticsSnapshot) error { return nil }
