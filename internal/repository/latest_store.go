package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"AgriPulse/internal/domain/models"
	"AgriPulse/internal/domain/repository"
	"AgriPulse/pkg/cache"
)

// RedisLatestStore keeps the most recent reading per sensor in a Redis
// hash keyed by sensor id.
type RedisLatestStore struct {
	redis *cache.Redis
	key   string
}

// NewRedisLatestStore creates a latest-reading store over Redis.
func NewRedisLatestStore(redis *cache.Redis, key string) repository.LatestStore {
	if key == "" {
		key = "agripulse:latest"
	}
	return &RedisLatestStore{redis: redis, key: key}
}

func (s *RedisLatestStore) SetLatest(ctx context.Context, sensor models.Sensor, r *models.Reading) error {
	entry := models.LatestReading{Sensor: sensor, Reading: *r}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal latest reading: %w", err)
	}
	return s.redis.HSet(ctx, s.key, sensor.ID, data)
}

func (s *RedisLatestStore) Latest(ctx context.Context) ([]models.LatestReading, error) {
	fields, err := s.redis.HGetAll(ctx, s.key)
	if err != nil {
		return nil, err
	}

	out := make([]models.LatestReading, 0, len(fields))
	for id, raw := range fields {
		var entry models.LatestReading
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("decode latest reading for sensor %s: %w", id, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *RedisLatestStore) Close() error {
	return s.redis.Close()
}
