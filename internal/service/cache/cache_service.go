package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Service is a thin JSON cache over redis. NewCacheService returns nil when
// redis is unreachable; every method tolerates a nil receiver, so callers
// degrade to uncached operation instead of failing.
type Service struct {
	client *redis.Client
}

func NewCacheService(config Config) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, running without cache: %v", err)
		return nil
	}

	log.Printf("✅ Connected to Redis at %s:%s", config.Host, config.Port)
	return &Service{client: client}
}

func (s *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s == nil {
		return nil
	}

	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.client.Set(ctx, key, jsonValue, ttl).Err()
}

func (s *Service) Get(ctx context.Context, key string, dest interface{}) error {
	if s == nil {
		return ErrCacheMiss
	}

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get value: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if s == nil {
		return nil
	}
	return s.client.Del(ctx, key).Err()
}

func (s *Service) Health(ctx context.Context) error {
	if s == nil {
		return errors.New("cache disabled")
	}
	return s.client.Ping(ctx).Err()
}

func (s *Service) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}
