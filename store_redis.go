package session

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/redis/go-redis/v9"
)

// RedisConfig describes the connection for a redis-backed token slot.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"SERVIQUEST_REDIS_ADDR"`
	Password string `yaml:"password" env:"SERVIQUEST_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"SERVIQUEST_REDIS_DB"`
	Key      string `yaml:"key" env:"SERVIQUEST_REDIS_KEY"`
	TTL      int    `yaml:"ttl_seconds" env:"SERVIQUEST_REDIS_TTL"`
}

// RedisStore keeps the token under a fixed key so multiple console
// processes can share one session. A TTL of zero keeps the token until an
// explicit Clear.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, goerrors.Wrap(err, ErrStoreFailure.Category,
			fmt.Sprintf("redis connection failed: %s", cfg.Addr)).
			WithTextCode(ErrStoreFailure.TextCode)
	}

	return NewRedisStoreWithClient(client, cfg.Key, time.Duration(cfg.TTL)*time.Second), nil
}

// NewRedisStoreWithClient wires an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = "serviquest:admin:token"
	}
	return &RedisStore{client: client, key: key, ttl: ttl}
}

func (s *RedisStore) Get() (string, error) {
	token, err := s.client.Get(context.Background(), s.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", goerrors.Wrap(err, ErrStoreFailure.Category, "failed to read token key").
			WithTextCode(ErrStoreFailure.TextCode)
	}
	return token, nil
}

func (s *RedisStore) Set(token string) error {
	if err := s.client.Set(context.Background(), s.key, token, s.ttl).Err(); err != nil {
		return goerrors.Wrap(err, ErrStoreFailure.Category, "failed to write token key").
			WithTextCode(ErrStoreFailure.TextCode)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	if err := s.client.Del(context.Background(), s.key).Err(); err != nil {
		return goerrors.Wrap(err, ErrStoreFailure.Category, "failed to delete token key").
			WithTextCode(ErrStoreFailure.TextCode)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
