package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type ClientConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, cfg ClientConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
