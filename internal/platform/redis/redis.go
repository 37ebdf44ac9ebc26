package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client — соединение с Redis для кэша eggchain-lookup'ов. Оборачивает
// go-redis клиент; кэш опционален, соединение открывается только при
// заданном адресе.
type Client struct {
	*redis.Client
}

// Open открывает соединение и проверяет его ping'ом. Нерабочий Redis —
// ошибка старта, а не тихая деградация.
func Open(ctx context.Context, addr, password string, db int) (*Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis: empty addr")
	}

	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}

	return &Client{Client: c}, nil
}
