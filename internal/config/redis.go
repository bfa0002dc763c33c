package config

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient conecta ao Redis usado pelo cache de disponibilidade.
// Retorna nil quando o servidor não responde; o cache então degrada
// para no-op em vez de derrubar o serviço.
func NewRedisClient(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, availability cache disabled: %v", cfg.RedisAddr, err)
		return nil
	}

	return client
}
