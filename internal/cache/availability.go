package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	reservation "github.com/ruzaikr/table-booking/internal/domain/reservation"
)

// AvailabilityCache guarda, por data, os horários livres já calculados.
// Um hash por data permite invalidar todos os tamanhos de grupo de uma
// vez quando uma reserva é confirmada naquele dia.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New aceita client nil; o cache vira no-op e toda consulta vai ao banco.
func New(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func dateKey(date string) string {
	return "availability:" + date
}

func guestsField(guests int) string {
	return fmt.Sprintf("g%d", guests)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	date string,
	guests int,
) ([]reservation.TimeSlot, bool) {

	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.HGet(ctx, dateKey(date), guestsField(guests)).Result()
	if err != nil {
		return nil, false
	}

	var slots []reservation.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	date string,
	guests int,
	slots []reservation.TimeSlot,
) {

	if c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dateKey(date)
	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, guestsField(guests), raw)
	pipe.Expire(ctx, key, c.ttl)
	_, _ = pipe.Exec(ctx)
}

func (c *AvailabilityCache) InvalidateDate(ctx context.Context, date string) {
	if c.client == nil {
		return
	}
	_ = c.client.Del(ctx, dateKey(date)).Err()
}
