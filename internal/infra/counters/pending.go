package counters

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PendingCounter счётчик необработанных (pending) бронирований автосервиса
// Хранится в Redis, чтобы значение было общим для всех инстансов сервиса.
// Счётчик - витринный side channel для дашборда владельца: его обновление
// best-effort и не влияет на судьбу самого бронирования
type PendingCounter struct {
	rdb    *redis.Client
	prefix string
}

// NewPendingCounter создает новый счётчик pending-бронирований
func NewPendingCounter(rdb *redis.Client, prefix string) *PendingCounter {
	if prefix == "" {
		prefix = "bookings:pending"
	}
	return &PendingCounter{rdb: rdb, prefix: prefix}
}

// Incr увеличивает счётчик автосервиса на единицу
func (c *PendingCounter) Incr(ctx context.Context, storeID int64) error {
	return c.rdb.Incr(ctx, c.key(storeID)).Err()
}

// Decr уменьшает счётчик автосервиса на единицу
// Значение ниже нуля не публикуется: Get усекает отрицательные значения
func (c *PendingCounter) Decr(ctx context.Context, storeID int64) error {
	return c.rdb.Decr(ctx, c.key(storeID)).Err()
}

// Get возвращает текущее количество pending-бронирований автосервиса
// Отсутствие ключа означает ноль
func (c *PendingCounter) Get(ctx context.Context, storeID int64) (int64, error) {
	value, err := c.rdb.Get(ctx, c.key(storeID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if value < 0 {
		return 0, nil
	}
	return value, nil
}

func (c *PendingCounter) key(storeID int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, storeID)
}
