package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	notificationQueueKey = "notification_events"
)

// Уровни важности уведомления
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityError   = "error"
)

// Event - уведомление для внешнего коллаборатора (презентационный слой,
// каналы доставки). Ядро только формирует события, механика доставки его
// не касается.
type Event struct {
	Severity    string    `json:"severity"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Notifier - интерфейс для публикации уведомлений
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// RedisNotifier - реализация Notifier, использующая очередь в Redis
type RedisNotifier struct {
	redisClient *redis.Client
}

// NewRedisNotifier создает новый RedisNotifier
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{
		redisClient: client,
	}
}

// Publish публикует событие уведомления в очередь Redis
func (p *RedisNotifier) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH кладет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
