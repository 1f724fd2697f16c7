package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/service_desk/internal/models"
)

const (
	webhookQueueKey = "report_events"

	// EventReportCreated - обращение сохранено впервые
	EventReportCreated = "report.created"
)

// ReportEvent - событие по обращению, доставляемое во внешний вебхук
type ReportEvent struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	ReportID  int64          `json:"report_id"`
	Timestamp time.Time      `json:"timestamp"`
	Report    *models.Report `json:"report,omitempty"`
}

// NewReportEvent создает событие с новым идентификатором
func NewReportEvent(eventType string, report *models.Report, at time.Time) ReportEvent {
	event := ReportEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: at.UTC(),
		Report:    report,
	}
	if id := models.ReportIdentifier(report); id != nil {
		event.ReportID = *id
	}
	return event
}

// EventPublisher - интерфейс для публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая очередь в Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report event to Redis: %w", err)
	}
	return nil
}
