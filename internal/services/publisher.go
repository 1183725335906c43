package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=services

// EventPublisher delivers lifecycle events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, event models.LifecycleEvent) error
}

func newEvent(kind string, recordID, userID uuid.UUID, amount float64, status string) models.LifecycleEvent {
	return models.LifecycleEvent{
		EventID:   uuid.NewString(),
		Kind:      kind,
		RecordID:  recordID.String(),
		UserID:    userID.String(),
		Amount:    amount,
		Status:    status,
		Timestamp: time.Now().Unix(),
	}
}

// publishEvent sends the event and only logs failures.
func publishEvent(ctx context.Context, publisher EventPublisher, event models.LifecycleEvent) {
	if publisher == nil {
		logger.Log.Debugw("event publisher not configured, skipping", "kind", event.Kind, "record_id", event.RecordID)
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish event", "kind", event.Kind, "record_id", event.RecordID, "error", err)
		return
	}

	logger.Log.Infow("event published", "kind", event.Kind, "record_id", event.RecordID, "amount", event.Amount)
}
