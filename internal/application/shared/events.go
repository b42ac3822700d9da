package shared

import (
	"context"

	domain "github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type eventSource interface {
	GetDomainEvents() []domain.DomainEvent
	ClearDomainEvents()
}

// PublishEvents hands the aggregates' pending events to publisher and clears them.
// Publishing happens after the state change is committed, so a failure is only logged.
func PublishEvents(ctx context.Context, publisher domain.EventPublisher, logger *zap.Logger, aggregates ...eventSource) {
	for _, agg := range aggregates {
		events := agg.GetDomainEvents()
		if len(events) == 0 {
			continue
		}
		if publisher != nil {
			if err := publisher.Publish(ctx, events...); err != nil {
				logger.Warn("Failed to publish domain events", zap.Int("count", len(events)), zap.Error(err))
			}
		}
		agg.ClearDomainEvents()
	}
}
