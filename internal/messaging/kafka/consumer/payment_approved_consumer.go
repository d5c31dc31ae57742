package consumer

import (
	"context"
	"encoding/json"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SummaryInvalidator drops the cached dashboard summary so the next read
// recomputes it from the store.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context) error
}

func ConsumePaymentApproved(
	ctx context.Context,
	reader *kafkago.Reader,
	invalidator SummaryInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payment_approved")
	log.Info("payment approved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payment approved consumer stopped")
				return
			}
			log.Error("fetch payment approved message failed", zap.Error(err))
			continue
		}

		var event events.PaymentApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payment approved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := invalidator.InvalidateSummary(ctx); err != nil {
			log.Error("invalidate dashboard summary failed",
				zap.String("payment_id", event.PaymentID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payment approved message failed", zap.Error(err))
			continue
		}

		log.Info("dashboard summary invalidated after payment approval",
			zap.String("payment_id", event.PaymentID),
			zap.String("email", event.Email),
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
		)
	}
}
