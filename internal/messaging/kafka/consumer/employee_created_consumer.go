package consumer

import (
	"context"
	"encoding/json"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeEmployeeCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	invalidator SummaryInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_created")
	log.Info("employee created consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee created consumer stopped")
				return
			}
			log.Error("fetch employee created message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := invalidator.InvalidateSummary(ctx); err != nil {
			log.Error("invalidate dashboard summary failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee created message failed", zap.Error(err))
			continue
		}

		log.Info("dashboard summary invalidated after employee registration",
			zap.String("employee_id", event.EmployeeID),
			zap.String("email", event.Email),
		)
	}
}
