package repository

import (
	"context"
	"log/slog"

	"github.com/mealtrace/mealtrace/constants"
	"github.com/mealtrace/mealtrace/gen/ent"
)

// SyncLogRepository records per-message pipeline outcomes. Recording is
// best-effort observability; failures never abort message processing.
type SyncLogRepository interface {
	Record(ctx context.Context, messageID string, outcome constants.MessageOutcome, detail string)
}

type syncLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSyncLogRepository(client *ent.Client, logger *slog.Logger) SyncLogRepository {
	return &syncLogRepository{
		client: client,
		logger: logger,
	}
}

func (r *syncLogRepository) Record(ctx context.Context, messageID string, outcome constants.MessageOutcome, detail string) {
	create := r.client.SyncLog.Create().
		SetMessageID(messageID).
		SetOutcome(string(outcome))
	if detail != "" {
		create = create.SetDetail(detail)
	}
	if _, err := create.Save(ctx); err != nil {
		r.logger.Warn("failed to record sync outcome",
			"message_id", messageID,
			"outcome", outcome,
			"error", err,
		)
	}
}
