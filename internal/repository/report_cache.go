package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/gen/ent"
	entreportcache "github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/internal/entity"
)

// CachedReport pairs a stored health report with the order-count watermark
// it was computed at.
type CachedReport struct {
	LastOrderCount int
	Report         entity.HealthReport
}

type ReportCacheRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*CachedReport, error)
	Put(ctx context.Context, userID uuid.UUID, orderCount int, report entity.HealthReport) error
}

type reportCacheRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportCacheRepository(client *ent.Client, logger *slog.Logger) ReportCacheRepository {
	return &reportCacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *reportCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*CachedReport, error) {
	row, err := r.client.HealthReportCache.Query().
		Where(entreportcache.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to read report cache", "user_id", userID, "error", err)
		return nil, err
	}

	raw, err := json.Marshal(row.Report)
	if err != nil {
		return nil, err
	}
	var report entity.HealthReport
	if err := json.Unmarshal(raw, &report); err != nil {
		// Stale shape from an older build; treat as a miss so the report
		// gets recomputed and overwritten.
		r.logger.Warn("discarding unreadable cached report", "user_id", userID, "error", err)
		return nil, nil
	}
	return &CachedReport{LastOrderCount: row.LastOrderCount, Report: report}, nil
}

func (r *reportCacheRepository) Put(ctx context.Context, userID uuid.UUID, orderCount int, report entity.HealthReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return err
	}

	err = r.client.HealthReportCache.Create().
		SetUserID(userID).
		SetLastOrderCount(orderCount).
		SetReport(asMap).
		OnConflictColumns(entreportcache.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to write report cache", "user_id", userID, "error", err)
		return err
	}
	r.logger.Debug("report cache updated", "user_id", userID, "order_count", orderCount)
	return nil
}
