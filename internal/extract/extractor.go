// Package extract turns raw order emails into structured candidate orders.
// A triage gate rejects promo and non-bill mail first; actual extraction
// runs as an ordered sequence of passes where the first success wins.
package extract

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/llm"
	"github.com/mealtrace/mealtrace/internal/triage"
)

var (
	// ErrExcluded marks mail from an excluded category (grocery, pharmacy).
	ErrExcluded = errors.New("excluded category email")
	// ErrNotBill marks promotional, OTP, refund and other non-bill mail.
	ErrNotBill = errors.New("not a bill email")
	// ErrUnparseable marks bill mail that no pass could extract.
	ErrUnparseable = errors.New("unparseable bill email")
)

// Pass is one extraction strategy over a raw message.
type Pass interface {
	Name() string
	Extract(ctx context.Context, msg entity.RawMessage) (*entity.CandidateOrder, error)
}

type Extractor struct {
	passes []Pass
	log    *slog.Logger
}

// NewExtractor builds the pass sequence. The oracle pass is included only
// when a completer is provided; markup extraction always runs last.
func NewExtractor(completer llm.Completer, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	var passes []Pass
	if completer != nil {
		passes = append(passes, &oraclePass{completer: completer, now: time.Now, log: logger})
	}
	passes = append(passes, &markupPass{now: time.Now, log: logger})
	return &Extractor{passes: passes, log: logger}
}

// Extract gates the message through triage, then tries each pass in order.
// A pass failure is logged and swallowed; only full exhaustion surfaces
// ErrUnparseable.
func (e *Extractor) Extract(ctx context.Context, msg entity.RawMessage) (*entity.CandidateOrder, error) {
	verdict := triage.Classify(msg.Subject, msg.Body)
	if verdict.IsExcludedCategory {
		e.log.Info("extract.excluded",
			"message_id", msg.ID,
			"reason", verdict.ExclusionReason,
		)
		return nil, ErrExcluded
	}
	if !verdict.IsBillEmail {
		e.log.Debug("extract.not_bill", "message_id", msg.ID, "subject", msg.Subject)
		return nil, ErrNotBill
	}

	for _, pass := range e.passes {
		order, err := pass.Extract(ctx, msg)
		if err != nil {
			e.log.Warn("extract.pass_failed",
				"message_id", msg.ID,
				"pass", pass.Name(),
				"error", err,
			)
			continue
		}
		if order != nil && order.RestaurantName != "" && len(order.LineItems) > 0 {
			e.log.Info("extract.ok",
				"message_id", msg.ID,
				"pass", pass.Name(),
				"restaurant", order.RestaurantName,
				"line_items", len(order.LineItems),
			)
			return order, nil
		}
	}

	e.log.Warn("extract.unparseable", "message_id", msg.ID, "subject", msg.Subject)
	return nil, ErrUnparseable
}
