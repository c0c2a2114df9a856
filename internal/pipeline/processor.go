// Package pipeline drives messages through triage, extraction, calorie
// resolution and storage.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/constants"
	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/extract"
	"github.com/mealtrace/mealtrace/internal/mailbox"
	"github.com/mealtrace/mealtrace/internal/repository"
)

// Extractor turns one raw message into a candidate order.
type Extractor interface {
	Extract(ctx context.Context, msg entity.RawMessage) (*entity.CandidateOrder, error)
}

// Resolver maps a dish name to a calorie fact.
type Resolver interface {
	Resolve(ctx context.Context, dishName, restaurantName string) entity.NutritionFact
}

// SyncStats counts per-message outcomes of one mailbox sync.
type SyncStats struct {
	Fetched     int
	Parsed      int
	Duplicates  int
	Excluded    int
	NotBills    int
	Unparseable int
	Failed      int
}

type Processor struct {
	orders          repository.OrderRepository
	syncLog         repository.SyncLogRepository
	extractor       Extractor
	resolver        Resolver
	dishConcurrency int
	log             *slog.Logger
}

func NewProcessor(
	orders repository.OrderRepository,
	syncLog repository.SyncLogRepository,
	extractor Extractor,
	resolver Resolver,
	dishConcurrency int,
	logger *slog.Logger,
) *Processor {
	if dishConcurrency <= 0 {
		dishConcurrency = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		orders:          orders,
		syncLog:         syncLog,
		extractor:       extractor,
		resolver:        resolver,
		dishConcurrency: dishConcurrency,
		log:             logger,
	}
}

// ProcessMessage runs the full per-message pipeline. Every outcome except a
// storage failure is a normal result, not an error.
func (p *Processor) ProcessMessage(ctx context.Context, userID uuid.UUID, msg entity.RawMessage) (constants.MessageOutcome, error) {
	start := time.Now()
	p.log.Debug("pipeline.message.start", "message_id", msg.ID, "subject", msg.Subject)

	exists, err := p.orders.ExistsByMessageID(ctx, msg.ID)
	if err != nil {
		return constants.OutcomePersistFailed, err
	}
	if exists {
		p.record(ctx, msg.ID, constants.OutcomeDuplicate, "")
		return constants.OutcomeDuplicate, nil
	}

	candidate, err := p.extractor.Extract(ctx, msg)
	if err != nil {
		outcome := constants.OutcomeUnparseable
		switch {
		case errors.Is(err, extract.ErrExcluded):
			outcome = constants.OutcomeExcluded
		case errors.Is(err, extract.ErrNotBill):
			outcome = constants.OutcomeNotBill
		}
		p.record(ctx, msg.ID, outcome, err.Error())
		return outcome, nil
	}

	dishes := p.resolveDishes(ctx, candidate)

	if _, err := p.orders.CreateWithDishes(ctx, &repository.CreateOrderRequest{
		UserID:     userID,
		MessageID:  msg.ID,
		RawSubject: msg.Subject,
		Candidate:  *candidate,
		Dishes:     dishes,
	}); err != nil {
		p.record(ctx, msg.ID, constants.OutcomePersistFailed, err.Error())
		return constants.OutcomePersistFailed, err
	}

	p.record(ctx, msg.ID, constants.OutcomeParsed, "")
	p.log.Info("pipeline.message.parsed",
		"message_id", msg.ID,
		"restaurant", candidate.RestaurantName,
		"dishes", len(dishes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return constants.OutcomeParsed, nil
}

// resolveDishes resolves each line item's calories with bounded
// parallelism. Dishes of one order are independent; the cap keeps
// third-party rate limits happy.
func (p *Processor) resolveDishes(ctx context.Context, candidate *entity.CandidateOrder) []entity.Dish {
	dishes := make([]entity.Dish, len(candidate.LineItems))
	sem := make(chan struct{}, p.dishConcurrency)
	var wg sync.WaitGroup

	for i, item := range candidate.LineItems {
		wg.Add(1)
		go func(i int, item entity.LineItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fact := p.resolver.Resolve(ctx, item.Name, candidate.RestaurantName)

			dish := entity.Dish{
				Name:        item.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				IsEstimated: fact.IsEstimated,
			}
			if fact.Calories != nil {
				total := *fact.Calories * float64(item.Quantity)
				dish.Calories = &total
			}
			dishes[i] = dish
		}(i, item)
	}

	wg.Wait()
	return dishes
}

// SyncMailbox fetches messages and processes them with bounded
// parallelism, returning outcome counts.
func (p *Processor) SyncMailbox(ctx context.Context, userID uuid.UUID, source mailbox.Source, since time.Time, workers int) (SyncStats, error) {
	if workers <= 0 {
		workers = 4
	}

	messages, err := source.Fetch(ctx, since)
	if err != nil {
		return SyncStats{}, err
	}

	stats := SyncStats{Fetched: len(messages)}
	var mu sync.Mutex
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, msg := range messages {
		wg.Add(1)
		go func(msg entity.RawMessage) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcome, err := p.ProcessMessage(ctx, userID, msg)
			if err != nil {
				p.log.Error("pipeline.message.failed", "message_id", msg.ID, "error", err)
			}

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case constants.OutcomeParsed:
				stats.Parsed++
			case constants.OutcomeDuplicate:
				stats.Duplicates++
			case constants.OutcomeExcluded:
				stats.Excluded++
			case constants.OutcomeNotBill:
				stats.NotBills++
			case constants.OutcomeUnparseable:
				stats.Unparseable++
			case constants.OutcomePersistFailed:
				stats.Failed++
			}
		}(msg)
	}

	wg.Wait()
	p.log.Info("pipeline.sync.complete",
		"fetched", stats.Fetched,
		"parsed", stats.Parsed,
		"duplicates", stats.Duplicates,
		"excluded", stats.Excluded,
		"not_bills", stats.NotBills,
		"unparseable", stats.Unparseable,
		"failed", stats.Failed,
	)
	return stats, nil
}

func (p *Processor) record(ctx context.Context, messageID string, outcome constants.MessageOutcome, detail string) {
	if p.syncLog != nil {
		p.syncLog.Record(ctx, messageID, outcome, detail)
	}
}
