package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/constants"
	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/extract"
	"github.com/mealtrace/mealtrace/internal/repository"
)

type fakeOrderRepo struct {
	mu        sync.Mutex
	existing  map[string]bool
	created   []*repository.CreateOrderRequest
	createErr error
}

func (f *fakeOrderRepo) ExistsByMessageID(_ context.Context, messageID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.existing[messageID], nil
}

func (f *fakeOrderRepo) CreateWithDishes(_ context.Context, req *repository.CreateOrderRequest) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &entity.Order{ID: uuid.New(), MessageID: req.MessageID}, nil
}

func (f *fakeOrderRepo) ListOrders(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]*entity.Order, error) {
	return nil, nil
}

type fakeSyncLog struct {
	mu       sync.Mutex
	outcomes map[string]constants.MessageOutcome
}

func (f *fakeSyncLog) Record(_ context.Context, messageID string, outcome constants.MessageOutcome, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.outcomes == nil {
		f.outcomes = map[string]constants.MessageOutcome{}
	}
	f.outcomes[messageID] = outcome
}

type fakeExtractor struct {
	candidate *entity.CandidateOrder
	err       error
}

func (f *fakeExtractor) Extract(_ context.Context, _ entity.RawMessage) (*entity.CandidateOrder, error) {
	return f.candidate, f.err
}

type fakeResolver struct {
	mu    sync.Mutex
	facts map[string]entity.NutritionFact
	calls int
}

func (f *fakeResolver) Resolve(_ context.Context, dishName, _ string) entity.NutritionFact {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.facts[dishName]
}

type fakeMailSource struct {
	messages []entity.RawMessage
	err      error
}

func (f *fakeMailSource) Fetch(_ context.Context, _ time.Time) ([]entity.RawMessage, error) {
	return f.messages, f.err
}

func quiet() *slog.Logger { return slog.New(slog.DiscardHandler) }

func candidateOrder() *entity.CandidateOrder {
	price := 400.0
	return &entity.CandidateOrder{
		RestaurantName: "Spice Villa",
		OrderedAt:      time.Date(2026, time.March, 15, 21, 45, 0, 0, time.UTC),
		TotalPrice:     &price,
		LineItems: []entity.LineItem{
			{Name: "Paneer Tikka", Quantity: 2},
			{Name: "Butter Naan", Quantity: 1},
		},
	}
}

func TestProcessMessageParsesAndStores(t *testing.T) {
	orders := &fakeOrderRepo{existing: map[string]bool{}}
	syncLog := &fakeSyncLog{}
	cal := 170.0
	resolver := &fakeResolver{facts: map[string]entity.NutritionFact{
		"Paneer Tikka": {Calories: &cal},
		"Butter Naan":  {IsEstimated: true},
	}}
	p := NewProcessor(orders, syncLog, &fakeExtractor{candidate: candidateOrder()}, resolver, 2, quiet())

	outcome, err := p.ProcessMessage(context.Background(), uuid.New(), entity.RawMessage{ID: "m1"})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if outcome != constants.OutcomeParsed {
		t.Fatalf("outcome = %v, want PARSED", outcome)
	}
	if len(orders.created) != 1 {
		t.Fatalf("orders created = %d, want 1", len(orders.created))
	}
	req := orders.created[0]
	if len(req.Dishes) != 2 {
		t.Fatalf("dishes = %d, want 2", len(req.Dishes))
	}
	// Quantity-weighted calorie total.
	if req.Dishes[0].Calories == nil || *req.Dishes[0].Calories != 340 {
		t.Errorf("dish calories = %v, want 340 (170 x2)", req.Dishes[0].Calories)
	}
	if req.Dishes[1].Calories != nil || !req.Dishes[1].IsEstimated {
		t.Errorf("unresolved dish = %+v, want nil calories, estimated", req.Dishes[1])
	}
	if syncLog.outcomes["m1"] != constants.OutcomeParsed {
		t.Errorf("sync log outcome = %v", syncLog.outcomes["m1"])
	}
}

func TestProcessMessageDuplicateSkipsExtraction(t *testing.T) {
	orders := &fakeOrderRepo{existing: map[string]bool{"m1": true}}
	p := NewProcessor(orders, &fakeSyncLog{}, &fakeExtractor{err: errors.New("must not be called")}, &fakeResolver{}, 1, quiet())

	outcome, err := p.ProcessMessage(context.Background(), uuid.New(), entity.RawMessage{ID: "m1"})
	if err != nil {
		t.Fatalf("ProcessMessage: %v", err)
	}
	if outcome != constants.OutcomeDuplicate {
		t.Fatalf("outcome = %v, want DUPLICATE", outcome)
	}
	if len(orders.created) != 0 {
		t.Error("duplicate message stored an order")
	}
}

func TestProcessMessageClassifiesSkips(t *testing.T) {
	cases := []struct {
		err  error
		want constants.MessageOutcome
	}{
		{extract.ErrExcluded, constants.OutcomeExcluded},
		{extract.ErrNotBill, constants.OutcomeNotBill},
		{extract.ErrUnparseable, constants.OutcomeUnparseable},
	}
	for _, c := range cases {
		p := NewProcessor(&fakeOrderRepo{existing: map[string]bool{}}, &fakeSyncLog{}, &fakeExtractor{err: c.err}, &fakeResolver{}, 1, quiet())
		outcome, err := p.ProcessMessage(context.Background(), uuid.New(), entity.RawMessage{ID: "m1"})
		if err != nil {
			t.Fatalf("skip surfaced as error: %v", err)
		}
		if outcome != c.want {
			t.Errorf("outcome for %v = %v, want %v", c.err, outcome, c.want)
		}
	}
}

func TestProcessMessagePersistFailure(t *testing.T) {
	orders := &fakeOrderRepo{existing: map[string]bool{}, createErr: errors.New("db down")}
	p := NewProcessor(orders, &fakeSyncLog{}, &fakeExtractor{candidate: candidateOrder()}, &fakeResolver{}, 1, quiet())

	outcome, err := p.ProcessMessage(context.Background(), uuid.New(), entity.RawMessage{ID: "m1"})
	if err == nil {
		t.Fatal("persist failure not surfaced")
	}
	if outcome != constants.OutcomePersistFailed {
		t.Fatalf("outcome = %v, want PERSIST_FAILED", outcome)
	}
}

func TestSyncMailboxCountsOutcomes(t *testing.T) {
	orders := &fakeOrderRepo{existing: map[string]bool{"dup": true}}
	source := &fakeMailSource{messages: []entity.RawMessage{
		{ID: "a"}, {ID: "b"}, {ID: "dup"},
	}}
	p := NewProcessor(orders, &fakeSyncLog{}, &fakeExtractor{candidate: candidateOrder()}, &fakeResolver{}, 2, quiet())

	stats, err := p.SyncMailbox(context.Background(), uuid.New(), source, time.Time{}, 2)
	if err != nil {
		t.Fatalf("SyncMailbox: %v", err)
	}
	if stats.Fetched != 3 || stats.Parsed != 2 || stats.Duplicates != 1 {
		t.Fatalf("stats = %+v, want 3 fetched, 2 parsed, 1 duplicate", stats)
	}
}

func TestSyncMailboxSourceError(t *testing.T) {
	p := NewProcessor(&fakeOrderRepo{existing: map[string]bool{}}, &fakeSyncLog{}, &fakeExtractor{}, &fakeResolver{}, 1, quiet())
	if _, err := p.SyncMailbox(context.Background(), uuid.New(), &fakeMailSource{err: errors.New("imap down")}, time.Time{}, 1); err == nil {
		t.Fatal("source error not surfaced")
	}
}

func TestQueueProcessesAndDrains(t *testing.T) {
	orders := &fakeOrderRepo{existing: map[string]bool{}}
	p := NewProcessor(orders, &fakeSyncLog{}, &fakeExtractor{candidate: candidateOrder()}, &fakeResolver{}, 1, quiet())
	q := NewMessageQueue(p, quiet(), WithWorkers(2), WithQueueSize(8), WithProcessTimeout(time.Second))

	userID := uuid.New()
	for _, id := range []string{"q1", "q2", "q3"} {
		if err := q.Enqueue(context.Background(), Job{UserID: userID, Message: entity.RawMessage{ID: id}}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	orders.mu.Lock()
	created := len(orders.created)
	orders.mu.Unlock()
	if created != 3 {
		t.Fatalf("orders created = %d, want 3 after drain", created)
	}
}
