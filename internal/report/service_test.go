package report

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/gen/ent"
	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/health"
	"github.com/mealtrace/mealtrace/internal/repository"
)

type fakeOrders struct {
	orders []*entity.Order
	calls  int
}

func (f *fakeOrders) ExistsByMessageID(_ context.Context, _ string) (bool, error) { return false, nil }

func (f *fakeOrders) CreateWithDishes(_ context.Context, _ *repository.CreateOrderRequest) (*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrders) ListOrders(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]*entity.Order, error) {
	f.calls++
	return f.orders, nil
}

type fakeUsers struct {
	orderCount int
}

func (f *fakeUsers) GetOrCreateByEmail(_ context.Context, _ string) (*ent.User, error) {
	return nil, nil
}

func (f *fakeUsers) CountOrders(_ context.Context, _ uuid.UUID) (int, error) {
	return f.orderCount, nil
}

type fakeReportCache struct {
	cached *repository.CachedReport
	puts   int
}

func (f *fakeReportCache) Get(_ context.Context, _ uuid.UUID) (*repository.CachedReport, error) {
	return f.cached, nil
}

func (f *fakeReportCache) Put(_ context.Context, _ uuid.UUID, orderCount int, report entity.HealthReport) error {
	f.puts++
	f.cached = &repository.CachedReport{LastOrderCount: orderCount, Report: report}
	return nil
}

type fakeNarrator struct {
	narrative *entity.Narrative
	calls     int
}

func (f *fakeNarrator) Generate(_ context.Context, _ health.NarrativeInput) *entity.Narrative {
	f.calls++
	return f.narrative
}

func fptr(v float64) *float64 { return &v }

func quiet() *slog.Logger { return slog.New(slog.DiscardHandler) }

func sampleOrders() []*entity.Order {
	at := func(day, hour int) time.Time {
		return time.Date(2026, time.March, day, hour, 30, 0, 0, time.UTC)
	}
	return []*entity.Order{
		{
			RestaurantName: "Spice Villa",
			OrderedAt:      at(1, 13),
			TotalCalories:  fptr(520),
			Dishes: []entity.Dish{
				{Name: "Dal Tadka", Quantity: 2, Calories: fptr(360)},
				{Name: "Butter Naan", Quantity: 1, Calories: fptr(160)},
			},
		},
		{
			RestaurantName: "Sweet Tooth",
			OrderedAt:      at(2, 23),
			TotalCalories:  fptr(300),
			Dishes: []entity.Dish{
				{Name: "Gulab Jamun", Quantity: 2, Calories: fptr(300)},
			},
		},
	}
}

func TestGetHealthReportComputesAggregates(t *testing.T) {
	orders := &fakeOrders{orders: sampleOrders()}
	svc := NewService(orders, &fakeUsers{orderCount: 2}, &fakeReportCache{}, nil, quiet())

	report, err := svc.GetHealthReport(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetHealthReport: %v", err)
	}
	if report.HealthIndex < 0 || report.HealthIndex > 100 {
		t.Errorf("index = %d, out of range", report.HealthIndex)
	}
	// Dal Tadka (A) count 2, Butter Naan (C) count 1, Gulab Jamun (E) count 2.
	if report.CategoryBreakdown["A"] != 2 || report.CategoryBreakdown["C"] != 1 || report.CategoryBreakdown["E"] != 2 {
		t.Errorf("breakdown = %v", report.CategoryBreakdown)
	}
	if len(report.DailyScores) != 2 {
		t.Fatalf("daily scores = %d, want 2", len(report.DailyScores))
	}
	if !report.DailyScores[0].Date.Before(report.DailyScores[1].Date) {
		t.Error("daily scores not ordered by date")
	}
	if report.Narrative != nil {
		t.Error("narrative present without a narrator")
	}
}

func TestGetHealthReportUsesWatermarkCache(t *testing.T) {
	orders := &fakeOrders{orders: sampleOrders()}
	cache := &fakeReportCache{}
	svc := NewService(orders, &fakeUsers{orderCount: 2}, cache, nil, quiet())

	if _, err := svc.GetHealthReport(context.Background(), uuid.New()); err != nil {
		t.Fatalf("first GetHealthReport: %v", err)
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}

	// Same watermark: served from cache, no recompute.
	if _, err := svc.GetHealthReport(context.Background(), uuid.New()); err != nil {
		t.Fatalf("second GetHealthReport: %v", err)
	}
	if orders.calls != 1 {
		t.Errorf("ListOrders calls = %d, want 1 (cache hit)", orders.calls)
	}
}

func TestGetHealthReportRecomputesWhenOrdersGrow(t *testing.T) {
	orders := &fakeOrders{orders: sampleOrders()}
	users := &fakeUsers{orderCount: 2}
	cache := &fakeReportCache{}
	svc := NewService(orders, users, cache, nil, quiet())

	if _, err := svc.GetHealthReport(context.Background(), uuid.New()); err != nil {
		t.Fatal(err)
	}
	users.orderCount = 3
	if _, err := svc.GetHealthReport(context.Background(), uuid.New()); err != nil {
		t.Fatal(err)
	}
	if orders.calls != 2 {
		t.Errorf("ListOrders calls = %d, want 2 (watermark moved)", orders.calls)
	}
	if cache.puts != 2 {
		t.Errorf("cache puts = %d, want 2", cache.puts)
	}
}

func TestGetHealthReportNarrativeIsAdvisoryOnly(t *testing.T) {
	orders := &fakeOrders{orders: sampleOrders()}
	withoutNarrator := NewService(orders, &fakeUsers{orderCount: 2}, nil, nil, quiet())
	base, err := withoutNarrator.GetHealthReport(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}

	narrator := &fakeNarrator{narrative: &entity.Narrative{OneLiner: "Too many sweets"}}
	withNarrator := NewService(&fakeOrders{orders: sampleOrders()}, &fakeUsers{orderCount: 2}, nil, narrator, quiet())
	got, err := withNarrator.GetHealthReport(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if got.HealthIndex != base.HealthIndex {
		t.Errorf("narrator changed index: %d vs %d", got.HealthIndex, base.HealthIndex)
	}
	if got.Narrative == nil || got.Narrative.OneLiner != "Too many sweets" {
		t.Errorf("narrative = %+v", got.Narrative)
	}
	if narrator.calls != 1 {
		t.Errorf("narrator calls = %d, want 1", narrator.calls)
	}
}

func TestAggregateLateNightAndMidnightSentinel(t *testing.T) {
	midnight := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		{RestaurantName: "A", OrderedAt: time.Date(2026, time.March, 1, 23, 10, 0, 0, time.UTC)},
		{RestaurantName: "B", OrderedAt: time.Date(2026, time.March, 2, 13, 0, 0, 0, time.UTC)},
		{RestaurantName: "C", OrderedAt: midnight}, // time unknown, never late night
	}

	agg := aggregate(orders)
	want := 100.0 / 3
	if agg.lateNightPct < want-0.01 || agg.lateNightPct > want+0.01 {
		t.Errorf("late night pct = %v, want ~%v", agg.lateNightPct, want)
	}
	for _, day := range agg.days {
		if day.Date.Day() == 3 && day.LateNight {
			t.Error("midnight sentinel counted as late night")
		}
	}
}
