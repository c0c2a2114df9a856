// Package report aggregates a user's order history into the health report,
// caching results behind an order-count watermark.
package report

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/health"
	"github.com/mealtrace/mealtrace/internal/repository"
)

// Narrator produces the optional advisory block. A nil narrator or a nil
// result both degrade to an index-only report.
type Narrator interface {
	Generate(ctx context.Context, input health.NarrativeInput) *entity.Narrative
}

type Service struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	cache    repository.ReportCacheRepository
	narrator Narrator
	log      *slog.Logger
}

func NewService(
	orders repository.OrderRepository,
	users repository.UserRepository,
	cache repository.ReportCacheRepository,
	narrator Narrator,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		orders:   orders,
		users:    users,
		cache:    cache,
		narrator: narrator,
		log:      logger,
	}
}

// GetHealthReport returns the cached report while the user's order count
// matches the stored watermark, recomputing otherwise.
func (s *Service) GetHealthReport(ctx context.Context, userID uuid.UUID) (*entity.HealthReport, error) {
	orderCount, err := s.users.CountOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn("report cache read failed", "user_id", userID, "error", err)
		} else if cached != nil && cached.LastOrderCount == orderCount {
			s.log.Debug("report cache hit", "user_id", userID, "order_count", orderCount)
			report := cached.Report
			return &report, nil
		}
	}

	report, err := s.computeReport(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, userID, orderCount, *report); err != nil {
			s.log.Warn("report cache write failed", "user_id", userID, "error", err)
		}
	}
	return report, nil
}

func (s *Service) computeReport(ctx context.Context, userID uuid.UUID) (*entity.HealthReport, error) {
	orders, err := s.orders.ListOrders(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}

	agg := aggregate(orders)
	index, breakdown := health.ComputeHealthIndex(agg.frequencies, agg.lateNightPct, agg.avgDailyCalories)
	daily := health.ComputeDailyScores(agg.days, index)

	report := &entity.HealthReport{
		HealthIndex:       index,
		CategoryBreakdown: breakdown,
		DailyScores:       daily,
	}

	if s.narrator != nil && len(agg.frequencies) > 0 {
		report.Narrative = s.narrator.Generate(ctx, health.NarrativeInput{
			Dishes:           agg.frequencies,
			TotalOrders:      len(orders),
			TotalMonths:      agg.totalMonths,
			AvgDailyCalories: agg.avgDailyCalories,
			TopDishes:        agg.topDishes(5),
		})
	}

	s.log.Info("health report computed",
		"user_id", userID,
		"orders", len(orders),
		"index", index,
		"days", len(daily),
	)
	return report, nil
}

type aggregation struct {
	frequencies      []entity.DishFrequencyEntry
	days             []health.DayOrders
	lateNightPct     float64
	avgDailyCalories float64
	totalMonths      int
}

func (a aggregation) topDishes(n int) []string {
	sorted := make([]entity.DishFrequencyEntry, len(a.frequencies))
	copy(sorted, a.frequencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = d.Name
	}
	return out
}

// isLateNight reports whether the order time falls in the late-night band.
// Exact midnight is the time-unknown sentinel and never counts.
func isLateNight(t time.Time) bool {
	if t.Hour() == 0 && t.Minute() == 0 {
		return false
	}
	return t.Hour() >= 22 || t.Hour() < 5
}

func aggregate(orders []*entity.Order) aggregation {
	freqByKey := map[string]*entity.DishFrequencyEntry{}
	dayByKey := map[string]*health.DayOrders{}

	lateNightOrders := 0
	var minDate, maxDate time.Time

	for _, order := range orders {
		if isLateNight(order.OrderedAt) {
			lateNightOrders++
		}
		if minDate.IsZero() || order.OrderedAt.Before(minDate) {
			minDate = order.OrderedAt
		}
		if order.OrderedAt.After(maxDate) {
			maxDate = order.OrderedAt
		}

		dayKey := order.OrderedAt.Format("2006-01-02")
		day, ok := dayByKey[dayKey]
		if !ok {
			date := time.Date(order.OrderedAt.Year(), order.OrderedAt.Month(), order.OrderedAt.Day(), 0, 0, 0, 0, time.UTC)
			day = &health.DayOrders{Date: date}
			dayByKey[dayKey] = day
		}
		if order.TotalCalories != nil {
			day.Calories += *order.TotalCalories
		}
		if isLateNight(order.OrderedAt) {
			day.LateNight = true
		}

		for _, dish := range order.Dishes {
			day.Dishes = append(day.Dishes, health.DishRef{Name: dish.Name, Restaurant: order.RestaurantName})

			freqKey := dish.Name + "\x00" + order.RestaurantName
			entry, ok := freqByKey[freqKey]
			if !ok {
				entry = &entity.DishFrequencyEntry{Name: dish.Name, Restaurant: order.RestaurantName}
				freqByKey[freqKey] = entry
			}
			entry.Count += dish.Quantity
			if entry.Calories == nil && dish.Calories != nil && dish.Quantity > 0 {
				perUnit := *dish.Calories / float64(dish.Quantity)
				entry.Calories = &perUnit
			}
		}
	}

	agg := aggregation{}
	for _, entry := range freqByKey {
		agg.frequencies = append(agg.frequencies, *entry)
	}
	sort.Slice(agg.frequencies, func(i, j int) bool {
		if agg.frequencies[i].Count != agg.frequencies[j].Count {
			return agg.frequencies[i].Count > agg.frequencies[j].Count
		}
		return agg.frequencies[i].Name < agg.frequencies[j].Name
	})

	var totalDayCalories float64
	for _, day := range dayByKey {
		agg.days = append(agg.days, *day)
		totalDayCalories += day.Calories
	}
	if len(agg.days) > 0 {
		agg.avgDailyCalories = totalDayCalories / float64(len(agg.days))
	}
	if len(orders) > 0 {
		agg.lateNightPct = float64(lateNightOrders) * 100 / float64(len(orders))
		months := int(maxDate.Sub(minDate).Hours()/(24*30)) + 1
		agg.totalMonths = months
	}
	return agg
}
