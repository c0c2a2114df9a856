package health

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/mealtrace/mealtrace/constants"
	"github.com/mealtrace/mealtrace/internal/entity"
)

type staticCompleter struct{ response string }

func (s *staticCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.response, nil
}

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestComputeHealthIndexWeightedAverage(t *testing.T) {
	// Dal Tadka classifies A (-7), Gulab Jamun E (+37). Equal counts give
	// avg +15, which maps to index 100 - (30*100/55) = 45 with no penalties.
	dishes := []entity.DishFrequencyEntry{
		{Name: "Dal Tadka", Count: 10},
		{Name: "Gulab Jamun", Count: 10},
	}

	index, breakdown := ComputeHealthIndex(dishes, 0, 2000)
	want := int(math.Round(100 - ((15.0 + 15) * 100 / 55)))
	if index != want {
		t.Errorf("index = %d, want %d", index, want)
	}
	if breakdown[constants.CategoryA] != 10 || breakdown[constants.CategoryE] != 10 {
		t.Errorf("breakdown = %v, want 10 A and 10 E", breakdown)
	}
}

func TestComputeHealthIndexPenalties(t *testing.T) {
	dishes := []entity.DishFrequencyEntry{{Name: "Dal Tadka", Count: 5}}

	base, _ := ComputeHealthIndex(dishes, 0, 2000)
	lateNight, _ := ComputeHealthIndex(dishes, 25, 2000)
	if lateNight != base-5 {
		t.Errorf("late night index = %d, want %d", lateNight, base-5)
	}
	highCal, _ := ComputeHealthIndex(dishes, 0, 2600)
	if highCal != base-5 {
		t.Errorf("high calorie index = %d, want %d", highCal, base-5)
	}
	both, _ := ComputeHealthIndex(dishes, 25, 2600)
	if both != base-10 {
		t.Errorf("both penalties index = %d, want %d", both, base-10)
	}
	// Threshold values themselves do not trigger the penalties.
	atThreshold, _ := ComputeHealthIndex(dishes, 20, 2500)
	if atThreshold != base {
		t.Errorf("at-threshold index = %d, want %d", atThreshold, base)
	}
}

func TestComputeHealthIndexClampedAndMonotonic(t *testing.T) {
	allA := []entity.DishFrequencyEntry{{Name: "Steamed Veg", Count: 50}}
	allE := []entity.DishFrequencyEntry{{Name: "Gulab Jamun", Count: 50}}

	top, _ := ComputeHealthIndex(allA, 0, 0)
	bottom, _ := ComputeHealthIndex(allE, 0, 0)
	if top < 0 || top > 100 || bottom < 0 || bottom > 100 {
		t.Fatalf("indexes out of range: %d, %d", top, bottom)
	}

	// Shifting count from A to E can never raise the index.
	prev := top
	for eCount := 10; eCount <= 50; eCount += 10 {
		mixed := []entity.DishFrequencyEntry{
			{Name: "Steamed Veg", Count: 50 - eCount},
			{Name: "Gulab Jamun", Count: eCount},
		}
		index, _ := ComputeHealthIndex(mixed, 0, 0)
		if index > prev {
			t.Fatalf("index rose from %d to %d as severity grew", prev, index)
		}
		prev = index
	}
}

func TestComputeHealthIndexEmptyHistory(t *testing.T) {
	index, breakdown := ComputeHealthIndex(nil, 0, 0)
	if index != 50 {
		t.Errorf("empty history index = %d, want 50", index)
	}
	if len(breakdown) != 0 {
		t.Errorf("empty history breakdown = %v, want empty", breakdown)
	}
}

func TestComputeDailyScores(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC) }

	days := []DayOrders{
		{Date: day(3), Calories: 1000},                  // ratio 1.0, no adjustment
		{Date: day(1), Calories: 1600},                  // ratio 1.6, -15
		{Date: day(2), Calories: 700},                   // ratio 0.7, +5
		{Date: day(4), Calories: 1000, LateNight: true}, // -10
		{Date: day(5), Calories: 700, Dishes: []DishRef{{Name: "Gulab Jamun"}, {Name: "Samosa"}}}, // +5 then -8, E beats D
	}

	scores := ComputeDailyScores(days, 60)
	if len(scores) != 5 {
		t.Fatalf("scores = %d, want 5", len(scores))
	}
	// Sorted by date.
	for i := 1; i < len(scores); i++ {
		if scores[i].Date.Before(scores[i-1].Date) {
			t.Fatal("scores not ordered by date")
		}
	}
	want := []int{45, 65, 60, 50, 57}
	for i, w := range want {
		if scores[i].Index != w {
			t.Errorf("day %d index = %d, want %d", i+1, scores[i].Index, w)
		}
	}
}

func TestComputeDailyScoresCategoryPenaltyOncePerDay(t *testing.T) {
	days := []DayOrders{
		{Date: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), Calories: 1000,
			Dishes: []DishRef{{Name: "Samosa"}, {Name: "French Fries"}, {Name: "Pakora"}}},
	}
	scores := ComputeDailyScores(days, 60)
	if scores[0].Index != 55 {
		t.Errorf("index = %d, want 55 (single D penalty)", scores[0].Index)
	}
}

func TestComputeDailyScoresClamped(t *testing.T) {
	days := []DayOrders{
		{Date: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), Calories: 5000, LateNight: true,
			Dishes: []DishRef{{Name: "Gulab Jamun"}}},
		{Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), Calories: 100},
	}
	scores := ComputeDailyScores(days, 5)
	if scores[0].Index != 0 {
		t.Errorf("index = %d, want clamped 0", scores[0].Index)
	}
}

func TestNarratorDegradesToNil(t *testing.T) {
	n := NewNarrator(nil, discardLogger())
	if got := n.Generate(context.Background(), NarrativeInput{Dishes: []entity.DishFrequencyEntry{{Name: "Dal", Count: 1}}}); got != nil {
		t.Errorf("unconfigured oracle narrative = %+v, want nil", got)
	}

	bad := NewNarrator(&staticCompleter{response: "this is not json"}, discardLogger())
	if got := bad.Generate(context.Background(), NarrativeInput{Dishes: []entity.DishFrequencyEntry{{Name: "Dal", Count: 1}}}); got != nil {
		t.Errorf("invalid payload narrative = %+v, want nil", got)
	}
}

func TestNarratorParsesValidPayload(t *testing.T) {
	payload := "```json\n" + `{
		"one_liner": "Too many sweets, not enough greens",
		"eat_more_of": [
			{"item": "Desserts", "is_healthy": false},
			{"item": "Dal", "is_healthy": true}
		],
		"lacking": ["Fiber", "Vegetables"],
		"monthly_narrative": "Heavy on desserts this month."
	}` + "\n```"
	n := NewNarrator(&staticCompleter{response: payload}, discardLogger())

	got := n.Generate(context.Background(), NarrativeInput{
		Dishes:      []entity.DishFrequencyEntry{{Name: "Gulab Jamun", Count: 12}},
		TotalOrders: 12,
		TotalMonths: 1,
	})
	if got == nil {
		t.Fatal("narrative = nil, want parsed value")
	}
	if got.OneLiner != "Too many sweets, not enough greens" {
		t.Errorf("one liner = %q", got.OneLiner)
	}
	if len(got.EatMoreOf) != 2 || got.EatMoreOf[0].IsHealthy {
		t.Errorf("eat more of = %+v", got.EatMoreOf)
	}
	if len(got.Lacking) != 2 {
		t.Errorf("lacking = %v", got.Lacking)
	}
}
