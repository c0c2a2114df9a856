package nutrition

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mealtrace/mealtrace/internal/entity"
)

type fakeCache struct {
	entries []entity.CacheEntry
	findErr error
}

func (c *fakeCache) Find(_ context.Context, dishName, restaurantName string) (*entity.CacheEntry, error) {
	if c.findErr != nil {
		return nil, c.findErr
	}
	for i := range c.entries {
		if c.entries[i].DishName == dishName {
			if restaurantName == "" || c.entries[i].RestaurantName == restaurantName {
				return &c.entries[i], nil
			}
		}
	}
	// second pass without restaurant constraint
	for i := range c.entries {
		if c.entries[i].DishName == dishName {
			return &c.entries[i], nil
		}
	}
	return nil, nil
}

func (c *fakeCache) Append(_ context.Context, entry entity.CacheEntry) error {
	c.entries = append(c.entries, entry)
	return nil
}

type fakeSource struct {
	name  string
	fact  *entity.NutritionFact
	err   error
	calls int
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Lookup(_ context.Context, _, _ string) (*entity.NutritionFact, error) {
	s.calls++
	return s.fact, s.err
}

func fptr(v float64) *float64 { return &v }

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestResolveCacheHitShortCircuitsSources(t *testing.T) {
	cache := &fakeCache{entries: []entity.CacheEntry{
		{DishName: "Masala Dosa", RestaurantName: "Udupi Palace", Calories: 250},
	}}
	src := &fakeSource{name: "api", fact: &entity.NutritionFact{Calories: fptr(999)}}
	r := NewResolver(cache, []Source{src}, discard())

	fact := r.Resolve(context.Background(), "Masala Dosa", "Udupi Palace")
	if fact.Calories == nil || *fact.Calories != 250 {
		t.Fatalf("calories = %v, want 250", fact.Calories)
	}
	if src.calls != 0 {
		t.Errorf("source called %d times, want 0", src.calls)
	}
}

func TestResolveCascadeOrderAndWriteThrough(t *testing.T) {
	cache := &fakeCache{}
	first := &fakeSource{name: "verified"}
	second := &fakeSource{name: "search", fact: &entity.NutritionFact{Calories: fptr(320)}}
	third := &fakeSource{name: "estimate", fact: &entity.NutritionFact{Calories: fptr(100), IsEstimated: true}}
	r := NewResolver(cache, []Source{first, second, third}, discard())

	fact := r.Resolve(context.Background(), "Veg Fried Rice", "")
	if fact.Calories == nil || *fact.Calories != 320 {
		t.Fatalf("calories = %v, want 320 from second source", fact.Calories)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
	}
	if third.calls != 0 {
		t.Errorf("later source called %d times after hit, want 0", third.calls)
	}
	if len(cache.entries) != 1 || cache.entries[0].Calories != 320 {
		t.Fatalf("cache entries = %+v, want single 320 entry", cache.entries)
	}
}

func TestResolveSourceErrorFallsThrough(t *testing.T) {
	cache := &fakeCache{}
	broken := &fakeSource{name: "verified", err: errors.New("timeout")}
	working := &fakeSource{name: "estimate", fact: &entity.NutritionFact{Calories: fptr(180), IsEstimated: true}}
	r := NewResolver(cache, []Source{broken, working}, discard())

	fact := r.Resolve(context.Background(), "Dal Tadka", "")
	if fact.Calories == nil || *fact.Calories != 180 {
		t.Fatalf("calories = %v, want 180", fact.Calories)
	}
	if !fact.IsEstimated {
		t.Error("IsEstimated = false, want true")
	}
}

func TestResolveExhaustionNeverCached(t *testing.T) {
	cache := &fakeCache{}
	empty := &fakeSource{name: "verified"}
	r := NewResolver(cache, []Source{empty}, discard())

	fact := r.Resolve(context.Background(), "Xyzdish123", "Mystery Kitchen")
	if fact.Calories != nil {
		t.Errorf("calories = %v, want nil", fact.Calories)
	}
	if !fact.IsEstimated {
		t.Error("IsEstimated = false, want true")
	}
	if fact.SourceURL != nil {
		t.Errorf("source url = %v, want nil", fact.SourceURL)
	}
	if len(cache.entries) != 0 {
		t.Fatalf("cache entries = %d, unknown results must not be cached", len(cache.entries))
	}
}

func TestResolveCacheErrorDegradesToSources(t *testing.T) {
	cache := &fakeCache{findErr: errors.New("db down")}
	src := &fakeSource{name: "verified", fact: &entity.NutritionFact{Calories: fptr(400)}}
	r := NewResolver(cache, []Source{src}, discard())

	fact := r.Resolve(context.Background(), "Butter Chicken", "")
	if fact.Calories == nil || *fact.Calories != 400 {
		t.Fatalf("calories = %v, want 400", fact.Calories)
	}
}

func TestExtractCalorieNumber(t *testing.T) {
	cases := []struct {
		text string
		want float64
		ok   bool
	}{
		{"Masala Dosa has about 250 calories per serving", 250, true},
		{"Calories: 312.5", 312.5, true},
		{"roughly 1,200 kcal", 1200, true},
		{"between 200 - 300 calories", 250, true},
		{"a tasty dish with no numbers", 0, false},
	}
	for _, c := range cases {
		got, ok := extractCalorieNumber(c.text)
		if ok != c.ok || got != c.want {
			t.Errorf("extractCalorieNumber(%q) = %v, %v; want %v, %v", c.text, got, ok, c.want, c.ok)
		}
	}
}

func TestEstimateSourceClampsBand(t *testing.T) {
	cases := []struct {
		response string
		wantNil  bool
		want     float64
	}{
		{"250", false, 250},
		{"The estimate is 480", false, 480},
		{"10", true, 0},
		{"5000", true, 0},
		{"no idea", true, 0},
	}
	for _, c := range cases {
		src := NewEstimateSource(&staticCompleter{response: c.response}, discard())
		fact, err := src.Lookup(context.Background(), "Some Dish", "")
		if err != nil {
			t.Fatalf("Lookup(%q): %v", c.response, err)
		}
		if c.wantNil {
			if fact != nil {
				t.Errorf("Lookup(%q) = %+v, want nil", c.response, fact)
			}
			continue
		}
		if fact == nil || fact.Calories == nil || *fact.Calories != c.want {
			t.Errorf("Lookup(%q) = %+v, want %v", c.response, fact, c.want)
		}
		if !fact.IsEstimated {
			t.Errorf("Lookup(%q) not flagged estimated", c.response)
		}
		if fact.SourceURL != nil {
			t.Errorf("Lookup(%q) carries a source url", c.response)
		}
	}
}

type staticCompleter struct{ response string }

func (s *staticCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.response, nil
}
