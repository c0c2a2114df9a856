package entity

import "time"

// NutritionFact is the resolver's answer for a single dish name. A nil
// Calories means the cascade was exhausted without a usable value;
// IsEstimated is true for any non-verified source, including the no-data
// terminal case.
type NutritionFact struct {
	Calories    *float64 `json:"calories,omitempty"` // per serving
	IsEstimated bool     `json:"is_estimated"`
	SourceURL   *string  `json:"source_url,omitempty"`
}

// CacheEntry is one append-only calorie-cache row. Entries are never
// updated or deleted; reads pick the oldest match (insertion order).
type CacheEntry struct {
	DishName       string    `json:"dish_name"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	Calories       float64   `json:"calories"`
	SourceURL      *string   `json:"source_url,omitempty"`
	IsEstimated    bool      `json:"is_estimated"`
	CreatedAt      time.Time `json:"created_at"`
}

// Fact returns the cache entry as a NutritionFact.
func (e CacheEntry) Fact() NutritionFact {
	cal := e.Calories
	return NutritionFact{Calories: &cal, IsEstimated: e.IsEstimated, SourceURL: e.SourceURL}
}
