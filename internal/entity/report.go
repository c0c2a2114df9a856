package entity

import (
	"time"

	"github.com/mealtrace/mealtrace/constants"
)

// DishFrequencyEntry is one dish aggregated across a user's order history.
// Count is quantity-weighted; Calories is per unit and may be unknown.
type DishFrequencyEntry struct {
	Name       string   `json:"name"`
	Count      int      `json:"count"`
	Calories   *float64 `json:"calories,omitempty"`
	Restaurant string   `json:"restaurant,omitempty"`
}

// DailyScore is the adjusted health index for a single day with orders.
type DailyScore struct {
	Date  time.Time `json:"date"`
	Index int       `json:"index"`
}

// Narrative is the advisory block produced by the qualitative oracle.
// It never influences the computed index; a response that fails contract
// validation is discarded and the report ships with an empty narrative.
type Narrative struct {
	OneLiner         string          `json:"one_liner"`
	EatMoreOf        []EatMoreOfItem `json:"eat_more_of"`
	Lacking          []string        `json:"lacking"`
	MonthlyNarrative string          `json:"monthly_narrative"`
}

// EatMoreOfItem is a food category the user actually orders a lot of,
// flagged healthy or not.
type EatMoreOfItem struct {
	Item      string `json:"item"`
	IsHealthy bool   `json:"is_healthy"`
}

// HealthReport is the deterministic scoring output plus the optional
// narrative block.
type HealthReport struct {
	HealthIndex       int                                 `json:"health_index"` // clamped to [0,100]
	CategoryBreakdown map[constants.NutriCategory]float64 `json:"category_breakdown"`
	DailyScores       []DailyScore                        `json:"daily_scores"`
	Narrative         *Narrative                          `json:"narrative,omitempty"`
}
