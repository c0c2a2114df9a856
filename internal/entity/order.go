package entity

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is a single dish line on a candidate order, pre-normalization.
type LineItem struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"` // >= 1, defaults to 1 when unparsed
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// CandidateOrder is the extractor's output for a single message. A valid
// candidate always has a non-empty restaurant name and at least one line
// item; extraction passes that cannot produce both report failure instead.
//
// OrderedAt carries minute precision when the source message exposed a
// time. An exact-midnight timestamp is the "time unknown" sentinel and
// callers must treat it as such (see HasTime).
type CandidateOrder struct {
	RestaurantName string     `json:"restaurant_name"`
	OrderedAt      time.Time  `json:"ordered_at"`
	TotalPrice     *float64   `json:"total_price,omitempty"`
	LineItems      []LineItem `json:"line_items"`
}

// HasTime reports whether OrderedAt carries a known time of day.
func (c CandidateOrder) HasTime() bool {
	return c.OrderedAt.Hour() != 0 || c.OrderedAt.Minute() != 0
}

// Dish is a stored dish row for data transfer between layers.
type Dish struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   *float64  `json:"unit_price,omitempty"`
	Calories    *float64  `json:"calories,omitempty"` // quantity-weighted total
	IsEstimated bool      `json:"is_estimated"`
}

// Order is a stored order for data transfer between layers.
type Order struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	MessageID      string    `json:"message_id"`
	OrderedAt      time.Time `json:"ordered_at"`
	RestaurantName string    `json:"restaurant_name"`
	TotalCalories  *float64  `json:"total_calories,omitempty"`
	TotalPrice     *float64  `json:"total_price,omitempty"`
	HasEstimates   bool      `json:"has_estimates"`
	RawSubject     string    `json:"raw_subject,omitempty"`
	Dishes         []Dish    `json:"dishes"`
	CreatedAt      time.Time `json:"created_at"`
}
