// Package nutrition resolves per-serving calorie counts for dishes through
// a cascade of sources, fronted by an append-only cache.
package nutrition

import (
	"context"

	"github.com/mealtrace/mealtrace/internal/entity"
)

// Source is one calorie data provider. A (nil, nil) return means the source
// had no answer; errors are treated the same way by the resolver.
type Source interface {
	Name() string
	Lookup(ctx context.Context, dishName, restaurantName string) (*entity.NutritionFact, error)
}

// CacheStore is the append-only calorie cache. Find returns the oldest
// matching entry or nil when nothing matches.
type CacheStore interface {
	Find(ctx context.Context, dishName, restaurantName string) (*entity.CacheEntry, error)
	Append(ctx context.Context, entry entity.CacheEntry) error
}
