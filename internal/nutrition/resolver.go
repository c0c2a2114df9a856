package nutrition

import (
	"context"
	"log/slog"
	"time"

	"github.com/mealtrace/mealtrace/internal/entity"
)

// Resolver runs the calorie cascade: cache, then each source in priority
// order. The first usable answer is cached (append-only) and returned.
// Exhaustion yields an unknown fact that is never cached.
type Resolver struct {
	cache   CacheStore
	sources []Source
	log     *slog.Logger
}

func NewResolver(cache CacheStore, sources []Source, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{cache: cache, sources: sources, log: logger}
}

// Resolve returns a fact for the dish. Source errors are logged and treated
// as misses so a flaky provider never fails the whole cascade.
func (r *Resolver) Resolve(ctx context.Context, dishName, restaurantName string) entity.NutritionFact {
	if r.cache != nil {
		entry, err := r.cache.Find(ctx, dishName, restaurantName)
		if err != nil {
			r.log.Warn("nutrition.cache.lookup_error",
				"dish", dishName, "error", err)
		} else if entry != nil {
			r.log.Debug("nutrition.cache.hit",
				"dish", dishName, "calories", entry.Calories)
			return entry.Fact()
		}
	}

	for _, source := range r.sources {
		fact, err := source.Lookup(ctx, dishName, restaurantName)
		if err != nil {
			r.log.Warn("nutrition.source.error",
				"dish", dishName,
				"source", source.Name(),
				"error", err,
			)
			continue
		}
		if fact == nil || fact.Calories == nil {
			continue
		}

		r.writeThrough(ctx, dishName, restaurantName, *fact)
		return *fact
	}

	r.log.Info("nutrition.unresolved", "dish", dishName, "restaurant", restaurantName)
	return entity.NutritionFact{Calories: nil, IsEstimated: true, SourceURL: nil}
}

func (r *Resolver) writeThrough(ctx context.Context, dishName, restaurantName string, fact entity.NutritionFact) {
	if r.cache == nil {
		return
	}
	entry := entity.CacheEntry{
		DishName:       dishName,
		RestaurantName: restaurantName,
		Calories:       *fact.Calories,
		IsEstimated:    fact.IsEstimated,
		CreatedAt:      time.Now(),
	}
	if fact.SourceURL != nil {
		entry.SourceURL = fact.SourceURL
	}
	if err := r.cache.Append(ctx, entry); err != nil {
		r.log.Warn("nutrition.cache.append_error",
			"dish", dishName, "error", err)
	}
}
