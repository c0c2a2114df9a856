package repository

import (
	"context"
	"log/slog"

	"github.com/mealtrace/mealtrace/gen/ent"
	entcache "github.com/mealtrace/mealtrace/gen/ent/caloriecache"
	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/nutrition"
)

// calorieCacheRepository implements nutrition.CacheStore over the
// append-only calorie_cache table. Reads take the oldest match so that
// concurrent duplicate inserts still resolve deterministically.
type calorieCacheRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCalorieCacheRepository(client *ent.Client, logger *slog.Logger) nutrition.CacheStore {
	return &calorieCacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *calorieCacheRepository) Find(ctx context.Context, dishName, restaurantName string) (*entity.CacheEntry, error) {
	base := r.client.CalorieCache.Query().
		Where(entcache.DishNameContainsFold(dishName))

	if restaurantName != "" {
		row, err := base.Clone().
			Where(entcache.RestaurantNameContainsFold(restaurantName)).
			Order(entcache.ByCreatedAt(), entcache.ByID()).
			First(ctx)
		if err == nil {
			return toCacheEntry(row), nil
		}
		if !ent.IsNotFound(err) {
			return nil, err
		}
	}

	row, err := base.
		Order(entcache.ByCreatedAt(), entcache.ByID()).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toCacheEntry(row), nil
}

func (r *calorieCacheRepository) Append(ctx context.Context, entry entity.CacheEntry) error {
	create := r.client.CalorieCache.Create().
		SetDishName(entry.DishName).
		SetCalories(entry.Calories).
		SetIsEstimated(entry.IsEstimated)
	if entry.RestaurantName != "" {
		create = create.SetRestaurantName(entry.RestaurantName)
	}
	if entry.SourceURL != nil {
		create = create.SetSourceURL(*entry.SourceURL)
	}

	if _, err := create.Save(ctx); err != nil {
		r.logger.Error("failed to append calorie cache row",
			"dish", entry.DishName, "error", err)
		return err
	}
	r.logger.Debug("calorie cache row appended",
		"dish", entry.DishName,
		"calories", entry.Calories,
		"estimated", entry.IsEstimated,
	)
	return nil
}

func toCacheEntry(row *ent.CalorieCache) *entity.CacheEntry {
	return &entity.CacheEntry{
		DishName:       row.DishName,
		RestaurantName: row.RestaurantName,
		Calories:       row.Calories,
		SourceURL:      row.SourceURL,
		IsEstimated:    row.IsEstimated,
		CreatedAt:      row.CreatedAt,
	}
}
