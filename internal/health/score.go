package health

import (
	"math"
	"sort"
	"time"

	"github.com/mealtrace/mealtrace/constants"
	"github.com/mealtrace/mealtrace/internal/entity"
)

const (
	lateNightPctThreshold = 20.0
	highCaloriesThreshold = 2500.0
	lateNightPenalty      = 5.0
	highCaloriesPenalty   = 5.0
	dailyLateNightPenalty = 10
	dailyCategoryEPenalty = 8
	dailyCategoryDPenalty = 5
	dailyHighRatioPenalty = 15
	dailyMidRatioPenalty  = 8
	dailyLowRatioBonus    = 5
)

// DishRef identifies a dish for classification within a day.
type DishRef struct {
	Name       string
	Restaurant string
}

// DayOrders summarizes one calendar day with at least one order.
type DayOrders struct {
	Date      time.Time
	Calories  float64
	LateNight bool // any order placed at hour >= 22 or < 5
	Dishes    []DishRef
}

// ComputeHealthIndex maps a dish-frequency history onto a bounded [0,100]
// index plus the count-weighted category breakdown. Pure function; an
// empty history yields a neutral index with an empty breakdown.
func ComputeHealthIndex(dishes []entity.DishFrequencyEntry, lateNightPct, avgDailyCalories float64) (int, map[constants.NutriCategory]float64) {
	breakdown := make(map[constants.NutriCategory]float64)

	var totalCount float64
	var weightedScore float64
	for _, dish := range dishes {
		if dish.Count <= 0 {
			continue
		}
		category := ClassifyDish(dish.Name, dish.Restaurant)
		count := float64(dish.Count)
		breakdown[category] += count
		weightedScore += category.RawScore() * count
		totalCount += count
	}
	if totalCount == 0 {
		return 50, breakdown
	}

	avgRawScore := weightedScore / totalCount
	index := 100 - ((avgRawScore + 15) * 100 / 55)

	if lateNightPct > lateNightPctThreshold {
		index -= lateNightPenalty
	}
	if avgDailyCalories > highCaloriesThreshold {
		index -= highCaloriesPenalty
	}

	return clampIndex(int(math.Round(index))), breakdown
}

// ComputeDailyScores derives per-day index adjustments from the period's
// base index. The calorie ratio compares each day against the mean across
// all given days; category penalties apply at most once per day, E before D.
func ComputeDailyScores(days []DayOrders, baseIndex int) []entity.DailyScore {
	if len(days) == 0 {
		return nil
	}

	var totalCalories float64
	for _, day := range days {
		totalCalories += day.Calories
	}
	avgCalories := totalCalories / float64(len(days))

	scores := make([]entity.DailyScore, 0, len(days))
	for _, day := range days {
		index := baseIndex

		if avgCalories > 0 {
			ratio := day.Calories / avgCalories
			switch {
			case ratio > 1.5:
				index -= dailyHighRatioPenalty
			case ratio > 1.2:
				index -= dailyMidRatioPenalty
			case ratio < 0.8:
				index += dailyLowRatioBonus
			}
		}

		if day.LateNight {
			index -= dailyLateNightPenalty
		}

		if hasCategory(day.Dishes, constants.CategoryE) {
			index -= dailyCategoryEPenalty
		} else if hasCategory(day.Dishes, constants.CategoryD) {
			index -= dailyCategoryDPenalty
		}

		scores = append(scores, entity.DailyScore{
			Date:  day.Date,
			Index: clampIndex(index),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Date.Before(scores[j].Date)
	})
	return scores
}

func hasCategory(dishes []DishRef, want constants.NutriCategory) bool {
	for _, dish := range dishes {
		if ClassifyDish(dish.Name, dish.Restaurant) == want {
			return true
		}
	}
	return false
}

func clampIndex(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
