package health

import (
	"strings"

	"github.com/mealtrace/mealtrace/constants"
)

// ClassifyDish assigns a nutrition category to a dish name, optionally
// qualified by the restaurant it came from. Pure and deterministic: rules
// run in fixed priority order and the first match wins, then the
// restaurant floor clamps the result.
func ClassifyDish(name, restaurant string) constants.NutriCategory {
	category := classifyByKeywords(name)
	return applyRestaurantFloor(category, restaurant)
}

func classifyByKeywords(name string) constants.NutriCategory {
	lower := strings.ToLower(name)

	// Healthy preparation wins over everything, including sugar and fried
	// keywords appearing in the same name.
	if containsAny(lower, healthyPrepKeywords) {
		return constants.CategoryA
	}
	if containsAny(lower, categoryEKeywords) {
		return constants.CategoryE
	}
	if containsAny(lower, categoryDKeywords) {
		return constants.CategoryD
	}
	if containsAny(lower, categoryAKeywords) {
		return constants.CategoryA
	}
	if containsAny(lower, categoryBKeywords) {
		return constants.CategoryB
	}
	if containsAny(lower, categoryCKeywords) {
		return constants.CategoryC
	}
	return constants.CategoryC
}

func applyRestaurantFloor(category constants.NutriCategory, restaurant string) constants.NutriCategory {
	if restaurant == "" {
		return category
	}
	lower := strings.ToLower(restaurant)
	for _, floor := range restaurantFloors {
		if strings.Contains(lower, floor.Keyword) {
			return constants.WorseOf(category, floor.Floor)
		}
	}
	return category
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
