// Package health classifies dishes into nutrition categories and computes
// the deterministic health index over a dish-frequency history.
package health

import "github.com/mealtrace/mealtrace/constants"

// Classification tables are immutable configuration, loaded once and safe
// to share across concurrent calls.

// healthyPrepKeywords force category A regardless of any other match.
var healthyPrepKeywords = []string{
	"grilled",
	"steamed",
	"boiled",
	"baked",
	"tandoori",
	"salad",
	"soup",
}

// categoryEKeywords cover desserts, sugared beverages and confections.
var categoryEKeywords = []string{
	"gulab jamun",
	"jalebi",
	"rasgulla",
	"rasmalai",
	"laddu",
	"ladoo",
	"barfi",
	"halwa",
	"kheer",
	"ice cream",
	"icecream",
	"kulfi",
	"cake",
	"pastry",
	"brownie",
	"donut",
	"doughnut",
	"milkshake",
	"shake",
	"sundae",
	"cola",
	"soda",
	"sweet",
}

// categoryDKeywords cover fried and deep-fried preparations.
var categoryDKeywords = []string{
	"fried",
	"fries",
	"pakora",
	"pakoda",
	"bhajiya",
	"samosa",
	"kachori",
	"vada",
	"wada",
	"bhatura",
	"chips",
	"cutlet",
	"nuggets",
	"wings",
}

// categoryAKeywords cover whole grains, legumes and lean staples.
var categoryAKeywords = []string{
	"dal",
	"daal",
	"lentil",
	"sprout",
	"khichdi",
	"oats",
	"millet",
	"ragi",
	"quinoa",
	"brown rice",
	"idli",
	"upma",
	"poha",
}

// categoryBKeywords cover lean proteins, common curries and balanced mains.
var categoryBKeywords = []string{
	"chicken",
	"egg",
	"fish",
	"prawn",
	"paneer",
	"tofu",
	"curry",
	"tikka",
	"kebab",
	"kabab",
	"sabzi",
	"thali",
	"dosa",
	"roti",
	"chapati",
}

// categoryCKeywords cover cream-based, refined-carb and moderately
// indulgent items.
var categoryCKeywords = []string{
	"naan",
	"butter",
	"malai",
	"cream",
	"cheese",
	"makhani",
	"biryani",
	"pulao",
	"noodles",
	"pasta",
	"pizza",
	"burger",
	"roll",
	"wrap",
	"paratha",
	"white rice",
	"momos",
}

// restaurantFloors clamp the best possible category for known chains.
// Floors only worsen a classification, never improve it.
var restaurantFloors = []struct {
	Keyword string
	Floor   constants.NutriCategory
}{
	{"pizza hut", constants.CategoryC},
	{"domino", constants.CategoryC},
	{"pizza", constants.CategoryC},
	{"mcdonald", constants.CategoryC},
	{"burger king", constants.CategoryC},
	{"kfc", constants.CategoryD},
	{"popeyes", constants.CategoryD},
	{"fried chicken", constants.CategoryD},
	{"baskin", constants.CategoryE},
	{"cream stone", constants.CategoryE},
	{"ice cream", constants.CategoryE},
	{"dessert", constants.CategoryE},
	{"cake", constants.CategoryE},
}
