package health

import (
	"testing"

	"github.com/mealtrace/mealtrace/constants"
)

func TestClassifyDishKeywordPriority(t *testing.T) {
	cases := []struct {
		name string
		dish string
		want constants.NutriCategory
	}{
		{"healthy prep beats fried keyword", "Grilled Fried Chicken Salad", constants.CategoryA},
		{"healthy prep beats dessert keyword", "Baked Cheese Cake", constants.CategoryA},
		{"tandoori is healthy prep", "Tandoori Chicken", constants.CategoryA},
		{"dessert", "Gulab Jamun", constants.CategoryE},
		{"sugared beverage", "Chocolate Milkshake", constants.CategoryE},
		{"fried preparation", "Chicken Fried Rice", constants.CategoryD},
		{"samosa is fried", "Punjabi Samosa", constants.CategoryD},
		{"legume staple", "Dal Tadka", constants.CategoryA},
		{"south indian staple", "Plain Idli", constants.CategoryA},
		{"lean protein", "Paneer Tikka", constants.CategoryB},
		{"common curry", "Egg Curry", constants.CategoryB},
		{"refined carb", "Butter Naan", constants.CategoryC},
		{"protein keyword beats biryani", "Chicken Biryani", constants.CategoryB},
		{"unknown defaults to C", "Mystery Special", constants.CategoryC},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyDish(c.dish, ""); got != c.want {
				t.Errorf("ClassifyDish(%q) = %v, want %v", c.dish, got, c.want)
			}
		})
	}
}

func TestClassifyDishRestaurantFloorOnlyWorsens(t *testing.T) {
	// Keyword classification alone gives A; the pizza chain floor drags it
	// down to C.
	if got := ClassifyDish("Grilled Veggie Supreme", "Pizza Hut"); got != constants.CategoryC {
		t.Errorf("pizza chain floor = %v, want C", got)
	}
	// A dish already worse than the floor keeps its category.
	if got := ClassifyDish("Gulab Jamun", "Pizza Hut"); got != constants.CategoryE {
		t.Errorf("floor improved category to %v, want E kept", got)
	}
	if got := ClassifyDish("Grilled Chicken", "KFC"); got != constants.CategoryD {
		t.Errorf("fried chicken chain floor = %v, want D", got)
	}
	if got := ClassifyDish("Fruit Bowl", "Baskin Robbins"); got != constants.CategoryE {
		t.Errorf("dessert chain floor = %v, want E", got)
	}
	// No floor for unknown restaurants.
	if got := ClassifyDish("Dal Tadka", "Local Dhaba"); got != constants.CategoryA {
		t.Errorf("unknown restaurant changed category to %v, want A", got)
	}
}

func TestClassifyDishIsDeterministic(t *testing.T) {
	first := ClassifyDish("Paneer Butter Masala", "Spice Villa")
	for i := 0; i < 5; i++ {
		if got := ClassifyDish("Paneer Butter Masala", "Spice Villa"); got != first {
			t.Fatal("classification not stable across calls")
		}
	}
}
