package constants

// NutriCategory is the five-tier nutrition grade assigned to a dish,
// from A (best) to E (worst).
type NutriCategory string

const (
	CategoryA NutriCategory = "A"
	CategoryB NutriCategory = "B"
	CategoryC NutriCategory = "C"
	CategoryD NutriCategory = "D"
	CategoryE NutriCategory = "E"
)

var allCategories = []NutriCategory{
	CategoryA,
	CategoryB,
	CategoryC,
	CategoryD,
	CategoryE,
}

// rawScores maps each category to its fixed severity score. Lower is
// better; the aggregate index maps the count-weighted average of these
// onto [0,100].
var rawScores = map[NutriCategory]float64{
	CategoryA: -7,
	CategoryB: 3,
	CategoryC: 12,
	CategoryD: 25,
	CategoryE: 37,
}

var ranks = map[NutriCategory]int{
	CategoryA: 0,
	CategoryB: 1,
	CategoryC: 2,
	CategoryD: 3,
	CategoryE: 4,
}

// RawScore returns the category's severity score. Unknown values score as C.
func (c NutriCategory) RawScore() float64 {
	if s, ok := rawScores[c]; ok {
		return s
	}
	return rawScores[CategoryC]
}

// Rank returns the category's position in the A..E ordering (A=0).
func (c NutriCategory) Rank() int {
	if r, ok := ranks[c]; ok {
		return r
	}
	return ranks[CategoryC]
}

// WorseOf returns the worse of the two categories. Restaurant floors use
// this so a floor can only worsen, never improve, a keyword classification.
func WorseOf(a, b NutriCategory) NutriCategory {
	if a.Rank() >= b.Rank() {
		return a
	}
	return b
}

func AllNutriCategories() []NutriCategory {
	out := make([]NutriCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}
