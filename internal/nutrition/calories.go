package nutrition

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	calorieRangeRe  = regexp.MustCompile(`(?i)(\d+(?:,\d+)?)\s*-\s*(\d+(?:,\d+)?)\s*(?:kcal|calories|cal)`)
	calorieSuffixRe = regexp.MustCompile(`(?i)(\d+(?:,\d+)?(?:\.\d+)?)\s*(?:kcal|calories|cal)`)
	caloriePrefixRe = regexp.MustCompile(`(?i)(?:calories|kcal)[:\s]*(\d+(?:,\d+)?(?:\.\d+)?)`)
	bareNumberRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// extractCalorieNumber pulls a calorie figure out of free text. Ranges
// resolve to their midpoint. Returns 0, false when no figure is present.
func extractCalorieNumber(text string) (float64, bool) {
	if m := calorieRangeRe.FindStringSubmatch(text); m != nil {
		low, err1 := parseCommaFloat(m[1])
		high, err2 := parseCommaFloat(m[2])
		if err1 == nil && err2 == nil {
			return (low + high) / 2, true
		}
	}
	if m := calorieSuffixRe.FindStringSubmatch(text); m != nil {
		if v, err := parseCommaFloat(m[1]); err == nil {
			return v, true
		}
	}
	if m := caloriePrefixRe.FindStringSubmatch(text); m != nil {
		if v, err := parseCommaFloat(m[1]); err == nil {
			return v, true
		}
	}
	return 0, false
}

func parseCommaFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
