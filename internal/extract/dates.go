package extract

import (
	"regexp"
	"strings"
	"time"
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}[\s/-][A-Za-z]{3,9}[\s/-]\d{2,4})`), // 12 Jan 2026, 12-Jan-2026
	regexp.MustCompile(`([A-Za-z]{3,9}\s+\d{1,2},?\s*\d{4})`),       // January 12, 2026
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4})`),                 // 12/01/2026
}

var dateLayouts = []string{
	"2 Jan 2006",
	"2-Jan-2006",
	"January 2, 2006",
	"January 2 2006",
	"02/01/2006",
	"01/02/2006",
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM))`),
	regexp.MustCompile(`(?i)(?:ordered?\s*at|time)[:\s]*(\d{1,2}:\d{2}\s*(?:AM|PM))`),
	regexp.MustCompile(`(\d{1,2}:\d{2})\s*(?:hrs|hours)`),
}

var timeLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"15:04",
}

// parseOrderDate scans free text for a date and, separately, a clock time.
// A zero return means no date was found. Dates without a discoverable time
// stay at midnight, which downstream treats as time-unknown.
func parseOrderDate(text string) time.Time {
	var orderDate time.Time
	for _, p := range datePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(m[1])); err == nil {
				orderDate = t
				break
			}
		}
		if !orderDate.IsZero() {
			break
		}
	}

	for _, p := range timePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ToUpper(strings.TrimSpace(m[1]))
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				if !orderDate.IsZero() {
					orderDate = time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(),
						t.Hour(), t.Minute(), 0, 0, orderDate.Location())
				}
				break
			}
		}
		break
	}

	return orderDate
}

// mergeClock applies an "HH:MM" string onto a date, leaving the date
// untouched when the clock does not parse.
func mergeClock(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
