package extract

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mealtrace/mealtrace/internal/entity"
)

var (
	subjectRestaurantRe = regexp.MustCompile(`(?i)order\s*from\s*([^|]+?)(?:\s*is|\s*has|\s*-|$)`)
	bodyRestaurantRe    = regexp.MustCompile(`(?i)(?:ordered?\s*from|restaurant)[:\s]*([A-Za-z0-9\s&'.-]+?)(?:\n|$|,)`)

	itemLineRe = regexp.MustCompile(`(?:(\d+)\s*x\s*)?([A-Za-z][A-Za-z\s&'.-]+?)(?:\s*x\s*(\d+)|\s*\((\d+)\))?(?:\s*[-–]\s*₹|\s*Rs\.?|\n|$)`)
	quantityRe = regexp.MustCompile(`(\d+)\s*x|x\s*(\d+)|\((\d+)\)`)

	rupeeAmountRe = regexp.MustCompile(`₹[\d,]+`)
	rsAmountRe    = regexp.MustCompile(`Rs\.?\s*[\d,]+`)
	qtySuffixRe   = regexp.MustCompile(`\s*x\s*\d+`)
	qtyParenRe    = regexp.MustCompile(`\(\d+\)`)

	headerOrTotalRes = []*regexp.Regexp{
		regexp.MustCompile(`^item`),
		regexp.MustCompile(`^qty`),
		regexp.MustCompile(`^quantity`),
		regexp.MustCompile(`^price`),
		regexp.MustCompile(`^total`),
		regexp.MustCompile(`^subtotal`),
		regexp.MustCompile(`^sub-total`),
		regexp.MustCompile(`^delivery`),
		regexp.MustCompile(`^discount`),
		regexp.MustCompile(`^tax`),
		regexp.MustCompile(`^gst`),
		regexp.MustCompile(`^charges`),
	}
)

// markupPass extracts an order by walking the HTML structure directly.
// It is the fallback when no oracle is configured or the oracle pass fails.
type markupPass struct {
	now func() time.Time
	log *slog.Logger
}

func (p *markupPass) Name() string { return "markup" }

func (p *markupPass) Extract(_ context.Context, msg entity.RawMessage) (*entity.CandidateOrder, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(msg.Body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	restaurant := extractRestaurantName(doc, msg.Subject)
	if restaurant == "" {
		return nil, fmt.Errorf("restaurant name not found")
	}

	items := extractLineItems(doc)
	if len(items) == 0 {
		return nil, fmt.Errorf("no line items found")
	}

	orderedAt := parseOrderDate(doc.Text())
	if orderedAt.IsZero() {
		now := p.now()
		orderedAt = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	p.log.Debug("extract.markup.ok",
		"message_id", msg.ID,
		"restaurant", restaurant,
		"line_items", len(items),
	)
	return &entity.CandidateOrder{
		RestaurantName: restaurant,
		OrderedAt:      orderedAt,
		LineItems:      items,
	}, nil
}

func extractRestaurantName(doc *goquery.Document, subject string) string {
	if m := subjectRestaurantRe.FindStringSubmatch(subject); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, selector := range []string{"[data-restaurant]", ".restaurant-name", "[class*='restaurant']"} {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}

	if m := bodyRestaurantRe.FindStringSubmatch(doc.Text()); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractLineItems(doc *goquery.Document) []entity.LineItem {
	var items []entity.LineItem

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		text := strings.TrimSpace(cells.First().Text())
		if len(text) <= 2 || isHeaderOrTotal(text) {
			return
		}
		items = append(items, entity.LineItem{
			Name:     cleanDishName(text),
			Quantity: extractQuantity(row.Text()),
		})
	})

	if len(items) == 0 {
		for _, m := range itemLineRe.FindAllStringSubmatch(doc.Text(), -1) {
			name := strings.TrimSpace(m[2])
			if len(name) <= 2 || isHeaderOrTotal(name) {
				continue
			}
			qty := 1
			for _, g := range []string{m[1], m[3], m[4]} {
				if g != "" {
					if n, err := strconv.Atoi(g); err == nil {
						qty = n
					}
					break
				}
			}
			items = append(items, entity.LineItem{
				Name:     cleanDishName(name),
				Quantity: qty,
			})
		}
	}

	return items
}

func isHeaderOrTotal(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, re := range headerOrTotalRes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func cleanDishName(name string) string {
	name = rupeeAmountRe.ReplaceAllString(name, "")
	name = rsAmountRe.ReplaceAllString(name, "")
	name = qtySuffixRe.ReplaceAllString(name, "")
	name = qtyParenRe.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}

func extractQuantity(text string) int {
	m := quantityRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 1
	}
	for _, g := range m[1:] {
		if g != "" {
			if n, err := strconv.Atoi(g); err == nil {
				return n
			}
		}
	}
	return 1
}
