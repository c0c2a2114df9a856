package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/llm"
)

const maxPromptBodyChars = 4000

// orderJSONSchema constrains the completion payload for an order email.
var orderJSONSchema = map[string]any{
	"type":     "object",
	"required": []any{"restaurant_name", "dishes"},
	"properties": map[string]any{
		"restaurant_name": map[string]any{"type": "string"},
		"order_date":      map[string]any{"type": []any{"string", "null"}},
		"order_time":      map[string]any{"type": []any{"string", "null"}},
		"total_price":     map[string]any{"type": []any{"number", "null"}},
		"dishes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name"},
				"properties": map[string]any{
					"name":     map[string]any{"type": "string"},
					"quantity": map[string]any{"type": []any{"integer", "null"}},
					"price":    map[string]any{"type": []any{"number", "null"}},
				},
			},
		},
	},
}

type oraclePayload struct {
	RestaurantName string   `json:"restaurant_name"`
	OrderDate      *string  `json:"order_date"`
	OrderTime      *string  `json:"order_time"`
	TotalPrice     *float64 `json:"total_price"`
	Dishes         []struct {
		Name     string   `json:"name"`
		Quantity *int     `json:"quantity"`
		Price    *float64 `json:"price"`
	} `json:"dishes"`
}

// oraclePass extracts an order via a text-completion oracle. It is the
// preferred pass when a Completer is configured.
type oraclePass struct {
	completer llm.Completer
	now       func() time.Time
	log       *slog.Logger
}

func (p *oraclePass) Name() string { return "oracle" }

func (p *oraclePass) Extract(ctx context.Context, msg entity.RawMessage) (*entity.CandidateOrder, error) {
	text := htmlToText(msg.Body)
	if len(text) > maxPromptBodyChars {
		text = text[:maxPromptBodyChars]
	}

	prompt := buildOrderPrompt(msg.Subject, text)
	raw, err := p.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("oracle completion: %w", err)
	}

	content := []byte(llm.StripCodeFence(raw))
	if err := llm.ValidateJSONAgainstSchema(orderJSONSchema, content); err != nil {
		return nil, fmt.Errorf("oracle payload: %w", err)
	}

	var payload oraclePayload
	if err := json.Unmarshal(content, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal oracle payload: %w", err)
	}
	if strings.TrimSpace(payload.RestaurantName) == "" || len(payload.Dishes) == 0 {
		return nil, fmt.Errorf("oracle payload missing restaurant or dishes")
	}

	orderedAt := p.now()
	orderedAt = time.Date(orderedAt.Year(), orderedAt.Month(), orderedAt.Day(), 0, 0, 0, 0, orderedAt.Location())
	if payload.OrderDate != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*payload.OrderDate)); err == nil {
			orderedAt = d
		}
	}
	if payload.OrderTime != nil {
		orderedAt = mergeClock(orderedAt, *payload.OrderTime)
	}

	out := &entity.CandidateOrder{
		RestaurantName: strings.TrimSpace(payload.RestaurantName),
		OrderedAt:      orderedAt,
		TotalPrice:     payload.TotalPrice,
	}
	for _, d := range payload.Dishes {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		qty := 1
		if d.Quantity != nil && *d.Quantity > 0 {
			qty = *d.Quantity
		}
		out.LineItems = append(out.LineItems, entity.LineItem{
			Name:      name,
			Quantity:  qty,
			UnitPrice: d.Price,
		})
	}
	if len(out.LineItems) == 0 {
		return nil, fmt.Errorf("oracle payload had no usable line items")
	}

	p.log.Debug("extract.oracle.ok",
		"message_id", msg.ID,
		"restaurant", out.RestaurantName,
		"line_items", len(out.LineItems),
	)
	return out, nil
}

func buildOrderPrompt(subject, text string) string {
	var b strings.Builder
	b.WriteString("Parse this food order email and extract the order details.\n\n")
	b.WriteString("Subject: ")
	b.WriteString(subject)
	b.WriteString("\n\nEmail content:\n")
	b.WriteString(text)
	b.WriteString(`

Extract and return as JSON with this exact structure:
{
    "restaurant_name": "Restaurant Name",
    "order_date": "YYYY-MM-DD",
    "order_time": "HH:MM (24-hour format, extract from email if available, null if not found)",
    "total_price": 450.00,
    "dishes": [
        {"name": "Dish Name", "quantity": 1, "price": 200.00},
        {"name": "Another Dish", "quantity": 2, "price": 125.00}
    ]
}

Rules:
- Only include actual food items, not delivery charges, taxes, or totals
- If quantity is not specified, assume 1
- For order_date, use null if not found
- Extract price for each dish item in INR (numbers only, no currency symbol)
- total_price should be the final bill amount (including taxes, delivery, etc.)
- If price is not visible for a dish, set it to null
- Return ONLY valid JSON, no other text`)
	return b.String()
}
