package health

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/llm"
)

const (
	maxSummaryDishes = 30
	maxTopDishes     = 5
	maxOneLinerLen   = 100
)

var narrativeJSONSchema = map[string]any{
	"type":     "object",
	"required": []any{"one_liner", "eat_more_of", "lacking", "monthly_narrative"},
	"properties": map[string]any{
		"one_liner": map[string]any{"type": "string"},
		"eat_more_of": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"item", "is_healthy"},
				"properties": map[string]any{
					"item":       map[string]any{"type": "string"},
					"is_healthy": map[string]any{"type": "boolean"},
				},
			},
		},
		"lacking":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"monthly_narrative": map[string]any{"type": "string"},
	},
}

// NarrativeInput is the aggregate context handed to the qualitative oracle.
type NarrativeInput struct {
	Dishes           []entity.DishFrequencyEntry
	TotalOrders      int
	TotalMonths      int
	AvgDailyCalories float64
	TopDishes        []string
}

// Narrator asks the text-completion oracle for advisory commentary on the
// ordering history. Its output is never allowed to alter the computed
// health index; any contract violation degrades to a nil narrative.
type Narrator struct {
	completer llm.Completer
	log       *slog.Logger
}

func NewNarrator(completer llm.Completer, logger *slog.Logger) *Narrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Narrator{completer: completer, log: logger}
}

// Generate returns nil (without error) when the oracle is unconfigured,
// the history is empty, or the response fails validation.
func (n *Narrator) Generate(ctx context.Context, input NarrativeInput) *entity.Narrative {
	if n.completer == nil || len(input.Dishes) == 0 {
		return nil
	}

	raw, err := n.completer.Complete(ctx, buildNarrativePrompt(input))
	if err != nil {
		n.log.Warn("health.narrative.oracle_error", "error", err)
		return nil
	}

	content := []byte(llm.StripCodeFence(raw))
	if err := llm.ValidateJSONAgainstSchema(narrativeJSONSchema, content); err != nil {
		n.log.Warn("health.narrative.invalid_payload", "error", err)
		return nil
	}

	var narrative entity.Narrative
	if err := json.Unmarshal(content, &narrative); err != nil {
		n.log.Warn("health.narrative.unmarshal_error", "error", err)
		return nil
	}
	if len(narrative.OneLiner) > maxOneLinerLen {
		narrative.OneLiner = narrative.OneLiner[:maxOneLinerLen]
	}

	n.log.Info("health.narrative.ok",
		"eat_more_of", len(narrative.EatMoreOf),
		"lacking", len(narrative.Lacking),
	)
	return &narrative
}

func buildNarrativePrompt(input NarrativeInput) string {
	topDishes := "No data"
	if len(input.TopDishes) > 0 {
		top := input.TopDishes
		if len(top) > maxTopDishes {
			top = top[:maxTopDishes]
		}
		topDishes = strings.Join(top, ", ")
	}

	var b strings.Builder
	b.WriteString("You are a nutritionist analyzing someone's food delivery ordering patterns from an Indian food delivery app.\n\n")
	fmt.Fprintf(&b, "DATA SUMMARY:\n- Total orders: %d over %d months\n- Average calories on order days: %.0f kcal\n- Top ordered dishes: %s\n\n",
		input.TotalOrders, input.TotalMonths, input.AvgDailyCalories, topDishes)
	b.WriteString("DISH FREQUENCY DATA:\n")
	b.WriteString(formatDishSummary(input.Dishes))
	b.WriteString(`

Analyze these ordering patterns and provide health insights in this exact JSON format:

{
  "one_liner": "<Single impactful sentence about their diet, max 80 chars>",
  "eat_more_of": [
    {"item": "<food category they frequently order>", "is_healthy": true},
    {"item": "<food category they frequently order>", "is_healthy": false}
  ],
  "lacking": ["<nutrient/food type 1>", "<nutrient/food type 2>", "<nutrient/food type 3>"],
  "monthly_narrative": "<2-3 sentence detailed analysis of their eating habits>"
}

IMPORTANT: "eat_more_of" MUST list what the user ACTUALLY orders frequently (based on the dish data above):
- This is "What You Eat More Of": list food CATEGORIES they order a lot, both good and bad
- MUST include unhealthy items if they order them (fried foods, biryani, naan, desserts, etc.)
- Mark is_healthy=true for: Protein (dal, paneer, chicken, eggs), vegetables, salads, grilled items, whole grains
- Mark is_healthy=false for: Fried foods, biryani, refined carbs (naan, white rice), desserts, processed foods, high-calorie curries

For "lacking": List nutrients/food types they should ADD to their diet (things they DON'T order enough).

Be specific based on the actual dish data. Return ONLY valid JSON, no other text.`)
	return b.String()
}

func formatDishSummary(dishes []entity.DishFrequencyEntry) string {
	sorted := make([]entity.DishFrequencyEntry, len(dishes))
	copy(sorted, dishes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	if len(sorted) > maxSummaryDishes {
		sorted = sorted[:maxSummaryDishes]
	}

	var b strings.Builder
	for _, dish := range sorted {
		calories := 0.0
		if dish.Calories != nil {
			calories = *dish.Calories
		}
		fmt.Fprintf(&b, "- %s: ordered %dx, ~%.0f kcal each\n", dish.Name, dish.Count, calories)
	}
	if b.Len() == 0 {
		return "No dish data available"
	}
	return b.String()
}
