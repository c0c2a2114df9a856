package nutrition

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mealtrace/mealtrace/internal/entity"
	"github.com/mealtrace/mealtrace/internal/llm"
)

const (
	minPlausibleCalories = 50
	maxPlausibleCalories = 2000
)

// EstimateSource asks a text-completion oracle for a per-serving estimate.
// Results are always flagged estimated and carry no source URL. Estimates
// outside the plausible band are discarded.
type EstimateSource struct {
	completer llm.Completer
	log       *slog.Logger
}

func NewEstimateSource(completer llm.Completer, logger *slog.Logger) *EstimateSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &EstimateSource{completer: completer, log: logger}
}

func (s *EstimateSource) Name() string { return "oracle_estimate" }

func (s *EstimateSource) Lookup(ctx context.Context, dishName, restaurantName string) (*entity.NutritionFact, error) {
	if s.completer == nil {
		return nil, nil
	}

	raw, err := s.completer.Complete(ctx, buildEstimatePrompt(dishName, restaurantName))
	if err != nil {
		return nil, err
	}

	m := bareNumberRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, nil
	}
	calories, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, nil
	}
	if calories < minPlausibleCalories || calories > maxPlausibleCalories {
		s.log.Warn("nutrition.estimate.out_of_band",
			"dish", dishName,
			"calories", calories,
		)
		return nil, nil
	}

	s.log.Info("nutrition.estimate.ok",
		"dish", dishName,
		"calories", calories,
	)
	return &entity.NutritionFact{
		Calories:    &calories,
		IsEstimated: true,
	}, nil
}

func buildEstimatePrompt(dishName, restaurantName string) string {
	var b strings.Builder
	b.WriteString("Estimate the calories for this dish")
	if restaurantName != "" {
		b.WriteString(" from ")
		b.WriteString(restaurantName)
	}
	b.WriteString(`: "`)
	b.WriteString(dishName)
	b.WriteString(`"

IMPORTANT: Be accurate and realistic. Do NOT overestimate.

Consider:
- Standard single serving portion
- Actual nutritional data for common dishes
- A plain dosa is ~120-150 kcal, masala dosa ~250 kcal
- Don't inflate numbers, accuracy matters for health tracking

Respond with ONLY a number representing calories per serving.
No text, units, or explanation, just the number.

Reference values (be consistent with these):
- "Plain Dosa" -> 130
- "Masala Dosa" -> 250
- "Idli (2 pcs)" -> 120
- "Butter Chicken (1 serving)" -> 400
- "Chicken Biryani (1 plate)" -> 500
- "Veg Fried Rice" -> 350
- "Paneer Butter Masala" -> 380
- "Dal Tadka" -> 180
- "Naan" -> 260
- "Roti/Chapati" -> 100

Your estimate for "`)
	b.WriteString(dishName)
	b.WriteString(`":`)
	return b.String()
}

var _ Source = (*EstimateSource)(nil)
