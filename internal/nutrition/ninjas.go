package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mealtrace/mealtrace/internal/entity"
)

const ninjasSourceURL = "https://api-ninjas.com/api/nutrition"

// NinjasSource looks up verified nutrition data from the API Ninjas
// nutrition endpoint. Multi-item responses sum their calorie fields.
type NinjasSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewNinjasSource(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *NinjasSource {
	if baseURL == "" {
		baseURL = "https://api.api-ninjas.com/v1/nutrition"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NinjasSource{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

func (s *NinjasSource) Name() string { return "api_ninjas" }

func (s *NinjasSource) Lookup(ctx context.Context, dishName, _ string) (*entity.NutritionFact, error) {
	if s.apiKey == "" {
		return nil, nil
	}

	endpoint := s.baseURL + "?query=" + url.QueryEscape(dishName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api ninjas request: %w", err)
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			s.log.Warn("api ninjas response body close error", "error", cErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api ninjas status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read api ninjas response: %w", err)
	}

	var items []struct {
		Calories float64 `json:"calories"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode api ninjas response: %w", err)
	}

	var total float64
	for _, item := range items {
		total += item.Calories
	}
	if total <= 0 {
		return nil, nil
	}

	s.log.Info("nutrition.ninjas.hit",
		"dish", dishName,
		"calories", total,
	)
	src := ninjasSourceURL
	return &entity.NutritionFact{
		Calories:    &total,
		IsEstimated: false,
		SourceURL:   &src,
	}, nil
}

var _ Source = (*NinjasSource)(nil)
