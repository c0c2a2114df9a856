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

// WebSearchSource mines search engine results for calorie figures. The
// answer box is checked first, then the top organic results.
type WebSearchSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

const maxOrganicResults = 3

func NewWebSearchSource(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *WebSearchSource {
	if baseURL == "" {
		baseURL = "https://serpapi.com/search"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSearchSource{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

func (s *WebSearchSource) Name() string { return "web_search" }

func (s *WebSearchSource) Lookup(ctx context.Context, dishName, restaurantName string) (*entity.NutritionFact, error) {
	if s.apiKey == "" {
		return nil, nil
	}

	query := dishName + " calories"
	if restaurantName != "" {
		query = dishName + " " + restaurantName + " calories"
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", s.apiKey)
	params.Set("engine", "google")
	params.Set("num", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request: %w", err)
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			s.log.Warn("web search response body close error", "error", cErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web search status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read web search response: %w", err)
	}

	var payload struct {
		AnswerBox *struct {
			Answer string `json:"answer"`
			Link   string `json:"link"`
		} `json:"answer_box"`
		OrganicResults []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"organic_results"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode web search response: %w", err)
	}

	if payload.AnswerBox != nil && payload.AnswerBox.Answer != "" {
		if cal, ok := extractCalorieNumber(payload.AnswerBox.Answer); ok {
			return s.fact(dishName, cal, payload.AnswerBox.Link), nil
		}
	}

	for i, result := range payload.OrganicResults {
		if i >= maxOrganicResults {
			break
		}
		if cal, ok := extractCalorieNumber(result.Title + " " + result.Snippet); ok {
			return s.fact(dishName, cal, result.Link), nil
		}
	}

	return nil, nil
}

func (s *WebSearchSource) fact(dishName string, calories float64, link string) *entity.NutritionFact {
	s.log.Info("nutrition.websearch.hit",
		"dish", dishName,
		"calories", calories,
		"url", link,
	)
	fact := &entity.NutritionFact{
		Calories:    &calories,
		IsEstimated: false,
	}
	if link != "" {
		fact.SourceURL = &link
	}
	return fact
}

var _ Source = (*WebSearchSource)(nil)
