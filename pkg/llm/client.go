package llm

import (
	"context"
	"strings"
)

// Fallback strings substituted for generated text when a provider fails.
const (
	InsightFallback  = "AI insights temporarily unavailable"
	AnalysisFallback = "Analysis unavailable"
)

// REITSnapshot carries the record fields embedded into prompts.
type REITSnapshot struct {
	Ticker        string
	Name          string
	Price         float64
	ChangePercent float64
	Yield         float64
	MarketCap     float64
	PERatio       float64
	Sector        string
}

// NewsDraft is the structured item parsed from a news-generation response.
type NewsDraft struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Impact   string `json:"impact"`
}

// FallbackNewsDraft is substituted when a provider response cannot be
// parsed. Distinct from a provider call failure, which yields no draft at
// all.
func FallbackNewsDraft() *NewsDraft {
	return &NewsDraft{
		Title:    "REIT Market Shows Mixed Performance",
		Summary:  "Real estate investment trusts continue to navigate changing market conditions with varied sector performance.",
		Category: "Market Update",
		Impact:   "neutral",
	}
}

// Provider is one generative-text backend.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
