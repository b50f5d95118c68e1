package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// NewsGenerator fabricates one structured news item from recent records.
type NewsGenerator struct {
	provider Provider
}

func NewNewsGenerator(provider Provider) *NewsGenerator {
	return &NewsGenerator{provider: provider}
}

// GenerateNews makes one provider call. A call failure returns (nil, err):
// the caller must persist nothing. A response that cannot be parsed as the
// expected structure returns the fixed fallback draft instead.
func (g *NewsGenerator) GenerateNews(ctx context.Context, snaps []REITSnapshot) (*NewsDraft, error) {
	text, err := g.provider.Generate(ctx, newsPrompt(snaps))
	if err != nil {
		return nil, fmt.Errorf("news generation: %w", err)
	}

	content := cleanJSONResponse(text)

	var draft NewsDraft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		slog.Warn("unparseable news response, using fallback", "provider", g.provider.Name(), "error", err)
		return FallbackNewsDraft(), nil
	}

	draft.Impact = normalizeImpact(draft.Impact)
	return &draft, nil
}

func normalizeImpact(impact string) string {
	switch strings.ToLower(strings.TrimSpace(impact)) {
	case "positive":
		return "positive"
	case "negative":
		return "negative"
	default:
		return "neutral"
	}
}
