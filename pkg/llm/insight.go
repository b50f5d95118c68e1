package llm

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Analyzer produces per-record commentary, batching provider calls in small
// concurrent groups with inter-group pacing.
type Analyzer struct {
	provider  Provider
	groupSize int
	pause     time.Duration
}

func NewAnalyzer(provider Provider) *Analyzer {
	return &Analyzer{
		provider:  provider,
		groupSize: 3,
		pause:     2 * time.Second,
	}
}

// AnalyzeREIT makes one provider call for one record. On any provider error
// it returns InsightFallback instead of propagating the failure.
func (a *Analyzer) AnalyzeREIT(ctx context.Context, snap REITSnapshot) string {
	text, err := a.provider.Generate(ctx, insightPrompt(snap))
	if err != nil {
		slog.Error("error generating insight", "provider", a.provider.Name(), "ticker", snap.Ticker, "error", err)
		return InsightFallback
	}
	return strings.TrimSpace(text)
}

// BatchAnalyze runs records in groups of three: concurrent within a group,
// sequential across groups, pausing between groups but not after the last.
// A failure for one record never poisons its group; every input ticker
// appears in the result exactly once.
func (a *Analyzer) BatchAnalyze(ctx context.Context, snaps []REITSnapshot) map[string]string {
	insights := make(map[string]string, len(snaps))
	var mu sync.Mutex

	for start := 0; start < len(snaps); start += a.groupSize {
		end := min(start+a.groupSize, len(snaps))

		var wg sync.WaitGroup
		for _, snap := range snaps[start:end] {
			wg.Add(1)
			go func(snap REITSnapshot) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						slog.Error("insight worker panic", "ticker", snap.Ticker, "panic", r)
						mu.Lock()
						insights[snap.Ticker] = AnalysisFallback
						mu.Unlock()
					}
				}()

				text := a.AnalyzeREIT(ctx, snap)

				mu.Lock()
				insights[snap.Ticker] = text
				mu.Unlock()
			}(snap)
		}
		wg.Wait()

		if end < len(snaps) && a.pause > 0 {
			time.Sleep(a.pause)
		}
	}

	return insights
}
