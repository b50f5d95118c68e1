package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/code-forcer/reitsbackend/internal/model"
	"github.com/code-forcer/reitsbackend/pkg/llm"
)

// NewsSource labels every generated news item.
const NewsSource = "AI Market Analysis"

const recentForNews = 5

type QuoteFetcher interface {
	FetchAll(ctx context.Context, symbols []string) []model.REIT
}

type InsightBatcher interface {
	BatchAnalyze(ctx context.Context, snaps []llm.REITSnapshot) map[string]string
}

type NewsDrafter interface {
	GenerateNews(ctx context.Context, snaps []llm.REITSnapshot) (*llm.NewsDraft, error)
}

type REITStore interface {
	Upsert(reit *model.REIT) error
	GetRecent(limit int) ([]model.REIT, error)
}

type NewsStore interface {
	Save(news *model.News) error
}

type Rand interface {
	Intn(n int) int
}

// Service sequences the two pipeline procedures. They share no mutable
// state and may run concurrently: data refresh writes REIT rows, news
// generation reads them and appends news rows.
type Service struct {
	fetcher  QuoteFetcher
	analyzer InsightBatcher
	drafter  NewsDrafter
	reits    REITStore
	news     NewsStore
	tickers  []string
	rng      Rand
	now      func() time.Time
}

func New(fetcher QuoteFetcher, analyzer InsightBatcher, drafter NewsDrafter,
	reits REITStore, news NewsStore, tickers []string, rng Rand) *Service {
	return &Service{
		fetcher:  fetcher,
		analyzer: analyzer,
		drafter:  drafter,
		reits:    reits,
		news:     news,
		tickers:  tickers,
		rng:      rng,
		now:      time.Now,
	}
}

type RefreshResult struct {
	Fetched        int
	Upserted       int
	UpsertFailures int
}

// RefreshData runs one data-refresh cycle: fetch every configured ticker,
// generate insights over the fetched set, then upsert each record with its
// insight (empty string when the ticker is absent from the insight map) and
// a fresh timestamp. Upsert failures are counted, logged and skipped; the
// cycle continues for the remaining records.
func (s *Service) RefreshData(ctx context.Context) (RefreshResult, error) {
	records := s.fetcher.FetchAll(ctx, s.tickers)

	insights := s.analyzer.BatchAnalyze(ctx, snapshots(records))

	now := s.now()
	result := RefreshResult{Fetched: len(records)}

	for i := range records {
		record := &records[i]
		record.AIInsights = insights[record.Ticker]
		record.LastUpdated = now

		if err := s.reits.Upsert(record); err != nil {
			slog.Error("error upserting reit", "ticker", record.Ticker, "error", err)
			result.UpsertFailures++
			continue
		}
		result.Upserted++
	}

	return result, nil
}

// GenerateNews runs one news cycle: read the most recently updated records,
// draft one item, persist it. A provider call failure yields no item and
// nothing is persisted; a parse failure inside the drafter still yields the
// fixed fallback draft, which is persisted like any other.
func (s *Service) GenerateNews(ctx context.Context) (*model.News, error) {
	recent, err := s.reits.GetRecent(recentForNews)
	if err != nil {
		return nil, fmt.Errorf("loading recent records: %w", err)
	}

	draft, err := s.drafter.GenerateNews(ctx, snapshots(recent))
	if err != nil {
		return nil, err
	}

	tickers := make([]string, 0, len(recent))
	for _, r := range recent {
		tickers = append(tickers, r.Ticker)
	}

	item := &model.News{
		Title:          draft.Title,
		Summary:        draft.Summary,
		Source:         NewsSource,
		Category:       draft.Category,
		Impact:         draft.Impact,
		PublishedAt:    s.now(),
		ReadTime:       fmt.Sprintf("%d min read", 3+s.rng.Intn(4)),
		RelatedTickers: tickers,
		IsActive:       true,
	}

	if err := s.news.Save(item); err != nil {
		return nil, fmt.Errorf("saving news: %w", err)
	}

	return item, nil
}

func snapshots(records []model.REIT) []llm.REITSnapshot {
	snaps := make([]llm.REITSnapshot, len(records))
	for i, r := range records {
		snaps[i] = llm.REITSnapshot{
			Ticker:        r.Ticker,
			Name:          r.Name,
			Price:         r.Price,
			ChangePercent: r.ChangePercent,
			Yield:         r.Yield,
			MarketCap:     r.MarketCap,
			PERatio:       r.PERatio,
			Sector:        r.Sector,
		}
	}
	return snaps
}
