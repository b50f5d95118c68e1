package market

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/code-forcer/reitsbackend/internal/model"
)

// DefaultTickers is the tracked REIT universe across sectors.
var DefaultTickers = []string{
	// High yield
	"OHI", "AGNC", "NRZ", "NYMT", "TWO", "MITT", "PMT", "ACRE",
	// Large cap
	"PLD", "AMT", "EQIX", "CCI", "SPG", "O", "WELL", "DLR",
	// Sector specific
	"VTR", "PEAK", "BXP", "ARE", "HST", "RHP", "MAC", "SKT",
}

// Fetcher assembles one normalized record per ticker from a quote source.
// A fetch failure for one ticker is isolated: it yields a zero-valued
// placeholder record instead of aborting the batch.
type Fetcher struct {
	source QuoteSource
	rng    Rand
	pause  time.Duration // post-fetch throttle for upstream rate limits
}

func NewFetcher(source QuoteSource, rng Rand) *Fetcher {
	return &Fetcher{
		source: source,
		rng:    rng,
		pause:  time.Second,
	}
}

// FetchAll walks symbols in order, one attempt each, no retry. Returns
// exactly one record per input symbol, in input order.
func (f *Fetcher) FetchAll(ctx context.Context, symbols []string) []model.REIT {
	records := make([]model.REIT, 0, len(symbols))

	for _, symbol := range symbols {
		quote, err := f.source.FetchQuote(ctx, symbol)
		if err != nil {
			slog.Error("error fetching quote", "source", f.source.Name(), "ticker", symbol, "error", err)
			records = append(records, placeholderRecord(symbol))
			continue
		}

		records = append(records, f.buildRecord(quote))

		if f.pause > 0 {
			time.Sleep(f.pause)
		}
	}

	return records
}

func (f *Fetcher) buildRecord(q *Quote) model.REIT {
	ticker := strings.ToUpper(q.Symbol)
	name := q.Name
	if name == "" {
		name = ticker
	}

	return model.REIT{
		Ticker:              ticker,
		Name:                name,
		Price:               q.Price,
		Change:              q.Change,
		ChangePercent:       q.ChangePercent,
		Yield:               q.DividendYield,
		MarketCap:           q.MarketCap,
		Sector:              ClassifySector(name),
		PERatio:             q.PERatio,
		PriceToBook:         q.PriceToBook,
		Volume:              q.Volume,
		AverageVolume:       q.AverageVolume,
		FiftyTwoWeekHigh:    q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:     q.FiftyTwoWeekLow,
		Beta:                q.Beta,
		DividendRate:        q.DividendRate,
		PayoutRatio:         q.PayoutRatio,
		FundsFromOperations: q.FundsFromOperations,
		TotalAssets:         q.TotalAssets,
		TotalDebt:           q.TotalDebt,
		OccupancyRate:       OccupancyRate(f.rng),
		RevenuePerShare:     q.RevenuePerShare,
		Rating:              Rating(q.DividendYield, q.ChangePercent, q.MarketCap, f.rng),
		Trending:            Trend(q.ChangePercent),
	}
}

func placeholderRecord(symbol string) model.REIT {
	ticker := strings.ToUpper(symbol)
	return model.REIT{
		Ticker:   ticker,
		Name:     ticker,
		Sector:   model.SectorUnknown,
		Trending: model.TrendNeutral,
	}
}
