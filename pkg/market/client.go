package market

import "context"

// Quote is the raw snapshot a provider returns for one symbol: live quote
// fields plus the extended fundamentals used to build a stored record.
type Quote struct {
	Symbol              string
	Name                string
	Price               float64
	Change              float64
	ChangePercent       float64
	DividendYield       float64 // percent
	MarketCap           float64 // billions USD
	PERatio             float64
	PriceToBook         float64
	Volume              int64
	AverageVolume       int64
	FiftyTwoWeekHigh    float64
	FiftyTwoWeekLow     float64
	Beta                float64
	DividendRate        float64
	PayoutRatio         float64
	FundsFromOperations float64
	TotalAssets         float64
	TotalDebt           float64
	RevenuePerShare     float64
}

type QuoteSource interface {
	FetchQuote(ctx context.Context, symbol string) (*Quote, error)
	Name() string
}

// Rand is the subset of math/rand the heuristics draw from. Injectable so
// tests can pin deterministic values.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
