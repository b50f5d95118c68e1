package model

import "time"

const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"

	SectorMixed   = "Mixed"
	SectorUnknown = "Unknown"
)

// REIT is one stored record per ticker. Writes are full-row upserts keyed
// on Ticker, so identity never changes, only fields.
type REIT struct {
	Ticker              string
	Name                string
	Price               float64
	Change              float64
	ChangePercent       float64
	Yield               float64 // percent
	MarketCap           float64 // billions USD
	Sector              string
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
	OccupancyRate       float64 // percent, synthetic
	RevenuePerShare     float64
	AIInsights          string
	Rating              float64 // clamped to [1.0, 5.0]
	Trending            string
	LastUpdated         time.Time
}
