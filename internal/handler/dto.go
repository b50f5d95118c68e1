package handler

import (
	"time"

	"github.com/code-forcer/reitsbackend/internal/model"
)

// Wire format mirrors the stored record, camelCased, timestamps RFC3339.
type REITResponse struct {
	Ticker              string   `json:"ticker"`
	Name                string   `json:"name"`
	Price               float64  `json:"price"`
	Change              float64  `json:"change"`
	ChangePercent       float64  `json:"changePercent"`
	Yield               float64  `json:"yield"`
	MarketCap           float64  `json:"marketCap"`
	Sector              string   `json:"sector"`
	PERatio             float64  `json:"peRatio"`
	PriceToBook         float64  `json:"priceToBook"`
	Volume              int64    `json:"volume"`
	AverageVolume       int64    `json:"averageVolume"`
	FiftyTwoWeekHigh    float64  `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow     float64  `json:"fiftyTwoWeekLow"`
	Beta                float64  `json:"beta"`
	DividendRate        float64  `json:"dividendRate"`
	PayoutRatio         float64  `json:"payoutRatio"`
	FundsFromOperations float64  `json:"fundsFromOperations"`
	TotalAssets         float64  `json:"totalAssets"`
	TotalDebt           float64  `json:"totalDebt"`
	OccupancyRate       float64  `json:"occupancyRate"`
	RevenuePerShare     float64  `json:"revenuePerShare"`
	AIInsights          string   `json:"aiInsights"`
	Rating              float64  `json:"rating"`
	Trending            string   `json:"trending"`
	LastUpdated         string   `json:"lastUpdated"`
}

type NewsResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	Source         string   `json:"source"`
	Category       string   `json:"category"`
	Impact         string   `json:"impact"`
	PublishedAt    string   `json:"publishedAt"`
	ReadTime       string   `json:"readTime"`
	RelatedTickers []string `json:"relatedTickers"`
	URL            string   `json:"url"`
	IsActive       bool     `json:"isActive"`
}

func toREITResponse(r model.REIT) REITResponse {
	return REITResponse{
		Ticker:              r.Ticker,
		Name:                r.Name,
		Price:               r.Price,
		Change:              r.Change,
		ChangePercent:       r.ChangePercent,
		Yield:               r.Yield,
		MarketCap:           r.MarketCap,
		Sector:              r.Sector,
		PERatio:             r.PERatio,
		PriceToBook:         r.PriceToBook,
		Volume:              r.Volume,
		AverageVolume:       r.AverageVolume,
		FiftyTwoWeekHigh:    r.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:     r.FiftyTwoWeekLow,
		Beta:                r.Beta,
		DividendRate:        r.DividendRate,
		PayoutRatio:         r.PayoutRatio,
		FundsFromOperations: r.FundsFromOperations,
		TotalAssets:         r.TotalAssets,
		TotalDebt:           r.TotalDebt,
		OccupancyRate:       r.OccupancyRate,
		RevenuePerShare:     r.RevenuePerShare,
		AIInsights:          r.AIInsights,
		Rating:              r.Rating,
		Trending:            r.Trending,
		LastUpdated:         r.LastUpdated.Format(time.RFC3339),
	}
}

func toREITResponses(reits []model.REIT) []REITResponse {
	res := make([]REITResponse, len(reits))
	for i, r := range reits {
		res[i] = toREITResponse(r)
	}
	return res
}

func toNewsResponse(n model.News) NewsResponse {
	return NewsResponse{
		ID:             n.ID,
		Title:          n.Title,
		Summary:        n.Summary,
		Source:         n.Source,
		Category:       n.Category,
		Impact:         n.Impact,
		PublishedAt:    n.PublishedAt.Format(time.RFC3339),
		ReadTime:       n.ReadTime,
		RelatedTickers: n.RelatedTickers,
		URL:            n.URL,
		IsActive:       n.IsActive,
	}
}
