package market

import (
	"context"
	"strings"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubSource struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubSource(apiKey string) *FinnhubSource {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubSource{client: client}
}

func (s *FinnhubSource) Name() string {
	return "Finnhub"
}

// FetchQuote makes one attempt per call: a live quote, the company profile,
// and the basic-financials metric set. Any of the three failing fails the
// whole fetch; the caller substitutes a placeholder record.
func (s *FinnhubSource) FetchQuote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.ToUpper(symbol)

	quote, _, err := s.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, err
	}

	profile, _, err := s.client.CompanyProfile2(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, err
	}

	financials, _, err := s.client.CompanyBasicFinancials(ctx).Symbol(symbol).Metric("all").Execute()
	if err != nil {
		return nil, err
	}

	metric := financials.GetMetric()

	name := profile.GetName()
	if name == "" {
		name = symbol
	}

	marketCap := float64(profile.GetMarketCapitalization())
	if marketCap == 0 {
		marketCap = metricValue(metric, "marketCapitalization")
	}

	q := &Quote{
		Symbol:           symbol,
		Name:             name,
		Price:            float64(quote.GetC()),
		Change:           float64(quote.GetD()),
		ChangePercent:    float64(quote.GetDp()),
		DividendYield:    NormalizeYieldPercent(metricValue(metric, "currentDividendYieldTTM")),
		MarketCap:        marketCap / 1000, // Finnhub reports millions
		PERatio:          metricValue(metric, "peBasicExclExtraTTM"),
		PriceToBook:      metricValue(metric, "pbAnnual"),
		Volume:           int64(metricValue(metric, "10DayAverageTradingVolume") * 1e6),
		AverageVolume:    int64(metricValue(metric, "3MonthAverageTradingVolume") * 1e6),
		FiftyTwoWeekHigh: metricValue(metric, "52WeekHigh"),
		FiftyTwoWeekLow:  metricValue(metric, "52WeekLow"),
		Beta:             metricValue(metric, "beta"),
		DividendRate:     metricValue(metric, "dividendPerShareAnnual"),
		PayoutRatio:      metricValue(metric, "payoutRatioTTM"),
		TotalAssets:      metricValue(metric, "totalAssets"),
		TotalDebt:        metricValue(metric, "totalDebt"),
		RevenuePerShare:  metricValue(metric, "revenuePerShareTTM"),
	}

	// Operating cash flow per share scaled by shares outstanding stands in
	// for funds from operations, which the provider does not report.
	shares := float64(profile.GetShareOutstanding()) * 1e6
	q.FundsFromOperations = metricValue(metric, "cashFlowPerShareTTM") * shares

	return q, nil
}

func metricValue(metric map[string]interface{}, key string) float64 {
	if v, ok := metric[key].(float64); ok {
		return v
	}
	return 0
}

// NormalizeYieldPercent guards against the provider switching unit
// conventions: values at or below 1 are treated as fractions and scaled to
// percent, and the result is clamped to a plausible [0, 50] range.
func NormalizeYieldPercent(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	if raw <= 1 {
		raw *= 100
	}
	if raw > 50 {
		return 50
	}
	return raw
}
