package repository

import (
	"database/sql"

	"github.com/code-forcer/reitsbackend/internal/model"
)

const reitColumns = `ticker, name, price, change, change_percent, yield, market_cap, sector,
		pe_ratio, price_to_book, volume, average_volume, fifty_two_week_high, fifty_two_week_low,
		beta, dividend_rate, payout_ratio, funds_from_operations, total_assets, total_debt,
		occupancy_rate, revenue_per_share, ai_insights, rating, trending, last_updated`

type REITRepository struct {
	db *sql.DB
}

func NewREITRepository(db *sql.DB) *REITRepository {
	return &REITRepository{db: db}
}

// Upsert replaces the whole row keyed by ticker, so running the same
// refresh twice leaves the same set of tickers in storage.
func (r *REITRepository) Upsert(reit *model.REIT) error {
	_, err := r.db.Exec(`
		INSERT INTO reit(`+reitColumns+`)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		ON CONFLICT (ticker) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			change = EXCLUDED.change,
			change_percent = EXCLUDED.change_percent,
			yield = EXCLUDED.yield,
			market_cap = EXCLUDED.market_cap,
			sector = EXCLUDED.sector,
			pe_ratio = EXCLUDED.pe_ratio,
			price_to_book = EXCLUDED.price_to_book,
			volume = EXCLUDED.volume,
			average_volume = EXCLUDED.average_volume,
			fifty_two_week_high = EXCLUDED.fifty_two_week_high,
			fifty_two_week_low = EXCLUDED.fifty_two_week_low,
			beta = EXCLUDED.beta,
			dividend_rate = EXCLUDED.dividend_rate,
			payout_ratio = EXCLUDED.payout_ratio,
			funds_from_operations = EXCLUDED.funds_from_operations,
			total_assets = EXCLUDED.total_assets,
			total_debt = EXCLUDED.total_debt,
			occupancy_rate = EXCLUDED.occupancy_rate,
			revenue_per_share = EXCLUDED.revenue_per_share,
			ai_insights = EXCLUDED.ai_insights,
			rating = EXCLUDED.rating,
			trending = EXCLUDED.trending,
			last_updated = EXCLUDED.last_updated
	`, reit.Ticker, reit.Name, reit.Price, reit.Change, reit.ChangePercent, reit.Yield,
		reit.MarketCap, reit.Sector, reit.PERatio, reit.PriceToBook, reit.Volume,
		reit.AverageVolume, reit.FiftyTwoWeekHigh, reit.FiftyTwoWeekLow, reit.Beta,
		reit.DividendRate, reit.PayoutRatio, reit.FundsFromOperations, reit.TotalAssets,
		reit.TotalDebt, reit.OccupancyRate, reit.RevenuePerShare, reit.AIInsights,
		reit.Rating, reit.Trending, reit.LastUpdated)
	return err
}

func (r *REITRepository) GetAll() ([]model.REIT, error) {
	return r.queryREITs(`
		SELECT ` + reitColumns + `
		FROM reit
		ORDER BY last_updated DESC
	`)
}

func (r *REITRepository) GetByTicker(ticker string) (*model.REIT, error) {
	row := r.db.QueryRow(`
		SELECT `+reitColumns+`
		FROM reit
		WHERE ticker = $1
	`, ticker)

	reit, err := scanREIT(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reit, nil
}

func (r *REITRepository) GetHighestYield(limit int) ([]model.REIT, error) {
	return r.queryREITs(`
		SELECT `+reitColumns+`
		FROM reit
		WHERE yield > 0
		ORDER BY yield DESC
		LIMIT $1
	`, limit)
}

func (r *REITRepository) GetLargest(limit int) ([]model.REIT, error) {
	return r.queryREITs(`
		SELECT `+reitColumns+`
		FROM reit
		WHERE market_cap > 0
		ORDER BY market_cap DESC
		LIMIT $1
	`, limit)
}

func (r *REITRepository) GetRecent(limit int) ([]model.REIT, error) {
	return r.queryREITs(`
		SELECT `+reitColumns+`
		FROM reit
		ORDER BY last_updated DESC
		LIMIT $1
	`, limit)
}

func (r *REITRepository) queryREITs(query string, args ...interface{}) ([]model.REIT, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reits []model.REIT
	for rows.Next() {
		reit, err := scanREIT(rows)
		if err != nil {
			return nil, err
		}
		reits = append(reits, reit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reits, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanREIT(row rowScanner) (model.REIT, error) {
	var reit model.REIT
	err := row.Scan(
		&reit.Ticker, &reit.Name, &reit.Price, &reit.Change, &reit.ChangePercent,
		&reit.Yield, &reit.MarketCap, &reit.Sector, &reit.PERatio, &reit.PriceToBook,
		&reit.Volume, &reit.AverageVolume, &reit.FiftyTwoWeekHigh, &reit.FiftyTwoWeekLow,
		&reit.Beta, &reit.DividendRate, &reit.PayoutRatio, &reit.FundsFromOperations,
		&reit.TotalAssets, &reit.TotalDebt, &reit.OccupancyRate, &reit.RevenuePerShare,
		&reit.AIInsights, &reit.Rating, &reit.Trending, &reit.LastUpdated,
	)
	return reit, err
}
