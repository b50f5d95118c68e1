package market

// Rating scores a record from dividend yield (percent), price change
// (percent) and market cap (billions), plus random jitter in [-0.2, 0.2].
// Result is clamped to [1.0, 5.0].
func Rating(yieldPct, changePct, marketCapB float64, rng Rand) float64 {
	rating := 3.0

	switch {
	case yieldPct > 6:
		rating += 0.5
	case yieldPct > 4:
		rating += 0.3
	case yieldPct < 2:
		rating -= 0.5
	}

	if changePct > 2 {
		rating += 0.3
	} else if changePct < -2 {
		rating -= 0.3
	}

	if marketCapB > 50 {
		rating += 0.4
	} else if marketCapB > 10 {
		rating += 0.2
	}

	rating += (rng.Float64() - 0.5) * 0.4

	if rating < 1.0 {
		return 1.0
	}
	if rating > 5.0 {
		return 5.0
	}
	return rating
}

func Trend(changePct float64) string {
	if changePct > 0.5 {
		return "up"
	}
	if changePct < -0.5 {
		return "down"
	}
	return "neutral"
}

// OccupancyRate synthesizes a plausible occupancy percent in [85, 97]; no
// upstream feed reports this field.
func OccupancyRate(rng Rand) float64 {
	return float64(85 + rng.Intn(13))
}
