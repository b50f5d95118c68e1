package model

import "time"

const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// News items are append-only: created once, never updated.
type News struct {
	ID             int64
	Title          string
	Summary        string
	Source         string
	Category       string
	Impact         string
	PublishedAt    time.Time
	ReadTime       string
	RelatedTickers []string
	URL            string
	IsActive       bool
}
