// Package pricetracker models the price history of a catalog item and
// derives a trend plus a buy/wait/hold recommendation. History generation
// is simulated; trend analysis is deterministic over whatever history it
// is given.
package pricetracker

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

var ErrEmptyHistory = errors.New("price history is empty")

// PricePoint is one observed price on one platform.
type PricePoint struct {
	Date     time.Time `json:"date"`
	Price    float64   `json:"price"`
	Platform string    `json:"platform"`
}

// Trend summarizes a price history.
type Trend struct {
	CurrentPrice       float64      `json:"currentPrice"`
	LowestPrice        float64      `json:"lowestPrice"`
	HighestPrice       float64      `json:"highestPrice"`
	AveragePrice       float64      `json:"averagePrice"`
	PriceChange        float64      `json:"priceChange"`
	PriceChangePercent int          `json:"priceChangePercent"`
	Trend              string       `json:"trend"`          // up, down, stable
	Recommendation     string       `json:"recommendation"` // buy, wait, hold
	History            []PricePoint `json:"history"`
}

// GenerateHistory simulates days of observations around the current
// price with a ±10% spread, alternating platforms at random.
func GenerateHistory(currentPrice float64, days int, rng *rand.Rand) []PricePoint {
	if days <= 0 {
		days = 30
	}
	base := time.Now().UTC().Truncate(24 * time.Hour)

	history := make([]PricePoint, 0, days+1)
	for i := days; i >= 0; i-- {
		factor := 1 + (rng.Float64()-0.5)*0.2
		platform := "taobao"
		if rng.Intn(2) == 1 {
			platform = "jd"
		}
		history = append(history, PricePoint{
			Date:     base.AddDate(0, 0, -i),
			Price:    math.Round(currentPrice * factor),
			Platform: platform,
		})
	}
	return history
}

// AnalyzeTrend derives the trend from a history. The last point is the
// current price; the change is measured against the point before it.
func AnalyzeTrend(history []PricePoint) (Trend, error) {
	if len(history) == 0 {
		return Trend{}, ErrEmptyHistory
	}

	current := history[len(history)-1].Price
	previous := current
	if len(history) > 1 {
		previous = history[len(history)-2].Price
	}

	lowest, highest, sum := current, current, 0.0
	for _, point := range history {
		lowest = math.Min(lowest, point.Price)
		highest = math.Max(highest, point.Price)
		sum += point.Price
	}
	average := math.Round(sum / float64(len(history)))

	change := current - previous
	changePercent := 0
	if previous != 0 {
		changePercent = int(math.Round(change / previous * 100))
	}

	trend := "stable"
	if changePercent > 2 {
		trend = "up"
	} else if changePercent < -2 {
		trend = "down"
	}

	recommendation := "hold"
	if current <= lowest*1.05 {
		recommendation = "buy"
	} else if trend == "up" && current > average*1.1 {
		recommendation = "wait"
	}

	return Trend{
		CurrentPrice:       current,
		LowestPrice:        lowest,
		HighestPrice:       highest,
		AveragePrice:       average,
		PriceChange:        change,
		PriceChangePercent: changePercent,
		Trend:              trend,
		Recommendation:     recommendation,
		History:            history,
	}, nil
}

// Alerts derives the user-facing price alerts for a trend.
func Alerts(trend Trend) []string {
	alerts := []string{}
	if trend.Recommendation == "buy" {
		alerts = append(alerts, "the current price is near its historical low")
	}
	if trend.Trend == "up" && trend.PriceChangePercent > 5 {
		alerts = append(alerts, "the price is rising quickly")
	}
	if trend.Trend == "down" && trend.PriceChangePercent < -5 {
		alerts = append(alerts, "the price keeps dropping, a lower price may follow")
	}
	if trend.CurrentPrice > trend.AveragePrice*1.2 {
		alerts = append(alerts, "the current price is well above the average")
	}
	return alerts
}
