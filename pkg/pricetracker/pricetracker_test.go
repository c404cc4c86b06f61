package pricetracker

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(daysAgo int, price float64) PricePoint {
	return PricePoint{
		Date:     time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		Price:    price,
		Platform: "taobao",
	}
}

func TestGenerateHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	history := GenerateHistory(1000, 30, rng)

	require.Len(t, history, 31)
	for i, p := range history {
		assert.GreaterOrEqual(t, p.Price, 900.0)
		assert.LessOrEqual(t, p.Price, 1100.0)
		assert.Contains(t, []string{"taobao", "jd"}, p.Platform)
		if i > 0 {
			assert.True(t, p.Date.After(history[i-1].Date))
		}
	}

	// Same seed, same history.
	again := GenerateHistory(1000, 30, rand.New(rand.NewSource(7)))
	assert.Equal(t, history, again)
}

func TestGenerateHistoryDefaultsDays(t *testing.T) {
	history := GenerateHistory(500, 0, rand.New(rand.NewSource(1)))
	assert.Len(t, history, 31)
}

func TestAnalyzeTrendEmpty(t *testing.T) {
	_, err := AnalyzeTrend(nil)
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestAnalyzeTrendSinglePoint(t *testing.T) {
	trend, err := AnalyzeTrend([]PricePoint{point(0, 500)})

	require.NoError(t, err)
	assert.Equal(t, 500.0, trend.CurrentPrice)
	assert.Equal(t, 500.0, trend.LowestPrice)
	assert.Equal(t, 500.0, trend.HighestPrice)
	assert.Equal(t, 0.0, trend.PriceChange)
	assert.Equal(t, "stable", trend.Trend)
	assert.Equal(t, "buy", trend.Recommendation, "current equals the low")
}

func TestAnalyzeTrendRising(t *testing.T) {
	trend, err := AnalyzeTrend([]PricePoint{
		point(2, 1000),
		point(1, 1000),
		point(0, 1200),
	})

	require.NoError(t, err)
	assert.Equal(t, 1200.0, trend.CurrentPrice)
	assert.Equal(t, 1000.0, trend.LowestPrice)
	assert.Equal(t, 1200.0, trend.HighestPrice)
	assert.Equal(t, 1067.0, trend.AveragePrice)
	assert.Equal(t, 200.0, trend.PriceChange)
	assert.Equal(t, 20, trend.PriceChangePercent)
	assert.Equal(t, "up", trend.Trend)
	assert.Equal(t, "wait", trend.Recommendation, "rising and above average")
}

func TestAnalyzeTrendFalling(t *testing.T) {
	trend, err := AnalyzeTrend([]PricePoint{
		point(2, 1200),
		point(1, 1200),
		point(0, 1000),
	})

	require.NoError(t, err)
	assert.Equal(t, -200.0, trend.PriceChange)
	assert.Equal(t, -17, trend.PriceChangePercent)
	assert.Equal(t, "down", trend.Trend)
	assert.Equal(t, "buy", trend.Recommendation, "current is the low")
}

func TestAnalyzeTrendStableBand(t *testing.T) {
	trend, err := AnalyzeTrend([]PricePoint{
		point(1, 1000),
		point(0, 1020),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, trend.PriceChangePercent)
	assert.Equal(t, "stable", trend.Trend)
}

func TestAlerts(t *testing.T) {
	buy, err := AnalyzeTrend([]PricePoint{point(1, 1200), point(0, 1000)})
	require.NoError(t, err)
	alerts := Alerts(buy)
	require.NotEmpty(t, alerts)
	assert.Contains(t, alerts[0], "historical low")

	spike, err := AnalyzeTrend([]PricePoint{
		point(2, 500),
		point(1, 1000),
		point(0, 1200),
	})
	require.NoError(t, err)
	assert.Contains(t, Alerts(spike), "the price is rising quickly")
	assert.Contains(t, Alerts(spike), "the current price is well above the average")
}
