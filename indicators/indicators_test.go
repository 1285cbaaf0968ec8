package indicators_test

import (
	"math"
	"testing"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aoterocom/AOPlotter/indicators"
	"gitlab.com/aoterocom/AOPlotter/models"
)

func testSeries(n int) *techan.TimeSeries {
	series := techan.NewTimeSeries()
	start := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		period := techan.NewTimePeriod(start.Add(time.Duration(i)*time.Hour), time.Hour)
		candle := techan.NewCandle(period)
		price := 100 + 10*math.Sin(float64(i)/5)
		candle.OpenPrice = big.NewDecimal(price)
		candle.ClosePrice = big.NewDecimal(price + 0.5)
		candle.MaxPrice = big.NewDecimal(price + 1)
		candle.MinPrice = big.NewDecimal(price - 1)
		candle.Volume = big.NewDecimal(100)
		series.AddCandle(candle)
	}
	return series
}

func TestEnrichKnownIndicators(t *testing.T) {
	series := testSeries(60)
	frame := models.FrameFromSeries("ETH/EUR", series)

	indicators.Enrich(frame, series, []string{"rsi", "macd", "macdsignal", "ema20", "sma10", "stochrsi"})

	for _, name := range []string{"rsi", "macd", "macdsignal", "ema20", "sma10", "stochrsi"} {
		values, ok := frame.Indicator(name)
		require.True(t, ok, name)
		assert.Len(t, values, 60, name)
	}

	rsi, _ := frame.Indicator("rsi")
	last := rsi[len(rsi)-1]
	assert.GreaterOrEqual(t, last, 0.0)
	assert.LessOrEqual(t, last, 100.0)
}

func TestEnrichBollingerBands(t *testing.T) {
	series := testSeries(60)
	frame := models.FrameFromSeries("ETH/EUR", series)

	indicators.Enrich(frame, series, []string{"bb_lowerband", "bb_upperband"})

	lower, ok := frame.Indicator("bb_lowerband")
	require.True(t, ok)
	upper, ok := frame.Indicator("bb_upperband")
	require.True(t, ok)

	// after the warm-up window the envelope must bracket itself
	for i := 25; i < len(lower); i++ {
		assert.LessOrEqual(t, lower[i], upper[i])
	}
}

func TestEnrichSkipsUnknownNames(t *testing.T) {
	series := testSeries(30)
	frame := models.FrameFromSeries("ETH/EUR", series)

	indicators.Enrich(frame, series, []string{"bogus", "emaXX", "sma0"})

	assert.False(t, frame.HasIndicator("bogus"))
	assert.False(t, frame.HasIndicator("emaXX"))
	assert.False(t, frame.HasIndicator("sma0"))
}
