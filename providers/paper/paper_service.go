package paper

import (
	"math/rand"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"

	"gitlab.com/aoterocom/AOPlotter/helpers"
)

// PaperService is an offline candle source. It synthesizes a
// deterministic random-walk series per pair, so charts can be produced
// without exchange credentials or network access.
type PaperService struct {
	basePrice float64
}

func NewPaperService() *PaperService {
	return &PaperService{basePrice: 100.0}
}

func (paperService *PaperService) GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error) {
	if limit == 0 {
		limit = 1000
	}
	timeSeries := techan.TimeSeries{}

	intervalSeconds := helpers.StringIntervalToSeconds(interval)
	candleDuration := time.Duration(intervalSeconds) * time.Second

	// seed per pair so repeated runs plot the same series
	var seed int64
	for _, c := range pair {
		seed = seed*31 + int64(c)
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now().Add(-time.Duration(limit) * candleDuration).Truncate(candleDuration)
	price := paperService.basePrice

	for i := 0; i < limit; i++ {
		open := price
		drift := (rng.Float64() - 0.5) * open * 0.02
		closePrice := open + drift
		high := open
		if closePrice > high {
			high = closePrice
		}
		high += rng.Float64() * open * 0.005
		low := open
		if closePrice < low {
			low = closePrice
		}
		low -= rng.Float64() * open * 0.005
		volume := 50.0 + rng.Float64()*1000.0

		period := techan.NewTimePeriod(start.Add(time.Duration(i)*candleDuration), candleDuration)
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewDecimal(open)
		candle.ClosePrice = big.NewDecimal(closePrice)
		candle.MaxPrice = big.NewDecimal(high)
		candle.MinPrice = big.NewDecimal(low)
		candle.Volume = big.NewDecimal(volume)
		candle.TradeCount = uint(rng.Intn(500))
		timeSeries.AddCandle(candle)

		price = closePrice
	}

	return timeSeries, nil
}
