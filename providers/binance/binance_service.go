package binance

import (
	"context"
	"os"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"

	"gitlab.com/aoterocom/AOPlotter/helpers"
)

// BinanceService fetches candle history from the Binance REST API.
type BinanceService struct {
	binanceClient *binance.Client
}

func NewBinanceService() *BinanceService {
	apiKey := os.Getenv("binanceAPIKey")
	apiSecret := os.Getenv("binanceAPISecret")
	return &BinanceService{
		binanceClient: binance.NewClient(apiKey, apiSecret),
	}
}

// GetSeries downloads the last `limit` candles for the pair at the given
// interval, paginating the 1000-kline request cap.
func (binanceService *BinanceService) GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error) {
	if limit == 0 {
		limit = 1000
	}
	timeSeries := techan.TimeSeries{}

	symbol := helpers.PairToSymbol(pair)
	intervalSeconds := helpers.StringIntervalToSeconds(interval)
	candleDuration := time.Duration(intervalSeconds) * time.Second

	provisionalLimit := limit % 1000
	if provisionalLimit == 0 {
		provisionalLimit = 1000
	}

	var resultKlines []*binance.Kline
	for limit != 0 {
		startTime := time.Now().Unix() - intervalSeconds*int64(limit)
		klines, err := binanceService.binanceClient.NewKlinesService().Symbol(symbol).
			Interval(interval).Limit(provisionalLimit).StartTime(startTime * 1000).Do(context.Background())
		if err != nil {
			helpers.Logger.Errorln("error getting klines: " + err.Error())
			return timeSeries, err
		}

		resultKlines = append(resultKlines, klines...)
		limit -= provisionalLimit
		provisionalLimit = 1000
	}

	for _, k := range resultKlines {
		period := techan.NewTimePeriod(time.Unix(k.OpenTime/1000, 0), candleDuration)
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewFromString(k.Open)
		candle.ClosePrice = big.NewFromString(k.Close)
		candle.MaxPrice = big.NewFromString(k.High)
		candle.MinPrice = big.NewFromString(k.Low)
		candle.TradeCount = uint(k.TradeNum)
		candle.Volume = big.NewFromString(k.Volume)
		timeSeries.AddCandle(candle)
	}

	return timeSeries, nil
}
