// Package indicators computes the indicator columns a plot request asks
// for and attaches them to the candle frame.
package indicators

import (
	"strconv"
	"strings"

	"github.com/sdcoffey/techan"

	"gitlab.com/aoterocom/AOPlotter/helpers"
	"gitlab.com/aoterocom/AOPlotter/models"
)

const (
	rsiTimeframe      = 14
	macdShortWindow   = 12
	macdLongWindow    = 26
	macdSignalWindow  = 9
	bollingerWindow   = 20
	bollingerSigma    = 2.0
	stochRSITimeframe = 14
)

// Enrich computes every known indicator in names over the series and
// attaches it as a frame column under the same name. Unknown names are
// skipped with a notice; the plot layer reports them again as absent.
func Enrich(frame *models.CandleFrame, series *techan.TimeSeries, names []string) {
	closePrices := techan.NewClosePriceIndicator(series)
	length := len(series.Candles)

	for _, name := range names {
		if frame.HasIndicator(name) {
			continue
		}

		switch {
		case name == "rsi":
			frame.SetIndicator(name, collect(techan.NewRelativeStrengthIndexIndicator(closePrices, rsiTimeframe), length))
		case name == "macd":
			frame.SetIndicator(name, collect(techan.NewMACDIndicator(closePrices, macdShortWindow, macdLongWindow), length))
		case name == "macdsignal":
			macd := techan.NewMACDIndicator(closePrices, macdShortWindow, macdLongWindow)
			frame.SetIndicator(name, collect(techan.NewEMAIndicator(macd, macdSignalWindow), length))
		case name == "stochrsi":
			rsi := techan.NewRelativeStrengthIndexIndicator(closePrices, rsiTimeframe)
			frame.SetIndicator(name, collect(NewStochasticRelativeStrengthIndicator(rsi, stochRSITimeframe), length))
		case name == "bb_lowerband":
			frame.SetIndicator(name, collect(techan.NewBollingerLowerBandIndicator(closePrices, bollingerWindow, bollingerSigma), length))
		case name == "bb_upperband":
			frame.SetIndicator(name, collect(techan.NewBollingerUpperBandIndicator(closePrices, bollingerWindow, bollingerSigma), length))
		case strings.HasPrefix(name, "ema"):
			window, err := strconv.Atoi(strings.TrimPrefix(name, "ema"))
			if err != nil || window <= 0 {
				helpers.Logger.Infoln("Indicator \"" + name + "\" skipped: bad window")
				continue
			}
			frame.SetIndicator(name, collect(techan.NewEMAIndicator(closePrices, window), length))
		case strings.HasPrefix(name, "sma"):
			window, err := strconv.Atoi(strings.TrimPrefix(name, "sma"))
			if err != nil || window <= 0 {
				helpers.Logger.Infoln("Indicator \"" + name + "\" skipped: bad window")
				continue
			}
			frame.SetIndicator(name, collect(techan.NewSimpleMovingAverage(closePrices, window), length))
		default:
			helpers.Logger.Infoln("Indicator \"" + name + "\" skipped: no known calculation")
		}
	}
}

func collect(indicator techan.Indicator, length int) []float64 {
	values := make([]float64, length)
	for i := 0; i < length; i++ {
		values[i] = indicator.Calculate(i).Float()
	}
	return values
}
