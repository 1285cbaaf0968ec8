package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gitlab.com/aoterocom/AOPlotter/helpers"
	"gitlab.com/aoterocom/AOPlotter/models"
)

const plotDirectory = "user_data/plots"

const (
	buyMarkerColor   = "green"
	sellMarkerColor  = "red"
	tradeOpenColor   = "green"
	tradeCloseColor  = "red"
	transparentLine  = "rgba(255,255,255,0)"
	bollingerOpacity = 0.2
)

// GenerateRow appends one line trace per requested indicator to the given
// row. Indicators missing from the frame are logged and skipped; their
// absence is expected when the upstream strategy didn't compute them.
func GenerateRow(fig *Figure, row int, indicatorNames []string, data *models.CandleFrame) *Figure {
	for _, name := range indicatorNames {
		values, ok := data.Indicator(name)
		if !ok {
			helpers.Logger.Infoln(fmt.Sprintf("Indicator \"%s\" ignored. Reason: not found in the candle data.", name))
			continue
		}
		fig.AppendTrace(row, Trace{
			Kind: TraceLine,
			Name: name,
			X:    data.Date,
			Y:    values,
		})
	}
	return fig
}

// PlotTrades appends open and close markers for the executed trades to
// row 1. Close markers carry a per-trade summary label.
func PlotTrades(fig *Figure, trades []models.Trade) *Figure {
	if len(trades) == 0 {
		helpers.Logger.Warnln("No trades found.")
		return fig
	}

	openX := make([]time.Time, len(trades))
	openY := make([]float64, len(trades))
	closeX := make([]time.Time, len(trades))
	closeY := make([]float64, len(trades))
	descriptions := make([]string, len(trades))
	for i, trade := range trades {
		openX[i] = trade.OpenTime
		openY[i] = trade.OpenRate
		closeX[i] = trade.CloseTime
		closeY[i] = trade.CloseRate
		descriptions[i] = trade.Description()
	}

	fig.AppendTrace(1, Trace{
		Kind:   TraceMarker,
		Name:   "trade_open",
		X:      openX,
		Y:      openY,
		Marker: MarkerStyle{Symbol: "rect", Size: 11, Color: tradeOpenColor},
	})
	fig.AppendTrace(1, Trace{
		Kind:   TraceMarker,
		Name:   "trade_close",
		X:      closeX,
		Y:      closeY,
		Text:   descriptions,
		Marker: MarkerStyle{Symbol: "rect", Size: 11, Color: tradeCloseColor},
	})
	return fig
}

// GenerateGraph assembles the full figure for one pair: candlesticks,
// buy/sell signal markers, Bollinger envelope, main-plot indicators and
// trades on row 1, volume on row 2, sub-plot indicators on row 3.
// Missing optional columns are logged and skipped, never fatal.
func GenerateGraph(pair string, data *models.CandleFrame, trades []models.Trade,
	indicators1 []string, indicators2 []string) *Figure {

	fig := NewFigure(pair)

	fig.AppendTrace(1, Trace{
		Kind:  TraceCandlestick,
		Name:  "Price",
		X:     data.Date,
		Open:  data.Open,
		High:  data.High,
		Low:   data.Low,
		Close: data.Close,
	})

	if x, y, ok := signalPoints(data, "buy"); ok {
		fig.AppendTrace(1, Trace{
			Kind:   TraceMarker,
			Name:   "buy",
			X:      x,
			Y:      y,
			Marker: MarkerStyle{Symbol: "triangle", Size: 9, Color: buyMarkerColor},
		})
	} else {
		helpers.Logger.Warnln("No buy-signals found.")
	}

	if x, y, ok := signalPoints(data, "sell"); ok {
		fig.AppendTrace(1, Trace{
			Kind:   TraceMarker,
			Name:   "sell",
			X:      x,
			Y:      y,
			Marker: MarkerStyle{Symbol: "triangle", Rotate: 180, Size: 9, Color: sellMarkerColor},
		})
	} else {
		helpers.Logger.Warnln("No sell-signals found.")
	}

	lower, hasLower := data.Indicator("bb_lowerband")
	upper, hasUpper := data.Indicator("bb_upperband")
	if hasLower && hasUpper {
		fig.AppendTrace(1, Trace{
			Kind:      TraceBand,
			Name:      "BB lower",
			X:         data.Date,
			Y:         lower,
			LineColor: transparentLine,
		})
		fig.AppendTrace(1, Trace{
			Kind:      TraceBand,
			Name:      "BB upper",
			X:         data.Date,
			Y:         upper,
			Fill:      true,
			LineColor: transparentLine,
		})
	}

	GenerateRow(fig, 1, indicators1, data)

	PlotTrades(fig, trades)

	fig.AppendTrace(2, Trace{
		Kind: TraceBar,
		Name: "Volume",
		X:    data.Date,
		Y:    data.Volume,
	})

	GenerateRow(fig, 3, indicators2, data)

	return fig
}

// signalPoints collects the close price at every row where the named
// signal column is set. ok is false when the column is missing or has
// no set rows.
func signalPoints(data *models.CandleFrame, name string) ([]time.Time, []float64, bool) {
	flags, ok := data.Signal(name)
	if !ok {
		return nil, nil, false
	}
	var x []time.Time
	var y []float64
	for i, set := range flags {
		if set && i < data.Len() {
			x = append(x, data.Date[i])
			y = append(y, data.Close[i])
		}
	}
	if len(x) == 0 {
		return nil, nil, false
	}
	return x, y, true
}

// GeneratePlotFile writes the figure to
// user_data/plots/freqtrade-plot-<pair>-<interval>.html, creating the
// directory if needed. Filesystem and render errors propagate.
func GeneratePlotFile(fig *Figure, pair string, interval string) error {
	helpers.Logger.Infoln("Generating plot file for " + pair)

	fileName := "freqtrade-plot-" + helpers.PairToFileName(pair) + "-" + interval + ".html"
	if err := os.MkdirAll(plotDirectory, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(plotDirectory, fileName))
	if err != nil {
		return err
	}
	defer f.Close()

	return fig.Render(f)
}
