package plot_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aoterocom/AOPlotter/models"
	"gitlab.com/aoterocom/AOPlotter/plot"
)

func testFrame(n int) *models.CandleFrame {
	frame := models.NewCandleFrame("ETH/EUR")
	start := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		open := 100.0 + float64(i)
		frame.Date = append(frame.Date, start.Add(time.Duration(i)*5*time.Minute))
		frame.Open = append(frame.Open, open)
		frame.High = append(frame.High, open+2)
		frame.Low = append(frame.Low, open-2)
		frame.Close = append(frame.Close, open+1)
		frame.Volume = append(frame.Volume, 10+float64(i))
	}
	return frame
}

func constantColumn(n int, value float64) []float64 {
	column := make([]float64, n)
	for i := range column {
		column[i] = value
	}
	return column
}

func TestGenerateRowSkipsMissingIndicators(t *testing.T) {
	frame := testFrame(10)
	fig := plot.NewFigure("ETH/EUR")

	plot.GenerateRow(fig, 1, []string{"rsi", "macd"}, frame)

	assert.Empty(t, fig.Traces(1))
}

func TestGenerateRowPreservesOrder(t *testing.T) {
	frame := testFrame(10)
	frame.SetIndicator("macd", constantColumn(10, 1))
	frame.SetIndicator("rsi", constantColumn(10, 2))
	fig := plot.NewFigure("ETH/EUR")

	plot.GenerateRow(fig, 1, []string{"rsi", "missing", "macd"}, frame)

	traces := fig.Traces(1)
	require.Len(t, traces, 2)
	assert.Equal(t, "rsi", traces[0].Name)
	assert.Equal(t, "macd", traces[1].Name)
	assert.Equal(t, plot.TraceLine, traces[0].Kind)
	assert.Equal(t, constantColumn(10, 2), traces[0].Y)
}

func TestPlotTradesEmptyAddsNothing(t *testing.T) {
	fig := plot.NewFigure("ETH/EUR")

	plot.PlotTrades(fig, nil)
	plot.PlotTrades(fig, []models.Trade{})

	assert.Empty(t, fig.Traces(1))
}

func TestPlotTradesMarkers(t *testing.T) {
	frame := testFrame(20)
	trade := models.Trade{
		Pair:       "ETH/EUR",
		OpenTime:   frame.Date[3],
		OpenRate:   frame.Close[3],
		CloseTime:  frame.Date[15],
		CloseRate:  frame.Close[15],
		ProfitPct:  2.5,
		ExitReason: "Strategy",
		Duration:   60,
	}
	fig := plot.NewFigure("ETH/EUR")

	plot.PlotTrades(fig, []models.Trade{trade})

	traces := fig.Traces(1)
	require.Len(t, traces, 2)

	open := traces[0]
	assert.Equal(t, "trade_open", open.Name)
	assert.Equal(t, plot.TraceMarker, open.Kind)
	require.Len(t, open.X, 1)
	assert.Equal(t, trade.OpenTime, open.X[0])
	assert.Equal(t, trade.OpenRate, open.Y[0])

	closed := traces[1]
	assert.Equal(t, "trade_close", closed.Name)
	require.Len(t, closed.Text, 1)
	assert.Equal(t, "2.500%, Strategy, 60min", closed.Text[0])
}

func TestGenerateGraphWithoutOptionalColumns(t *testing.T) {
	frame := testFrame(20)

	fig := plot.GenerateGraph("ETH/EUR", frame, nil, nil, nil)

	traces := fig.Traces(1)
	require.Len(t, traces, 1)
	assert.Equal(t, plot.TraceCandlestick, traces[0].Kind)
	assert.Equal(t, "Price", traces[0].Name)

	require.Len(t, fig.Traces(2), 1)
	assert.Equal(t, plot.TraceBar, fig.Traces(2)[0].Kind)
	assert.Equal(t, "Volume", fig.Traces(2)[0].Name)

	assert.Empty(t, fig.Traces(3))
}

func TestGenerateGraphSignalColumnWithoutHits(t *testing.T) {
	frame := testFrame(20)
	frame.SetSignal("buy", make([]bool, 20))
	frame.SetSignal("sell", make([]bool, 20))

	fig := plot.GenerateGraph("ETH/EUR", frame, nil, nil, nil)

	require.Len(t, fig.Traces(1), 1)
	assert.Equal(t, plot.TraceCandlestick, fig.Traces(1)[0].Kind)
}

func TestGenerateGraphSignalMarkers(t *testing.T) {
	frame := testFrame(20)
	buy := make([]bool, 20)
	buy[4] = true
	buy[9] = true
	frame.SetSignal("buy", buy)

	fig := plot.GenerateGraph("ETH/EUR", frame, nil, nil, nil)

	traces := fig.Traces(1)
	require.Len(t, traces, 2)
	marker := traces[1]
	assert.Equal(t, "buy", marker.Name)
	require.Len(t, marker.X, 2)
	assert.Equal(t, frame.Date[4], marker.X[0])
	assert.Equal(t, frame.Close[4], marker.Y[0])
	assert.Equal(t, frame.Date[9], marker.X[1])
}

func TestGenerateGraphBollingerEnvelope(t *testing.T) {
	frame := testFrame(20)
	frame.SetIndicator("bb_lowerband", constantColumn(20, 95))
	frame.SetIndicator("bb_upperband", constantColumn(20, 125))

	fig := plot.GenerateGraph("ETH/EUR", frame, nil, nil, nil)

	traces := fig.Traces(1)
	require.Len(t, traces, 3)
	assert.Equal(t, "BB lower", traces[1].Name)
	assert.False(t, traces[1].Fill)
	assert.Equal(t, "BB upper", traces[2].Name)
	assert.True(t, traces[2].Fill)
	assert.Equal(t, plot.TraceBand, traces[2].Kind)
}

func TestGenerateGraphBollingerRequiresBothBands(t *testing.T) {
	frame := testFrame(20)
	frame.SetIndicator("bb_lowerband", constantColumn(20, 95))

	fig := plot.GenerateGraph("ETH/EUR", frame, nil, nil, nil)

	require.Len(t, fig.Traces(1), 1)
}

func TestGenerateGraphEndToEnd(t *testing.T) {
	frame := testFrame(100)
	buy := make([]bool, 100)
	buy[10] = true
	sell := make([]bool, 100)
	sell[50] = true
	frame.SetSignal("buy", buy)
	frame.SetSignal("sell", sell)
	frame.SetIndicator("rsi", constantColumn(100, 55))
	frame.SetIndicator("macd", constantColumn(100, 0.3))

	trade := models.Trade{
		Pair:       "ETH/EUR",
		OpenTime:   frame.Date[10],
		OpenRate:   frame.Close[10],
		CloseTime:  frame.Date[50],
		CloseRate:  frame.Close[50],
		ProfitPct:  1.5,
		ExitReason: "Strategy",
		Duration:   200,
	}

	fig := plot.GenerateGraph("ETH/EUR", frame, []models.Trade{trade}, []string{"rsi"}, []string{"macd"})

	// candlestick, buy, sell, rsi, trade_open, trade_close
	require.Len(t, fig.Traces(1), 6)
	require.Len(t, fig.Traces(2), 1)
	require.Len(t, fig.Traces(3), 1)
	assert.Equal(t, "macd", fig.Traces(3)[0].Name)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	require.NoError(t, plot.GeneratePlotFile(fig, "ETH/EUR", "5m"))

	info, err := os.Stat(filepath.Join("user_data", "plots", "freqtrade-plot-ETH_EUR-5m.html"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
