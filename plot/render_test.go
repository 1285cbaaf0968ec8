package plot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/aoterocom/AOPlotter/plot"
)

func TestFigureRenderWritesHTML(t *testing.T) {
	frame := testFrame(30)
	frame.SetIndicator("rsi", constantColumn(30, 50))
	fig := plot.GenerateGraph("ETH/EUR", frame, nil, []string{"rsi"}, nil)

	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Price")
	assert.Contains(t, html, "Volume")
	assert.Contains(t, html, "rsi")
}

func TestFigureRenderWithoutTraces(t *testing.T) {
	fig := plot.NewFigure("ETH/EUR")

	var buf bytes.Buffer
	assert.Error(t, fig.Render(&buf))
}

func TestFigureAppendTraceInvalidRow(t *testing.T) {
	fig := plot.NewFigure("ETH/EUR")

	fig.AppendTrace(0, plot.Trace{Kind: plot.TraceLine, Name: "x"})
	fig.AppendTrace(4, plot.Trace{Kind: plot.TraceLine, Name: "y"})

	assert.Empty(t, fig.Traces(1))
	assert.Empty(t, fig.Traces(0))
	assert.Empty(t, fig.Traces(4))
}
