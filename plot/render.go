package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	timeLabelFormat = "2006-01-02 15:04"

	chartWidth = "1400px"
	// row heights keep the 4:1:1 split between price, volume and the
	// indicator sub plot
	priceRowHeight = "640px"
	subRowHeight   = "160px"

	candleUpColor   = "#47b262"
	candleDownColor = "#eb5454"
	bandFillColor   = "rgba(0,176,246,0.2)"
)

// Render materializes the accumulated traces through go-echarts and
// writes a self-contained static HTML document. The three rows become
// three stacked charts on one page sharing the same time categories.
func (f *Figure) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = f.Title
	page.SetLayout(components.PageFlexLayout)

	var rendered []components.Charter
	if c := f.buildPriceChart(); c != nil {
		rendered = append(rendered, c)
	}
	if c := f.buildVolumeChart(); c != nil {
		rendered = append(rendered, c)
	}
	if c := f.buildSubPlotChart(); c != nil {
		rendered = append(rendered, c)
	}
	if len(rendered) == 0 {
		return fmt.Errorf("figure %q has no traces to render", f.Title)
	}

	page.AddCharts(rendered...)
	return page.Render(w)
}

func (f *Figure) buildPriceChart() components.Charter {
	traces := f.rows[0]
	if len(traces) == 0 {
		return nil
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: priceRowHeight}),
		charts.WithTitleOpts(opts.Title{Title: f.Title}),
		charts.WithXAxisOpts(opts.XAxis{SplitNumber: 20}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price", Scale: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	axis := rowAxis(traces)
	kline.SetXAxis(axis)

	for _, trace := range traces {
		switch trace.Kind {
		case TraceCandlestick:
			data := make([]opts.KlineData, len(trace.X))
			for i := range trace.X {
				// echarts candlestick value order is open/close/low/high
				data[i] = opts.KlineData{Value: [4]float64{trace.Open[i], trace.Close[i], trace.Low[i], trace.High[i]}}
			}
			kline.AddSeries(trace.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{
				Color:        candleUpColor,
				Color0:       candleDownColor,
				BorderColor:  candleUpColor,
				BorderColor0: candleDownColor,
			}))
		case TraceLine, TraceBand:
			kline.Overlap(lineFromTrace(axis, trace))
		case TraceMarker:
			kline.Overlap(scatterFromTrace(axis, trace))
		}
	}
	return kline
}

func (f *Figure) buildVolumeChart() components.Charter {
	traces := f.rows[1]
	if len(traces) == 0 {
		return nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: subRowHeight}),
		charts.WithXAxisOpts(opts.XAxis{SplitNumber: 20}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Volume"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	bar.SetXAxis(rowAxis(traces))

	for _, trace := range traces {
		data := make([]opts.BarData, len(trace.Y))
		for i, v := range trace.Y {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(trace.Name, data)
	}
	return bar
}

func (f *Figure) buildSubPlotChart() components.Charter {
	traces := f.rows[2]
	if len(traces) == 0 {
		return nil
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: subRowHeight}),
		charts.WithXAxisOpts(opts.XAxis{SplitNumber: 20}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Other", Scale: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	line.SetXAxis(rowAxis(traces))

	for _, trace := range traces {
		data := make([]opts.LineData, len(trace.Y))
		for i, v := range trace.Y {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(trace.Name, data)
	}
	return line
}

func lineFromTrace(axis []string, trace Trace) *charts.Line {
	line := charts.NewLine()
	data := make([]opts.LineData, len(trace.Y))
	for i, v := range trace.Y {
		data[i] = opts.LineData{Value: v}
	}

	var seriesOpts []charts.SeriesOpts
	if trace.LineColor != "" {
		seriesOpts = append(seriesOpts, charts.WithLineStyleOpts(opts.LineStyle{Color: trace.LineColor}))
	}
	if trace.Fill {
		seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{
			Color:   bandFillColor,
			Opacity: bollingerOpacity,
		}))
	}

	line.SetXAxis(axis).AddSeries(trace.Name, data, seriesOpts...)
	return line
}

func scatterFromTrace(axis []string, trace Trace) *charts.Scatter {
	scatter := charts.NewScatter()
	data := make([]opts.ScatterData, len(trace.X))
	for i := range trace.X {
		name := trace.Name
		if i < len(trace.Text) {
			name = trace.Text[i]
		}
		data[i] = opts.ScatterData{
			Name:         name,
			Value:        []interface{}{trace.X[i].Format(timeLabelFormat), trace.Y[i]},
			Symbol:       trace.Marker.Symbol,
			SymbolSize:   trace.Marker.Size,
			SymbolRotate: trace.Marker.Rotate,
		}
	}
	scatter.SetXAxis(axis).AddSeries(trace.Name, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: trace.Marker.Color}))
	return scatter
}

// rowAxis derives the shared category axis from the widest trace of a
// row. Marker traces carry only a subset of timestamps, so full-length
// traces win.
func rowAxis(traces []Trace) []string {
	widest := 0
	for i := 1; i < len(traces); i++ {
		if len(traces[i].X) > len(traces[widest].X) {
			widest = i
		}
	}
	labels := make([]string, len(traces[widest].X))
	for i, t := range traces[widest].X {
		labels[i] = t.Format(timeLabelFormat)
	}
	return labels
}
