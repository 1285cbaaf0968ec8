package plot

import (
	"time"

	"gitlab.com/aoterocom/AOPlotter/helpers"
)

type TraceKind string

const (
	TraceCandlestick TraceKind = "candlestick"
	TraceLine        TraceKind = "line"
	TraceBand        TraceKind = "band"
	TraceMarker      TraceKind = "marker"
	TraceBar         TraceKind = "bar"
)

type MarkerStyle struct {
	Symbol string
	Rotate int
	Size   int
	Color  string
}

// Trace is one pre-shaped chart element waiting to be rendered. Which
// fields matter depends on Kind: candlesticks carry the four price
// columns, markers carry per-point text and a style, bands carry Fill.
type Trace struct {
	Kind TraceKind
	Name string

	X []time.Time
	Y []float64

	Open  []float64
	High  []float64
	Low   []float64
	Close []float64

	Text      []string
	Fill      bool
	LineColor string
	Marker    MarkerStyle
}

// Figure accumulates traces for a fixed 3-row layout sharing one time
// axis: row 1 price, row 2 volume, row 3 other indicators. It is owned
// by a single render invocation and never shared.
type Figure struct {
	Title string

	rows [3][]Trace
}

func NewFigure(title string) *Figure {
	return &Figure{Title: title}
}

// AppendTrace adds a trace to the given row (1 to 3), preserving
// insertion order within the row.
func (f *Figure) AppendTrace(row int, trace Trace) {
	if row < 1 || row > len(f.rows) {
		helpers.Logger.Warnln("trace dropped: figure has no row", row)
		return
	}
	f.rows[row-1] = append(f.rows[row-1], trace)
}

// Traces returns the traces appended to the given row so far.
func (f *Figure) Traces(row int) []Trace {
	if row < 1 || row > len(f.rows) {
		return nil
	}
	return f.rows[row-1]
}
