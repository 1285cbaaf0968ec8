package models

import (
	"time"

	"github.com/sdcoffey/techan"
)

// CandleFrame holds one pair's candle history as parallel columns, plus
// whatever optional indicator and signal columns the caller attached.
// Rows are time-ordered by construction.
type CandleFrame struct {
	Pair   string
	Date   []time.Time
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64

	indicators map[string][]float64
	signals    map[string][]bool
}

func NewCandleFrame(pair string) *CandleFrame {
	return &CandleFrame{
		Pair:       pair,
		indicators: map[string][]float64{},
		signals:    map[string][]bool{},
	}
}

// FrameFromSeries converts a techan candle series into a CandleFrame.
func FrameFromSeries(pair string, series *techan.TimeSeries) *CandleFrame {
	frame := NewCandleFrame(pair)
	for _, candle := range series.Candles {
		frame.Date = append(frame.Date, candle.Period.Start)
		frame.Open = append(frame.Open, candle.OpenPrice.Float())
		frame.High = append(frame.High, candle.MaxPrice.Float())
		frame.Low = append(frame.Low, candle.MinPrice.Float())
		frame.Close = append(frame.Close, candle.ClosePrice.Float())
		frame.Volume = append(frame.Volume, candle.Volume.Float())
	}
	return frame
}

func (f *CandleFrame) Len() int {
	return len(f.Date)
}

func (f *CandleFrame) SetIndicator(name string, values []float64) {
	f.indicators[name] = values
}

func (f *CandleFrame) Indicator(name string) ([]float64, bool) {
	values, ok := f.indicators[name]
	return values, ok
}

func (f *CandleFrame) HasIndicator(name string) bool {
	_, ok := f.indicators[name]
	return ok
}

func (f *CandleFrame) SetSignal(name string, flags []bool) {
	f.signals[name] = flags
}

func (f *CandleFrame) Signal(name string) ([]bool, bool) {
	flags, ok := f.signals[name]
	return flags, ok
}
