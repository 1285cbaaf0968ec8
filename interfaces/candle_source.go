package interfaces

import (
	"github.com/sdcoffey/techan"
)

type (
	// CandleSource provides candle history for a pair. Implemented by the
	// exchange provider, the paper provider and the database service.
	CandleSource interface {
		GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error)
	}
)
