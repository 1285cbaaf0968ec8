package models

import (
	"fmt"
	"time"
)

type ExitTrigger string

const (
	ExitTriggerStopLoss         ExitTrigger = "Stop Loss"
	ExitTriggerTrailingStopLoss ExitTrigger = "Trailing Stop Loss"
	ExitTriggerStrategy         ExitTrigger = "Strategy"
	ExitTriggerNone             ExitTrigger = ""
)

// Trade is one executed round trip: an entry and its matching exit.
type Trade struct {
	Pair       string
	OpenTime   time.Time
	OpenRate   float64
	CloseTime  time.Time
	CloseRate  float64
	ProfitPct  float64
	ExitReason string
	Duration   int // minutes
}

// Description summarizes the closed trade for the chart marker label:
// profit rounded to 3 decimals, exit reason, duration in minutes.
func (t Trade) Description() string {
	return fmt.Sprintf("%.3f%%, %s, %dmin", t.ProfitPct, t.ExitReason, t.Duration)
}
