package database

import "gorm.io/gorm"

// Position is a recorded round trip as persisted by the trading bot.
// ExitTime -1 marks a position that is still open.
type Position struct {
	gorm.Model
	Symbol      string `json:"symbol"`
	Strategy    string
	EntryTime   int64 `json:"entryTime"`
	ExitTime    int64 `json:"exitTime"`
	EntryRate   float64
	ExitRate    float64
	Profit      float64
	Gain        float64
	ExitTrigger string
}
