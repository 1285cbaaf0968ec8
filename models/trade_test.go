package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.com/aoterocom/AOPlotter/models"
)

func TestTradeDescription(t *testing.T) {
	trade := models.Trade{
		Pair:       "ETH/EUR",
		OpenTime:   time.Date(2022, 8, 1, 10, 0, 0, 0, time.UTC),
		OpenRate:   1500.0,
		CloseTime:  time.Date(2022, 8, 1, 10, 35, 0, 0, time.UTC),
		CloseRate:  1536.9,
		ProfitPct:  2.4567,
		ExitReason: string(models.ExitTriggerStopLoss),
		Duration:   35,
	}

	assert.Equal(t, "2.457%, Stop Loss, 35min", trade.Description())
}

func TestTradeDescriptionRoundsToThreeDecimals(t *testing.T) {
	trade := models.Trade{ProfitPct: 1.0, ExitReason: "Strategy", Duration: 240}

	assert.Equal(t, "1.000%, Strategy, 240min", trade.Description())
}
