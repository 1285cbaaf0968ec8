package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/aoterocom/AOPlotter/helpers"
)

func TestPairToFileName(t *testing.T) {
	assert.Equal(t, "ETH_EUR", helpers.PairToFileName("ETH/EUR"))
	assert.Equal(t, "BTCUSDT", helpers.PairToFileName("BTCUSDT"))
}

func TestPairToSymbol(t *testing.T) {
	assert.Equal(t, "ETHEUR", helpers.PairToSymbol("ETH/EUR"))
	assert.Equal(t, "BTCUSDT", helpers.PairToSymbol("BTCUSDT"))
}

func TestStringIntervalToSeconds(t *testing.T) {
	assert.Equal(t, int64(300), helpers.StringIntervalToSeconds("5m"))
	assert.Equal(t, int64(3600), helpers.StringIntervalToSeconds("1h"))
	assert.Equal(t, int64(172800), helpers.StringIntervalToSeconds("2d"))
	assert.Equal(t, int64(0), helpers.StringIntervalToSeconds("nonsense"))
}
