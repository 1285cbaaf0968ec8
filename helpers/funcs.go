package helpers

import (
	"strings"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// PairToFileName turns a pair identifier into a filesystem-safe name,
// e.g. "ETH/EUR" -> "ETH_EUR"
func PairToFileName(pair string) string {
	return strings.ReplaceAll(pair, "/", "_")
}

// PairToSymbol strips the pair separator for exchange APIs,
// e.g. "ETH/EUR" -> "ETHEUR"
func PairToSymbol(pair string) string {
	return strings.ReplaceAll(pair, "/", "")
}

// StringIntervalToSeconds converts an interval label like "5m", "1h" or
// "1d" into its length in seconds. Unknown labels yield 0.
func StringIntervalToSeconds(interval string) int64 {
	duration, err := str2duration.ParseDuration(interval)
	if err != nil {
		Logger.Warnln("unparseable interval \"" + interval + "\": " + err.Error())
		return 0
	}
	return int64(duration.Seconds())
}
