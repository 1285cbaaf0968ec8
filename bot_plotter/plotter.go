package bot_plotter

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"gitlab.com/aoterocom/AOPlotter/database"
	"gitlab.com/aoterocom/AOPlotter/helpers"
	"gitlab.com/aoterocom/AOPlotter/indicators"
	"gitlab.com/aoterocom/AOPlotter/interfaces"
	"gitlab.com/aoterocom/AOPlotter/models"
	"gitlab.com/aoterocom/AOPlotter/plot"
	binance2 "gitlab.com/aoterocom/AOPlotter/providers/binance"
	paper2 "gitlab.com/aoterocom/AOPlotter/providers/paper"
)

type Plotter struct {
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

// Run is the `plot` command: fetch candles, compute the requested
// indicator columns, reconstruct signals from recorded trades, assemble
// the figure and write it to the HTML plot file.
func (p *Plotter) Run(c *cli.Context) error {
	helpers.Logger.Infoln("🖖🏻 Plotter started")

	pair := c.String("pair")
	if pair == "" {
		pair = os.Getenv("pair")
	}
	if pair == "" {
		return fmt.Errorf("no pair given: set --pair or the pair env var")
	}

	interval := c.String("interval")
	if interval == "" {
		interval = os.Getenv("interval")
	}
	if interval == "" {
		interval = "5m"
	}

	limit := c.Int("limit")
	indicators1 := splitList(c.String("indicators1"))
	indicators2 := splitList(c.String("indicators2"))
	source := c.String("source")

	var databaseService *database.DBService
	var err error
	databaseIsEnabled, _ := strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	if databaseIsEnabled || source == "database" {
		databaseService, err = database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"),
			os.Getenv("databaseName"), os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			return err
		}
	}

	var candleSource interfaces.CandleSource
	switch source {
	case "database":
		candleSource = databaseService
	case "paper":
		candleSource = paper2.NewPaperService()
	default:
		candleSource = binance2.NewBinanceService()
	}

	series, err := candleSource.GetSeries(pair, interval, limit)
	if err != nil {
		return err
	}
	if len(series.Candles) == 0 {
		return fmt.Errorf("no candles found for %s at %s", pair, interval)
	}

	if databaseIsEnabled && source != "database" {
		if err := databaseService.SaveSeries(pair, interval, &series); err != nil {
			helpers.Logger.Errorln("error recording candles: " + err.Error())
		}
	}

	frame := models.FrameFromSeries(pair, &series)

	requested := make([]string, 0, len(indicators1)+len(indicators2)+2)
	requested = append(requested, indicators1...)
	requested = append(requested, indicators2...)
	requested = append(requested, "bb_lowerband", "bb_upperband")
	indicators.Enrich(frame, &series, requested)

	var trades []models.Trade
	if databaseService != nil {
		trades, err = databaseService.GetTrades(pair)
		if err != nil {
			helpers.Logger.Errorln("error loading trades: " + err.Error())
		}
	}
	MarkTradeSignals(frame, trades)

	fig := plot.GenerateGraph(pair, frame, trades, indicators1, indicators2)
	return plot.GeneratePlotFile(fig, pair, interval)
}

// MarkTradeSignals reconstructs the buy/sell signal columns from the
// executed trades: the candle containing a trade's open time is marked
// as buy, the one containing its close time as sell. Without trades the
// columns stay absent, exactly as when the upstream strategy set none.
func MarkTradeSignals(frame *models.CandleFrame, trades []models.Trade) {
	if len(trades) == 0 || frame.Len() == 0 {
		return
	}

	buy := make([]bool, frame.Len())
	sell := make([]bool, frame.Len())
	for _, trade := range trades {
		if i := candleIndexAt(frame, trade.OpenTime.Unix()); i >= 0 {
			buy[i] = true
		}
		if i := candleIndexAt(frame, trade.CloseTime.Unix()); i >= 0 {
			sell[i] = true
		}
	}
	frame.SetSignal("buy", buy)
	frame.SetSignal("sell", sell)
}

// candleIndexAt finds the last candle opening at or before the unix
// timestamp, or -1 when the timestamp precedes the frame.
func candleIndexAt(frame *models.CandleFrame, unix int64) int {
	for i := frame.Len() - 1; i >= 0; i-- {
		if frame.Date[i].Unix() <= unix {
			return i
		}
	}
	return -1
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
