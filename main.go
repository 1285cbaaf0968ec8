package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	bot "gitlab.com/aoterocom/AOPlotter/bot_plotter"
)

func main() {
	plotter := bot.Plotter{}

	app := &cli.App{
		Name:  "AOPlotter",
		Usage: "Render candlestick charts with trading signals to static HTML",
		Commands: []*cli.Command{
			{
				Name:  "plot",
				Usage: "Generate the chart for one pair",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pair", Usage: "pair to plot, e.g. ETH/EUR"},
					&cli.StringFlag{Name: "interval", Usage: "candle interval, e.g. 5m, 1h"},
					&cli.IntFlag{Name: "limit", Usage: "number of candles to plot"},
					&cli.StringFlag{Name: "indicators1", Usage: "comma-separated indicators for the main plot"},
					&cli.StringFlag{Name: "indicators2", Usage: "comma-separated indicators for the sub plot"},
					&cli.StringFlag{Name: "source", Value: "binance", Usage: "candle source: binance, database or paper"},
				},
				Action: plotter.Run,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
