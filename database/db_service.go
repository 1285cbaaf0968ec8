package database

import (
	"time"

	"github.com/sdcoffey/techan"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "gitlab.com/aoterocom/AOPlotter/database/models"
	"gitlab.com/aoterocom/AOPlotter/helpers"
	"gitlab.com/aoterocom/AOPlotter/models"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.Candle{}, &database.Position{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

// SaveSeries upserts the series' candles, keyed by symbol, interval and
// open time, so repeated plot runs don't duplicate rows.
func (dbs *DBService) SaveSeries(pair string, interval string, series *techan.TimeSeries) error {
	if len(series.Candles) == 0 {
		return nil
	}

	rows := make([]database.Candle, 0, len(series.Candles))
	for _, candle := range series.Candles {
		rows = append(rows, database.Candle{
			Symbol:     pair,
			Period:     interval,
			OpenTime:   candle.Period.Start.Unix(),
			OpenPrice:  candle.OpenPrice,
			ClosePrice: candle.ClosePrice,
			MaxPrice:   candle.MaxPrice,
			MinPrice:   candle.MinPrice,
			Volume:     candle.Volume,
			TradeCount: candle.TradeCount,
		})
	}

	return dbs.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "period"}, {Name: "open_time"}},
		UpdateAll: true,
	}).Create(&rows).Error
}

// GetSeries loads the last `limit` recorded candles back into a techan
// series, oldest first. It satisfies interfaces.CandleSource.
func (dbs *DBService) GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error) {
	timeSeries := techan.TimeSeries{}

	tx := dbs.DB.Where("symbol = ? AND period = ?", pair, interval).Order("open_time desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []database.Candle
	if err := tx.Find(&rows).Error; err != nil {
		return timeSeries, err
	}

	candleDuration := time.Duration(helpers.StringIntervalToSeconds(interval)) * time.Second
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		period := techan.NewTimePeriod(time.Unix(row.OpenTime, 0), candleDuration)
		candle := techan.NewCandle(period)
		candle.OpenPrice = row.OpenPrice
		candle.ClosePrice = row.ClosePrice
		candle.MaxPrice = row.MaxPrice
		candle.MinPrice = row.MinPrice
		candle.Volume = row.Volume
		candle.TradeCount = row.TradeCount
		timeSeries.AddCandle(candle)
	}

	return timeSeries, nil
}

// GetTrades loads the pair's closed positions as plot-ready trades,
// oldest first.
func (dbs *DBService) GetTrades(pair string) ([]models.Trade, error) {
	var rows []database.Position
	err := dbs.DB.Where("symbol = ? AND exit_time > 0", pair).Order("entry_time asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	trades := make([]models.Trade, 0, len(rows))
	for _, row := range rows {
		trades = append(trades, models.Trade{
			Pair:       row.Symbol,
			OpenTime:   time.Unix(row.EntryTime, 0),
			OpenRate:   row.EntryRate,
			CloseTime:  time.Unix(row.ExitTime, 0),
			CloseRate:  row.ExitRate,
			ProfitPct:  row.Profit,
			ExitReason: row.ExitTrigger,
			Duration:   int((row.ExitTime - row.EntryTime) / 60),
		})
	}

	return trades, nil
}
