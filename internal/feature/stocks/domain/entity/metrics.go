package entity

import "time"

// StockMetrics holds the resolved trading-day values for a symbol together
// with its day, week and month relative variations. A nil variation means
// the reference close fell outside the fetched window or was zero.
type StockMetrics struct {
	Symbol   string
	Date     time.Time // resolved trading day, not necessarily the requested date
	Open     *float64
	High     *float64
	Low      *float64
	Close    float64
	Volume   *float64
	VarDay   *float64
	VarWeek  *float64
	VarMonth *float64
}
