// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Bar represents one daily OHLCV entry for a stock symbol. Close is always
// populated; the remaining values are best-effort since the provider may
// return partial rows.
type Bar struct {
	Date   time.Time // UTC midnight of the trading day
	Open   *float64
	High   *float64
	Low    *float64
	Close  float64
	Volume *float64
}

// LatestOnOrBefore returns the most recent bar whose date is on or before
// the given date. The series must be sorted ascending by date. The second
// return value is false when no such bar exists.
func LatestOnOrBefore(bars []Bar, date time.Time) (Bar, bool) {
	for i := len(bars) - 1; i >= 0; i-- {
		if !bars[i].Date.After(date) {
			return bars[i], true
		}
	}
	return Bar{}, false
}

// VarRel returns the relative change (curr-past)/past as a fraction, or nil
// when the reference close is unavailable or zero.
func VarRel(curr float64, past *float64) *float64 {
	if past == nil || *past == 0 {
		return nil
	}
	v := (curr - *past) / *past
	return &v
}
