// Package dto defines the HTTP response DTOs for the stocks feature.
package dto

// StockResponse is the JSON body returned by GET /stocks. Variation fields
// are relative fractions, omitted when no reference close was available.
type StockResponse struct {
	Symbol   string   `json:"symbol"`
	Date     string   `json:"date"` // resolved trading day, YYYY-MM-DD
	Close    float64  `json:"close"`
	Open     *float64 `json:"open,omitempty"`
	High     *float64 `json:"high,omitempty"`
	Low      *float64 `json:"low,omitempty"`
	Volume   *float64 `json:"volume,omitempty"`
	VarDay   *float64 `json:"var_day,omitempty"`
	VarWeek  *float64 `json:"var_week,omitempty"`
	VarMonth *float64 `json:"var_month,omitempty"`
}
