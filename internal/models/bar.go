package models

// DailyBar is one synthetic OHLCV day. Date is YYYY-MM-DD.
type DailyBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
