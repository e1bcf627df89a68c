package models

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// TrendFor classifies a price change. Zero counts as up.
func TrendFor(change float64) Trend {
	if change < 0 {
		return TrendDown
	}
	return TrendUp
}

func (t Trend) Valid() bool {
	return t == TrendUp || t == TrendDown
}

// StockRecord is immutable reference data for one listed symbol. It holds
// only value fields so a copy never aliases catalog state.
type StockRecord struct {
	Symbol              string              `json:"symbol" yaml:"symbol"`
	CompanyName         string              `json:"company_name" yaml:"company_name"`
	DisplayName         string              `json:"display_name" yaml:"display_name"`
	Sector              string              `json:"sector" yaml:"sector"`
	Industry            string              `json:"industry" yaml:"industry"`
	CurrentQuote        Quote               `json:"current_data" yaml:"current_data"`
	MarketStats         MarketStats         `json:"market_data" yaml:"market_data"`
	TechnicalIndicators TechnicalIndicators `json:"technical_indicators" yaml:"technical_indicators"`
}

type Quote struct {
	Price         float64 `json:"price" yaml:"price"`
	Change        float64 `json:"change" yaml:"change"`
	PercentChange float64 `json:"percent_change" yaml:"percent_change"`
	Trend         Trend   `json:"trend" yaml:"trend"`
	High          float64 `json:"high" yaml:"high"`
	Low           float64 `json:"low" yaml:"low"`
	Volume        int64   `json:"volume" yaml:"volume"`
	Timestamp     string  `json:"date" yaml:"date"`
}

type MarketStats struct {
	MarketCap     float64 `json:"market_cap" yaml:"market_cap"`
	PERatio       float64 `json:"pe_ratio" yaml:"pe_ratio"`
	DividendYield float64 `json:"dividend_yield" yaml:"dividend_yield"`
	Beta          float64 `json:"beta" yaml:"beta"`
	High52Week    float64 `json:"52_week_high" yaml:"52_week_high"`
	Low52Week     float64 `json:"52_week_low" yaml:"52_week_low"`
}

type TechnicalIndicators struct {
	SMA20      float64 `json:"sma_20" yaml:"sma_20"`
	SMA50      float64 `json:"sma_50" yaml:"sma_50"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
	RSI        float64 `json:"rsi" yaml:"rsi"`
}
