package models

type MarketIndex struct {
	Symbol        string  `json:"symbol" yaml:"symbol"`
	Name          string  `json:"name" yaml:"name"`
	Price         float64 `json:"price" yaml:"price"`
	Change        float64 `json:"change" yaml:"change"`
	PercentChange float64 `json:"percent_change" yaml:"percent_change"`
	Trend         Trend   `json:"trend" yaml:"trend"`
}

type SearchEntry struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Name     string `json:"name" yaml:"name"`
	Exchange string `json:"exchange" yaml:"exchange"`
	Type     string `json:"type" yaml:"type"`
}
