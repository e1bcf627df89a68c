package api

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kjannette/marketmind-backend/internal/marketdata"
	"github.com/kjannette/marketmind-backend/internal/models"
)

type stockDataResponse struct {
	Success             bool                       `json:"success"`
	Symbol              string                     `json:"symbol"`
	CompanyName         string                     `json:"company_name"`
	DisplayName         string                     `json:"display_name"`
	Sector              string                     `json:"sector"`
	Industry            string                     `json:"industry"`
	CurrentData         models.Quote               `json:"current_data"`
	MarketData          models.MarketStats         `json:"market_data"`
	TechnicalIndicators models.TechnicalIndicators `json:"technical_indicators"`
	HistoricalData      []models.DailyBar          `json:"historical_data"`
	RecordsCount        int                        `json:"records_count"`
	Period              string                     `json:"period"`
	DataSource          string                     `json:"data_source"`
}

func (s *Server) handleStockData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symbol := s.market.ResolveSymbol(q.Get("symbol"))

	snap, err := s.market.StockData(symbol, q.Get("period"))
	if err != nil {
		if errors.Is(err, marketdata.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("No data found for symbol %s", symbol))
			return
		}
		s.log(r).Error("stock data", zap.String("symbol", symbol), zap.Error(err))
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching data for %s: %v", symbol, err))
		return
	}

	rec := snap.Record
	writeJSON(w, http.StatusOK, stockDataResponse{
		Success:             true,
		Symbol:              rec.Symbol,
		CompanyName:         rec.CompanyName,
		DisplayName:         rec.DisplayName,
		Sector:              rec.Sector,
		Industry:            rec.Industry,
		CurrentData:         rec.CurrentQuote,
		MarketData:          rec.MarketStats,
		TechnicalIndicators: rec.TechnicalIndicators,
		HistoricalData:      snap.History,
		RecordsCount:        snap.RecordsCount,
		Period:              snap.Period,
		DataSource:          marketdata.DataSource,
	})
}
