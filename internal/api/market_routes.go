package api

import (
	"net/http"
	"time"

	"github.com/kjannette/marketmind-backend/internal/marketdata"
	"github.com/kjannette/marketmind-backend/internal/models"
)

type marketOverviewResponse struct {
	Success    bool                 `json:"success"`
	MarketData []models.MarketIndex `json:"market_data"`
	Timestamp  string               `json:"timestamp"`
	DataSource string               `json:"data_source"`
}

func (s *Server) handleMarketOverview(w http.ResponseWriter, r *http.Request) {
	ov := s.market.Overview()
	writeJSON(w, http.StatusOK, marketOverviewResponse{
		Success:    true,
		MarketData: ov.Indices,
		Timestamp:  ov.Timestamp.UTC().Format(time.RFC3339),
		DataSource: marketdata.DataSource,
	})
}
