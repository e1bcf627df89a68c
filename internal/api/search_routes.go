package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kjannette/marketmind-backend/internal/marketdata"
	"github.com/kjannette/marketmind-backend/internal/models"
)

type searchResponse struct {
	Success bool                 `json:"success"`
	Results []models.SearchEntry `json:"results"`
	Query   string               `json:"query"`
	Source  string               `json:"source"`
}

func (s *Server) handleStockSearch(w http.ResponseWriter, r *http.Request) {
	results, query, err := s.market.Search(r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, marketdata.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Query parameter required")
			return
		}
		s.log(r).Error("stock search", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error searching stocks: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success: true,
		Results: results,
		Query:   query,
		Source:  marketdata.SearchSource,
	})
}
