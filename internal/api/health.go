package api

import (
	"net/http"
	"time"

	"github.com/kjannette/marketmind-backend/internal/marketdata"
)

type healthResponse struct {
	Success          bool     `json:"success"`
	Status           string   `json:"status"`
	Service          string   `json:"service"`
	Timestamp        string   `json:"timestamp"`
	Version          string   `json:"version"`
	Mode             string   `json:"mode"`
	DataSources      []string `json:"data_sources"`
	AvailableSymbols []string `json:"available_symbols"`
}

type infoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := s.market.Health()
	writeJSON(w, http.StatusOK, healthResponse{
		Success:          true,
		Status:           h.Status,
		Service:          h.Service,
		Timestamp:        h.Timestamp.UTC().Format(time.RFC3339),
		Version:          h.Version,
		Mode:             h.Mode,
		DataSources:      h.DataSources,
		AvailableSymbols: h.AvailableSymbols,
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{
		Success: true,
		Message: "Hello from " + marketdata.ServiceName + "!",
		Status:  "success",
		Version: marketdata.Version + " (Demo Mode)",
		Mode:    marketdata.Mode,
	})
}
