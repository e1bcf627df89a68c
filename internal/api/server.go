package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kjannette/marketmind-backend/internal/marketdata"
)

type Options struct {
	Port            int
	CORSAllowOrigin string
	RequestTimeout  time.Duration
}

type Server struct {
	market     *marketdata.Service
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

func NewServer(market *marketdata.Service, logger *zap.Logger, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	s := &Server{
		market: market,
		logger: logger.With(zap.String("component", "api")),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(s.recoverer)
	r.Use(corsMiddleware(opts.CORSAllowOrigin))
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stock-data", s.handleStockData)
		r.Get("/stock-search", s.handleStockSearch)
		r.Get("/market-overview", s.handleMarketOverview)
		r.Get("/health", s.handleHealth)
		r.Get("/python", s.handleInfo)
	})

	s.router = r
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: opts.RequestTimeout + 5*time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("REST API server started",
		zap.String("addr", "http://localhost"+s.httpServer.Addr),
		zap.String("health", "http://localhost"+s.httpServer.Addr+"/api/health"),
	)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// --- fallback handlers ---

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// --- response helpers ---

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
