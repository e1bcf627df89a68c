package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kjannette/marketmind-backend/internal/api"
	"github.com/kjannette/marketmind-backend/internal/catalog"
	"github.com/kjannette/marketmind-backend/internal/config"
	"github.com/kjannette/marketmind-backend/internal/logger"
	"github.com/kjannette/marketmind-backend/internal/marketdata"
	"github.com/kjannette/marketmind-backend/internal/series"
)

const banner = `
╔══════════════════════════════════════╗
║      MarketMind API v2.0 (demo)      ║
║                                      ║
╚══════════════════════════════════════╝
`

func main() {
	fmt.Print(banner)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg.Print(log)

	// Reference data
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal("catalog load failed", zap.Error(err))
	}
	log.Info("catalog loaded",
		zap.Strings("symbols", cat.Symbols()),
		zap.Int("indices", len(cat.Indices())),
	)

	var seriesOpts []series.Option
	if cfg.SeriesSeed != 0 {
		seriesOpts = append(seriesOpts, series.WithSeed(cfg.SeriesSeed))
	}

	market := marketdata.NewService(cat, series.NewGenerator(seriesOpts...), marketdata.Options{
		HistoryDays:   cfg.HistoryDays,
		HistoryWindow: cfg.HistoryWindow,
		DefaultSymbol: cfg.DefaultSymbol,
		DefaultPeriod: cfg.DefaultPeriod,
	})

	// Graceful shutdown context
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(market, log, api.Options{
		Port:            cfg.Port,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
		RequestTimeout:  cfg.RequestTimeout,
	})
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	log.Info("shutdown complete")
}
