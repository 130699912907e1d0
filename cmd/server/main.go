package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/woozymasta/quakemap/internal/config"
	"github.com/woozymasta/quakemap/internal/logger"
	"github.com/woozymasta/quakemap/internal/mapview"
	"github.com/woozymasta/quakemap/internal/observability"
	"github.com/woozymasta/quakemap/internal/overlay"
	"github.com/woozymasta/quakemap/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile      string        `short:"c" long:"config"           env:"CONFIG_FILE"      description:"Path to configuration file"   default:"config.yaml"`
	Addr            string        `short:"a" long:"addr"             env:"LISTEN_ADDRESS"   description:"Address to listen on"         default:"0.0.0.0"`
	Port            int           `short:"p" long:"port"             env:"LISTEN_PORT"      description:"Port to listen on"            default:"8080"`
	ShutdownTimeout time.Duration `short:"s" long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" description:"Graceful shutdown timeout"    default:"10s"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := &http.Client{Timeout: cfg.Fetch.Timeout}
	loader := overlay.NewLoader(client, observability.NewMetrics(),
		overlay.WithUserAgent(cfg.Fetch.UserAgent))

	quakeMap, err := mapview.New(cfg, loader)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build map")
	}

	srvCtx, err := server.NewServerContext(quakeMap)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server context")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	quakeMap.Start(ctx)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           server.RequestLogger(srvCtx.Routes()),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		// long-polled overlay requests end with the process
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().
		Str("addr", listenAddr).
		Float64("center_lat", cfg.Map.Center.Lat()).
		Float64("center_lng", cfg.Map.Center.Lng()).
		Int("zoom", cfg.Map.Zoom).
		Strs("active", cfg.Map.Active).
		Msg("Web server started")

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	quakeMap.Close()

	log.Info().Msg("Shutdown complete")
}
