package main

import (
	"context"
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
	"github.com/woozymasta/quakemap/internal/snapshot"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Output     string        `short:"o" long:"out"     description:"Output directory"                            default:"snapshot"`
	Format     string        `short:"f" long:"format"  description:"Output format" choice:"json" choice:"yaml"  default:"json"`
	Timeout    time.Duration `short:"t" long:"timeout" description:"Overall fetch timeout"                       default:"1m"`
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

	opts.Logger.Setup()

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := quakeMap.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch overlays")
	}

	paths, err := snapshot.Write(opts.Output, opts.Format, quakeMap.Overlays())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to write snapshot")
	}

	log.Info().
		Strs("files", paths).
		Str("format", opts.Format).
		Dur("duration", time.Since(start)).
		Msg("Snapshot complete")
}
