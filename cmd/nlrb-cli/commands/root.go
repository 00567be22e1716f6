package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"nlrb-data/internal/components/telemetry"
	"nlrb-data/internal/scrapers/nlrb"
	"nlrb-data/internal/scrapers/nlrb/transport"
	"nlrb-data/pkg/configutil"
	"nlrb-data/pkg/serviceutil"

	"github.com/spf13/cobra"
)

type Config struct {
	UserAgent               string               `json:"user_agent"`
	TimeoutSeconds          int                  `json:"timeout_seconds"`
	DelayMs                 int                  `json:"delay_ms"`
	DisableCloudflareBypass bool                 `json:"disable_cloudflare_bypass"`
	DumpDir                 string               `json:"dump_dir"`
	Verbose                 bool                 `json:"verbose"`
	Otlp                    telemetry.OtlpConfig `json:"otlp"`
}

var (
	configName string
	verbose    bool
	// shutdownTracing is set once tracing is installed by setup.
	shutdownTracing func(ctx context.Context) error
)

var rootCmd = &cobra.Command{
	Use:           "nlrb-cli",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "nlrb-cli is a CLI for scraping the NLRB case search.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configName, "config", "nlrb.json5", "The config file to look for, from the working directory upwards.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output.")
}

func ExecuteContext(ctx context.Context) {
	if err := execute(ctx, rootCmd); err != nil {
		serviceutil.Fatal("command failed", err)
	}
}

// execute runs the command and flushes traces whether or not it failed, cobra skips
// post-run hooks on error and Fatal exits without running defers.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	flushTracing()
	return err
}

func flushTracing() {
	if shutdownTracing == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := shutdownTracing(ctx)
	if err != nil {
		slog.Warn("failed to flush traces", "err", err)
	}
}

// readConfig loads the config file, running without one is allowed.
func readConfig() (Config, error) {
	cfg, err := configutil.ReadRecursively[Config](configName)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// setup initializes logging and tracing and then builds a scraper client from the config.
func setup(ctx context.Context) (*nlrb.Client, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	telemetry.InitSlog(verbose || cfg.Verbose)

	tracing, err := telemetry.SetupTracing(ctx, "nlrb-cli", cfg.Otlp)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}
	shutdownTracing = tracing.Shutdown

	tel := telemetry.NewSlogAPI(nil)
	fetcher, err := transport.New(transport.Options{
		UserAgent:               cfg.UserAgent,
		Timeout:                 time.Duration(cfg.TimeoutSeconds) * time.Second,
		DisableCloudflareBypass: cfg.DisableCloudflareBypass,
		DumpDir:                 cfg.DumpDir,
	}, tel)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	opts := []nlrb.Option{nlrb.WithTelemetry(tel)}
	if cfg.DelayMs > 0 {
		opts = append(opts, nlrb.WithDelay(time.Duration(cfg.DelayMs)*time.Millisecond))
	}
	return nlrb.NewClient(fetcher, opts...), nil
}
