package cmd

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/infobar/internal/config"
	"github.com/ytget/infobar/internal/connectivity"
	"github.com/ytget/infobar/internal/demo"
	"github.com/ytget/infobar/internal/logger"
	"github.com/ytget/infobar/internal/platform"
	"github.com/ytget/infobar/internal/ui"
)

const (
	AppName = "InfoBar Demo"

	WindowWidth  = 420
	WindowHeight = 760
)

// Flag names
const (
	FlagConfigDir = "config-dir"
	FlagLogLevel  = "log-level"
	FlagEnv       = "env"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "infobar",
		Short:   "infobar runs the animated banner demo application.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String(FlagConfigDir, ".", "directory holding the .env config file")
	cmd.PersistentFlags().String(FlagLogLevel, "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String(FlagEnv, "development", "environment (development, production)")
	cmd.SetVersionTemplate(versionTemplate())

	cmd.AddCommand(configCmd())
	return cmd
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadOptions(cmd *cobra.Command) []config.LoadOption {
	flags := cmd.Flags()
	return []config.LoadOption{
		config.WithFlag("INFOBAR_LOG_LEVEL", flags.Lookup(FlagLogLevel)),
		config.WithFlag("INFOBAR_ENV", flags.Lookup(FlagEnv)),
	}
}

func runDemo(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString(FlagConfigDir)

	cfg, err := config.Load(dir, loadOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	log := logger.Named("cmd")
	log.Info("Starting demo",
		zap.String("version", version),
		zap.String("env", cfg.Environment),
		zap.String("app_id", cfg.AppID))

	a := app.NewWithID(cfg.AppID)
	a.Settings().SetTheme(ui.NewBannerTheme())

	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	monitor := connectivity.NewMonitor(platform.NewInterfaceWatcher(nil, cfg.Timing.ProbeInterval))
	screen := demo.NewScreen(w, a,
		demo.WithMonitor(monitor),
		demo.WithStateOptions(cfg.HostStateOptions()...),
	)
	defer screen.Close()

	watcher, err := config.Watch(dir, func(next *config.AppConfig) {
		logger.SetLevel(next.LogLevel)
		screen.ApplyConfig(next)
	}, func(err error) {
		log.Warn("Ignoring invalid config change", zap.Error(err))
	}, loadOptions(cmd)...)
	switch {
	case err == nil:
		defer watcher.Stop()
		log.Debug("Watching config", zap.String("dir", dir), zap.String("log_level", watcher.Current().LogLevel))
	case errors.Is(err, config.ErrNoConfigFile):
		log.Debug("No config file, running with defaults", zap.String("dir", dir))
	default:
		log.Warn("Config watch disabled", zap.Error(err))
	}

	w.ShowAndRun()
	return nil
}
