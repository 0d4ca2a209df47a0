package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cobraops/cobraops/internal/config"
)

var (
	configLoader *config.Loader
	globalConfig *config.Config
	cfgFile      string
)

var rootCmd = &cobra.Command{
	Use:   "cobraassign",
	Short: "Fiber-positioner target assignment and collision resolution",
	Long: `cobraassign assigns science targets to fiber positioners ("cobras")
and resolves collisions between their fibers.

It provides:
- A distance-greedy bipartite assignment between targets and cobras
- Collision detection and repair between neighboring cobras
- A CLI for running assignment over fixture files
- An HTTP API for the same operation
- A synthetic bench/target generator for development and benchmarking

Examples:
  cobraassign assign --bench bench.yaml --targets targets.yaml
  cobraassign genbench --rings 3 --output bench.yaml
  cobraassign serve --port 8080`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	if cfg.Verbose {
		level = slog.LevelDebug
	} else {
		switch cfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is search in ., $HOME, $HOME/.config/cobraassign, /etc/cobraassign)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("cobraassign: failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("cobraassign: failed to bind flag: %v", err))
	}
}

func initConfig() {
	configLoader = config.NewLoader()
}

// GetConfig loads and validates the configuration on every call, applies
// its logging settings, and returns it.
func GetConfig() *config.Config {
	loader := GetConfigLoader()

	var err error
	if cfgFile != "" {
		globalConfig, err = loader.LoadWithFile(cfgFile)
	} else {
		globalConfig, err = loader.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cobraassign: error loading configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(globalConfig)
	return globalConfig
}

// GetConfigLoader returns the shared configuration loader.
func GetConfigLoader() *config.Loader {
	if configLoader == nil {
		configLoader = config.NewLoader()
	}
	return configLoader
}
