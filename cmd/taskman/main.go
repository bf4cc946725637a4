// Package main provides the taskman entry point: an interactive
// terminal interface by default, plus plain subcommands for scripting.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskman/internal/app"
	"taskman/internal/config"
	"taskman/internal/task"
)

var (
	configPath string
	dataDir    string
	backend    string
	verbose    bool
	assumeYes  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "taskman - a local task manager",
	Long: `taskman keeps short task records (title, description, due date,
priority, status) in a local store, with filtering, search and theming.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg = config.FromEnv(cfg)
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backend != "" {
		cfg.Backend = config.Backend(backend)
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func openApp(confirm task.ConfirmFunc, onToastChange func()) (*app.App, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	a, err := app.New(cfg, app.Options{
		Confirm:       confirm,
		OnToastChange: onToastChange,
		Logger:        logger,
	})
	if err != nil {
		return nil, config.Config{}, err
	}
	return a, cfg, nil
}

func runInteractive() error {
	toastCh := make(chan struct{}, 8)
	notifyToasts := func() {
		select {
		case toastCh <- struct{}{}:
		default:
		}
	}

	// The interface asks through its own modal before calling Delete,
	// so the store-level gate always affirms.
	a, cfg, err := openApp(func(string) bool { return true }, notifyToasts)
	if err != nil {
		return err
	}
	defer a.Close()

	m := newTUIModel(a, cfg.Debounce(), toastCh)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "taskman.yml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file, sqlite or memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(addCmd, listCmd, doneCmd, rmCmd, backupCmd, restoreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
