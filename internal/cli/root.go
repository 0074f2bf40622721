// Package cli wires the command tree: the bare binary opens the TUI,
// subcommands cover scripted use.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/clientflow/internal/auth"
	"github.com/sadopc/clientflow/internal/backup"
	"github.com/sadopc/clientflow/internal/config"
	"github.com/sadopc/clientflow/internal/logging"
	"github.com/sadopc/clientflow/internal/tui"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "clientflow",
	Short: "Customer success dashboard",
	Long:  "ClientFlow tracks client conversations, health scores, action items and response templates from the terminal.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}
		logging.Setup(os.Stderr, cfg.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/clientflow/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

func runTUI() error {
	// The TUI owns the terminal, so logs go to a file instead.
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = filepath.Join(cfg.DataDir, "clientflow.log")
	}
	closer, err := logging.SetupFile(logFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()

	env, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer env.Close()

	env.App.Bootstrap()

	if cfg.Backup.Enabled {
		mgr := backup.NewManager(env.Storage, cfg.Backup.Dir, cfg.Backup.Keep)
		stop, err := mgr.Schedule(cfg.Backup.Schedule)
		if err != nil {
			return err
		}
		defer stop()
		slog.Info("scheduled backups enabled", "schedule", cfg.Backup.Schedule, "dir", cfg.Backup.Dir)
	}

	app := tui.NewApp(env.App, auth.NewManager(env.Storage))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
