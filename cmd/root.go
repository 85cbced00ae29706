package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/folio-term/folio/internal/config"
	"github.com/folio-term/folio/internal/logging"
	"github.com/folio-term/folio/internal/ui"
	"github.com/folio-term/folio/internal/version"
)

var (
	cfgFile  string
	cfg      config.Config
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:          "folio",
	Short:        "Terminal portfolio with a live calculator and countdown timer",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFile(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		closeLog, err = logging.Setup(cfg.Log)
		if err != nil {
			return err
		}
		slog.Debug("config loaded", "theme", cfg.Theme, "timer", cfg.Timer.Default)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog == nil {
			return nil
		}
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(cfg)
	},
}

func Execute() error {
	rootCmd.Version = version.Get().Version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/folio/config.yaml)")
	rootCmd.AddCommand(tuiCmd, calcCmd, timerCmd, projectsCmd, versionCmd)
}
