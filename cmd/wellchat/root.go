package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wellchat/internal/config"
	"wellchat/internal/engine"
	"wellchat/internal/logging"
	"wellchat/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:     "wellchat",
	Short:   "Chat assistant for well completion report analysis",
	Long:    "wellchat answers questions about well completion reports:\nextracted parameters, nodal analysis results, optimization advice,\nand production limitations.",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg == nil {
			cfg = config.DefaultConfig()
		}

		log, err := openLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		// A missing engine is not fatal: the chat still answers
		// general questions, /analyze reports the reason.
		eng, engineErr := engine.NewBridge(cfg.PythonPath, cfg.ScriptPath, log)

		app := tui.NewApp(cfg, nilIfErr(eng, engineErr), engineErr, log)
		p := tea.NewProgram(
			app,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)

		_, err = p.Run()
		return err
	},
}

func nilIfErr(b *engine.Bridge, err error) engine.Engine {
	if err != nil {
		return nil
	}
	return b
}

func openLogger(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.LogFile
	if path == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return zap.NewNop(), nil
		}
		path = filepath.Join(dir, "wellchat.log")
	}
	return logging.New(path)
}
