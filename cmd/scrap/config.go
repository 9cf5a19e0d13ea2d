package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/scrap"
	"go.klb.dev/scrap/clip"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and SCRAP_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → SCRAP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("scrap")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/scrap/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/scrap", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("SCRAP")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	resolveLogging(v.GetString("log-format"), v.GetString("log-level"))
	return nil
}

// addCommonFlags adds the flags every sub-command carries.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "info", "log level: debug|info|warn|error")
}

// newBoard constructs the platform backend and an initialized Board over it.
// Deprecation notices are routed to debug logging: the CLI exists to drive
// the typed API, warning about it on every call would just be noise.
func newBoard() (*scrap.Board, error) {
	board := scrap.New(clip.New(), scrap.WithNotice(func(op string) error {
		slog.Debug("deprecated scrap call", "op", op)
		return nil
	}))
	if err := board.Init(); err != nil {
		return nil, err
	}
	return board, nil
}

// applyMode switches the board to the selection buffer when requested.
func applyMode(board *scrap.Board, selection bool) error {
	if !selection {
		return nil
	}
	if err := board.SetMode(scrap.ModeSelection); err != nil {
		return err
	}
	if board.Mode() != scrap.ModeSelection {
		slog.Warn("no selection buffer on this platform, using the clipboard")
	}
	return nil
}
