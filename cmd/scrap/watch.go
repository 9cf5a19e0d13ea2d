package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/scrap"
)

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Log clipboard changes until interrupted",
		Long: `Watches the clipboard and logs the available format types whenever its
content changes. At debug level a short text preview is logged as well.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runWatch() },
	}

	addCommonFlags(cmd)
	return cmd
}

func runWatch() error {
	board, err := newBoard()
	if err != nil {
		return err
	}
	backend := board.Backend()
	defer backend.Close()

	slog.Info("watching clipboard", "backend", backend.Name())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sig:
			slog.Info("stopping")
			return nil
		case <-backend.Watch():
			logChange(board)
		}
	}
}

// logChange logs the new clipboard state at INFO (format types) and DEBUG
// (text preview up to 120 chars).
func logChange(board *scrap.Board) {
	types, err := board.Types()
	if err != nil {
		slog.Error("clipboard read failed", "err", err)
		return
	}
	slog.Info("clipboard changed", "types", types)

	if text, err := board.GetText(); err == nil && text != "" {
		preview := text
		if len(preview) > 120 {
			preview = preview[:120] + "…"
		}
		slog.Debug("clipboard text", "preview", preview)
	}
}
