package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInfoCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show backend and clipboard state",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindViper(cmd, v)
		},
		RunE: func(_ *cobra.Command, _ []string) error { return runInfo() },
	}

	addCommonFlags(cmd)
	return cmd
}

func runInfo() error {
	board, err := newBoard()
	if err != nil {
		return err
	}
	backend := board.Backend()
	defer backend.Close()

	lost, err := board.Lost()
	if err != nil {
		return err
	}
	types, err := board.Types()
	if err != nil {
		return err
	}
	typesCol := "-"
	if len(types) > 0 {
		typesCol = strings.Join(types, ",")
	}

	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Backend:\t%s\n", backend.Name())
	fmt.Fprintf(w, "Selection buffer:\t%t\n", backend.SupportsSelection())
	fmt.Fprintf(w, "Owned by us:\t%t\n", !lost)
	fmt.Fprintf(w, "Has text:\t%t\n", board.HasText())
	fmt.Fprintf(w, "Types:\t%s\n", typesCol)
	return w.Flush()
}
