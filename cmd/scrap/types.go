package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTypesCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the format types currently on the clipboard",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindViper(cmd, v)
		},
		RunE: func(_ *cobra.Command, _ []string) error { return runTypes(v) },
	}

	cmd.Flags().Bool("selection", false, "inspect the X11 PRIMARY selection")
	addCommonFlags(cmd)

	return cmd
}

func runTypes(v *viper.Viper) error {
	board, err := newBoard()
	if err != nil {
		return err
	}
	defer board.Backend().Close()

	if err := applyMode(board, v.GetBool("selection")); err != nil {
		return err
	}
	types, err := board.Types()
	if err != nil {
		return err
	}
	for _, typ := range types {
		fmt.Println(typ)
	}
	return nil
}
