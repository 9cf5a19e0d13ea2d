package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/scrap/clip"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Print the clipboard to stdout (like pbpaste)",
		Long: `Retrieves the clipboard payload for the given MIME type and writes it to
stdout. If the clipboard holds nothing under that type, nothing is printed
(exit 0). To retrieve an image:

  scrap paste --mime image/png > screenshot.png`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runPaste(v) },
	}

	f := cmd.Flags()
	f.String("mime", clip.TypeText, "MIME type to output")
	f.Bool("selection", false, "read the X11 PRIMARY selection")
	addCommonFlags(cmd)

	return cmd
}

func runPaste(v *viper.Viper) error {
	mime := v.GetString("mime")
	selection := v.GetBool("selection")

	board, err := newBoard()
	if err != nil {
		return err
	}
	defer board.Backend().Close()

	if mime == clip.TypeText && !selection {
		text, err := board.GetText()
		if err != nil {
			return err
		}
		if text != "" {
			fmt.Print(text)
		}
		return nil
	}

	if err := applyMode(board, selection); err != nil {
		return err
	}
	data, err := board.Get(mime)
	if err != nil {
		return err
	}
	if data == nil {
		// Requested type not present — exit 0, print nothing.
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}
