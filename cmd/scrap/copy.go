package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/scrap/clip"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy stdin to the clipboard (like pbcopy)",
		Long: `Reads stdin and places it on the clipboard under the given MIME type.

To copy an image:

  scrap copy --mime image/png < screenshot.png

With --selection the X11 PRIMARY selection is written instead, on platforms
that have one.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runCopy(v) },
	}

	f := cmd.Flags()
	f.String("mime", clip.TypeText, "MIME type of the data being copied")
	f.Bool("selection", false, "target the X11 PRIMARY selection")
	addCommonFlags(cmd)

	return cmd
}

func runCopy(v *viper.Viper) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	mime := v.GetString("mime")
	selection := v.GetBool("selection")

	board, err := newBoard()
	if err != nil {
		return err
	}
	defer board.Backend().Close()

	if mime == clip.TypeText && !selection {
		return board.PutText(string(data))
	}
	if err := applyMode(board, selection); err != nil {
		return err
	}
	return board.Put(mime, data)
}
