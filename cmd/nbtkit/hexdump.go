package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vskvj3/nbtkit/internal/hexdump"
	"github.com/vskvj3/nbtkit/internal/utils"
)

func newHexdumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hexdump <file|->",
		Short: "Hex dump a file, or stdin when the argument is -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", args[0])
			}

			utils.GetLogger().Debug("dumping input", utils.Field{Key: "bytes", Value: len(data)})
			fmt.Fprint(cmd.OutOrStdout(), hexdump.Dump(data))
			return nil
		},
	}
}

func newHexstrCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "hexstr <text>",
		Short: "Escape non-printing bytes and wrap the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == 0 {
				width = a.cfg.HexLineMax
			}
			lines, err := hexdump.StrChop([]byte(args[0]), width)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "maximum line width (default from config)")
	return cmd
}
