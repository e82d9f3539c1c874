package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vskvj3/nbtkit/internal/codederr"
	"github.com/vskvj3/nbtkit/internal/utils"
)

func newCodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "codes [suite|ntstatus]",
		Short: "List the codes registered for an error suite, or the NTSTATUS table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if strings.EqualFold(args[0], ntstatusArg) {
					return printStatuses(cmd.OutOrStdout())
				}
				a.suite = args[0]
			}
			r, err := a.registry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tLABEL\tCLASS")
			for _, code := range r.Codes() {
				label, _ := r.Describe(code)
				class := "error"
				if code == r.WarningCode() {
					class = "warning"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", code, label, class)
			}
			return w.Flush()
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <code>",
		Short: "Print the label of an error code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			label, err := r.Describe(code)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			return nil
		},
	}
}

// newRaiseCmd builds a coded error and reports it the way a protocol layer
// would: warnings are logged and the command succeeds, anything else fails.
func newRaiseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raise <code> [detail]",
		Short: "Render a coded error and show how it is classified",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}

			var detail []string
			if len(args) == 2 {
				detail = append(detail, args[1])
			}
			coded, err := r.Lookup(code, detail...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, coded.Error())
			fmt.Fprintf(out, "grpc: %s\n", codederr.ToStatus(coded).Code())
			return utils.GetLogger().Report(coded)
		},
	}
}

func parseCode(s string) (int, error) {
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid error code %q", s)
	}
	return code, nil
}
