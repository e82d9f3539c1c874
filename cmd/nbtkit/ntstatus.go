package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vskvj3/nbtkit/internal/codederr"
)

// ntstatusArg is the argument to "codes" that lists NTSTATUS values.
const ntstatusArg = "ntstatus"

var errUnknownStatus = errors.New("unknown NTSTATUS")

func printStatuses(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tSEVERITY")
	for _, s := range codederr.Statuses() {
		sev, _ := codederr.SeverityName(s.Fields().Severity)
		fmt.Fprintf(w, "0x%08X\t%s\t%s\n", s.Code, s.Name, sev)
	}
	return w.Flush()
}

// newNTStatusCmd looks up a status by code or name and breaks down its
// subfields. Codes that are not in the table are still parsed.
func newNTStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ntstatus <code|name>",
		Short: "Describe an NTSTATUS value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				st    codederr.NTStatus
				known bool
			)
			if n, err := strconv.ParseUint(args[0], 0, 32); err == nil {
				st, known = codederr.LookupStatus(uint32(n))
				st.Code = uint32(n)
			} else {
				st, known = codederr.LookupStatusName(args[0])
				if !known {
					return errors.Wrapf(errUnknownStatus, "%q", args[0])
				}
			}

			f := st.Fields()
			sev, _ := codederr.SeverityName(f.Severity)
			out := cmd.OutOrStdout()
			if known {
				fmt.Fprintf(out, "%s\n%s\n", st, st.Desc)
			} else {
				fmt.Fprintf(out, "0x%08X (not in table)\n", st.Code)
			}
			fmt.Fprintf(out, "severity=%s customer=%d reserved=%d facility=%d subcode=%d\n",
				sev, f.Customer, f.Reserved, f.Facility, f.SubCode)
			return nil
		},
	}
}
