package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mnightingale/morse"
)

func newAlphabetCommand() *cobra.Command {
	var noHeader bool

	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Print the supported characters with their patterns and code words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if !noHeader {
				fmt.Fprintf(w, "CHAR\tPATTERN\tCODE\t\n")
			}
			for _, r := range morse.Alphabet() {
				seq, _ := morse.Pattern(r)
				code, _ := morse.CodeWord(r)

				name := string(r)
				if r == ' ' {
					name = "SPACE"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t\n", name, morse.FormatPattern(seq), code)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&noHeader, "no-headers", false, "Hide table headers")

	return cmd
}
