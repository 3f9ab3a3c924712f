package tools

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tool specifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		entries := svc.List(cmd.Context())
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tools found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tName\tProperties\tRequired\tDescription")

		for _, entry := range entries {
			if entry.Tool == nil {
				fmt.Fprintf(w, "%s\t[invalid]\t-\t-\t%s\n", entry.ID, preview(entry.Err.Error()))
				continue
			}
			tool := entry.Tool
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				entry.ID,
				tool.Name,
				len(tool.Parameters.Properties),
				strings.Join(tool.Parameters.Required, ","),
				preview(tool.Description),
			)
		}
		return w.Flush()
	},
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 50 {
		s = s[:47] + "..."
	}
	if s == "" {
		s = "[empty]"
	}
	return s
}
