package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *config) *cobra.Command {
	var allowDup bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report parse errors and repeated object keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false
			for _, path := range args {
				r := decodeFile(path, cfg.Format, !allowDup)
				if r.IsFailure() {
					failed = true
					for _, line := range strings.Split(r.Message(), "\n") {
						fmt.Fprintf(out, "%s: %s\n", path, line)
					}
					continue
				}
				fmt.Fprintf(out, "%s: ok\n", path)
			}
			if failed {
				return errFindings
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowDup, "allow-duplicates", false, "accept repeated object keys in JSON input")
	return cmd
}
