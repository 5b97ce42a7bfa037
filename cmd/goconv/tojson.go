package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newToJSONCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "tojson FILE",
		Short: "Print a JSON or YAML document as indented JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := decodeFile(args[0], cfg.Format, false)
			if r.IsFailure() {
				return fmt.Errorf("%s: %s", args[0], r.Message())
			}
			b, err := json.MarshalIndent(r.Value(), "", "  ")
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
