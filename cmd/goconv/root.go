package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/goconv"
	"github.com/reoring/goconv/i18n"
	"github.com/reoring/goconv/source/yaml"
)

// errFindings signals that a command reported problems on stdout already.
var errFindings = errors.New("findings reported")

func newRootCmd() *cobra.Command {
	cfg := config{Lang: "en", Format: "auto"}
	root := &cobra.Command{
		Use:           "goconv",
		Short:         "Decode and check JSON and YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				cfg.Format = loaded.Format
			}
			cfg.Lang = loaded.Lang
			i18n.SetLanguage(cfg.Lang)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfg.Format, "format", "auto", "input format: auto, json or yaml")

	root.AddCommand(newCheckCmd(&cfg), newToJSONCmd(&cfg))
	return root
}

// decodeFile reads one document. strict rejects repeated keys in JSON input.
func decodeFile(path, format string, strict bool) goconv.Result[any] {
	data, err := os.ReadFile(path)
	if err != nil {
		return goconv.Fail[any](err.Error())
	}
	switch detectFormat(path, format) {
	case "yaml":
		return yaml.Decode(data)
	case "json":
		if strict {
			return goconv.StrictJSONBytes(data)
		}
		return goconv.JSONBytes(data)
	default:
		return goconv.Failf[any]("unknown format %q", format)
	}
}

func detectFormat(path, format string) string {
	if format != "auto" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
