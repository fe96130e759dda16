package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/enginepages/content"
)

var (
	exportFormat string
	exportOutput string
	exportSchema bool
)

var exportCmd = &cobra.Command{
	Use:   "export [brand [engine]]",
	Short: "Dump the content table, one brand or one engine page",
	Long: `Dump content as JSON or YAML. With no arguments the whole table is
written, keyed by brand. With --schema only the JSON-LD graph of the named
engine is written.`,
	Args: cobra.MaximumNArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		exportFormat = strings.ToLower(exportFormat)
		if exportFormat == "yml" {
			exportFormat = "yaml"
		}
		if exportFormat != "json" && exportFormat != "yaml" {
			return fmt.Errorf("unsupported format %q: use json or yaml", exportFormat)
		}
		if exportSchema && len(args) != 2 {
			return fmt.Errorf("--schema needs a brand and an engine")
		}
		return nil
	},
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().BoolVar(&exportSchema, "schema", false, "Export only the JSON-LD graph")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	v, err := exportValue(content.Default(), args, exportSchema)
	if err != nil {
		return err
	}
	data, err := encode(v, exportFormat)
	if err != nil {
		return err
	}
	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", exportOutput)
	return nil
}

// exportValue selects what to dump for the given positional arguments.
func exportValue(tbl content.Table, args []string, schemaOnly bool) (any, error) {
	switch len(args) {
	case 0:
		all := make(map[string]content.BrandData)
		for _, slug := range tbl.Brands() {
			b, err := tbl.Brand(slug)
			if err != nil {
				return nil, err
			}
			all[slug] = b
		}
		return all, nil
	case 1:
		return tbl.Brand(args[0])
	}
	p, err := tbl.Lookup(args[0], args[1])
	if err != nil {
		return nil, err
	}
	if schemaOnly {
		return p.Schema, nil
	}
	return p, nil
}

func encode(v any, format string) ([]byte, error) {
	if format == "yaml" {
		var sb strings.Builder
		enc := yaml.NewEncoder(&sb)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

