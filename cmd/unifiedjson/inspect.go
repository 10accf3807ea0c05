package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
)

// inspectReport is the machine-readable form of the inspect command.
type inspectReport struct {
	Sheets   []models.SheetSummary `json:"sheets" yaml:"sheets"`
	Warnings []models.Warning      `json:"warnings" yaml:"warnings"`
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Show how each sheet of a workbook is read",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().String("format", "table", "Output format: table, json, yaml")
	cmd.Flags().String("code-value-key", unifiedjson.DefaultCodeValueKeyField, "Header identifying a code value")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("file not found: %s", args[0])
	}
	defer in.Close()

	// Warnings are reported in the output instead of the log.
	result, err := unifiedjson.Convert(in, cfg.ConvertOptions())
	if err != nil {
		return err
	}
	report := inspectReport{Sheets: result.Sheets, Warnings: result.Warnings}

	w := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "table":
		writeInspectTable(w, report)
		return nil
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(report)
	}
	return fmt.Errorf("invalid format: %s (must be table, json, or yaml)", format)
}

func writeInspectTable(w io.Writer, report inspectReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Sheet", "Role", "Headers", "Records", "Range", "Status"})
	for _, s := range report.Sheets {
		status := "ok"
		if s.Skipped {
			status = "skipped"
		}
		t.AppendRow(table.Row{s.Name, s.Role.String(), len(s.Headers), s.Records, s.DataRange, status})
	}
	t.Render()

	if len(report.Warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d warning(s):\n", len(report.Warnings))
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "  - %s\n", warning)
	}
}
