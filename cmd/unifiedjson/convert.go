package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/output"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert a workbook to a unified JSON document",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().String("code-value-key", unifiedjson.DefaultCodeValueKeyField, "Header identifying a code value")
	cmd.Flags().Bool("compact", false, "Write compact JSON to stdout")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := cfg.ConvertOptions()
	opts.Logger = logger.With("input", inputPath)

	if outputPath != "" {
		result, err := unifiedjson.ConvertFile(inputPath, outputPath, opts)
		if err != nil {
			return err
		}
		logger.Info("document written", "path", outputPath, "warnings", len(result.Warnings))
		return nil
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	result, err := unifiedjson.Convert(in, opts)
	if err != nil {
		return err
	}
	jsonData, err := output.ToJSON(result.Document, !cfg.Compact)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(jsonData)
	return err
}
