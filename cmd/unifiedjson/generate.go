package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/sheetgen"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input.json]",
		Short: "Regenerate a workbook from a unified JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, _ := cmd.Flags().GetString("output")
			if err := sheetgen.GenerateFile(args[0], outputPath); err != nil {
				return err
			}
			logger.Info("workbook written", "path", outputPath)
			fmt.Fprintln(cmd.OutOrStdout(), outputPath)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "output.xlsx", "Output workbook path")
	return cmd
}
