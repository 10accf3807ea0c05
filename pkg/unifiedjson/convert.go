package unifiedjson

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/output"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/parser"
	"github.com/xuri/excelize/v2"
)

// Result is the outcome of one conversion.
type Result struct {
	// Document is the assembled unified document.
	Document *models.Document
	// Sheets describes every sheet of the workbook in workbook order.
	Sheets []models.SheetSummary
	// Warnings lists the non-fatal conditions found, in the order found.
	Warnings []models.Warning
}

// Convert reads an xlsx workbook from r and assembles the unified document.
func Convert(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewConversionError("open", "", fmt.Errorf("%w: %v", ErrOpenWorkbook, err))
	}
	defer f.Close()

	return convertFile(f, opts)
}

// ConvertFile converts the workbook at inputPath and writes the unified
// document to outputPath, replacing any existing file.
func ConvertFile(inputPath, outputPath string, opts Options) (*Result, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, NewConversionError("open", inputPath, fmt.Errorf("%w: %v", ErrOpenWorkbook, err))
	}
	defer in.Close()

	result, err := Convert(in, opts)
	if err != nil {
		return nil, err
	}

	if err := output.WriteFile(outputPath, result.Document); err != nil {
		return nil, NewConversionError("write", outputPath, fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	return result, nil
}

func convertFile(f *excelize.File, opts Options) (*Result, error) {
	logger := opts.logger()
	result := &Result{}
	warn := func(w models.Warning) {
		result.Warnings = append(result.Warnings, w)
		logger.Warn(w.Reason, "sheet", w.Sheet, "row", w.Row, "header", w.Header)
	}

	b := newBuckets()
	rt := &router{b: b, codeValueKey: opts.codeValueKeyField(), warn: warn}
	cells := parser.NewCellReader(f)

	for _, sheetName := range f.GetSheetList() {
		sheet, err := parser.ExtractRecords(f, cells, sheetName, warn)
		if err != nil {
			return nil, NewConversionError("extract", sheetName, err)
		}

		role := models.ResolveSheetRole(sheetName)
		rt.route(role, sheet)

		result.Sheets = append(result.Sheets, models.SheetSummary{
			Name:      sheetName,
			Role:      role,
			Headers:   sheet.Headers,
			Records:   len(sheet.Records),
			Skipped:   sheet.Skipped,
			DataRange: sheet.DataRange,
		})
		logger.Debug("sheet read", "sheet", sheetName, "role", role.String(), "records", len(sheet.Records))
	}

	result.Document = assemble(b)
	logger.Info("workbook converted",
		slog.Int("assets", result.Document.ReferenceDataAssets.Len()),
		slog.Int("code_values", result.Document.CodeValues.Len()),
		slog.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}
