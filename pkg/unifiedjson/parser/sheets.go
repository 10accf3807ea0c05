package parser

import (
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
	"github.com/xuri/excelize/v2"
)

// WarnFunc receives non-fatal conditions found while reading a sheet.
type WarnFunc func(models.Warning)

// SheetRecords holds the records extracted from one sheet.
type SheetRecords struct {
	// Name is the sheet name.
	Name string
	// Headers are the header cells of the first row, verbatim.
	Headers []string
	// Records are the data rows in sheet order.
	Records []*models.Record
	// RowNumbers holds the 1-based row number of each record.
	RowNumbers []int
	// Skipped is set when the sheet had no data rows or no header row.
	Skipped bool
	// DataRange is the bounding range of non-empty cells.
	DataRange string
}

// ExtractRecords reads a sheet's header row and data rows into records.
// Sheets without data rows or without a header row are skipped with a
// warning; the returned SheetRecords then holds no records.
func ExtractRecords(f *excelize.File, cells *CellReader, sheetName string, warn WarnFunc) (*SheetRecords, error) {
	rows, err := readRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	result := &SheetRecords{Name: sheetName, DataRange: DataRange(rows)}
	if len(rows) <= 1 {
		warn(models.Warning{Sheet: sheetName, Reason: models.ReasonEmptySheet})
		result.Skipped = true
		return result, nil
	}
	if len(rows[0]) == 0 {
		warn(models.Warning{Sheet: sheetName, Reason: models.ReasonNoHeader})
		result.Skipped = true
		return result, nil
	}
	result.Headers = rows[0]

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 // 1-based row number
		record := models.NewRecord()

		// Cells past the end of row may still exist as styled blanks.
		for colIdx, header := range result.Headers {
			if header == "" {
				continue
			}
			raw := ""
			if colIdx < len(row) {
				raw = row[colIdx]
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}

			cell := cells.ReadCell(sheetName, cellName, raw)
			if cell.Absent {
				continue
			}
			if cell.Reason != "" {
				warn(models.Warning{Sheet: sheetName, Row: rowNum, Header: header, Reason: cell.Reason})
			}
			record.Set(header, cell.Value)
		}

		// A row without any present cell is a gap.
		if record.Len() == 0 {
			continue
		}
		result.Records = append(result.Records, record)
		result.RowNumbers = append(result.RowNumbers, rowNum)
	}

	return result, nil
}

// readRows returns the raw cell values of every row of the sheet, including
// trailing rows whose cells are all blank.
func readRows(f *excelize.File, sheetName string) ([][]string, error) {
	it, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var rows [][]string
	for it.Next() {
		row, err := it.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, it.Error()
}
