package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRange returns the cell range (e.g., "A1:D10") bounding the non-empty
// cells of rows, or "" when every cell is empty.
func DataRange(rows [][]string) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
