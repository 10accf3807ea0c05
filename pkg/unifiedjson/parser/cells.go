// Package parser reads typed records from workbook sheets.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
	"github.com/xuri/excelize/v2"
)

// Cell is the typed result of reading one spreadsheet cell.
type Cell struct {
	// Value is the typed cell value.
	Value models.CellValue
	// Reason is set when the cell could not be typed and Value is Null.
	Reason string
	// Absent is set when the cell does not exist in the row.
	Absent bool
}

// CellReader converts cells of one workbook into typed values.
type CellReader struct {
	f          *excelize.File
	date1904   bool
	dateStyles map[int]bool
}

// NewCellReader returns a CellReader for f. The workbook's date system
// (1900 or 1904) is read once.
func NewCellReader(f *excelize.File) *CellReader {
	r := &CellReader{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// ReadCell types the cell at cellName, whose raw (unformatted) value is raw.
func (r *CellReader) ReadCell(sheetName, cellName, raw string) Cell {
	if formula, err := r.f.GetCellFormula(sheetName, cellName); err == nil && formula != "" {
		return Cell{Reason: models.ReasonFormula}
	}

	cellType, err := r.f.GetCellType(sheetName, cellName)
	if err != nil {
		return Cell{Reason: models.ReasonUnknownType}
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return Cell{Value: models.Text(raw)}
	case excelize.CellTypeBool:
		return Cell{Value: models.Bool(raw == "1" || strings.EqualFold(raw, "true"))}
	case excelize.CellTypeError:
		return Cell{Reason: models.ReasonErrorCell}
	case excelize.CellTypeFormula:
		return Cell{Reason: models.ReasonFormula}
	case excelize.CellTypeDate:
		return parseISODate(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return r.readNumeric(sheetName, cellName, raw)
	}
	return Cell{Reason: models.ReasonUnknownType}
}

// readNumeric types a cell stored without a string type.
func (r *CellReader) readNumeric(sheetName, cellName, raw string) Cell {
	styleIdx, _ := r.f.GetCellStyle(sheetName, cellName)
	if strings.TrimSpace(raw) == "" {
		// A styled empty cell exists in the sheet; an unstyled one is a gap.
		if styleIdx != 0 {
			return Cell{Reason: models.ReasonBlankCell}
		}
		return Cell{Absent: true}
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Cell{Reason: models.ReasonInvalidNumber}
	}

	if r.isDateStyle(styleIdx) {
		// Only the calendar date is kept, so the time of day is dropped
		// before conversion.
		t, err := excelize.ExcelDateToTime(math.Floor(num), r.date1904)
		if err != nil {
			return Cell{Reason: models.ReasonInvalidNumber}
		}
		return Cell{Value: models.Date(t)}
	}
	return Cell{Value: models.Number(num)}
}

// isDateStyle reports whether the style's number format renders a date.
func (r *CellReader) isDateStyle(styleIdx int) bool {
	if styleIdx == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleIdx]; ok {
		return isDate
	}
	isDate := false
	if style, err := r.f.GetStyle(styleIdx); err == nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = IsBuiltInDateFormat(style.NumFmt)
		}
	}
	r.dateStyles[styleIdx] = isDate
	return isDate
}

// parseISODate reads a cell stored with the ISO 8601 date type.
func parseISODate(raw string) Cell {
	if len(raw) >= len(models.DateLayout) {
		if t, err := time.Parse(models.DateLayout, raw[:len(models.DateLayout)]); err == nil {
			return Cell{Value: models.Date(t)}
		}
	}
	return Cell{Reason: models.ReasonInvalidNumber}
}

// IsBuiltInDateFormat reports whether a built-in number format id is a
// date or time format.
func IsBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58,
		id >= 71 && id <= 81:
		return true
	}
	return false
}

// IsDateFormatCode reports whether a custom number format code renders a
// date. Only the first section is considered; quoted literals, escaped
// characters and bracketed colors or conditions are ignored.
func IsDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote := false
scan:
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if inQuote {
			if ch == '"' {
				inQuote = false
			}
			continue
		}
		switch ch {
		case '"':
			inQuote = true
		case '\\', '_', '*':
			i++
		case ';':
			break scan
		case '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				break scan
			}
			switch strings.ToLower(code[i+1 : i+end]) {
			case "h", "hh", "m", "mm", "s", "ss":
				return true
			}
			i += end
		default:
			b.WriteByte(ch)
		}
	}

	s := strings.ToLower(b.String())
	if strings.Contains(s, "general") {
		return false
	}
	return strings.ContainsAny(s, "ymdhs")
}
