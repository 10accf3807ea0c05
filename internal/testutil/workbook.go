package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet of a test workbook. Rows are written from
// A1 downwards; a nil row leaves that row empty.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// NewWorkbook builds a workbook holding sheets in order.
// The caller must close the returned file.
func NewWorkbook(t testing.TB, sheets ...Sheet) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("create sheet %q: %v", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			if row == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				t.Fatalf("write row %d of %q: %v", r+1, sheet.Name, err)
			}
		}
	}
	return f
}

// WorkbookBytes serializes a workbook built from sheets.
func WorkbookBytes(t testing.TB, sheets ...Sheet) []byte {
	t.Helper()

	f := NewWorkbook(t, sheets...)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.Clone(buf.Bytes())
}

// WriteWorkbook saves a workbook built from sheets into a temp dir and
// returns its path.
func WriteWorkbook(t testing.TB, sheets ...Sheet) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := os.WriteFile(path, WorkbookBytes(t, sheets...), 0644); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// HierarchyHeaders returns the header row of a hierarchy sheet.
func HierarchyHeaders() []interface{} {
	return []interface{}{"Parent", "Child 1", "Child 2", "Child 3", "Child 4", "Child 5", "Child 6", "Child 7", "Child 8"}
}

// WithErrorCell rewrites cell of the sheetIndex-th worksheet (1-based) in the
// serialized workbook data as an error cell holding value, e.g. "#DIV/0!".
// The cell must already exist in the sheet.
func WithErrorCell(t testing.TB, data []byte, sheetIndex int, cell, value string) []byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open workbook archive: %v", err)
	}
	part := fmt.Sprintf("xl/worksheets/sheet%d.xml", sheetIndex)
	cellElem := regexp.MustCompile(`<c r="` + regexp.QuoteMeta(cell) + `"[^>]*?(/>|>.*?</c>)`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	replaced := false
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("read %s: %v", zf.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", zf.Name, err)
		}
		if zf.Name == part {
			loc := cellElem.FindIndex(content)
			if loc == nil {
				t.Fatalf("cell %s not found in %s", cell, part)
			}
			elem := fmt.Sprintf(`<c r="%s" t="e"><v>%s</v></c>`, cell, value)
			content = append(append(append([]byte{}, content[:loc[0]]...), elem...), content[loc[1]:]...)
			replaced = true
		}
		w, err := zw.Create(zf.Name)
		if err != nil {
			t.Fatalf("write %s: %v", zf.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("write %s: %v", zf.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close workbook archive: %v", err)
	}
	if !replaced {
		t.Fatalf("worksheet part %s not found", part)
	}
	return buf.Bytes()
}
