// Package sheetgen regenerates a reference data workbook from a unified
// JSON document.
package sheetgen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
	"github.com/tidwall/jsonc"
	"github.com/xuri/excelize/v2"
)

// dateNumFmt is the built-in "m/d/yyyy" number format.
const dateNumFmt = 14

// ReadDocument reads a unified JSON document. Comments and trailing commas
// are accepted.
func ReadDocument(path string) (*models.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(raw)
}

// ParseDocument decodes a unified JSON document.
func ParseDocument(raw []byte) (*models.Document, error) {
	doc := models.NewDocument()
	if err := json.Unmarshal(jsonc.ToJSON(raw), doc); err != nil {
		return nil, err
	}
	if doc.ReferenceDataAssets == nil {
		doc.ReferenceDataAssets = models.NewIndex[*models.Asset]()
	}
	if doc.CodeValues == nil {
		doc.CodeValues = models.NewIndex[*models.CodeValue]()
	}
	return doc, nil
}

// Generate builds a workbook holding the four reference data sheets.
// The caller must close the returned file.
func Generate(doc *models.Document) (*excelize.File, error) {
	f := excelize.NewFile()
	w := &writer{f: f}

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: dateNumFmt})
	if err != nil {
		f.Close()
		return nil, err
	}
	w.dateStyle = dateStyle

	for _, sheet := range []struct {
		role  models.SheetRole
		build func(*models.Document) ([]string, [][]models.CellValue)
	}{
		{models.RoleAsset, assetRows},
		{models.RoleCodeValue, codeValueRows},
		{models.RoleHierarchy, hierarchyRows},
		{models.RoleMapping, mappingRows},
	} {
		name := sheet.role.SheetName()
		headers, rows := sheet.build(doc)
		if err := w.writeSheet(name, headers, rows); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	// NewFile starts with "Sheet1"; the reference data sheets replace it.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

// GenerateFile reads the document at jsonPath and writes the workbook to
// xlsxPath, replacing any existing file.
func GenerateFile(jsonPath, xlsxPath string) error {
	doc, err := ReadDocument(jsonPath)
	if err != nil {
		return unifiedjson.NewConversionError("read", jsonPath, fmt.Errorf("%w: %v", unifiedjson.ErrReadDocument, err))
	}
	f, err := Generate(doc)
	if err != nil {
		return unifiedjson.NewConversionError("generate", jsonPath, err)
	}
	defer f.Close()
	if err := f.SaveAs(xlsxPath); err != nil {
		return unifiedjson.NewConversionError("write", xlsxPath, fmt.Errorf("%w: %v", unifiedjson.ErrWriteOutput, err))
	}
	return nil
}

type writer struct {
	f         *excelize.File
	dateStyle int
}

func (w *writer) writeSheet(name string, headers []string, rows [][]models.CellValue) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return err
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStr(name, cell, header); err != nil {
			return err
		}
	}
	for rowIdx, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := w.setCell(name, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) setCell(sheet, cell string, v models.CellValue) error {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		return w.f.SetCellStr(sheet, cell, s)
	case models.KindNumber:
		n, _ := v.Float()
		return w.f.SetCellFloat(sheet, cell, n, -1, 64)
	case models.KindBool:
		b, _ := v.Boolean()
		return w.f.SetCellBool(sheet, cell, b)
	case models.KindDate:
		t, _ := v.Time()
		if err := w.f.SetCellValue(sheet, cell, t); err != nil {
			return err
		}
		return w.f.SetCellStyle(sheet, cell, cell, w.dateStyle)
	}
	return nil
}
