package sheetgen

import (
	"fmt"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
)

// assetRows lays out assets with the union of their fields as headers.
func assetRows(doc *models.Document) ([]string, [][]models.CellValue) {
	var records []*models.Record
	doc.ReferenceDataAssets.Each(func(_ string, a *models.Asset) {
		records = append(records, a.Record)
	})
	return tabulate(records)
}

// codeValueRows lays out code values with the union of their fields as
// headers.
func codeValueRows(doc *models.Document) ([]string, [][]models.CellValue) {
	var records []*models.Record
	doc.CodeValues.Each(func(_ string, cv *models.CodeValue) {
		records = append(records, cv.Record)
	})
	return tabulate(records)
}

// hierarchyRows emits one row per non-empty hierarchy entry, with the code
// value key as parent.
func hierarchyRows(doc *models.Document) ([]string, [][]models.CellValue) {
	headers := []string{models.FieldParent}
	for slot := 1; slot <= models.MaxHierarchyChildren; slot++ {
		headers = append(headers, fmt.Sprintf("Child %d", slot))
	}

	var rows [][]models.CellValue
	doc.CodeValues.Each(func(key string, cv *models.CodeValue) {
		for _, children := range cv.Hierarchy {
			if children.Len() == 0 {
				continue
			}
			row := make([]models.CellValue, len(headers))
			row[0] = models.Text(key)
			for i, name := range headers[1:] {
				if v, ok := children.Get(name); ok {
					row[i+1] = v
				}
			}
			rows = append(rows, row)
		}
	})
	return headers, rows
}

// mappingRows emits one row per mapping, with the code value key as source.
func mappingRows(doc *models.Document) ([]string, [][]models.CellValue) {
	headers := []string{models.FieldSourceCodeValue, models.FieldTargetCodeValue}

	var rows [][]models.CellValue
	doc.CodeValues.Each(func(key string, cv *models.CodeValue) {
		for _, m := range cv.Mappings {
			rows = append(rows, []models.CellValue{models.Text(key), m.TargetCodeValue})
		}
	})
	return headers, rows
}

// tabulate returns the union of field names in first-seen order and one row
// of values per record. Missing fields are Null.
func tabulate(records []*models.Record) ([]string, [][]models.CellValue) {
	var headers []string
	seen := make(map[string]int)
	for _, r := range records {
		for _, name := range r.Names() {
			if _, ok := seen[name]; !ok {
				seen[name] = len(headers)
				headers = append(headers, name)
			}
		}
	}

	rows := make([][]models.CellValue, 0, len(records))
	for _, r := range records {
		row := make([]models.CellValue, len(headers))
		for _, f := range r.Fields() {
			row[seen[f.Name]] = f.Value
		}
		rows = append(rows, row)
	}
	return headers, rows
}
