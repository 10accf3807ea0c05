package unifiedjson

import (
	"fmt"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/parser"
)

// buckets holds routed records before assembly. They are filled once by the
// router and only read afterwards.
type buckets struct {
	assets     *models.Index[*models.Record]
	codeValues *models.Index[*models.Record]
	hierarchy  *models.Index[models.HierarchyEdge]
	mappings   []models.Mapping
}

func newBuckets() *buckets {
	return &buckets{
		assets:     models.NewIndex[*models.Record](),
		codeValues: models.NewIndex[*models.Record](),
		hierarchy:  models.NewIndex[models.HierarchyEdge](),
	}
}

// router inserts sheet records into buckets by sheet role.
type router struct {
	b            *buckets
	codeValueKey string
	warn         parser.WarnFunc
}

// route appends every record of sheet to the bucket selected by role.
// Unrecognized sheets are ignored.
func (r *router) route(role models.SheetRole, sheet *parser.SheetRecords) {
	for i, record := range sheet.Records {
		rowNum := sheet.RowNumbers[i]
		switch role {
		case models.RoleAsset:
			if key, ok := r.key(sheet.Name, rowNum, record, models.FieldReferenceDataName); ok {
				r.b.assets.Put(key, record)
			}
		case models.RoleCodeValue:
			if key, ok := r.key(sheet.Name, rowNum, record, r.codeValueKey); ok {
				r.b.codeValues.Put(key, record)
			}
		case models.RoleHierarchy:
			if parent, ok := r.key(sheet.Name, rowNum, record, models.FieldParent); ok {
				r.b.hierarchy.Put(parent, models.HierarchyEdge{
					Parent:   parent,
					Children: hierarchyChildren(record),
				})
			}
		case models.RoleMapping:
			source, _ := record.Get(models.FieldSourceCodeValue)
			target, _ := record.Get(models.FieldTargetCodeValue)
			r.b.mappings = append(r.b.mappings, models.Mapping{Source: source, Target: target})
		}
	}
}

// key returns the key form of field, warning when it is missing or null.
func (r *router) key(sheetName string, rowNum int, record *models.Record, field string) (string, bool) {
	key, ok := record.Key(field)
	if !ok {
		r.warn(models.Warning{Sheet: sheetName, Row: rowNum, Header: field, Reason: models.ReasonMissingKey})
	}
	return key, ok
}

// hierarchyChildren collects the non-empty "Child 1".."Child 8" slots.
func hierarchyChildren(record *models.Record) *models.Record {
	children := models.NewRecord()
	for slot := 1; slot <= models.MaxHierarchyChildren; slot++ {
		name := fmt.Sprintf("Child %d", slot)
		if v, ok := record.Get(name); ok && !v.IsEmpty() {
			children.Set(name, v)
		}
	}
	return children
}
