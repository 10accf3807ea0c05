package unifiedjson

import (
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
)

// assemble joins routed buckets into a new document. Bucket records are
// cloned, never modified.
func assemble(b *buckets) *models.Document {
	doc := models.NewDocument()
	joinAssets(b, doc)
	mergeHierarchy(b, doc)
	overlayMappings(b, doc)
	return doc
}

// joinAssets attaches to every asset the code values whose reference data
// name equals the asset key.
func joinAssets(b *buckets, doc *models.Document) {
	b.assets.Each(func(name string, record *models.Record) {
		asset := &models.Asset{
			Record:            record.Clone(),
			RelatedCodeValues: []*models.Record{},
		}
		b.codeValues.Each(func(_ string, cv *models.Record) {
			if owner, ok := cv.Key(models.FieldReferenceDataName); ok && owner == name {
				asset.RelatedCodeValues = append(asset.RelatedCodeValues, cv.Clone())
			}
		})
		doc.ReferenceDataAssets.Put(name, asset)
	})
}

// mergeHierarchy gives every code value the children of the hierarchy edge
// whose parent is the code value's key, or an empty hierarchy.
func mergeHierarchy(b *buckets, doc *models.Document) {
	b.codeValues.Each(func(key string, record *models.Record) {
		cv := &models.CodeValue{
			Record:    record.Clone(),
			Hierarchy: []*models.Record{},
		}
		b.hierarchy.Each(func(parent string, edge models.HierarchyEdge) {
			if parent == key {
				cv.Hierarchy = append(cv.Hierarchy, edge.Children.Clone())
			}
		})
		doc.CodeValues.Put(key, cv)
	})
}

// overlayMappings appends each mapping's target to its source code value.
// Mappings without a matching source are dropped.
func overlayMappings(b *buckets, doc *models.Document) {
	for _, m := range b.mappings {
		source, ok := m.Source.Key()
		if !ok {
			continue
		}
		cv, ok := doc.CodeValues.Get(source)
		if !ok {
			continue
		}
		cv.Mappings = append(cv.Mappings, models.MappingTarget{TargetCodeValue: m.Target})
	}
}
