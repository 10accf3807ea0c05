package models

import (
	"encoding/json"
	"fmt"
)

// Output member names added to records by the assembler.
const (
	MemberRelatedCodeValues = "relatedCodeValues"
	MemberHierarchy         = "hierarchy"
	MemberMappings          = "mappings"
	MemberTargetCodeValue   = "targetCodeValue"
)

// HierarchyEdge links a parent code value to its ordered child slots.
type HierarchyEdge struct {
	// Parent is the key of the parent code value.
	Parent string
	// Children holds the non-empty "Child N" slots in slot order.
	Children *Record
}

// Mapping is a directed reference from one code value to another.
type Mapping struct {
	Source CellValue
	Target CellValue
}

// MappingTarget is one entry of a code value's mappings list.
type MappingTarget struct {
	TargetCodeValue CellValue `json:"targetCodeValue"`
}

// Asset is a reference data asset together with its code values.
type Asset struct {
	Record            *Record
	RelatedCodeValues []*Record
}

// MarshalJSON encodes the asset's fields followed by relatedCodeValues.
func (a *Asset) MarshalJSON() ([]byte, error) {
	related := a.RelatedCodeValues
	if related == nil {
		related = []*Record{}
	}
	obj := a.Record.object(MemberRelatedCodeValues)
	obj = append(obj, member{key: MemberRelatedCodeValues, value: related})
	return obj.MarshalJSON()
}

// UnmarshalJSON decodes an asset object, splitting out relatedCodeValues.
func (a *Asset) UnmarshalJSON(data []byte) error {
	members, err := decodeObject(data)
	if err != nil {
		return err
	}
	a.Record = NewRecord()
	a.RelatedCodeValues = nil
	for _, m := range members {
		if m.key == MemberRelatedCodeValues {
			if err := json.Unmarshal(m.raw, &a.RelatedCodeValues); err != nil {
				return fmt.Errorf("%s: %w", MemberRelatedCodeValues, err)
			}
			continue
		}
		var v CellValue
		if err := json.Unmarshal(m.raw, &v); err != nil {
			return fmt.Errorf("field %q: %w", m.key, err)
		}
		a.Record.Set(m.key, v)
	}
	return nil
}

// CodeValue is a code value together with its hierarchy and mappings.
type CodeValue struct {
	Record    *Record
	Hierarchy []*Record
	// Mappings is nil until the first mapping is attached.
	Mappings []MappingTarget
}

// MarshalJSON encodes the code value's fields followed by hierarchy and,
// when present, mappings.
func (c *CodeValue) MarshalJSON() ([]byte, error) {
	hierarchy := c.Hierarchy
	if hierarchy == nil {
		hierarchy = []*Record{}
	}
	obj := c.Record.object(MemberHierarchy, MemberMappings)
	obj = append(obj, member{key: MemberHierarchy, value: hierarchy})
	if c.Mappings != nil {
		obj = append(obj, member{key: MemberMappings, value: c.Mappings})
	}
	return obj.MarshalJSON()
}

// UnmarshalJSON decodes a code value object, splitting out hierarchy and
// mappings.
func (c *CodeValue) UnmarshalJSON(data []byte) error {
	members, err := decodeObject(data)
	if err != nil {
		return err
	}
	c.Record = NewRecord()
	c.Hierarchy = nil
	c.Mappings = nil
	for _, m := range members {
		switch m.key {
		case MemberHierarchy:
			if err := json.Unmarshal(m.raw, &c.Hierarchy); err != nil {
				return fmt.Errorf("%s: %w", MemberHierarchy, err)
			}
		case MemberMappings:
			if err := json.Unmarshal(m.raw, &c.Mappings); err != nil {
				return fmt.Errorf("%s: %w", MemberMappings, err)
			}
		default:
			var v CellValue
			if err := json.Unmarshal(m.raw, &v); err != nil {
				return fmt.Errorf("field %q: %w", m.key, err)
			}
			c.Record.Set(m.key, v)
		}
	}
	return nil
}

// Index is a string-keyed collection that remembers first insertion order.
// Put on an existing key replaces the value and keeps the key's position.
type Index[T any] struct {
	keys  []string
	items map[string]T
}

// NewIndex returns an empty index.
func NewIndex[T any]() *Index[T] {
	return &Index[T]{items: make(map[string]T)}
}

// Put stores item under key.
func (x *Index[T]) Put(key string, item T) {
	if x.items == nil {
		x.items = make(map[string]T)
	}
	if _, ok := x.items[key]; !ok {
		x.keys = append(x.keys, key)
	}
	x.items[key] = item
}

// Get returns the item stored under key.
func (x *Index[T]) Get(key string) (T, bool) {
	if x == nil {
		var zero T
		return zero, false
	}
	item, ok := x.items[key]
	return item, ok
}

// Keys returns the keys in insertion order.
func (x *Index[T]) Keys() []string {
	if x == nil {
		return nil
	}
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Len returns the number of keys.
func (x *Index[T]) Len() int {
	if x == nil {
		return 0
	}
	return len(x.keys)
}

// Each calls fn for every key in insertion order.
func (x *Index[T]) Each(fn func(key string, item T)) {
	if x == nil {
		return
	}
	for _, k := range x.keys {
		fn(k, x.items[k])
	}
}

// MarshalJSON encodes the index as an object in insertion order.
func (x *Index[T]) MarshalJSON() ([]byte, error) {
	obj := make(object, 0, x.Len())
	x.Each(func(key string, item T) {
		obj = append(obj, member{key: key, value: item})
	})
	return obj.MarshalJSON()
}

// UnmarshalJSON decodes an object, keeping member order.
func (x *Index[T]) UnmarshalJSON(data []byte) error {
	members, err := decodeObject(data)
	if err != nil {
		return err
	}
	*x = Index[T]{items: make(map[string]T, len(members))}
	for _, m := range members {
		var item T
		if err := json.Unmarshal(m.raw, &item); err != nil {
			return fmt.Errorf("%q: %w", m.key, err)
		}
		x.Put(m.key, item)
	}
	return nil
}

// Document is the unified reference data document.
type Document struct {
	ReferenceDataAssets *Index[*Asset]     `json:"referenceDataAssets"`
	CodeValues          *Index[*CodeValue] `json:"codeValues"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		ReferenceDataAssets: NewIndex[*Asset](),
		CodeValues:          NewIndex[*CodeValue](),
	}
}
