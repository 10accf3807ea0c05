package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value CellValue
}

// Record is an ordered mapping from header name to cell value.
// Field order follows insertion order; setting an existing name
// replaces its value in place.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// RecordOf builds a record from fields in order.
func RecordOf(fields ...Field) *Record {
	r := NewRecord()
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// Set stores value under name.
func (r *Record) Set(name string, value CellValue) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (CellValue, bool) {
	if r == nil {
		return CellValue{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return CellValue{}, false
	}
	return r.fields[i].Value, true
}

// Has reports whether name is present.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Key returns the key form of the value stored under name.
func (r *Record) Key(name string) (string, bool) {
	v, ok := r.Get(name)
	if !ok {
		return "", false
	}
	return v.Key()
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Fields returns a copy of the fields in order.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Names returns the field names in order.
func (r *Record) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Clone returns an independent copy of r.
func (r *Record) Clone() *Record {
	c := NewRecord()
	if r == nil {
		return c
	}
	c.fields = make([]Field, len(r.fields))
	copy(c.fields, r.fields)
	for k, v := range r.index {
		c.index[k] = v
	}
	return c
}

// MarshalJSON encodes r as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.object().MarshalJSON()
}

// UnmarshalJSON decodes a JSON object of scalars, keeping member order.
func (r *Record) UnmarshalJSON(data []byte) error {
	members, err := decodeObject(data)
	if err != nil {
		return err
	}
	*r = Record{index: make(map[string]int, len(members))}
	for _, m := range members {
		var v CellValue
		if err := json.Unmarshal(m.raw, &v); err != nil {
			return fmt.Errorf("field %q: %w", m.key, err)
		}
		r.Set(m.key, v)
	}
	return nil
}

// object returns r's fields as generic members, skipping reserved names.
func (r *Record) object(reserved ...string) object {
	if r == nil {
		return nil
	}
	obj := make(object, 0, len(r.fields)+len(reserved))
	for _, f := range r.fields {
		if contains(reserved, f.Name) {
			continue
		}
		obj = append(obj, member{key: f.Name, value: f.Value})
	}
	return obj
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// member is one key/value pair of an ordered JSON object.
type member struct {
	key   string
	value any
}

// object is an ordered JSON object.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", m.key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// rawMember is one undecoded member of a JSON object.
type rawMember struct {
	key string
	raw json.RawMessage
}

// decodeObject splits a JSON object into its members in document order.
func decodeObject(data []byte) ([]rawMember, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("models: expected JSON object, got %v", tok)
	}
	var members []rawMember
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("models: expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		members = append(members, rawMember{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}
