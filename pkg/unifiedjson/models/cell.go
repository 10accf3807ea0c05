// Package models defines data structures for reference-data conversion.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for date cells.
const DateLayout = "2006-01-02"

// Kind identifies the variant held by a CellValue.
type Kind int

const (
	// KindNull marks an unrecognized or unsupported cell.
	KindNull Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell without a date format.
	KindNumber
	// KindDate is a date-formatted numeric cell.
	KindDate
	// KindBool is a boolean cell.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// CellValue is a typed spreadsheet cell value. The zero value is Null.
type CellValue struct {
	kind   Kind
	text   string
	number float64
	flag   bool
}

// Null returns the null cell value.
func Null() CellValue { return CellValue{} }

// Text returns a text cell value.
func Text(s string) CellValue { return CellValue{kind: KindText, text: s} }

// Number returns a numeric cell value.
func Number(f float64) CellValue { return CellValue{kind: KindNumber, number: f} }

// Bool returns a boolean cell value.
func Bool(b bool) CellValue { return CellValue{kind: KindBool, flag: b} }

// Date returns a date cell value holding the calendar date of t.
func Date(t time.Time) CellValue {
	return CellValue{kind: KindDate, text: t.Format(DateLayout)}
}

// Kind reports the variant held by v.
func (v CellValue) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v CellValue) IsNull() bool { return v.kind == KindNull }

// IsEmpty reports whether v is null or empty text.
func (v CellValue) IsEmpty() bool {
	return v.kind == KindNull || (v.kind == KindText && v.text == "")
}

// Str returns the text of a Text or Date value.
func (v CellValue) Str() (string, bool) {
	if v.kind == KindText || v.kind == KindDate {
		return v.text, true
	}
	return "", false
}

// Float returns the number held by a Number value.
func (v CellValue) Float() (float64, bool) {
	return v.number, v.kind == KindNumber
}

// Boolean returns the flag held by a Bool value.
func (v CellValue) Boolean() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Time parses a Date value back to midnight UTC of its calendar date.
func (v CellValue) Time() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, v.text)
	return t, err == nil
}

// Key returns the string form used when v identifies an entity.
// Null values have no key.
func (v CellValue) Key() (string, bool) {
	switch v.kind {
	case KindText, KindDate:
		return v.text, true
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.flag), true
	}
	return "", false
}

// Equal reports whether v and o hold the same variant and value.
func (v CellValue) Equal(o CellValue) bool {
	return v == o
}

func (v CellValue) String() string {
	if s, ok := v.Key(); ok {
		return s
	}
	return "null"
}

// MarshalJSON encodes dates and text as strings, numbers as JSON numbers,
// booleans as JSON booleans and null as null.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText, KindDate:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.number)
	case KindBool:
		return json.Marshal(v.flag)
	case KindNull:
		return []byte("null"), nil
	}
	return nil, fmt.Errorf("models: unknown cell kind %d", v.kind)
}

// UnmarshalJSON decodes a scalar JSON value. Strings in YYYY-MM-DD form
// decode as dates so that a written document reads back with its types.
func (v *CellValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		if t, err := time.Parse(DateLayout, x); err == nil && len(x) == len(DateLayout) {
			*v = Date(t)
			return nil
		}
		*v = Text(x)
	case float64:
		*v = Number(x)
	case bool:
		*v = Bool(x)
	default:
		return fmt.Errorf("models: cell value must be a JSON scalar, got %s", data)
	}
	return nil
}
