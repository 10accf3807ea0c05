package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellValue_JSON(t *testing.T) {
	tests := []struct {
		name  string
		value CellValue
		want  string
	}{
		{"null", Null(), `null`},
		{"text", Text("USD"), `"USD"`},
		{"number", Number(3), `3`},
		{"fraction", Number(0.25), `0.25`},
		{"bool", Bool(true), `true`},
		{"date", Date(time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)), `"2024-01-15"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back CellValue
			require.NoError(t, json.Unmarshal(data, &back))
			assert.True(t, back.Equal(tt.value), "got %v", back)
		})
	}
}

func TestCellValue_UnmarshalRejectsComposites(t *testing.T) {
	var v CellValue
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))
}

func TestCellValue_Key(t *testing.T) {
	key, ok := Number(42).Key()
	assert.True(t, ok)
	assert.Equal(t, "42", key)

	key, _ = Bool(false).Key()
	assert.Equal(t, "false", key)

	_, ok = Null().Key()
	assert.False(t, ok)

	assert.True(t, Text("").IsEmpty())
	assert.False(t, Number(0).IsEmpty())
}

func TestRecord_SetKeepsPosition(t *testing.T) {
	r := NewRecord()
	r.Set("b", Text("1"))
	r.Set("a", Text("2"))
	r.Set("b", Text("3"))

	assert.Equal(t, []string{"b", "a"}, r.Names())
	v, ok := r.Get("b")
	require.True(t, ok)
	assert.Equal(t, Text("3"), v)
	assert.Equal(t, 2, r.Len())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"3","a":"2"}`, string(data))
}

func TestRecord_UnmarshalPreservesOrder(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"z":1,"m":"x","a":null}`), &r))
	assert.Equal(t, []string{"z", "m", "a"}, r.Names())

	a, ok := r.Get("a")
	assert.True(t, ok)
	assert.True(t, a.IsNull())
}

func TestRecord_Clone(t *testing.T) {
	r := RecordOf(Field{Name: "k", Value: Text("v")})
	c := r.Clone()
	c.Set("k", Text("changed"))
	c.Set("extra", Bool(true))

	v, _ := r.Key("k")
	assert.Equal(t, "v", v)
	assert.False(t, r.Has("extra"))
}

func TestIndex_LastWriteWinsKeepsFirstPosition(t *testing.T) {
	x := NewIndex[int]()
	x.Put("b", 1)
	x.Put("a", 2)
	x.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, x.Keys())
	v, ok := x.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	data, err := json.Marshal(x)
	require.NoError(t, err)
	assert.Equal(t, `{"b":3,"a":2}`, string(data))
}

func TestDocument_MemberLayout(t *testing.T) {
	doc := NewDocument()
	doc.ReferenceDataAssets.Put("Currency", &Asset{
		Record: RecordOf(Field{Name: FieldReferenceDataName, Value: Text("Currency")}),
	})
	doc.CodeValues.Put("USD", &CodeValue{
		Record:   RecordOf(Field{Name: "Code Value*", Value: Text("USD")}),
		Mappings: []MappingTarget{{TargetCodeValue: Text("EUR")}},
	})
	doc.CodeValues.Put("EUR", &CodeValue{
		Record: RecordOf(Field{Name: "Code Value*", Value: Text("EUR")}),
	})

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"referenceDataAssets":{"Currency":{"Reference Data Name*":"Currency","relatedCodeValues":[]}},`+
			`"codeValues":{"USD":{"Code Value*":"USD","hierarchy":[],"mappings":[{"targetCodeValue":"EUR"}]},`+
			`"EUR":{"Code Value*":"EUR","hierarchy":[]}}}`,
		string(data))
}

func TestDocument_UnmarshalRoundTrip(t *testing.T) {
	input := `{
		"referenceDataAssets": {
			"Currency": {
				"Reference Data Name*": "Currency",
				"Effective": "2024-01-15",
				"relatedCodeValues": [{"Reference Data Name*": "Currency", "Code Value*": "USD"}]
			}
		},
		"codeValues": {
			"Currency": {
				"Reference Data Name*": "Currency",
				"hierarchy": [{"Child 1": "B"}],
				"mappings": [{"targetCodeValue": 7}]
			}
		}
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	asset, ok := doc.ReferenceDataAssets.Get("Currency")
	require.True(t, ok)
	effective, _ := asset.Record.Get("Effective")
	assert.Equal(t, KindDate, effective.Kind())
	require.Len(t, asset.RelatedCodeValues, 1)
	assert.False(t, asset.Record.Has(MemberRelatedCodeValues))

	cv, ok := doc.CodeValues.Get("Currency")
	require.True(t, ok)
	require.Len(t, cv.Hierarchy, 1)
	require.Len(t, cv.Mappings, 1)
	assert.Equal(t, Number(7), cv.Mappings[0].TargetCodeValue)
	assert.Equal(t, []string{FieldReferenceDataName}, cv.Record.Names())

	data, err := json.Marshal(&doc)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(data))
}

func TestResolveSheetRole(t *testing.T) {
	assert.Equal(t, RoleAsset, ResolveSheetRole("1. Reference Data Assets"))
	assert.Equal(t, RoleCodeValue, ResolveSheetRole(SheetCodeValues))
	assert.Equal(t, RoleHierarchy, ResolveSheetRole(SheetHierarchy))
	assert.Equal(t, RoleMapping, ResolveSheetRole(SheetMapping))
	assert.Equal(t, RoleUnrecognized, ResolveSheetRole("1. reference data assets"))
	assert.Equal(t, SheetMapping, RoleMapping.SheetName())
	assert.Equal(t, "", RoleUnrecognized.SheetName())
}

func TestWarning_String(t *testing.T) {
	w := Warning{Sheet: "S", Row: 3, Header: "H", Reason: ReasonFormula}
	assert.Contains(t, w.String(), "S")
	assert.Contains(t, w.String(), ReasonFormula)
}
