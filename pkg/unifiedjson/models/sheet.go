package models

// SheetRole identifies what a worksheet contributes to the unified document.
type SheetRole int

const (
	// RoleUnrecognized sheets are parsed but not routed.
	RoleUnrecognized SheetRole = iota
	// RoleAsset holds reference data asset definitions.
	RoleAsset
	// RoleCodeValue holds the enumerated code values of assets.
	RoleCodeValue
	// RoleHierarchy holds parent to children edges among code values.
	RoleHierarchy
	// RoleMapping holds source to target code value mappings.
	RoleMapping
)

// Sheet names recognized by ResolveSheetRole.
const (
	SheetAssets     = "1. Reference Data Assets"
	SheetCodeValues = "2. Code Values"
	SheetHierarchy  = "3. Hierarchy"
	SheetMapping    = "4. Mapping"
)

// Header names read by the router.
const (
	FieldReferenceDataName = "Reference Data Name*"
	FieldParent            = "Parent"
	FieldSourceCodeValue   = "Source Code Value*"
	FieldTargetCodeValue   = "Target Code Value*"
)

// MaxHierarchyChildren is the number of "Child N" slots on a hierarchy row.
const MaxHierarchyChildren = 8

var sheetRoles = map[string]SheetRole{
	SheetAssets:     RoleAsset,
	SheetCodeValues: RoleCodeValue,
	SheetHierarchy:  RoleHierarchy,
	SheetMapping:    RoleMapping,
}

// ResolveSheetRole maps a sheet name to its role. Matching is exact and
// case-sensitive.
func ResolveSheetRole(name string) SheetRole {
	return sheetRoles[name]
}

// SheetName returns the canonical sheet name for a routed role.
func (r SheetRole) SheetName() string {
	for name, role := range sheetRoles {
		if role == r {
			return name
		}
	}
	return ""
}

func (r SheetRole) String() string {
	switch r {
	case RoleAsset:
		return "asset"
	case RoleCodeValue:
		return "code_value"
	case RoleHierarchy:
		return "hierarchy"
	case RoleMapping:
		return "mapping"
	}
	return "unrecognized"
}

// MarshalText encodes the role name.
func (r SheetRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// SheetSummary describes what was read from one worksheet.
type SheetSummary struct {
	// Name is the sheet name as it appears in the workbook.
	Name string `json:"name" yaml:"name"`
	// Role is the resolved role of the sheet.
	Role SheetRole `json:"role" yaml:"role"`
	// Headers are the header cells of the first row.
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`
	// Records is the number of data rows extracted.
	Records int `json:"records" yaml:"records"`
	// Skipped is set when the sheet was empty or had no header row.
	Skipped bool `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	// DataRange is the bounding range of non-empty cells (e.g., "A1:D10").
	DataRange string `json:"data_range,omitempty" yaml:"data_range,omitempty"`
}
