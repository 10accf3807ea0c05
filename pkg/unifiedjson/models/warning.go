package models

import "fmt"

// Reasons attached to warnings.
const (
	ReasonEmptySheet    = "empty sheet"
	ReasonNoHeader      = "no header row"
	ReasonFormula       = "formula cell"
	ReasonErrorCell     = "error cell"
	ReasonBlankCell     = "blank cell"
	ReasonInvalidNumber = "invalid numeric value"
	ReasonUnknownType   = "unsupported cell type"
	ReasonMissingKey    = "missing key"
)

// Warning is a non-fatal condition found during conversion.
type Warning struct {
	// Sheet is the sheet the condition was found in.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Row is the 1-based row number (0 for sheet-level warnings).
	Row int `json:"row,omitempty" yaml:"row,omitempty"`
	// Header is the column header (empty for row or sheet-level warnings).
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	// Reason describes the condition.
	Reason string `json:"reason" yaml:"reason"`
}

func (w Warning) String() string {
	switch {
	case w.Row == 0:
		return fmt.Sprintf("sheet %q: %s", w.Sheet, w.Reason)
	case w.Header == "":
		return fmt.Sprintf("sheet %q row %d: %s", w.Sheet, w.Row, w.Reason)
	}
	return fmt.Sprintf("sheet %q row %d under header %q: %s", w.Sheet, w.Row, w.Header, w.Reason)
}
