// Package unifiedjson converts reference data workbooks into a unified JSON
// document.
package unifiedjson

import (
	"log/slog"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
)

// DefaultCodeValueKeyField is the header code values are keyed by unless
// configured otherwise. It is the same header that links a code value to its
// asset, so code values of one asset share a key.
const DefaultCodeValueKeyField = models.FieldReferenceDataName

// Options configures conversion behavior.
type Options struct {
	// CodeValueKeyField is the header identifying a code value.
	// If empty, DefaultCodeValueKeyField is used.
	CodeValueKeyField string
	// Logger receives warnings as they are found. If nil, warnings are only
	// collected in the Result.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		CodeValueKeyField: DefaultCodeValueKeyField,
	}
}

// codeValueKeyField returns the configured code value key header.
func (o Options) codeValueKeyField() string {
	if o.CodeValueKeyField != "" {
		return o.CodeValueKeyField
	}
	return DefaultCodeValueKeyField
}

// logger returns the configured logger or one that discards output.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
