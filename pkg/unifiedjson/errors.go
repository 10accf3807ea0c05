package unifiedjson

import (
	"errors"
	"fmt"
)

// ErrOpenWorkbook indicates the input could not be read as an xlsx workbook.
var ErrOpenWorkbook = errors.New("cannot open workbook")

// ErrWriteOutput indicates the output file could not be written.
var ErrWriteOutput = errors.New("cannot write output")

// ErrReadDocument indicates a unified JSON document could not be read.
var ErrReadDocument = errors.New("cannot read document")

// ConversionError represents a fatal error during conversion.
type ConversionError struct {
	Stage string // "open", "extract", "write", "read", "generate"
	Path  string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("conversion failed (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion failed (%s) for %q: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage, path string, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
