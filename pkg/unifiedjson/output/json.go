// Package output serializes unified documents.
package output

import (
	"encoding/json"
	"os"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
)

// ToJSON serializes a document. When pretty is set the output is indented
// with two spaces and ends with a newline.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if !pretty {
		return json.Marshal(doc)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteFile writes the pretty-printed document to path, replacing any
// existing file.
func WriteFile(path string, doc *models.Document) error {
	data, err := ToJSON(doc, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
