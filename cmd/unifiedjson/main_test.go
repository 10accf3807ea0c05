package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiransripada007/unified-json/internal/testutil"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	t.Log(errOut.String())
	return out.String(), err
}

func inputWorkbook(t *testing.T) string {
	return testutil.WriteWorkbook(t,
		testutil.Sheet{Name: models.SheetAssets, Rows: [][]interface{}{
			{"Reference Data Name*", "Description"},
			{"Currency", "ISO currencies"},
		}},
		testutil.Sheet{Name: models.SheetCodeValues, Rows: [][]interface{}{
			{"Reference Data Name*", "Code Value*"},
			{"Currency", "USD"},
		}},
	)
}

func TestConvertCommand_Stdout(t *testing.T) {
	out, err := execute(t, "convert", inputWorkbook(t), "--compact")
	require.NoError(t, err)

	assert.NotContains(t, out, "\n")
	var doc models.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"Currency"}, doc.CodeValues.Keys())
}

func TestConvertCommand_CodeValueKey(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	_, err := execute(t, "convert", inputWorkbook(t), "-o", outPath, "--code-value-key", "Code Value*")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc models.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []string{"USD"}, doc.CodeValues.Keys())
}

func TestConvertCommand_MissingInput(t *testing.T) {
	_, err := execute(t, "convert", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "file not found")
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "doc.json")
	xlsxPath := filepath.Join(dir, "doc.xlsx")

	_, err := execute(t, "convert", inputWorkbook(t), "-o", jsonPath)
	require.NoError(t, err)
	_, err = execute(t, "generate", jsonPath, "-o", xlsxPath)
	require.NoError(t, err)
	assert.FileExists(t, xlsxPath)
}

func TestInspectCommand(t *testing.T) {
	input := inputWorkbook(t)

	out, err := execute(t, "inspect", input)
	require.NoError(t, err)
	assert.Contains(t, out, models.SheetAssets)
	assert.Contains(t, out, "code_value")

	out, err = execute(t, "inspect", input, "--format", "json")
	require.NoError(t, err)
	var report struct {
		Sheets []struct {
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sheets, 2)
	assert.Equal(t, models.SheetCodeValues, report.Sheets[1].Name)

	out, err = execute(t, "inspect", input, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "sheets:")

	_, err = execute(t, "inspect", input, "--format", "xml")
	assert.Error(t, err)
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "convert", inputWorkbook(t), "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log_level")
}
