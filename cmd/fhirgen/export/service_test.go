package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/dataset"
)

func generate(t *testing.T, count int) *dataset.Dataset {
	t.Helper()
	seed := int64(42)
	ds, err := dataset.NewDatasetService(zerolog.Nop()).GenerateDataset(count, dataset.Options{Seed: &seed})
	require.NoError(t, err)
	return ds
}

func TestExportDatasetLayout(t *testing.T) {
	ds := generate(t, 2)
	root := t.TempDir()

	svc := NewExportService(zerolog.Nop())
	require.NoError(t, svc.ExportDataset(ds, root))

	// Consolidated bundle at the root.
	consolidated := filepath.Join(root, "synthetic_bundle.json")
	content, err := os.ReadFile(consolidated)
	require.NoError(t, err)

	var parsed struct {
		ResourceType string `json:"resourceType"`
		Type         string `json:"type"`
		Total        int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(content, &parsed))
	assert.Equal(t, "Bundle", parsed.ResourceType)
	assert.Equal(t, "collection", parsed.Type)
	assert.Equal(t, len(ds.AllRecords()), parsed.Total)

	// One folder per story, each with a bundle and one file per record.
	for i, st := range ds.Stories {
		folder := filepath.Join(root, "patient_00"+string(rune('1'+i)))
		_, err := os.Stat(filepath.Join(folder, "bundle.json"))
		require.NoError(t, err)

		entries, err := os.ReadDir(folder)
		require.NoError(t, err)
		// records + bundle.json
		assert.Len(t, entries, len(st.Records)+1)
	}
}

func TestExportCSVSummary(t *testing.T) {
	ds := generate(t, 3)
	root := t.TempDir()
	summary := filepath.Join(root, "summary.csv")

	svc := NewExportService(zerolog.Nop())
	require.NoError(t, svc.ExportCSVSummary(ds, summary))

	file, err := os.Open(summary)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + one row per story

	assert.Equal(t, summaryHeader, rows[0])
	for _, row := range rows[1:] {
		assert.NotEmpty(t, row[0], "patient_id")
		assert.NotEmpty(t, row[1], "birth_date")
		assert.NotEmpty(t, row[4], "heart_rate")
		assert.NotEmpty(t, row[5], "blood_pressure_systolic")
	}
}

func TestExportCSVSummaryEmptyDataset(t *testing.T) {
	root := t.TempDir()
	summary := filepath.Join(root, "summary.csv")

	svc := NewExportService(zerolog.Nop())
	empty := &dataset.Dataset{}
	require.NoError(t, svc.ExportCSVSummary(empty, summary))

	content, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Empty(t, content)
}
