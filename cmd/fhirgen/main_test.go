package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadResourcesFromDir(t *testing.T) {
	log = zerolog.Nop()
	dir := t.TempDir()

	writeFixture(t, dir, "patient_p1.json", `{"resourceType":"Patient","id":"p1"}`)
	writeFixture(t, dir, "observation_o1.json", `{"resourceType":"Observation","id":"o1"}`)
	writeFixture(t, dir, "bundle.json", `{"resourceType":"Bundle","type":"collection"}`)
	writeFixture(t, dir, "broken.json", `{not json`)
	writeFixture(t, dir, "untyped.json", `{"id":"x"}`)
	writeFixture(t, dir, "notes.txt", "ignored")

	documents, err := loadResourcesFromDir(dir)
	require.NoError(t, err)
	require.Len(t, documents, 2)

	// Files are visited in sorted order, so the observation comes first.
	var first struct {
		ResourceType string `json:"resourceType"`
	}
	require.NoError(t, json.Unmarshal(documents[0], &first))
	assert.Equal(t, "Observation", first.ResourceType)
}

func TestLoadResourcesFromDirMissing(t *testing.T) {
	log = zerolog.Nop()

	_, err := loadResourcesFromDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestBundleCommand(t *testing.T) {
	log = zerolog.Nop()
	dir := t.TempDir()
	writeFixture(t, dir, "patient_p1.json", `{"resourceType":"Patient","id":"p1"}`)
	writeFixture(t, dir, "bundle.json", `{"resourceType":"Bundle"}`)

	output := filepath.Join(t.TempDir(), "out", "synthetic_bundle.json")
	cmd := newBundleCmd()
	cmd.SetArgs([]string{"--input", dir, "--output", output})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	var parsed struct {
		ResourceType string `json:"resourceType"`
		Total        int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(content, &parsed))
	assert.Equal(t, "Bundle", parsed.ResourceType)
	assert.Equal(t, 1, parsed.Total, "the pre-existing bundle file must not be re-bundled")
}

func TestCreatePatientCommandDeterministic(t *testing.T) {
	log = zerolog.Nop()

	run := func(path string) []byte {
		cmd := newCreatePatientCmd()
		cmd.SetArgs([]string{"--output", path, "--seed", "42"})
		require.NoError(t, cmd.Execute())
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		return content
	}

	first := run(filepath.Join(t.TempDir(), "patient.json"))
	second := run(filepath.Join(t.TempDir(), "patient.json"))
	assert.Equal(t, string(first), string(second))

	var parsed struct {
		ResourceType string `json:"resourceType"`
		Id           string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(first, &parsed))
	assert.Equal(t, "Patient", parsed.ResourceType)
	assert.NotEmpty(t, parsed.Id)
}

func TestCreateDatasetCommandRejectsBadCount(t *testing.T) {
	log = zerolog.Nop()

	cmd := newCreateDatasetCmd()
	cmd.SetArgs([]string{"--count", "0", "--output", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestCreateDatasetCommandExportsLayout(t *testing.T) {
	log = zerolog.Nop()
	output := filepath.Join(t.TempDir(), "out")

	cmd := newCreateDatasetCmd()
	cmd.SetArgs([]string{"--count", "2", "--seed", "7", "--output", output, "--csv"})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{
		"synthetic_bundle.json",
		"summary.csv",
		filepath.Join("patient_001", "bundle.json"),
		filepath.Join("patient_002", "bundle.json"),
	} {
		_, err := os.Stat(filepath.Join(output, name))
		assert.NoError(t, err, name)
	}
}
