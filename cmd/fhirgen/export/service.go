package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/bundle"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/dataset"
	"github.com/clinsynth/fhirgen/models/fhir"
)

// ExportService persists a validated dataset: one JSON file per
// record, one bundle per patient folder, and one consolidated bundle
// for the whole dataset. It only ever receives records that passed
// validation; nothing is re-checked here.
type ExportService struct {
	log       zerolog.Logger
	bundleSvc *bundle.BundleService
}

// NewExportService creates an exporter.
func NewExportService(log zerolog.Logger) *ExportService {
	return &ExportService{
		log:       log,
		bundleSvc: bundle.NewBundleService(log),
	}
}

// ExportDataset writes the full output layout under outputRoot:
//
//	patient_001/<type>_<id>.json   one file per record
//	patient_001/bundle.json        one bundle per story
//	synthetic_bundle.json          consolidated dataset bundle
func (s *ExportService) ExportDataset(ds *dataset.Dataset, outputRoot string) error {
	if err := os.MkdirAll(outputRoot, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for idx, st := range ds.Stories {
		folder := filepath.Join(outputRoot, fmt.Sprintf("patient_%03d", idx+1))
		if err := s.exportStory(st.Records, folder); err != nil {
			return fmt.Errorf("story %d: %w", idx+1, err)
		}
	}

	consolidated, err := s.bundleSvc.Assemble(ds.AllRecords(), bundle.DefaultType)
	if err != nil {
		return err
	}
	bundlePath := filepath.Join(outputRoot, "synthetic_bundle.json")
	if err := writeJSON(bundlePath, consolidated); err != nil {
		return err
	}

	s.log.Info().
		Str("path", bundlePath).
		Int("stories", len(ds.Stories)).
		Msg("Saved dataset bundle")
	return nil
}

func (s *ExportService) exportStory(records []fhir.Resource, folder string) error {
	if err := os.MkdirAll(folder, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create patient folder: %w", err)
	}

	for _, record := range records {
		name := fmt.Sprintf("%s_%s.json", strings.ToLower(record.GetResourceType()), record.GetID())
		path := filepath.Join(folder, name)
		if err := writeJSON(path, record); err != nil {
			return err
		}
		s.log.Debug().Str("file", path).Msg("Wrote record")
	}

	storyBundle, err := s.bundleSvc.Assemble(records, bundle.DefaultType)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(folder, "bundle.json"), storyBundle)
}

func writeJSON(path string, data interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
