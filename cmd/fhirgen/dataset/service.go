package dataset

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/identifier"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/story"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/synth"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/validator"
	"github.com/clinsynth/fhirgen/models/fhir"
)

// ErrInvalidCount rejects non-positive patient counts. No default is
// substituted; the call fails immediately.
var ErrInvalidCount = errors.New("count must be at least 1")

// Options tunes one generation run.
type Options struct {
	// Seed, when set, makes the run fully deterministic: the
	// randomness source is reset from it before the first story and
	// stories are built strictly sequentially.
	Seed *int64
	// Story overrides the per-story composition; the zero value means
	// story.DefaultConfig().
	Story story.Config
}

// Dataset is the validated output of one generation run: the stories
// with their surviving records, plus the count of records excluded by
// validation (directly or transitively).
type Dataset struct {
	Stories []story.Story
	Skipped int
}

// AllRecords returns every surviving record across all stories, in
// story order.
func (d *Dataset) AllRecords() []fhir.Resource {
	var records []fhir.Resource
	for _, st := range d.Stories {
		records = append(records, st.Records...)
	}
	return records
}

// DatasetService drives N patient-story builds, validates every
// record, and keeps only records whose references resolve.
type DatasetService struct {
	log zerolog.Logger
}

// NewDatasetService creates the orchestrator.
func NewDatasetService(log zerolog.Logger) *DatasetService {
	return &DatasetService{log: log}
}

// GenerateDataset builds count patient stories. Construction errors
// abort the run; validation failures only exclude the failing record
// and its dependents, surfaced as warnings and tallied in Skipped.
func (s *DatasetService) GenerateDataset(count int, opts Options) (*Dataset, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}

	config := opts.Story
	if config == (story.Config{}) {
		config = story.DefaultConfig()
	}

	builder, err := story.NewStoryBuilder(config, s.log)
	if err != nil {
		return nil, err
	}

	var src *synth.Source
	if opts.Seed != nil {
		src = synth.NewSeededSource(*opts.Seed)
		s.log.Info().Int64("seed", *opts.Seed).Msg("Seeded randomness source")
	} else {
		src = synth.NewSource()
	}

	ids := identifier.NewIdentifierService(src.Rand)
	validationSvc := validator.NewValidationService(s.log)

	s.log.Info().Int("count", count).Msg("Generating dataset")

	result := &Dataset{Stories: make([]story.Story, 0, count)}
	for i := 0; i < count; i++ {
		built, err := builder.Build(src, ids)
		if err != nil {
			return nil, fmt.Errorf("story %d: %w", i+1, err)
		}

		validationSvc.Reset()
		kept := story.Story{PatientID: built.PatientID}
		for _, record := range built.Records {
			outcome := validationSvc.Validate(record)
			if !outcome.Valid() {
				result.Skipped++
				continue
			}
			kept.Records = append(kept.Records, record)
		}
		result.Stories = append(result.Stories, kept)
	}

	if result.Skipped > 0 {
		s.log.Warn().Int("skipped", result.Skipped).Msg("Excluded records that failed validation")
	}

	return result, nil
}
