package story

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/factory"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/identifier"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/synth"
	"github.com/clinsynth/fhirgen/models/fhir"
)

// Config controls how many records of each kind one story carries.
type Config struct {
	IncludePractitioner      bool
	Encounters               int
	ObservationsPerEncounter int
	Conditions               int
	Procedures               int
	MedicationRequests       int
	DiagnosticReports        int
	Allergies                int
}

// DefaultConfig mirrors the composition of the reference dataset: one
// encounter with one observation per vital-sign type, and one of each
// other clinical record.
func DefaultConfig() Config {
	return Config{
		IncludePractitioner:      true,
		Encounters:               1,
		ObservationsPerEncounter: len(factory.ObservationTypes),
		Conditions:               1,
		Procedures:               1,
		MedicationRequests:       1,
		DiagnosticReports:        1,
		Allergies:                1,
	}
}

// Validate rejects cardinalities no story can honor. Encounters must
// be positive because procedures and diagnostic reports require one;
// the remaining counts only need to be non-negative.
func (c Config) Validate() error {
	if c.Encounters < 1 {
		return fmt.Errorf("encounters per story must be at least 1, got %d", c.Encounters)
	}
	for name, n := range map[string]int{
		"observations per encounter": c.ObservationsPerEncounter,
		"conditions":                 c.Conditions,
		"procedures":                 c.Procedures,
		"medication requests":        c.MedicationRequests,
		"diagnostic reports":         c.DiagnosticReports,
		"allergies":                  c.Allergies,
	} {
		if n < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, n)
		}
	}
	return nil
}

// Story is the ordered record set generated for one synthetic patient.
// Records appear in construction order, so every reference points at
// an earlier entry.
type Story struct {
	PatientID string
	Records   []fhir.Resource
}

// StoryBuilder assembles one self-consistent record cluster per call,
// walking the fixed topological order: practitioner, patient,
// encounters, then the clinical records that reference them.
type StoryBuilder struct {
	log    zerolog.Logger
	config Config
}

// NewStoryBuilder creates a builder for the given composition.
func NewStoryBuilder(config Config, log zerolog.Logger) (*StoryBuilder, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid story config: %w", err)
	}
	return &StoryBuilder{log: log, config: config}, nil
}

// Build generates the full record set for a single synthetic patient.
// Construction errors indicate an orchestration bug and abort the
// build.
func (b *StoryBuilder) Build(src *synth.Source, ids *identifier.IdentifierService) (Story, error) {
	base := factory.Context{Source: src, IDs: ids}
	var records []fhir.Resource

	var practitionerRef *fhir.Reference
	if b.config.IncludePractitioner {
		practitioner, err := factory.CreatePractitioner(base)
		if err != nil {
			return Story{}, fmt.Errorf("building practitioner: %w", err)
		}
		ref := ids.Reference("Practitioner", practitioner.GetID())
		practitionerRef = &ref
		records = append(records, practitioner)
	}

	patient, err := factory.CreatePatient(base)
	if err != nil {
		return Story{}, fmt.Errorf("building patient: %w", err)
	}
	patientRef := ids.Reference("Patient", patient.GetID())
	records = append(records, patient)

	clinical := factory.Context{
		Source:       src,
		IDs:          ids,
		Patient:      &patientRef,
		Practitioner: practitionerRef,
	}

	encounterRefs := make([]fhir.Reference, 0, b.config.Encounters)
	observationsByEncounter := make([][]fhir.Reference, b.config.Encounters)
	for i := 0; i < b.config.Encounters; i++ {
		encounter, err := factory.CreateEncounter(clinical)
		if err != nil {
			return Story{}, fmt.Errorf("building encounter: %w", err)
		}
		records = append(records, encounter)
		encounterRefs = append(encounterRefs, ids.Reference("Encounter", encounter.GetID()))
	}

	for i := range encounterRefs {
		ctx := clinical
		ctx.Encounter = &encounterRefs[i]
		for j := 0; j < b.config.ObservationsPerEncounter; j++ {
			observationType := factory.ObservationTypes[j%len(factory.ObservationTypes)]
			observation, err := factory.CreateObservation(ctx, observationType)
			if err != nil {
				return Story{}, fmt.Errorf("building observation: %w", err)
			}
			records = append(records, observation)
			observationsByEncounter[i] = append(observationsByEncounter[i],
				ids.Reference("Observation", observation.GetID()))
		}
	}

	for i := 0; i < b.config.Conditions; i++ {
		ctx := clinical
		ctx.Encounter = &encounterRefs[i%len(encounterRefs)]
		condition, err := factory.CreateCondition(ctx)
		if err != nil {
			return Story{}, fmt.Errorf("building condition: %w", err)
		}
		records = append(records, condition)
	}

	for i := 0; i < b.config.Procedures; i++ {
		ctx := clinical
		ctx.Encounter = &encounterRefs[i%len(encounterRefs)]
		procedure, err := factory.CreateProcedure(ctx)
		if err != nil {
			return Story{}, fmt.Errorf("building procedure: %w", err)
		}
		records = append(records, procedure)
	}

	for i := 0; i < b.config.MedicationRequests; i++ {
		ctx := clinical
		ctx.Encounter = &encounterRefs[i%len(encounterRefs)]
		request, err := factory.CreateMedicationRequest(ctx)
		if err != nil {
			return Story{}, fmt.Errorf("building medication request: %w", err)
		}
		records = append(records, request)
	}

	for i := 0; i < b.config.DiagnosticReports; i++ {
		encounterIdx := i % len(encounterRefs)
		ctx := clinical
		ctx.Encounter = &encounterRefs[encounterIdx]
		ctx.Observations = observationsByEncounter[encounterIdx]
		report, err := factory.CreateDiagnosticReport(ctx)
		if err != nil {
			return Story{}, fmt.Errorf("building diagnostic report: %w", err)
		}
		records = append(records, report)
	}

	for i := 0; i < b.config.Allergies; i++ {
		allergy, err := factory.CreateAllergyIntolerance(clinical)
		if err != nil {
			return Story{}, fmt.Errorf("building allergy intolerance: %w", err)
		}
		records = append(records, allergy)
	}

	b.log.Debug().
		Str("patient_id", patient.GetID()).
		Int("records", len(records)).
		Msg("Built patient story")

	return Story{PatientID: patient.GetID(), Records: records}, nil
}
