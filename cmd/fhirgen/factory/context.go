package factory

import (
	"errors"
	"fmt"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/identifier"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/synth"
	"github.com/clinsynth/fhirgen/models/fhir"
)

// ErrMissingReference indicates a factory was invoked without a
// mandatory reference in its context. This is an orchestration bug and
// is propagated, never swallowed.
var ErrMissingReference = errors.New("missing mandatory reference in factory context")

// Context supplies everything a factory needs to construct one
// resource: the run's randomness source, the identifier service, and
// references to already-created resources the new resource may point
// to. Factories never invent references beyond what the context holds.
type Context struct {
	Source *synth.Source
	IDs    *identifier.IdentifierService

	Patient      *fhir.Reference
	Practitioner *fhir.Reference
	Encounter    *fhir.Reference
	Observations []fhir.Reference
}

func (c Context) requirePatient(kind string) error {
	if c.Patient == nil {
		return fmt.Errorf("%s: patient reference: %w", kind, ErrMissingReference)
	}
	return nil
}

func (c Context) requireEncounter(kind string) error {
	if c.Encounter == nil {
		return fmt.Errorf("%s: encounter reference: %w", kind, ErrMissingReference)
	}
	return nil
}
