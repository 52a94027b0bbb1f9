package factory

import (
	"time"

	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// CreateProcedure builds a completed Procedure. Both the patient and
// the encounter reference are mandatory.
func CreateProcedure(ctx Context) (fhir.Procedure, error) {
	if err := ctx.requirePatient("procedure"); err != nil {
		return fhir.Procedure{}, err
	}
	if err := ctx.requireEncounter("procedure"); err != nil {
		return fhir.Procedure{}, err
	}

	src := ctx.Source
	code := procedureCodes[src.Rand.Intn(len(procedureCodes))]
	start := fhir.NewDateTime(src.Now())
	end := fhir.NewDateTime(src.Now().Add(time.Duration(src.IntBetween(1, 3)) * time.Hour))

	return fhir.Procedure{
		ResourceType:    "Procedure",
		Id:              util.StringPtr(ctx.IDs.NewID("Procedure")),
		Status:          util.StringPtr("completed"),
		Code:            codedText(code),
		Subject:         ctx.Patient,
		Encounter:       ctx.Encounter,
		PerformedPeriod: &fhir.Period{Start: &start, End: &end},
	}, nil
}
