package factory

import (
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// CreateDiagnosticReport builds a final DiagnosticReport grouping the
// observation references supplied in the context. Patient and
// encounter references are mandatory.
func CreateDiagnosticReport(ctx Context) (fhir.DiagnosticReport, error) {
	if err := ctx.requirePatient("diagnostic report"); err != nil {
		return fhir.DiagnosticReport{}, err
	}
	if err := ctx.requireEncounter("diagnostic report"); err != nil {
		return fhir.DiagnosticReport{}, err
	}

	src := ctx.Source
	code := reportCodes[src.Rand.Intn(len(reportCodes))]
	issued := fhir.NewDateTime(src.Now())

	results := make([]fhir.Reference, len(ctx.Observations))
	copy(results, ctx.Observations)

	return fhir.DiagnosticReport{
		ResourceType: "DiagnosticReport",
		Id:           util.StringPtr(ctx.IDs.NewID("DiagnosticReport")),
		Status:       util.StringPtr("final"),
		Code:         codedText(code),
		Subject:      ctx.Patient,
		Encounter:    ctx.Encounter,
		Result:       results,
		Issued:       &issued,
	}, nil
}
