package factory

import (
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// CreateCondition builds an active, confirmed Condition for the
// context's patient, optionally tied to its encounter.
func CreateCondition(ctx Context) (fhir.Condition, error) {
	if err := ctx.requirePatient("condition"); err != nil {
		return fhir.Condition{}, err
	}

	src := ctx.Source
	code := conditionCodes[src.Rand.Intn(len(conditionCodes))]
	recorded := fhir.NewDateTime(src.Now())

	return fhir.Condition{
		ResourceType: "Condition",
		Id:           util.StringPtr(ctx.IDs.NewID("Condition")),
		ClinicalStatus: codedText(codeEntry{
			system:  "http://terminology.hl7.org/CodeSystem/condition-clinical",
			code:    "active",
			display: "Active",
		}),
		VerificationStatus: codedText(codeEntry{
			system:  "http://terminology.hl7.org/CodeSystem/condition-ver-status",
			code:    "confirmed",
			display: "Confirmed",
		}),
		Code:         codedText(code),
		Subject:      ctx.Patient,
		Encounter:    ctx.Encounter,
		RecordedDate: &recorded,
	}, nil
}
