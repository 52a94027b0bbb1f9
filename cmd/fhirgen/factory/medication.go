package factory

import (
	"fmt"

	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// CreateMedicationRequest builds an active order for a common therapy,
// with the context's practitioner as requester when present.
func CreateMedicationRequest(ctx Context) (fhir.MedicationRequest, error) {
	if err := ctx.requirePatient("medication request"); err != nil {
		return fhir.MedicationRequest{}, err
	}

	src := ctx.Source
	medication := medicationCodes[src.Rand.Intn(len(medicationCodes))]
	authored := fhir.NewDateTime(src.Now())

	return fhir.MedicationRequest{
		ResourceType:              "MedicationRequest",
		Id:                        util.StringPtr(ctx.IDs.NewID("MedicationRequest")),
		Status:                    util.StringPtr("active"),
		Intent:                    util.StringPtr("order"),
		MedicationCodeableConcept: codedText(medication),
		Subject:                   ctx.Patient,
		Encounter:                 ctx.Encounter,
		Requester:                 ctx.Practitioner,
		AuthoredOn:                &authored,
		DosageInstruction: []fhir.Dosage{
			{
				Sequence: util.IntPtr(1),
				Text:     util.StringPtr(fmt.Sprintf("Take %d tablet(s) by mouth daily", src.IntBetween(1, 2))),
			},
		},
	}, nil
}
