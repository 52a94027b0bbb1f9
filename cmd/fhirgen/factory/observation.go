package factory

import (
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// CreateObservation builds a vital-sign Observation of the requested
// type, linked to the context's patient and, when present, its
// encounter. An empty observationType picks one at random.
func CreateObservation(ctx Context, observationType string) (fhir.Observation, error) {
	if err := ctx.requirePatient("observation"); err != nil {
		return fhir.Observation{}, err
	}

	src := ctx.Source
	if observationType == "" {
		observationType = ObservationTypes[src.Rand.Intn(len(ObservationTypes))]
	}

	code, known := observationCodes[observationType]
	if !known {
		code = codeEntry{display: observationType}
	}
	effective := fhir.NewDateTime(src.Now())

	observation := fhir.Observation{
		ResourceType: "Observation",
		Id:           util.StringPtr(ctx.IDs.NewID("Observation")),
		Status:       util.StringPtr("final"),
		Category: []fhir.CodeableConcept{
			*codedText(codeEntry{
				system:  "http://terminology.hl7.org/CodeSystem/observation-category",
				code:    "vital-signs",
				display: "Vital Signs",
			}),
		},
		Code:              codedText(code),
		Subject:           ctx.Patient,
		Encounter:         ctx.Encounter,
		EffectiveDateTime: &effective,
	}

	applyObservationValue(src, observationType, &observation)
	return observation, nil
}
