package factory

import (
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

var reactionSeverities = []string{"mild", "moderate", "severe"}

// CreateAllergyIntolerance builds an active AllergyIntolerance with a
// randomized allergen and a single rash reaction.
func CreateAllergyIntolerance(ctx Context) (fhir.AllergyIntolerance, error) {
	if err := ctx.requirePatient("allergy intolerance"); err != nil {
		return fhir.AllergyIntolerance{}, err
	}

	src := ctx.Source
	allergen := allergenCodes[src.Rand.Intn(len(allergenCodes))]
	severity := reactionSeverities[src.Rand.Intn(len(reactionSeverities))]

	return fhir.AllergyIntolerance{
		ResourceType: "AllergyIntolerance",
		Id:           util.StringPtr(ctx.IDs.NewID("AllergyIntolerance")),
		ClinicalStatus: codedText(codeEntry{
			system:  "http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical",
			code:    "active",
			display: "Active",
		}),
		VerificationStatus: codedText(codeEntry{
			system:  "http://terminology.hl7.org/CodeSystem/allergyintolerance-verification",
			code:    "confirmed",
			display: "Confirmed",
		}),
		Code:    codedText(allergen),
		Patient: ctx.Patient,
		Reaction: []fhir.AllergyIntoleranceReaction{
			{
				Manifestation: []fhir.CodeableConcept{
					*codedText(codeEntry{"http://snomed.info/sct", "271807003", "Rash"}),
				},
				Severity: util.StringPtr(severity),
			},
		},
	}, nil
}
