package factory

import (
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// CreatePractitioner builds the clinician shared across one patient
// story, carrying an NPI-style qualification.
func CreatePractitioner(ctx Context) (fhir.Practitioner, error) {
	fake := ctx.Source.Faker

	return fhir.Practitioner{
		ResourceType: "Practitioner",
		Id:           util.StringPtr(ctx.IDs.NewID("Practitioner")),
		Name: []fhir.HumanName{
			{
				Family: util.StringPtr(fake.LastName()),
				Given:  []string{fake.FirstName()},
			},
		},
		Qualification: []fhir.PractitionerQualification{
			{
				Identifier: []fhir.Identifier{
					{
						System: util.StringPtr("http://hl7.org/fhir/sid/us-npi"),
						Value:  util.StringPtr(fake.Numerify("#######")),
					},
				},
				Code: codedText(codeEntry{
					system:  "http://terminology.hl7.org/CodeSystem/v2-0360",
					code:    "MD",
					display: "Doctor of Medicine",
				}),
			},
		},
	}, nil
}
