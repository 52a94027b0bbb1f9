package factory

import (
	"strings"
	"time"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/synth"
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

const maxPatientAgeYears = 90

// CreatePatient builds a Patient resource with plausible demographic
// signals: MRN identifier, name, gender, birth date, ethnicity
// extension, address, telecom, and age-appropriate body metrics.
func CreatePatient(ctx Context) (fhir.Patient, error) {
	src := ctx.Source
	fake := src.Faker

	gender := genderCodes[src.Rand.Intn(len(genderCodes))]
	birth := src.PastTime(maxPatientAgeYears * 365 * 24 * time.Hour)
	ageYears := int(src.Now().Sub(birth).Hours() / 24 / 365)
	birthDate := fhir.NewDate(birth)

	return fhir.Patient{
		ResourceType: "Patient",
		Id:           util.StringPtr(ctx.IDs.NewID("Patient")),
		Identifier: []fhir.Identifier{
			{
				Use:    util.StringPtr("official"),
				System: util.StringPtr("http://hospital.smarthealth.org/mrn"),
				Value:  util.StringPtr(strings.ToUpper(fake.Lexify("??")) + fake.Numerify("#####")),
			},
		},
		Name: []fhir.HumanName{
			{
				Family: util.StringPtr(fake.LastName()),
				Given:  []string{fake.FirstName()},
			},
		},
		Gender:    util.StringPtr(gender.code),
		BirthDate: &birthDate,
		Extension: []fhir.Extension{
			{
				Url:                  "http://hl7.org/fhir/us/core/StructureDefinition/us-core-ethnicity",
				ValueCodeableConcept: codedText(ethnicityCodes[src.Rand.Intn(len(ethnicityCodes))]),
			},
		},
		Address: []fhir.Address{
			{
				Line:       []string{fake.Street()},
				City:       util.StringPtr(fake.City()),
				State:      util.StringPtr(fake.StateAbr()),
				PostalCode: util.StringPtr(fake.Zip()),
				Country:    util.StringPtr("USA"),
			},
		},
		Telecom: []fhir.ContactPoint{
			{System: util.StringPtr("phone"), Value: util.StringPtr(fake.Phone()), Use: util.StringPtr("mobile")},
			{System: util.StringPtr("email"), Value: util.StringPtr(fake.Email()), Use: util.StringPtr("home")},
		},
		BodyMetrics: bodyMetricsForAge(src, ageYears),
	}, nil
}

// bodyMetricsForAge returns rough height/weight estimates with
// gaussian noise around an age-scaled baseline.
func bodyMetricsForAge(src *synth.Source, age int) *fhir.BodyMetrics {
	baseWeight := 20 + float64(age)*0.8
	baseHeight := 120 + float64(age)*1.2
	return &fhir.BodyMetrics{
		WeightKg: src.GaussRound(baseWeight, 10, 1),
		HeightCm: src.GaussRound(baseHeight, 8, 1),
	}
}
