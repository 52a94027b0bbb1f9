package validator

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

func validPatient(id string) fhir.Patient {
	birth := fhir.NewDate(time.Date(1980, time.March, 14, 0, 0, 0, 0, time.UTC))
	return fhir.Patient{
		ResourceType: "Patient",
		Id:           util.StringPtr(id),
		Name:         []fhir.HumanName{{Family: util.StringPtr("Doe"), Given: []string{"Jane"}}},
		Gender:       util.StringPtr("female"),
		BirthDate:    &birth,
	}
}

func validEncounter(id, patientID string) fhir.Encounter {
	return fhir.Encounter{
		ResourceType: "Encounter",
		Id:           util.StringPtr(id),
		Status:       util.StringPtr("finished"),
		Class:        &fhir.Coding{Code: util.StringPtr("AMB")},
		Subject:      reference("Patient", patientID),
	}
}

func validObservation(id, patientID, encounterID string) fhir.Observation {
	observation := fhir.Observation{
		ResourceType: "Observation",
		Id:           util.StringPtr(id),
		Status:       util.StringPtr("final"),
		Code:         &fhir.CodeableConcept{Text: util.StringPtr("Heart rate")},
		Subject:      reference("Patient", patientID),
	}
	if encounterID != "" {
		observation.Encounter = reference("Encounter", encounterID)
	}
	return observation
}

func reference(resourceType, id string) *fhir.Reference {
	return &fhir.Reference{Reference: util.StringPtr(resourceType + "/" + id)}
}

func TestValidChain(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())

	assert.True(t, svc.Validate(validPatient("p1")).Valid())
	assert.True(t, svc.Validate(validEncounter("e1", "p1")).Valid())
	assert.True(t, svc.Validate(validObservation("o1", "p1", "e1")).Valid())
}

func TestMissingIdentity(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())

	result := svc.Validate(fhir.Patient{})
	require.False(t, result.Valid())
	assert.Contains(t, result.Reasons, "missing resourceType")
	assert.Contains(t, result.Reasons, "missing id")
}

func TestMissingRequiredFieldsAccumulate(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())

	patient := fhir.Patient{ResourceType: "Patient", Id: util.StringPtr("p1")}
	result := svc.Validate(patient)
	require.False(t, result.Valid())
	assert.Contains(t, result.Reasons, "missing required field name")
	assert.Contains(t, result.Reasons, "missing required field gender")
	assert.Contains(t, result.Reasons, "missing required field birthDate")
}

func TestMalformedReferenceShape(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())
	require.True(t, svc.Validate(validPatient("p1")).Valid())

	encounter := validEncounter("e1", "p1")
	encounter.Subject = &fhir.Reference{Reference: util.StringPtr("not a reference")}
	result := svc.Validate(encounter)
	require.False(t, result.Valid())
	assert.Contains(t, result.Reasons[0], "not in <Type>/<id> form")
}

func TestDanglingReference(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())
	require.True(t, svc.Validate(validPatient("p1")).Valid())

	observation := validObservation("o1", "p1", "ghost")
	result := svc.Validate(observation)
	require.False(t, result.Valid())
	assert.Contains(t, result.Reasons[0], "does not resolve")
}

func TestReferenceTypeMustMatch(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())
	require.True(t, svc.Validate(validPatient("p1")).Valid())

	observation := validObservation("o1", "p1", "")
	observation.Encounter = reference("Encounter", "p1") // right id, wrong type
	assert.False(t, svc.Validate(observation).Valid())
}

// A record referencing an excluded record is itself excluded, while
// siblings that do not depend on it still pass.
func TestTransitiveExclusion(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())
	require.True(t, svc.Validate(validPatient("p1")).Valid())

	// Observation pointing at an encounter that was never accepted.
	bad := validObservation("o1", "p1", "missing-encounter")
	require.False(t, svc.Validate(bad).Valid())

	// Report depending on the excluded observation fails too.
	report := fhir.DiagnosticReport{
		ResourceType: "DiagnosticReport",
		Id:           util.StringPtr("r1"),
		Status:       util.StringPtr("final"),
		Code:         &fhir.CodeableConcept{Text: util.StringPtr("Panel")},
		Subject:      reference("Patient", "p1"),
		Result:       []fhir.Reference{*reference("Observation", "o1")},
	}
	assert.False(t, svc.Validate(report).Valid())

	// A sibling that only depends on the patient is unaffected.
	sibling := validObservation("o2", "p1", "")
	assert.True(t, svc.Validate(sibling).Valid())
}

func TestResetClearsStoryScope(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())
	require.True(t, svc.Validate(validPatient("p1")).Valid())
	svc.Reset()

	// Reference into the previous story no longer resolves.
	encounter := validEncounter("e1", "p1")
	assert.False(t, svc.Validate(encounter).Valid())
}

func TestValidateNeverMutates(t *testing.T) {
	svc := NewValidationService(zerolog.Nop())
	patient := validPatient("p1")
	before := *patient.Id

	_ = svc.Validate(patient)
	assert.Equal(t, before, *patient.Id)
}
