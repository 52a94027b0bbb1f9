package factory

import (
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

type codeEntry struct {
	system  string
	code    string
	display string
}

// ObservationTypes lists the vital-sign kinds a story builder cycles
// through when populating an encounter.
var ObservationTypes = []string{
	"blood_pressure",
	"heart_rate",
	"temperature",
	"glucose",
	"cholesterol",
	"spo2",
}

var genderCodes = []codeEntry{
	{"http://hl7.org/fhir/administrative-gender", "male", "Male"},
	{"http://hl7.org/fhir/administrative-gender", "female", "Female"},
	{"http://hl7.org/fhir/administrative-gender", "other", "Other"},
}

var encounterClasses = []codeEntry{
	{"http://terminology.hl7.org/CodeSystem/v3-ActCode", "AMB", "ambulatory"},
	{"http://terminology.hl7.org/CodeSystem/v3-ActCode", "IMP", "inpatient encounter"},
	{"http://terminology.hl7.org/CodeSystem/v3-ActCode", "EMER", "emergency"},
}

var conditionCodes = []codeEntry{
	{"http://hl7.org/fhir/sid/icd-10", "E11", "Type 2 diabetes mellitus"},
	{"http://hl7.org/fhir/sid/icd-10", "I10", "Essential (primary) hypertension"},
	{"http://hl7.org/fhir/sid/icd-10", "J45", "Asthma"},
}

var observationCodes = map[string]codeEntry{
	"blood_pressure": {"http://loinc.org", "85354-9", "Blood pressure panel"},
	"heart_rate":     {"http://loinc.org", "8867-4", "Heart rate"},
	"temperature":    {"http://loinc.org", "8310-5", "Body temperature"},
	"glucose":        {"http://loinc.org", "2339-0", "Glucose [Mass/volume] in Blood"},
	"cholesterol":    {"http://loinc.org", "2093-3", "Cholesterol"},
	"spo2":           {"http://loinc.org", "59408-5", "Oxygen saturation in Arterial blood by Pulse oximetry"},
}

var medicationCodes = []codeEntry{
	{"http://www.nlm.nih.gov/research/umls/rxnorm", "860975", "Metformin 500 MG"},
	{"http://www.nlm.nih.gov/research/umls/rxnorm", "617314", "Lisinopril 10 MG"},
	{"http://www.nlm.nih.gov/research/umls/rxnorm", "198211", "Simvastatin 20 MG"},
}

var procedureCodes = []codeEntry{
	{"http://www.ama-assn.org/go/cpt", "93000", "Electrocardiogram"},
	{"http://www.ama-assn.org/go/cpt", "71020", "Chest x-ray"},
}

var reportCodes = []codeEntry{
	{"http://loinc.org", "58410-2", "Complete blood count"},
	{"http://loinc.org", "24323-8", "Lipid panel"},
	{"http://loinc.org", "2093-3", "Cholesterol"},
}

var allergenCodes = []codeEntry{
	{"http://snomed.info/sct", "91935009", "Peanut"},
	{"http://snomed.info/sct", "235719002", "Penicillin"},
	{"http://snomed.info/sct", "300916003", "Latex"},
}

var ethnicityCodes = []codeEntry{
	{"urn:oid:2.16.840.1.113883.6.238", "2135-2", "Hispanic or Latino"},
	{"urn:oid:2.16.840.1.113883.6.238", "2186-5", "Not Hispanic or Latino"},
}

func coding(e codeEntry) fhir.Coding {
	return fhir.Coding{
		System:  util.StringPtr(e.system),
		Code:    util.StringPtr(e.code),
		Display: util.StringPtr(e.display),
	}
}

// codedText builds a CodeableConcept with one coding and its display
// as the human readable text.
func codedText(e codeEntry) *fhir.CodeableConcept {
	return &fhir.CodeableConcept{
		Coding: []fhir.Coding{coding(e)},
		Text:   util.StringPtr(e.display),
	}
}
