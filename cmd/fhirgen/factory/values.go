package factory

import (
	"github.com/clinsynth/fhirgen/cmd/fhirgen/synth"
	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

func quantity(value float64, unit string) *fhir.Quantity {
	return &fhir.Quantity{
		Value: util.Float64Ptr(value),
		Unit:  util.StringPtr(unit),
	}
}

// applyObservationValue fills in the value slot appropriate to the
// observation type. Blood pressure is a two-component panel; the rest
// are single quantities. Unknown types fall back to a value string.
func applyObservationValue(src *synth.Source, observationType string, observation *fhir.Observation) {
	switch observationType {
	case "blood_pressure":
		observation.Component = []fhir.ObservationComponent{
			{
				Code:          codedText(codeEntry{"http://loinc.org", "8480-6", "Systolic blood pressure"}),
				ValueQuantity: quantity(src.GaussRound(120, 15, 0), "mmHg"),
			},
			{
				Code:          codedText(codeEntry{"http://loinc.org", "8462-4", "Diastolic blood pressure"}),
				ValueQuantity: quantity(src.GaussRound(80, 10, 0), "mmHg"),
			},
		}
	case "heart_rate":
		observation.ValueQuantity = quantity(src.GaussRound(72, 8, 0), "beats/min")
	case "temperature":
		observation.ValueQuantity = quantity(src.GaussRound(98.6, 0.7, 1), "F")
	case "glucose":
		observation.ValueQuantity = quantity(src.GaussRound(100, 25, 1), "mg/dL")
	case "cholesterol":
		observation.ValueQuantity = quantity(src.GaussRound(190, 35, 1), "mg/dL")
	case "spo2":
		observation.ValueQuantity = quantity(src.GaussRound(97, 2, 1), "%")
	default:
		observation.ValueString = util.StringPtr("Synthetic observation")
	}
}
