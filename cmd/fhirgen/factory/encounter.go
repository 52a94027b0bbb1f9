package factory

import (
	"fmt"
	"time"

	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// CreateEncounter builds a finished Encounter tied to the context's
// patient and, when present, its practitioner.
func CreateEncounter(ctx Context) (fhir.Encounter, error) {
	if err := ctx.requirePatient("encounter"); err != nil {
		return fhir.Encounter{}, err
	}

	src := ctx.Source
	class := encounterClasses[src.Rand.Intn(len(encounterClasses))]
	classCoding := coding(class)
	start := src.PastTime(2 * 365 * 24 * time.Hour)
	end := start.Add(time.Duration(src.IntBetween(1, 72)) * time.Hour)
	periodStart := fhir.NewDateTime(start)
	periodEnd := fhir.NewDateTime(end)

	var participants []fhir.EncounterParticipant
	if ctx.Practitioner != nil {
		participants = append(participants, fhir.EncounterParticipant{
			Individual: ctx.Practitioner,
		})
	}

	return fhir.Encounter{
		ResourceType: "Encounter",
		Id:           util.StringPtr(ctx.IDs.NewID("Encounter")),
		Status:       util.StringPtr("finished"),
		Class:        &classCoding,
		Type:         []fhir.CodeableConcept{*codedText(class)},
		Subject:      ctx.Patient,
		Participant:  participants,
		Period:       &fhir.Period{Start: &periodStart, End: &periodEnd},
		Location: []fhir.EncounterLocation{
			{
				Location: &fhir.Reference{
					Display: util.StringPtr(fmt.Sprintf("%s Medical Center", src.Faker.Company())),
				},
			},
		},
	}, nil
}
