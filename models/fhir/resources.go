package fhir

import "encoding/json"

// Resource is the common surface of every generated resource. The
// concrete type is the tagged variant; ResourceType is the tag.
type Resource interface {
	GetResourceType() string
	GetID() string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Practitioner represents the clinician shared across a patient story.
type Practitioner struct {
	ResourceType  string                      `json:"resourceType"`
	Id            *string                     `json:"id,omitempty"`
	Name          []HumanName                 `json:"name,omitempty"`
	Qualification []PractitionerQualification `json:"qualification,omitempty"`
}

type PractitionerQualification struct {
	Identifier []Identifier     `json:"identifier,omitempty"`
	Code       *CodeableConcept `json:"code,omitempty"`
}

func (p Practitioner) GetResourceType() string { return p.ResourceType }
func (p Practitioner) GetID() string           { return deref(p.Id) }

// Patient represents one synthetic patient with demographic signals.
type Patient struct {
	ResourceType string        `json:"resourceType"`
	Id           *string       `json:"id,omitempty"`
	Identifier   []Identifier  `json:"identifier,omitempty"`
	Name         []HumanName   `json:"name,omitempty"`
	Gender       *string       `json:"gender,omitempty"`
	BirthDate    *Date         `json:"birthDate,omitempty"`
	Extension    []Extension   `json:"extension,omitempty"`
	Address      []Address     `json:"address,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty"`
	BodyMetrics  *BodyMetrics  `json:"extension_body,omitempty"`
}

// BodyMetrics carries height/weight estimates alongside the standard
// demographic fields, matching the flattened export format.
type BodyMetrics struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

func (p Patient) GetResourceType() string { return p.ResourceType }
func (p Patient) GetID() string           { return deref(p.Id) }

// Encounter represents a single visit tied to a patient and an
// optional practitioner.
type Encounter struct {
	ResourceType string                 `json:"resourceType"`
	Id           *string                `json:"id,omitempty"`
	Status       *string                `json:"status,omitempty"`
	Class        *Coding                `json:"class,omitempty"`
	Type         []CodeableConcept      `json:"type,omitempty"`
	Subject      *Reference             `json:"subject,omitempty"`
	Participant  []EncounterParticipant `json:"participant,omitempty"`
	Period       *Period                `json:"period,omitempty"`
	Location     []EncounterLocation    `json:"location,omitempty"`
}

type EncounterParticipant struct {
	Individual *Reference `json:"individual,omitempty"`
}

type EncounterLocation struct {
	Location *Reference `json:"location,omitempty"`
}

func (e Encounter) GetResourceType() string { return e.ResourceType }
func (e Encounter) GetID() string           { return deref(e.Id) }

// Observation represents one vital-sign measurement.
type Observation struct {
	ResourceType      string                 `json:"resourceType"`
	Id                *string                `json:"id,omitempty"`
	Status            *string                `json:"status,omitempty"`
	Category          []CodeableConcept      `json:"category,omitempty"`
	Code              *CodeableConcept       `json:"code,omitempty"`
	Subject           *Reference             `json:"subject,omitempty"`
	Encounter         *Reference             `json:"encounter,omitempty"`
	EffectiveDateTime *DateTime              `json:"effectiveDateTime,omitempty"`
	ValueQuantity     *Quantity              `json:"valueQuantity,omitempty"`
	ValueString       *string                `json:"valueString,omitempty"`
	Component         []ObservationComponent `json:"component,omitempty"`
}

type ObservationComponent struct {
	Code          *CodeableConcept `json:"code,omitempty"`
	ValueQuantity *Quantity        `json:"valueQuantity,omitempty"`
}

func (o Observation) GetResourceType() string { return o.ResourceType }
func (o Observation) GetID() string           { return deref(o.Id) }

// Condition represents an active diagnosis for a patient.
type Condition struct {
	ResourceType       string           `json:"resourceType"`
	Id                 *string          `json:"id,omitempty"`
	ClinicalStatus     *CodeableConcept `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept `json:"verificationStatus,omitempty"`
	Code               *CodeableConcept `json:"code,omitempty"`
	Subject            *Reference       `json:"subject,omitempty"`
	Encounter          *Reference       `json:"encounter,omitempty"`
	RecordedDate       *DateTime        `json:"recordedDate,omitempty"`
}

func (c Condition) GetResourceType() string { return c.ResourceType }
func (c Condition) GetID() string           { return deref(c.Id) }

// MedicationRequest represents an order for a common therapy.
type MedicationRequest struct {
	ResourceType              string           `json:"resourceType"`
	Id                        *string          `json:"id,omitempty"`
	Status                    *string          `json:"status,omitempty"`
	Intent                    *string          `json:"intent,omitempty"`
	MedicationCodeableConcept *CodeableConcept `json:"medicationCodeableConcept,omitempty"`
	Subject                   *Reference       `json:"subject,omitempty"`
	Encounter                 *Reference       `json:"encounter,omitempty"`
	Requester                 *Reference       `json:"requester,omitempty"`
	AuthoredOn                *DateTime        `json:"authoredOn,omitempty"`
	DosageInstruction         []Dosage         `json:"dosageInstruction,omitempty"`
}

func (m MedicationRequest) GetResourceType() string { return m.ResourceType }
func (m MedicationRequest) GetID() string           { return deref(m.Id) }

// Procedure represents a completed procedure within an encounter.
type Procedure struct {
	ResourceType    string           `json:"resourceType"`
	Id              *string          `json:"id,omitempty"`
	Status          *string          `json:"status,omitempty"`
	Code            *CodeableConcept `json:"code,omitempty"`
	Subject         *Reference       `json:"subject,omitempty"`
	Encounter       *Reference       `json:"encounter,omitempty"`
	PerformedPeriod *Period          `json:"performedPeriod,omitempty"`
}

func (p Procedure) GetResourceType() string { return p.ResourceType }
func (p Procedure) GetID() string           { return deref(p.Id) }

// DiagnosticReport groups a set of observations under a report code.
type DiagnosticReport struct {
	ResourceType string           `json:"resourceType"`
	Id           *string          `json:"id,omitempty"`
	Status       *string          `json:"status,omitempty"`
	Code         *CodeableConcept `json:"code,omitempty"`
	Subject      *Reference       `json:"subject,omitempty"`
	Encounter    *Reference       `json:"encounter,omitempty"`
	Result       []Reference      `json:"result,omitempty"`
	Issued       *DateTime        `json:"issued,omitempty"`
}

func (d DiagnosticReport) GetResourceType() string { return d.ResourceType }
func (d DiagnosticReport) GetID() string           { return deref(d.Id) }

// AllergyIntolerance represents a recorded allergy with one reaction.
type AllergyIntolerance struct {
	ResourceType       string                       `json:"resourceType"`
	Id                 *string                      `json:"id,omitempty"`
	ClinicalStatus     *CodeableConcept             `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept             `json:"verificationStatus,omitempty"`
	Code               *CodeableConcept             `json:"code,omitempty"`
	Patient            *Reference                   `json:"patient,omitempty"`
	Reaction           []AllergyIntoleranceReaction `json:"reaction,omitempty"`
}

type AllergyIntoleranceReaction struct {
	Manifestation []CodeableConcept `json:"manifestation,omitempty"`
	Severity      *string           `json:"severity,omitempty"`
}

func (a AllergyIntolerance) GetResourceType() string { return a.ResourceType }
func (a AllergyIntolerance) GetID() string           { return deref(a.Id) }

// Bundle is a tagged, ordered collection of resources assembled for
// export. Entries hold the already-encoded resource bytes so the
// bundle never copies or re-validates resource content.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	Id           *string       `json:"id,omitempty"`
	Type         string        `json:"type"`
	Total        *int          `json:"total,omitempty"`
	Timestamp    *DateTime     `json:"timestamp,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	FullUrl  *string         `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}

func (b Bundle) GetResourceType() string { return b.ResourceType }
func (b Bundle) GetID() string           { return deref(b.Id) }
