package fhir

// Coding represents a single code drawn from a terminology system.
type Coding struct {
	System  *string `json:"system,omitempty"`
	Code    *string `json:"code,omitempty"`
	Display *string `json:"display,omitempty"`
}

// CodeableConcept represents a value expressed as one or more codings
// plus a human readable text.
type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   *string  `json:"text,omitempty"`
}

// Reference is a typed, non-owning pointer to another resource in the
// form "<ResourceType>/<id>".
type Reference struct {
	Reference *string `json:"reference,omitempty"`
	Display   *string `json:"display,omitempty"`
}

// Identifier represents a business identifier such as an MRN or NPI.
type Identifier struct {
	Use    *string `json:"use,omitempty"`
	System *string `json:"system,omitempty"`
	Value  *string `json:"value,omitempty"`
}

// HumanName holds a family name and any number of given names.
type HumanName struct {
	Family *string  `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
}

// ContactPoint represents a phone number or email address.
type ContactPoint struct {
	System *string `json:"system,omitempty"`
	Value  *string `json:"value,omitempty"`
	Use    *string `json:"use,omitempty"`
}

// Address represents a postal address.
type Address struct {
	Line       []string `json:"line,omitempty"`
	City       *string  `json:"city,omitempty"`
	State      *string  `json:"state,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Country    *string  `json:"country,omitempty"`
}

// Period is a time range with inclusive start and end.
type Period struct {
	Start *DateTime `json:"start,omitempty"`
	End   *DateTime `json:"end,omitempty"`
}

// Quantity is a measured amount with a unit.
type Quantity struct {
	Value *float64 `json:"value,omitempty"`
	Unit  *string  `json:"unit,omitempty"`
}

// Extension carries additional content not part of the base resource
// definition. Only the valueCodeableConcept form is generated here.
type Extension struct {
	Url                  string           `json:"url"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty"`
}

// Dosage describes how a medication should be taken.
type Dosage struct {
	Sequence *int    `json:"sequence,omitempty"`
	Text     *string `json:"text,omitempty"`
}
