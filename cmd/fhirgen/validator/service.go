package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinsynth/fhirgen/models/fhir"
)

var referencePattern = regexp.MustCompile(`^[A-Za-z]+/[A-Za-z0-9\-\.]{1,64}$`)

// ValidationService checks records for structural soundness before
// export. Checks run in four classes, short-circuiting on the first
// failing class while accumulating every reason within it:
//
//  1. presence of resourceType and id
//  2. presence of the fields mandatory for that resourceType
//  3. syntactic shape of every embedded reference
//  4. resolvability of references against records already accepted in
//     the same story
//
// Because class 4 only resolves against accepted records, a record
// referencing an excluded record fails too, which yields transitive
// exclusion without any dependency bookkeeping.
type ValidationService struct {
	log      zerolog.Logger
	accepted map[string]string // id -> resourceType
}

// NewValidationService creates a validator with an empty story scope.
func NewValidationService(log zerolog.Logger) *ValidationService {
	return &ValidationService{
		log:      log,
		accepted: make(map[string]string),
	}
}

// Reset starts a new story scope. References never resolve across
// stories.
func (s *ValidationService) Reset() {
	s.accepted = make(map[string]string)
}

// Validate judges one record. Valid records join the accepted set for
// subsequent resolvability checks; the record itself is never mutated.
func (s *ValidationService) Validate(record fhir.Resource) Result {
	resourceType := record.GetResourceType()
	id := record.GetID()

	var reasons []string
	if resourceType == "" {
		reasons = append(reasons, "missing resourceType")
	}
	if id == "" {
		reasons = append(reasons, "missing id")
	}
	if len(reasons) > 0 {
		return s.report(resourceType, id, invalid(reasons...))
	}

	if missing := missingRequiredFields(record); len(missing) > 0 {
		for _, field := range missing {
			reasons = append(reasons, fmt.Sprintf("missing required field %s", field))
		}
		return s.report(resourceType, id, invalid(reasons...))
	}

	refs := embeddedReferences(record)
	for _, ref := range refs {
		if ref.target == "" || !referencePattern.MatchString(ref.target) {
			reasons = append(reasons, fmt.Sprintf("reference %s is not in <Type>/<id> form", ref.field))
		}
	}
	if len(reasons) > 0 {
		return s.report(resourceType, id, invalid(reasons...))
	}

	for _, ref := range refs {
		targetType, targetID, _ := strings.Cut(ref.target, "/")
		acceptedType, ok := s.accepted[targetID]
		if !ok || acceptedType != targetType {
			reasons = append(reasons, fmt.Sprintf("reference %s does not resolve: %s", ref.field, ref.target))
		}
	}
	if len(reasons) > 0 {
		return s.report(resourceType, id, invalid(reasons...))
	}

	s.accepted[id] = resourceType
	return Result{}
}

func (s *ValidationService) report(resourceType, id string, result Result) Result {
	s.log.Warn().
		Str("resource_type", resourceType).
		Str("id", id).
		Strs("reasons", result.Reasons).
		Msg("Record failed validation")
	return result
}

type embeddedReference struct {
	field  string
	target string
}

func refTarget(r *fhir.Reference) string {
	if r == nil || r.Reference == nil {
		return ""
	}
	return *r.Reference
}

// embeddedReferences lists every resolvable pointer a record carries.
// Display-only references (such as encounter locations) are not
// pointers and are skipped.
func embeddedReferences(record fhir.Resource) []embeddedReference {
	var refs []embeddedReference
	add := func(field string, r *fhir.Reference) {
		if r == nil {
			return
		}
		refs = append(refs, embeddedReference{field: field, target: refTarget(r)})
	}

	switch r := record.(type) {
	case fhir.Encounter:
		add("subject", r.Subject)
		for _, p := range r.Participant {
			add("participant.individual", p.Individual)
		}
	case fhir.Observation:
		add("subject", r.Subject)
		add("encounter", r.Encounter)
	case fhir.Condition:
		add("subject", r.Subject)
		add("encounter", r.Encounter)
	case fhir.MedicationRequest:
		add("subject", r.Subject)
		add("encounter", r.Encounter)
		add("requester", r.Requester)
	case fhir.Procedure:
		add("subject", r.Subject)
		add("encounter", r.Encounter)
	case fhir.DiagnosticReport:
		add("subject", r.Subject)
		add("encounter", r.Encounter)
		for i := range r.Result {
			add("result", &r.Result[i])
		}
	case fhir.AllergyIntolerance:
		add("patient", r.Patient)
	}

	return refs
}

// missingRequiredFields returns the names of mandatory fields absent
// from the record, using the fixed per-kind mapping. Kinds without a
// mapping only need resourceType and id.
func missingRequiredFields(record fhir.Resource) []string {
	var missing []string
	requireRef := func(field string, r *fhir.Reference) {
		if r == nil {
			missing = append(missing, field)
		}
	}
	requireStr := func(field string, v *string) {
		if v == nil || *v == "" {
			missing = append(missing, field)
		}
	}

	switch r := record.(type) {
	case fhir.Practitioner:
		if len(r.Name) == 0 {
			missing = append(missing, "name")
		}
	case fhir.Patient:
		if len(r.Name) == 0 {
			missing = append(missing, "name")
		}
		requireStr("gender", r.Gender)
		if r.BirthDate == nil || r.BirthDate.IsZero() {
			missing = append(missing, "birthDate")
		}
	case fhir.Encounter:
		requireStr("status", r.Status)
		if r.Class == nil {
			missing = append(missing, "class")
		}
		requireRef("subject", r.Subject)
	case fhir.Observation:
		requireStr("status", r.Status)
		if r.Code == nil {
			missing = append(missing, "code")
		}
		requireRef("subject", r.Subject)
	case fhir.Condition:
		if r.Code == nil {
			missing = append(missing, "code")
		}
		requireRef("subject", r.Subject)
	case fhir.MedicationRequest:
		requireStr("status", r.Status)
		requireStr("intent", r.Intent)
		if r.MedicationCodeableConcept == nil {
			missing = append(missing, "medicationCodeableConcept")
		}
		requireRef("subject", r.Subject)
	case fhir.Procedure:
		requireStr("status", r.Status)
		if r.Code == nil {
			missing = append(missing, "code")
		}
		requireRef("subject", r.Subject)
	case fhir.DiagnosticReport:
		requireStr("status", r.Status)
		if r.Code == nil {
			missing = append(missing, "code")
		}
		requireRef("subject", r.Subject)
	case fhir.AllergyIntolerance:
		if r.Code == nil {
			missing = append(missing, "code")
		}
		requireRef("patient", r.Patient)
	}

	return missing
}
