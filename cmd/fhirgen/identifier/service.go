package identifier

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// IdentifierService mints ids that are unique for the lifetime of one
// dataset build and constructs typed references to them. Ids are drawn
// from the caller-supplied random stream, so a seeded stream yields
// reproducible ids.
type IdentifierService struct {
	random io.Reader
	minted map[string]struct{}
}

// NewIdentifierService creates a service reading randomness from r.
func NewIdentifierService(r io.Reader) *IdentifierService {
	return &IdentifierService{
		random: r,
		minted: make(map[string]struct{}),
	}
}

// NewID returns a fresh identifier for the given resource type. The id
// is unique across every call on this service instance.
func (s *IdentifierService) NewID(resourceType string) string {
	for {
		id, err := uuid.NewRandomFromReader(s.random)
		if err != nil {
			// A *rand.Rand reader never fails; this guards misuse
			// with an exhausted custom reader.
			id = uuid.New()
		}
		key := id.String()
		if _, seen := s.minted[key]; seen {
			continue
		}
		s.minted[key] = struct{}{}
		return key
	}
}

// Reference builds a typed reference in "<ResourceType>/<id>" form.
func (s *IdentifierService) Reference(resourceType, id string) fhir.Reference {
	return fhir.Reference{
		Reference: util.StringPtr(fmt.Sprintf("%s/%s", resourceType, id)),
	}
}
