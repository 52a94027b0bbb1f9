package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinsynth/fhirgen/models/fhir"
	"github.com/clinsynth/fhirgen/util"
)

// DefaultType is the bundle type used when none is requested.
const DefaultType = "collection"

// BundleService wraps validated records into bundle containers. It
// performs no validation of its own: assembly stays free of business
// rules and trusts its input.
type BundleService struct {
	log zerolog.Logger
}

// NewBundleService creates a bundle assembler.
func NewBundleService(log zerolog.Logger) *BundleService {
	return &BundleService{log: log}
}

// Assemble wraps the given records into a bundle of the requested
// type. Records are encoded once into entries; nothing is copied or
// re-validated. total always equals the number of records supplied.
func (s *BundleService) Assemble(records []fhir.Resource, bundleType string) (*fhir.Bundle, error) {
	if bundleType == "" {
		bundleType = DefaultType
	}

	entries := make([]fhir.BundleEntry, 0, len(records))
	for _, record := range records {
		raw, err := encodeResource(record)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s/%s: %w", record.GetResourceType(), record.GetID(), err)
		}
		entries = append(entries, fhir.BundleEntry{
			FullUrl:  util.StringPtr(fmt.Sprintf("urn:uuid:%s", record.GetID())),
			Resource: raw,
		})
	}

	total := len(entries)
	s.log.Debug().Int("total", total).Str("type", bundleType).Msg("Assembled bundle")

	return &fhir.Bundle{
		ResourceType: "Bundle",
		Type:         bundleType,
		Total:        &total,
		Entry:        entries,
	}, nil
}

// AssembleRaw builds a bundle from already-encoded resource documents,
// as used when re-bundling previously exported files. Entries missing
// an id get a fullUrl-less entry rather than an invented identifier.
func (s *BundleService) AssembleRaw(documents []json.RawMessage, bundleType string) *fhir.Bundle {
	if bundleType == "" {
		bundleType = DefaultType
	}

	entries := make([]fhir.BundleEntry, 0, len(documents))
	for _, doc := range documents {
		var probe struct {
			Id string `json:"id"`
		}
		entry := fhir.BundleEntry{Resource: doc}
		if err := json.Unmarshal(doc, &probe); err == nil && probe.Id != "" {
			entry.FullUrl = util.StringPtr(fmt.Sprintf("urn:uuid:%s", probe.Id))
		}
		entries = append(entries, entry)
	}

	total := len(entries)
	return &fhir.Bundle{
		ResourceType: "Bundle",
		Type:         bundleType,
		Total:        &total,
		Entry:        entries,
	}
}

// encodeResource marshals without HTML escaping so coded URLs survive
// round-tripping.
func encodeResource(record fhir.Resource) (json.RawMessage, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(record); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimSpace(buf.Bytes())), nil
}
