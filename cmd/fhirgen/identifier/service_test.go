package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/synth"
)

func TestNewIDUnique(t *testing.T) {
	svc := NewIdentifierService(synth.NewSeededSource(1).Rand)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := svc.NewID("Patient")
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewIDDeterministicUnderSeed(t *testing.T) {
	a := NewIdentifierService(synth.NewSeededSource(42).Rand)
	b := NewIdentifierService(synth.NewSeededSource(42).Rand)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.NewID("Observation"), b.NewID("Observation"))
	}
}

func TestReferenceShape(t *testing.T) {
	svc := NewIdentifierService(synth.NewSeededSource(1).Rand)

	ref := svc.Reference("Patient", "abc-123")
	require.NotNil(t, ref.Reference)
	assert.Equal(t, "Patient/abc-123", *ref.Reference)
}
