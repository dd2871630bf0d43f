package testutil

// DefaultRunID is returned by a FixedRunIDGenerator built with an empty id.
const DefaultRunID = "test-run-default"

// FixedRunIDGenerator returns the same run id on every call, so golden
// snapshots of separate runs are byte-identical.
//
// It satisfies harness.RunIDGenerator.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator returns a generator for id, or DefaultRunID when id
// is empty.
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run id.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
