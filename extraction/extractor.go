package extraction

import (
	"math/rand"
	"time"
)

// Record is one set of fields pulled from a document. Callers must treat every
// field as present-or-absent, never as authoritative ground truth.
type Record map[string]string

// Extractor produces field values from an uploaded document. Passing a
// knownName keeps identity fields consistent across document types for the
// same individual. Unknown doc types yield an empty record.
type Extractor interface {
	Extract(docType string, knownName string) Record
}

// Current is the process-wide extractor. main selects it from config; tests
// swap in a PinnedExtractor.
var Current Extractor = NewMockExtractor()

func clone(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// MockExtractor returns a pseudo-random sample from the fixture tables.
type MockExtractor struct {
	rng *rand.Rand
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *MockExtractor) Extract(docType string, knownName string) Record {
	switch docType {
	case "aadhar_front":
		return clone(aadhaarFrontMocks[m.rng.Intn(len(aadhaarFrontMocks))])
	case "aadhar_back":
		return clone(aadhaarBackMocks[m.rng.Intn(len(aadhaarBackMocks))])
	case "pancard":
		return m.pick(pancardMocks, knownName)
	case "passport":
		return m.pick(passportMocks, knownName)
	default:
		return Record{}
	}
}

// pick prefers the fixture record matching knownName so the same identity is
// returned across document types; otherwise the random pick is renamed.
func (m *MockExtractor) pick(fixtures []Record, knownName string) Record {
	if knownName != "" {
		for _, rec := range fixtures {
			if rec["name"] == knownName {
				return clone(rec)
			}
		}
		rec := clone(fixtures[m.rng.Intn(len(fixtures))])
		rec["name"] = knownName
		return rec
	}
	return clone(fixtures[m.rng.Intn(len(fixtures))])
}

// PinnedExtractor returns a fixed record per doc type. Used in tests to pin
// exact outputs instead of tolerating randomness.
type PinnedExtractor struct {
	Records map[string]Record
}

func (p *PinnedExtractor) Extract(docType string, knownName string) Record {
	rec, ok := p.Records[docType]
	if !ok {
		return Record{}
	}
	out := clone(rec)
	if knownName != "" {
		if _, has := out["name"]; has {
			out["name"] = knownName
		}
	}
	return out
}
