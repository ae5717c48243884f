package cart

import (
	"sync"

	"github.com/google/uuid"
)

// OrderNumberPrefix is the human-readable prefix carried by every order
// number, whatever generator produced it.
const OrderNumberPrefix = "NGS-"

// OrderNumberGenerator generates unique order numbers.
// Implemented by UUIDGenerator (production) and FixedGenerator (tests).
type OrderNumberGenerator interface {
	Generate() string
}

// UUIDGenerator produces time-sortable order numbers from UUIDv7.
//
// UUIDv7 embeds a timestamp in the most significant bits, so order numbers
// sort by placement time while staying unique even for back-to-back calls
// within the same millisecond.
//
// Format: "NGS-0190cafe-..." (prefix + 36-character hyphenated UUID).
//
// Thread-safety: UUIDGenerator is stateless and safe for concurrent use.
type UUIDGenerator struct{}

// Generate creates a new order number.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDGenerator) Generate() string {
	return OrderNumberPrefix + uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined order numbers for testing.
//
// This enables deterministic receipts and golden file comparison. Tests
// provide a known sequence of numbers and verify exact output.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu      sync.Mutex
	numbers []string
	idx     int
}

// NewFixedGenerator creates a generator that returns numbers in order.
//
// Example:
//
//	gen := NewFixedGenerator("NGS-0001", "NGS-0002")
//	gen.Generate() // "NGS-0001"
//	gen.Generate() // "NGS-0002"
//	gen.Generate() // panic: all order numbers exhausted
func NewFixedGenerator(numbers ...string) *FixedGenerator {
	return &FixedGenerator{numbers: numbers}
}

// Generate returns the next predetermined number.
//
// Panics if all numbers have been consumed. Fail-fast to catch test
// misconfiguration (test placed more orders than expected).
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.numbers) {
		panic("FixedGenerator: all order numbers exhausted")
	}
	n := g.numbers[g.idx]
	g.idx++
	return n
}
