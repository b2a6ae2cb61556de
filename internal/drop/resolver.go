package drop

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// Source draws a uniform random integer in [0, max). Production uses
// CryptoSource; tests substitute a deterministic source.
type Source interface {
	Int64n(max int64) (int64, error)
}

// CryptoSource draws from crypto/rand. Drops are a monetary-equivalent
// outcome, so a statistically-sound, unpredictable source is required.
type CryptoSource struct{}

func (CryptoSource) Int64n(max int64) (int64, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(max))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random value: %w", err)
	}
	return n.Int64(), nil
}

// Resolve selects exactly one entry from the table: it draws a roll in
// [0, totalWeight) and walks the cumulative weight sequence in entry order,
// returning the first entry whose cumulative weight exceeds the roll. The
// last entry is the fallback so a roll can never miss the table. The roll is
// returned alongside the entry for audit records.
func Resolve(t *Table, src Source) (Entry, int64, error) {
	roll, err := src.Int64n(t.total)
	if err != nil {
		return Entry{}, 0, err
	}
	var cumulative int64
	for _, e := range t.entries {
		cumulative += e.Weight
		if roll < cumulative {
			return e, roll, nil
		}
	}
	return t.entries[len(t.entries)-1], roll, nil
}
