package drop

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	roll int64
}

func (s fixedSource) Int64n(max int64) (int64, error) {
	return s.roll, nil
}

type failingSource struct{}

func (failingSource) Int64n(max int64) (int64, error) {
	return 0, errors.New("entropy exhausted")
}

type seededSource struct {
	rng *rand.Rand
}

func (s seededSource) Int64n(max int64) (int64, error) {
	return s.rng.Int63n(max), nil
}

func TestResolve(t *testing.T) {
	table, err := NewTable([]Entry{
		{ItemID: 1, Rarity: "common", Weight: 70},
		{ItemID: 2, Rarity: "rare", Weight: 25},
		{ItemID: 3, Rarity: "legendary", Weight: 5},
	})
	assert.NoError(t, err)

	tests := []struct {
		name           string
		roll           int64
		expectedItemID int
	}{
		{name: "Zero roll hits first entry", roll: 0, expectedItemID: 1},
		{name: "Last roll of first band", roll: 69, expectedItemID: 1},
		{name: "First roll of second band", roll: 70, expectedItemID: 2},
		{name: "Last roll of second band", roll: 94, expectedItemID: 2},
		{name: "First roll of last band", roll: 95, expectedItemID: 3},
		{name: "Maximum roll hits last entry", roll: 99, expectedItemID: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, roll, err := Resolve(table, fixedSource{roll: tt.roll})
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedItemID, entry.ItemID)
			assert.Equal(t, tt.roll, roll)
		})
	}
}

func TestResolveSourceError(t *testing.T) {
	table, err := NewTable([]Entry{{ItemID: 1, Rarity: "common", Weight: 1}})
	assert.NoError(t, err)

	_, _, err = Resolve(table, failingSource{})
	assert.Error(t, err)
}

func TestResolveSingleEntry(t *testing.T) {
	table, err := NewTable([]Entry{{ItemID: 42, Rarity: "common", Weight: 3}})
	assert.NoError(t, err)

	for roll := int64(0); roll < 3; roll++ {
		entry, _, err := Resolve(table, fixedSource{roll: roll})
		assert.NoError(t, err)
		assert.Equal(t, 42, entry.ItemID)
	}
}

func TestResolveDistribution(t *testing.T) {
	table, err := NewTable([]Entry{
		{ItemID: 1, Rarity: "common", Weight: 8000},
		{ItemID: 2, Rarity: "rare", Weight: 1500},
		{ItemID: 3, Rarity: "legendary", Weight: 500},
	})
	assert.NoError(t, err)

	src := seededSource{rng: rand.New(rand.NewSource(1))}
	const draws = 100000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		entry, roll, err := Resolve(table, src)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, roll, int64(0))
		assert.Less(t, roll, table.TotalWeight())
		counts[entry.ItemID]++
	}

	assert.Equal(t, draws, counts[1]+counts[2]+counts[3])
	assert.InDelta(t, 0.80, float64(counts[1])/draws, 0.01)
	assert.InDelta(t, 0.15, float64(counts[2])/draws, 0.01)
	assert.InDelta(t, 0.05, float64(counts[3])/draws, 0.01)
}

func TestCryptoSourceRange(t *testing.T) {
	src := CryptoSource{}
	for i := 0; i < 1000; i++ {
		n, err := src.Int64n(10)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(10))
	}
}
