package drop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name           string
		entries        []Entry
		expectedTotal  int64
		expectedErrMsg string
	}{
		{
			name: "Valid table",
			entries: []Entry{
				{ItemID: 1, Rarity: "common", Weight: 70},
				{ItemID: 2, Rarity: "rare", Weight: 25},
				{ItemID: 3, Rarity: "legendary", Weight: 5},
			},
			expectedTotal: 100,
		},
		{
			name: "Single entry",
			entries: []Entry{
				{ItemID: 1, Rarity: "common", Weight: 1},
			},
			expectedTotal: 1,
		},
		{
			name:           "Empty table",
			entries:        nil,
			expectedErrMsg: "invalid drop table: table is empty",
		},
		{
			name: "Zero weight",
			entries: []Entry{
				{ItemID: 1, Rarity: "common", Weight: 10},
				{ItemID: 2, Rarity: "rare", Weight: 0},
			},
			expectedErrMsg: "invalid drop table: entry 1 (item 2) has non-positive weight 0",
		},
		{
			name: "Negative weight",
			entries: []Entry{
				{ItemID: 1, Rarity: "common", Weight: -5},
			},
			expectedErrMsg: "invalid drop table: entry 0 (item 1) has non-positive weight -5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.entries)
			if tt.expectedErrMsg != "" {
				assert.Nil(t, table)
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErrMsg, err.Error())
				var configErr *ConfigError
				assert.ErrorAs(t, err, &configErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, table.TotalWeight())
			assert.Equal(t, tt.entries, table.Entries())
		})
	}
}

func TestTableIsolatedFromInput(t *testing.T) {
	entries := []Entry{
		{ItemID: 1, Rarity: "common", Weight: 10},
		{ItemID: 2, Rarity: "rare", Weight: 5},
	}
	table, err := NewTable(entries)
	assert.NoError(t, err)

	entries[0].Weight = 9999
	assert.Equal(t, int64(10), table.Entries()[0].Weight)
	assert.Equal(t, int64(15), table.TotalWeight())
}

func TestTierPercents(t *testing.T) {
	table, err := NewTable([]Entry{
		{ItemID: 1, Rarity: "common", Weight: 50},
		{ItemID: 2, Rarity: "common", Weight: 25},
		{ItemID: 3, Rarity: "rare", Weight: 25},
	})
	assert.NoError(t, err)

	percents := table.TierPercents()
	assert.InDelta(t, 75.0, percents["common"], 1e-9)
	assert.InDelta(t, 25.0, percents["rare"], 1e-9)
}
