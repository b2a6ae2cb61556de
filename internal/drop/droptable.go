package drop

import "fmt"

// ConfigError marks a drop table that failed validation. Tables are validated
// once at load time; resolution never re-checks weights.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid drop table: " + e.Reason
}

type Entry struct {
	ItemID int
	Rarity string
	Weight int64
}

// Table is an immutable weighted drop configuration. Entry order is the
// table-definition order and is significant: resolution walks entries in this
// order, which fixes the tie-break between equal weights.
type Table struct {
	entries []Entry
	total   int64
}

func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Reason: "table is empty"}
	}
	var total int64
	for i, e := range entries {
		if e.Weight <= 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("entry %d (item %d) has non-positive weight %d", i, e.ItemID, e.Weight)}
		}
		total += e.Weight
	}
	t := &Table{
		entries: make([]Entry, len(entries)),
		total:   total,
	}
	copy(t.entries, entries)
	return t, nil
}

func (t *Table) Entries() []Entry {
	return t.entries
}

func (t *Table) TotalWeight() int64 {
	return t.total
}

// TierPercents derives display-only percentages per rarity tier from the raw
// weights. Resolution never uses these values.
func (t *Table) TierPercents() map[string]float64 {
	percents := make(map[string]float64)
	for _, e := range t.entries {
		percents[e.Rarity] += float64(e.Weight) / float64(t.total) * 100
	}
	return percents
}
