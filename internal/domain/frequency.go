package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit identifies what a frequency table counts.
type Unit string

const (
	UnitWord      Unit = "word"
	UnitCharacter Unit = "character"
	UnitBigram    Unit = "bigram"
)

func (u Unit) String() string { return string(u) }

func (u Unit) IsValid() bool {
	switch u {
	case UnitWord, UnitCharacter, UnitBigram:
		return true
	}
	return false
}

// Title returns the column header used for the unit in exported tables.
func (u Unit) Title() string {
	switch u {
	case UnitWord:
		return "Word"
	case UnitCharacter:
		return "Character"
	case UnitBigram:
		return "Bigram"
	}
	return string(u)
}

// FrequencyMap maps a unit (word, character or bigram) to its occurrence count.
type FrequencyMap map[string]int

// Total returns the sum of all counts in the map.
func (m FrequencyMap) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// RankedRecord is one row of a ranked frequency table.
type RankedRecord struct {
	Rank                int
	Unit                string
	Frequency           int
	FrequencyPerMillion float64
	Zipf                float64
	IPA                 string // empty unless the table carries pronunciations
}

// RankedTable is an ordered frequency table: descending frequency, then
// ascending unit. Tied frequencies share a dense rank.
type RankedTable struct {
	Unit    Unit
	WithIPA bool
	// SpellChecked reports whether the spelling filter ran on the table. The
	// denominator is then the sum of the surviving frequencies.
	SpellChecked bool
	// TotalUnits is the denominator used for frequency per million.
	TotalUnits int
	Records    []RankedRecord
}

// Len returns the number of records in the table.
func (t *RankedTable) Len() int { return len(t.Records) }

// Name returns a short identifier such as "word" or "word.ipa".
func (t *RankedTable) Name() string {
	if t.WithIPA {
		return fmt.Sprintf("%s.ipa", t.Unit)
	}
	return string(t.Unit)
}

// TableStats holds the diagnostics reported in stats mode.
// Averages are only meaningful for word tables.
type TableStats struct {
	Unit          Unit
	Corpus        string // "IPA" for pronunciation-filtered tables, "full" otherwise
	Units         int
	Types         int
	AvgWordLength float64
	AvgTypeLength float64
}

// FrequencyRun describes one stored table.
type FrequencyRun struct {
	ID           uuid.UUID
	Language     string
	Unit         Unit
	WithIPA      bool
	SpellChecked bool
	TotalUnits   int
	RecordCount  int
	CreatedAt    time.Time
}

// NewFrequencyRun describes table for storage under a fresh ID.
func NewFrequencyRun(language string, table *RankedTable, now time.Time) FrequencyRun {
	return FrequencyRun{
		ID:           uuid.New(),
		Language:     language,
		Unit:         table.Unit,
		WithIPA:      table.WithIPA,
		SpellChecked: table.SpellChecked,
		TotalUnits:   table.TotalUnits,
		RecordCount:  table.Len(),
		CreatedAt:    now,
	}
}
