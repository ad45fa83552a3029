package ranking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// RankInput describes one table to rank.
type RankInput struct {
	Counts domain.FrequencyMap
	Unit   domain.Unit
	// SpellCheck enables the spelling filter. It only applies to word tables.
	SpellCheck bool
	// SpellLanguage is the oracle language code.
	SpellLanguage string
	// Pronunciations, when set, attaches transcriptions and drops every
	// entry without one.
	Pronunciations PronunciationLookup
}

func (in RankInput) Validate() error {
	var errs []domain.FieldError
	if !in.Unit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "unit", Message: fmt.Sprintf("unknown unit %q", in.Unit)})
	}
	if in.SpellCheck && in.Unit == domain.UnitWord && in.SpellLanguage == "" {
		errs = append(errs, domain.FieldError{Field: "spell_language", Message: "required when spell check is enabled"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

type entry struct {
	unit string
	freq int
	ipa  string
}

// Rank sorts the map by descending frequency then unit, applies the enabled
// filters and assigns dense ranks to the survivors.
//
// The denominator for frequency per million is the surviving total when the
// spelling filter ran on a word table and the full map total otherwise.
// Pronunciation filtering never changes the denominator.
func (s *Service) Rank(ctx context.Context, in RankInput) (*domain.RankedTable, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	spellApplied := in.SpellCheck && in.Unit == domain.UnitWord
	if spellApplied && s.spell == nil {
		return nil, errors.New("spell check requested but no spelling oracle configured")
	}

	entries := sortedEntries(in.Counts)
	variants := newCaseVariants()

	kept := make([]entry, 0, len(entries))
	for _, e := range entries {
		if spellApplied {
			ok, err := s.accepts(ctx, variants, e.unit, in.SpellLanguage)
			if err != nil {
				return nil, fmt.Errorf("spell check %q: %w", e.unit, err)
			}
			if !ok {
				continue
			}
		}
		if in.Pronunciations != nil {
			ipa, ok := lookupPronunciation(in.Pronunciations, e.unit)
			if !ok {
				continue
			}
			e.ipa = ipa
		}
		kept = append(kept, e)
	}

	total := in.Counts.Total()
	if spellApplied {
		total = 0
		for _, e := range kept {
			total += e.freq
		}
	}

	table := &domain.RankedTable{
		Unit:         in.Unit,
		WithIPA:      in.Pronunciations != nil,
		SpellChecked: spellApplied,
		TotalUnits:   total,
		Records:      make([]domain.RankedRecord, 0, len(kept)),
	}

	rank, prev := 0, -1
	for _, e := range kept {
		if e.freq != prev {
			rank++
			prev = e.freq
		}
		fpm := PerMillion(e.freq, total)
		table.Records = append(table.Records, domain.RankedRecord{
			Rank:                rank,
			Unit:                e.unit,
			Frequency:           e.freq,
			FrequencyPerMillion: fpm,
			Zipf:                Zipf(fpm),
			IPA:                 e.ipa,
		})
	}

	s.log.DebugContext(ctx, "table ranked",
		slog.String("unit", in.Unit.String()),
		slog.Bool("ipa", table.WithIPA),
		slog.Bool("spell_checked", spellApplied),
		slog.Int("input_types", len(in.Counts)),
		slog.Int("records", len(table.Records)),
		slog.Int("total_units", total),
	)
	return table, nil
}

// PerMillion returns 1e6*freq/total rounded to 4 decimal places.
func PerMillion(freq, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round(1_000_000*float64(freq)/float64(total), 4)
}

// Zipf returns log10(perMillion)+3 rounded to 4 decimal places.
func Zipf(perMillion float64) float64 {
	return round(math.Log10(perMillion)+3, 4)
}

func round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

func sortedEntries(m domain.FrequencyMap) []entry {
	entries := make([]entry, 0, len(m))
	for unit, freq := range m {
		entries = append(entries, entry{unit: unit, freq: freq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq > entries[j].freq
		}
		return entries[i].unit < entries[j].unit
	})
	return entries
}

// accepts runs the case fallback chain, then retries it without a leading
// apostrophe.
func (s *Service) accepts(ctx context.Context, v *caseVariants, word, lang string) (bool, error) {
	ok, err := s.acceptsAnyCase(ctx, v, word, lang)
	if err != nil || ok {
		return ok, err
	}
	if stripped, found := strings.CutPrefix(word, "'"); found && stripped != "" {
		return s.acceptsAnyCase(ctx, v, stripped, lang)
	}
	return false, nil
}

func (s *Service) acceptsAnyCase(ctx context.Context, v *caseVariants, word, lang string) (bool, error) {
	for _, candidate := range v.of(word) {
		ok, err := s.spell.Check(ctx, candidate, lang)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// caseVariants produces the spelling fallback forms of a word: as given,
// lower-cased, capitalized and upper-cased, without repeats.
type caseVariants struct {
	lower cases.Caser
	upper cases.Caser
	title cases.Caser
}

func newCaseVariants() *caseVariants {
	return &caseVariants{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
		title: cases.Title(language.Und),
	}
}

func (v *caseVariants) of(word string) []string {
	lower := v.lower.String(word)
	forms := []string{word, lower, v.capitalize(lower), v.upper.String(word)}

	out := forms[:0]
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// capitalize title-cases the first code point of an already lower-cased
// word. The title form may be longer than one rune: "ß" becomes "Ss".
func (v *caseVariants) capitalize(lower string) string {
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return v.title.String(lower[:size]) + lower[size:]
}

// lookupPronunciation tries the word, then the word with ß spelled ss.
func lookupPronunciation(p PronunciationLookup, word string) (string, bool) {
	if ipa, ok := p.Lookup(word); ok {
		return ipa, true
	}
	if strings.Contains(word, "ß") {
		return p.Lookup(strings.ReplaceAll(word, "ß", "ss"))
	}
	return "", false
}
