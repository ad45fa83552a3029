package ranking

import (
	"unicode/utf8"

	"github.com/heartmarshall/subfreq/internal/domain"
)

const (
	corpusIPA  = "IPA"
	corpusFull = "full"
)

// Stats summarizes a ranked table: surviving occurrences and types and, for
// word tables, the average word length in code points by occurrence and by
// type, rounded to 2 decimal places.
func Stats(table *domain.RankedTable) domain.TableStats {
	st := domain.TableStats{
		Unit:   table.Unit,
		Corpus: corpusFull,
		Types:  len(table.Records),
	}
	if table.WithIPA {
		st.Corpus = corpusIPA
	}

	var weighted, lengths int
	for _, rec := range table.Records {
		st.Units += rec.Frequency
		n := utf8.RuneCountInString(rec.Unit)
		weighted += n * rec.Frequency
		lengths += n
	}

	if table.Unit == domain.UnitWord && st.Types > 0 {
		st.AvgWordLength = round(float64(weighted)/float64(st.Units), 2)
		st.AvgTypeLength = round(float64(lengths)/float64(st.Types), 2)
	}
	return st
}
