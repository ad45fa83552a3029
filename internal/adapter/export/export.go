// Package export writes ranked frequency tables to files and to PostgreSQL.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// Target says where and under which language a table is exported.
type Target struct {
	Dir      string // root output directory
	Language string // full language name, used in file names
	Code     string // catalog code, stored with database runs
}

// Writer exports a table in one format and returns where it went.
type Writer interface {
	Format() string
	Write(ctx context.Context, target Target, table *domain.RankedTable) (string, error)
}

// Exporter fans a table out to every configured writer.
type Exporter struct {
	log     *slog.Logger
	writers []Writer
}

// New creates an Exporter writing with writers in order.
func New(logger *slog.Logger, writers ...Writer) *Exporter {
	return &Exporter{
		log:     logger.With("component", "export"),
		writers: writers,
	}
}

// Export writes table with every writer and stops at the first failure.
func (e *Exporter) Export(ctx context.Context, target Target, table *domain.RankedTable) error {
	for _, w := range e.writers {
		if err := ctx.Err(); err != nil {
			return err
		}

		location, err := w.Write(ctx, target, table)
		if err != nil {
			return fmt.Errorf("export %s table as %s: %w", table.Name(), w.Format(), err)
		}

		e.log.Info("table exported",
			slog.String("table", table.Name()),
			slog.String("format", w.Format()),
			slog.Int("records", table.Len()),
			slog.String("location", location),
		)
	}
	return nil
}

// Path returns <dir>/<unit>_freq/<language>.<unit>.freq[.ipa].<ext>.
func Path(target Target, table *domain.RankedTable, ext string) string {
	name := fmt.Sprintf("%s.%s.freq", target.Language, table.Unit)
	if table.WithIPA {
		name += ".ipa"
	}
	return filepath.Join(target.Dir, string(table.Unit)+"_freq", name+"."+ext)
}

// Header returns the column titles for table.
func Header(table *domain.RankedTable) []string {
	cols := []string{"Rank", table.Unit.Title(), "Frequency", "Frequency per million", "Zipf value"}
	if table.WithIPA {
		cols = append(cols, "IPA")
	}
	return cols
}

// FormatFloat renders f in its shortest round-trip form, always with a
// decimal point.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func textRow(table *domain.RankedTable, rec domain.RankedRecord) []string {
	row := []string{
		strconv.Itoa(rec.Rank),
		rec.Unit,
		strconv.Itoa(rec.Frequency),
		FormatFloat(rec.FrequencyPerMillion),
		FormatFloat(rec.Zipf),
	}
	if table.WithIPA {
		row = append(row, rec.IPA)
	}
	return row
}
