package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// DelimitedWriter writes UTF-8 text tables with a header row.
type DelimitedWriter struct {
	ext   string
	comma rune
}

// NewTXTWriter writes tab-separated .txt files.
func NewTXTWriter() *DelimitedWriter { return &DelimitedWriter{ext: "txt", comma: '\t'} }

// NewCSVWriter writes comma-separated .csv files.
func NewCSVWriter() *DelimitedWriter { return &DelimitedWriter{ext: "csv", comma: ','} }

func (w *DelimitedWriter) Format() string { return w.ext }

func (w *DelimitedWriter) Write(ctx context.Context, target Target, table *domain.RankedTable) (string, error) {
	path := Path(target, table, w.ext)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = w.comma

	if err := cw.Write(Header(table)); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i, rec := range table.Records {
		if i%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		if err := cw.Write(textRow(table, rec)); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}
