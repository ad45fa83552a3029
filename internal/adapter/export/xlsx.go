package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/subfreq/internal/domain"
)

const sheetName = "Sheet1"

// XLSXWriter writes a single-sheet workbook holding at most maxRows records.
type XLSXWriter struct {
	maxRows int
}

// NewXLSXWriter creates an XLSXWriter. maxRows <= 0 means no limit.
func NewXLSXWriter(maxRows int) *XLSXWriter {
	return &XLSXWriter{maxRows: maxRows}
}

func (w *XLSXWriter) Format() string { return "xlsx" }

func (w *XLSXWriter) Write(ctx context.Context, target Target, table *domain.RankedTable) (string, error) {
	path := Path(target, table, "xlsx")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	records := table.Records
	if w.maxRows > 0 && len(records) > w.maxRows {
		records = records[:w.maxRows]
	}

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return "", fmt.Errorf("open stream writer: %w", err)
	}

	header := Header(table)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := sw.SetRow("A1", cells); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		if i%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []any{rec.Rank, rec.Unit, rec.Frequency, rec.FrequencyPerMillion, rec.Zipf}
		if table.WithIPA {
			row = append(row, rec.IPA)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("flush sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	return path, nil
}
