package export

import (
	"fmt"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// NewFileWriter returns the writer for a file format (txt, csv or xlsx).
func NewFileWriter(format string, xlsxMaxRows int) (Writer, error) {
	switch format {
	case "txt":
		return NewTXTWriter(), nil
	case "csv":
		return NewCSVWriter(), nil
	case "xlsx":
		return NewXLSXWriter(xlsxMaxRows), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
}
