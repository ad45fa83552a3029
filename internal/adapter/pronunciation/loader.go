package pronunciation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/subfreq/internal/config"
	"github.com/heartmarshall/subfreq/internal/domain"
)

// ParseStats holds parser statistics for logging.
type ParseStats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
}

type parseFunc func(r io.Reader, add func(word, ipa string)) (ParseStats, error)

var parsers = map[string]parseFunc{
	config.SourceWikiPron: parseWikiPron,
	config.SourceCMU:      parseCMU,
}

// Loader reads the pronunciation sources of a language.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a pronunciation loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{log: logger.With("component", "pronunciation")}
}

// CheckSupported fails with domain.ErrNotSupported when lang has no
// pronunciation source. It touches no files.
func CheckSupported(lang config.Language) error {
	if !lang.HasPronunciation() {
		return fmt.Errorf("pronunciation for %s: %w", lang.Name, domain.ErrNotSupported)
	}
	return nil
}

// Load merges every source of lang found under dir, in catalog order.
func (l *Loader) Load(ctx context.Context, dir string, lang config.Language) (*Dictionary, error) {
	if err := CheckSupported(lang); err != nil {
		return nil, err
	}

	dict := NewDictionary()
	for _, src := range lang.Pronunciation {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parse, ok := parsers[src.Format]
		if !ok {
			return nil, fmt.Errorf("pronunciation source %s: format %q: %w", src.File, src.Format, domain.ErrNotSupported)
		}

		stats, err := parseFile(filepath.Join(dir, src.File), parse, dict.Add)
		if err != nil {
			return nil, fmt.Errorf("pronunciation source %s: %w", src.File, err)
		}

		l.log.InfoContext(ctx, "pronunciation source loaded",
			slog.String("language", lang.Name),
			slog.String("file", src.File),
			slog.String("format", src.Format),
			slog.Int("total_lines", stats.TotalLines),
			slog.Int("parsed_lines", stats.ParsedLines),
		)
	}

	l.log.InfoContext(ctx, "pronunciation dictionary ready",
		slog.String("language", lang.Name),
		slog.Int("words", dict.Len()),
	)
	return dict, nil
}

func parseFile(path string, parse parseFunc, add func(word, ipa string)) (ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseStats{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return parse(f, add)
}
