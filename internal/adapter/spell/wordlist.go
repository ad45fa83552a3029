package spell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// Wordlist checks words against plain dictionary files in a directory:
// <dir>/<lang>.dic (hunspell style, affix flags after "/" ignored, optional
// leading word count) or <dir>/<lang>.txt (one word per line).
type Wordlist struct {
	log *slog.Logger
	dir string

	mu    sync.Mutex
	words map[string]map[string]struct{}
}

// NewWordlist creates a word-list oracle reading from dir.
func NewWordlist(logger *slog.Logger, dir string) *Wordlist {
	return &Wordlist{
		log:   logger.With("component", "wordlist"),
		dir:   dir,
		words: make(map[string]map[string]struct{}),
	}
}

// Check reports whether word is listed for lang. The list is loaded on first
// use.
func (w *Wordlist) Check(ctx context.Context, word, lang string) (bool, error) {
	set, err := w.load(ctx, lang)
	if err != nil {
		return false, err
	}
	_, ok := set[word]
	return ok, nil
}

func (w *Wordlist) load(ctx context.Context, lang string) (map[string]struct{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if set, ok := w.words[lang]; ok {
		return set, nil
	}

	for _, ext := range []string{".dic", ".txt"} {
		path := filepath.Join(w.dir, lang+ext)
		set, err := readWordlist(path, ext == ".dic")
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("wordlist %s: %w", path, err)
		}
		w.log.InfoContext(ctx, "wordlist loaded", slog.String("path", path), slog.Int("words", len(set)))
		w.words[lang] = set
		return set, nil
	}
	return nil, fmt.Errorf("wordlist for %q in %s: %w", lang, w.dir, domain.ErrNotFound)
}

func readWordlist(path string, hunspell bool) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if hunspell {
			if first {
				first = false
				if _, err := strconv.Atoi(line); err == nil {
					continue
				}
			}
			line, _, _ = strings.Cut(line, "/")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
