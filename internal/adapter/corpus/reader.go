// Package corpus reads corpora into memory as raw text lines: plain text,
// gzip-compressed text (the OpenSubtitles monolingual dumps) and subtitle
// files, optionally gzip-compressed too.
package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"
	"github.com/klauspost/compress/gzip"
)

// maxLineSize bounds a single corpus line.
const maxLineSize = 1 << 20

// ctxCheckEvery is how many lines are read between context checks.
const ctxCheckEvery = 10_000

type subtitleDecoder func(r io.Reader) (*astisub.Subtitles, error)

var subtitleDecoders = map[string]subtitleDecoder{
	".srt":  astisub.ReadFromSRT,
	".ssa":  astisub.ReadFromSSA,
	".ass":  astisub.ReadFromSSA,
	".vtt":  astisub.ReadFromWebVTT,
	".ttml": astisub.ReadFromTTML,
	".stl": func(r io.Reader) (*astisub.Subtitles, error) {
		return astisub.ReadFromSTL(r, astisub.STLOptions{})
	},
}

// Reader loads a corpus file.
type Reader struct {
	log *slog.Logger
}

// NewReader creates a corpus reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{log: logger.With("component", "corpus_reader")}
}

// Kind describes how a path will be decoded: "text" or a subtitle extension
// such as "srt", with a "+gzip" suffix for compressed files.
func Kind(path string) string {
	name, gz := strings.CutSuffix(strings.ToLower(filepath.Base(path)), ".gz")
	kind := "text"
	if ext := filepath.Ext(name); ext != "" {
		if _, ok := subtitleDecoders[ext]; ok {
			kind = strings.TrimPrefix(ext, ".")
		}
	}
	if gz {
		kind += "+gzip"
	}
	return kind
}

// ReadLines returns every line of the corpus at path, without line
// terminators. Subtitle files yield one line per subtitle text line.
func (r *Reader) ReadLines(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	name, gz := strings.CutSuffix(strings.ToLower(filepath.Base(path)), ".gz")

	var src io.Reader = f
	if gz {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer zr.Close()
		src = zr
	}

	var lines []string
	if decode, ok := subtitleDecoders[filepath.Ext(name)]; ok {
		lines, err = readSubtitles(src, decode)
	} else {
		lines, err = readText(ctx, src)
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	r.log.InfoContext(ctx, "corpus loaded",
		slog.String("path", path),
		slog.String("kind", Kind(path)),
		slog.Int("lines", len(lines)),
	)
	return lines, nil
}

func readText(ctx context.Context, src io.Reader) ([]string, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		if len(lines)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readSubtitles(src io.Reader, decode subtitleDecoder) ([]string, error) {
	subs, err := decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode subtitles: %w", err)
	}

	var lines []string
	for _, item := range subs.Items {
		for _, line := range item.Lines {
			lines = append(lines, line.String())
		}
	}
	return lines, nil
}
