// Package freqbuild runs one frequency build: read the corpus, count units,
// rank each requested table and export it.
package freqbuild

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/subfreq/internal/adapter/export"
	"github.com/heartmarshall/subfreq/internal/adapter/pronunciation"
	"github.com/heartmarshall/subfreq/internal/config"
	"github.com/heartmarshall/subfreq/internal/domain"
	"github.com/heartmarshall/subfreq/internal/service/corpus"
	"github.com/heartmarshall/subfreq/internal/service/ranking"
)

type corpusReader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

type pronunciationLoader interface {
	Load(ctx context.Context, dir string, lang config.Language) (*pronunciation.Dictionary, error)
}

type ranker interface {
	Rank(ctx context.Context, in ranking.RankInput) (*domain.RankedTable, error)
}

type tableExporter interface {
	Export(ctx context.Context, target export.Target, table *domain.RankedTable) error
}

type spellWarmer interface {
	Warm(ctx context.Context, words []string, lang string, workers int) error
}

// Deps holds the collaborators of a Pipeline. Pronunciations may be nil when
// no IPA table is requested and Warmer may be nil when spelling is disabled.
type Deps struct {
	Reader         corpusReader
	Pronunciations pronunciationLoader
	Ranker         ranker
	Exporter       tableExporter
	Warmer         spellWarmer
}

// Result summarizes a finished build.
type Result struct {
	Language config.Language
	Lines    int
	Tables   []*domain.RankedTable
	Stats    []domain.TableStats // empty unless count.stats
	Removed  []string            // empty unless count.stats
	Duration time.Duration
}

// Pipeline orchestrates a build.
type Pipeline struct {
	log     *slog.Logger
	cfg     *config.Config
	catalog *config.Catalog
	deps    Deps
}

// NewPipeline creates a new Pipeline.
func NewPipeline(logger *slog.Logger, cfg *config.Config, catalog *config.Catalog, deps Deps) *Pipeline {
	return &Pipeline{
		log:     logger.With("component", "freqbuild"),
		cfg:     cfg,
		catalog: catalog,
		deps:    deps,
	}
}

type job struct {
	counts  domain.FrequencyMap
	unit    domain.Unit
	withIPA bool
}

// Run executes the build. Unsupported languages fail before the corpus is read.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	lang, err := p.resolveLanguage()
	if err != nil {
		return nil, err
	}
	if p.cfg.Pronunciation.Enabled() {
		if err := pronunciation.CheckSupported(lang); err != nil {
			return nil, err
		}
	}

	p.log.Info("language", slog.String("code", lang.Code), slog.String("name", lang.Name))

	lines, err := p.deps.Reader.ReadLines(ctx, p.cfg.Corpus.Path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	counts := corpus.Aggregate(lines, corpus.Options{
		CountCharacters: p.cfg.Count.Character,
		CountBigrams:    p.cfg.Count.Bigram,
		CollectRemoved:  p.cfg.Count.Stats,
		ComposeNFC:      p.cfg.Corpus.NFC,
	})

	res := &Result{Language: lang, Lines: counts.Lines}
	if p.cfg.Count.Stats {
		res.Removed = counts.RemovedList()
		p.log.Info("removed characters",
			slog.Int("count", len(res.Removed)),
			slog.String("characters", strings.Join(res.Removed, " ")),
		)
	}

	spellLang := p.spellLanguage(lang)
	if p.cfg.Spell.Enabled && p.deps.Warmer != nil {
		words := make([]string, 0, len(counts.Words))
		for w := range counts.Words {
			words = append(words, w)
		}
		if err := p.deps.Warmer.Warm(ctx, words, spellLang, p.cfg.Spell.Workers); err != nil {
			return nil, fmt.Errorf("warm spell cache: %w", err)
		}
	}

	jobs := []job{{counts: counts.Words, unit: domain.UnitWord}}
	if p.cfg.Count.Character {
		jobs = append(jobs, job{counts: counts.Characters, unit: domain.UnitCharacter})
	}
	if p.cfg.Count.Bigram {
		jobs = append(jobs, job{counts: counts.Bigrams, unit: domain.UnitBigram})
	}
	if p.cfg.Pronunciation.Enabled() {
		jobs = append(jobs, job{counts: counts.Words, unit: domain.UnitWord, withIPA: true})
	}

	target := export.Target{Dir: p.cfg.Export.Dir, Language: lang.Name, Code: lang.Code}

	for _, j := range jobs {
		in := ranking.RankInput{
			Counts:        j.counts,
			Unit:          j.unit,
			SpellCheck:    p.cfg.Spell.Enabled,
			SpellLanguage: spellLang,
		}
		if j.withIPA {
			dict, err := p.deps.Pronunciations.Load(ctx, p.cfg.Pronunciation.Dir, lang)
			if err != nil {
				return nil, fmt.Errorf("load pronunciations: %w", err)
			}
			in.Pronunciations = dict
		}

		table, err := p.deps.Ranker.Rank(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("rank %s: %w", j.unit, err)
		}
		res.Tables = append(res.Tables, table)

		if p.cfg.Count.Stats {
			st := ranking.Stats(table)
			res.Stats = append(res.Stats, st)
			p.logStats(table, st)
		}

		if err := p.deps.Exporter.Export(ctx, target, table); err != nil {
			return nil, err
		}
	}

	res.Duration = time.Since(start)
	p.log.Info("build finished",
		slog.Int("lines", res.Lines),
		slog.Int("tables", len(res.Tables)),
		slog.String("duration", FormatDuration(res.Duration)),
	)

	return res, nil
}

func (p *Pipeline) resolveLanguage() (config.Language, error) {
	code := p.cfg.Corpus.Language
	if code == "" {
		code = config.InferLanguageCode(p.cfg.Corpus.Path)
	}
	lang, err := p.catalog.ByCode(code)
	if err != nil {
		return config.Language{}, fmt.Errorf("resolve corpus language: %w", err)
	}
	return lang, nil
}

func (p *Pipeline) spellLanguage(lang config.Language) string {
	if p.cfg.Spell.Language != "" {
		return p.cfg.Spell.Language
	}
	return lang.SpellCode()
}

func (p *Pipeline) logStats(table *domain.RankedTable, st domain.TableStats) {
	attrs := []any{
		slog.String("table", table.Name()),
		slog.String("corpus", st.Corpus),
		slog.Int("units", st.Units),
		slog.Int("types", st.Types),
	}
	if st.Unit == domain.UnitWord {
		attrs = append(attrs,
			slog.Float64("avg_word_length", st.AvgWordLength),
			slog.Float64("avg_type_length", st.AvgTypeLength),
		)
	}
	p.log.Info("table stats", attrs...)
}

// FormatDuration renders d as H:MM:SS, truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
