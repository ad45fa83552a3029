package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/subfreq/internal/adapter/corpus"
	"github.com/heartmarshall/subfreq/internal/adapter/export"
	"github.com/heartmarshall/subfreq/internal/adapter/postgres"
	"github.com/heartmarshall/subfreq/internal/adapter/postgres/freqtable"
	"github.com/heartmarshall/subfreq/internal/adapter/pronunciation"
	"github.com/heartmarshall/subfreq/internal/adapter/spell"
	"github.com/heartmarshall/subfreq/internal/app/freqbuild"
	"github.com/heartmarshall/subfreq/internal/config"
	"github.com/heartmarshall/subfreq/internal/service/ranking"
)

// RunBuild wires the adapters selected by cfg and runs one frequency build.
func RunBuild(ctx context.Context, cfg *config.Config, logger *slog.Logger) (res *freqbuild.Result, err error) {
	logger.Info("starting build",
		slog.String("version", BuildVersion()),
		slog.String("corpus", cfg.Corpus.Path),
		slog.Any("formats", cfg.Export.Formats),
	)

	catalog, err := config.LoadCatalog(cfg.LanguagesPath)
	if err != nil {
		return nil, err
	}

	deps := freqbuild.Deps{
		Reader:         corpus.NewReader(logger),
		Pronunciations: pronunciation.NewLoader(logger),
	}

	var oracle spell.Checker
	if cfg.Spell.Enabled {
		backend, closeFn, err := newSpellBackend(cfg.Spell, logger)
		if err != nil {
			return nil, err
		}
		defer func() { err = errors.Join(err, closeFn()) }()

		cached, err := spell.NewCached(logger, backend, cfg.Spell.CacheSize)
		if err != nil {
			return nil, err
		}
		oracle = cached
		deps.Warmer = cached
	}
	deps.Ranker = ranking.NewService(logger, oracle)

	writers := make([]export.Writer, 0, len(cfg.Export.Formats))
	for _, format := range cfg.Export.Formats {
		if format == config.FormatPostgres {
			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return nil, err
			}
			defer pool.Close()

			repo := freqtable.New(pool, cfg.Database.BatchSize)
			writers = append(writers, export.NewStoreWriter(repo, postgres.NewTxManager(pool)))
			continue
		}

		w, err := export.NewFileWriter(format, cfg.Export.XLSXMaxRows)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}
	deps.Exporter = export.New(logger, writers...)

	return freqbuild.NewPipeline(logger, cfg, catalog, deps).Run(ctx)
}

func newSpellBackend(cfg config.SpellConfig, logger *slog.Logger) (spell.Checker, func() error, error) {
	switch cfg.Backend {
	case config.SpellBackendAspell:
		a := spell.NewAspell(logger, cfg.AspellPath, cfg.Workers, cfg.AspellAffixes)
		return a, a.Close, nil
	case config.SpellBackendWordlist:
		return spell.NewWordlist(logger, cfg.WordlistDir), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown spell backend %q", cfg.Backend)
}
