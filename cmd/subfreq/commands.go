package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/subfreq/internal/adapter/postgres"
	"github.com/heartmarshall/subfreq/internal/adapter/postgres/freqtable"
	"github.com/heartmarshall/subfreq/internal/app"
	"github.com/heartmarshall/subfreq/internal/config"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "subfreq",
		Short:         "Frequency tables from subtitle corpora",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file (default $SUBFREQ_CONFIG or ./subfreq.yaml)")

	root.AddCommand(
		newBuildCmd(&configPath),
		newMigrateCmd(&configPath),
		newRunsCmd(&configPath),
		newLanguagesCmd(&configPath),
		newVersionCmd(),
	)
	return root
}

type buildFlags struct {
	file      string
	extension string
	ipa       string
	language  string
	output    string
	character bool
	bigram    bool
	stats     bool
	nfc       bool
	spell     bool
	spellLang string
}

// overrides applies the flags the user actually set on top of the loaded
// configuration.
func (f *buildFlags) overrides(cmd *cobra.Command) func(*config.Config) {
	changed := cmd.Flags().Changed
	return func(c *config.Config) {
		if changed("file") {
			c.Corpus.Path = f.file
		}
		if changed("language") {
			c.Corpus.Language = f.language
		}
		if changed("nfc") {
			c.Corpus.NFC = f.nfc
		}
		if changed("extension") {
			c.Export.FormatsRaw = f.extension
		}
		if changed("output") {
			c.Export.Dir = f.output
		}
		if changed("ipa") {
			c.Pronunciation.Dir = f.ipa
		}
		if changed("character") {
			c.Count.Character = f.character
		}
		if changed("bigram") {
			c.Count.Bigram = f.bigram
		}
		if changed("stats") {
			c.Count.Stats = f.stats
		}
		if changed("spell") {
			c.Spell.Enabled = f.spell
		}
		if changed("spell-lang") {
			c.Spell.Language = f.spellLang
		}
	}
}

func newBuildCmd(configPath *string) *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Count a corpus and export ranked frequency tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath, f.overrides(cmd))
			if err != nil {
				return err
			}
			if err := cfg.RequireCorpus(); err != nil {
				return err
			}

			logger := app.NewLogger(cfg.Log)
			if _, err := app.RunBuild(cmd.Context(), cfg, logger); err != nil {
				return fmt.Errorf("build %s: %w", cfg.Corpus.Path, err)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "corpus file (.txt, .srt, .ass, .ssa, .vtt, .ttml, .stl, optionally .gz)")
	fl.StringVarP(&f.extension, "extension", "x", "", "export formats separated by | (txt, csv, xlsx, postgres)")
	fl.StringVarP(&f.ipa, "ipa", "i", "", "directory with pronunciation files; adds the IPA word table")
	fl.StringVarP(&f.language, "language", "l", "", "language code (default: corpus file name prefix)")
	fl.StringVarP(&f.output, "output", "o", "", "output directory")
	fl.BoolVarP(&f.character, "character", "c", false, "also count characters")
	fl.BoolVarP(&f.bigram, "bigram", "b", false, "also count bigrams within words")
	fl.BoolVarP(&f.stats, "stats", "s", false, "log corpus statistics")
	fl.BoolVar(&f.nfc, "nfc", false, "compose lines to Unicode NFC before counting")
	fl.BoolVar(&f.spell, "spell", false, "drop words rejected by the spelling oracle")
	fl.StringVar(&f.spellLang, "spell-lang", "", "spelling dictionary code (default: from the language catalog)")

	return cmd
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}

			logger := app.NewLogger(cfg.Log)
			n, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN, logger)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations complete", slog.Int("applied", n))
			return nil
		},
	}
}

func newRunsCmd(configPath *string) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List frequency tables stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}
			app.NewLogger(cfg.Log)

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			runs, err := freqtable.New(pool, cfg.Database.BatchSize).ListRuns(cmd.Context(), language)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range runs {
				name := string(r.Unit)
				if r.WithIPA {
					name += ".ipa"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%d records\t%d units\t%s\n",
					r.ID, r.Language, name, r.RecordCount, r.TotalUnits, r.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&language, "language", "l", "", "only runs of this language code")
	return cmd
}

func newLanguagesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			catalog, err := config.LoadCatalog(cfg.LanguagesPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, lang := range catalog.Languages() {
				files := make([]string, 0, len(lang.Pronunciation))
				for _, src := range lang.Pronunciation {
					files = append(files, src.File)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", lang.Code, lang.Name, lang.SpellCode(), strings.Join(files, ","))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
