package config

import "time"

// Export format names accepted in export.formats.
const (
	FormatTXT      = "txt"
	FormatCSV      = "csv"
	FormatXLSX     = "xlsx"
	FormatPostgres = "postgres"
)

// Spell backends accepted in spell.backend.
const (
	SpellBackendAspell   = "aspell"
	SpellBackendWordlist = "wordlist"
)

// KnownFormats lists the export formats in the order they are written.
var KnownFormats = []string{FormatTXT, FormatCSV, FormatXLSX, FormatPostgres}

// Config is the root application configuration.
type Config struct {
	Log           LogConfig           `yaml:"log"`
	Corpus        CorpusConfig        `yaml:"corpus"`
	Count         CountConfig         `yaml:"count"`
	Pronunciation PronunciationConfig `yaml:"pronunciation"`
	Spell         SpellConfig         `yaml:"spell"`
	Export        ExportConfig        `yaml:"export"`
	Database      DatabaseConfig      `yaml:"database"`

	// LanguagesPath replaces the embedded language catalog when set.
	LanguagesPath string `yaml:"languages_path" env:"LANGUAGES_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CorpusConfig points at the corpus to count.
type CorpusConfig struct {
	Path string `yaml:"path" env:"CORPUS_PATH"`
	// Language is the catalog code; inferred from the file name when empty.
	Language string `yaml:"language" env:"CORPUS_LANGUAGE"`
	NFC      bool   `yaml:"nfc"      env:"CORPUS_NFC" env-default:"false"`
}

// CountConfig selects the optional tables and diagnostics.
type CountConfig struct {
	Character bool `yaml:"character" env:"COUNT_CHARACTER" env-default:"false"`
	Bigram    bool `yaml:"bigram"    env:"COUNT_BIGRAM"    env-default:"false"`
	Stats     bool `yaml:"stats"     env:"COUNT_STATS"     env-default:"false"`
}

// PronunciationConfig enables the IPA word table.
type PronunciationConfig struct {
	Dir string `yaml:"dir" env:"PRONUNCIATION_DIR"`
}

// Enabled reports whether an IPA table is requested.
func (c PronunciationConfig) Enabled() bool { return c.Dir != "" }

// SpellConfig holds spelling oracle settings.
type SpellConfig struct {
	Enabled    bool   `yaml:"enabled"     env:"SPELL_ENABLED"     env-default:"false"`
	Language   string `yaml:"language"    env:"SPELL_LANGUAGE"`
	Backend    string `yaml:"backend"     env:"SPELL_BACKEND"     env-default:"aspell"`
	AspellPath string `yaml:"aspell_path" env:"SPELL_ASPELL_PATH" env-default:"aspell"`
	// AspellAffixes also accepts aspell's compound and affix results.
	AspellAffixes bool   `yaml:"aspell_affixes" env:"SPELL_ASPELL_AFFIXES" env-default:"false"`
	WordlistDir   string `yaml:"wordlist_dir"   env:"SPELL_WORDLIST_DIR"`
	Workers       int    `yaml:"workers"        env:"SPELL_WORKERS"        env-default:"4"`
	CacheSize     int    `yaml:"cache_size"     env:"SPELL_CACHE_SIZE"     env-default:"65536"`
}

// ExportConfig holds output settings.
type ExportConfig struct {
	FormatsRaw  string `yaml:"formats"       env:"EXPORT_FORMATS"       env-default:"txt|xlsx"`
	Dir         string `yaml:"dir"           env:"EXPORT_DIR"           env-default:"data"`
	XLSXMaxRows int    `yaml:"xlsx_max_rows" env:"EXPORT_XLSX_MAX_ROWS" env-default:"100000"`

	// Formats is parsed from FormatsRaw during validation.
	Formats []string `yaml:"-" env:"-"`
}

// Has reports whether format was requested.
func (c ExportConfig) Has(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	BatchSize       int           `yaml:"batch_size"         env:"DATABASE_BATCH_SIZE"         env-default:"1000"`
}
