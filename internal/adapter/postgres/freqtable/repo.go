// Package freqtable stores ranked frequency tables in PostgreSQL: one
// freq_runs row per table and one freq_records row per ranked unit.
package freqtable

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/subfreq/internal/adapter/postgres"
	"github.com/heartmarshall/subfreq/internal/domain"
)

const defaultBatchSize = 1000

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	runColumns = []string{
		"id", "language", "unit", "with_ipa", "spell_checked",
		"total_units", "record_count", "created_at",
	}
	recordColumns = []string{
		"run_id", "position", "rank", "unit",
		"frequency", "frequency_per_million", "zipf", "ipa",
	}
)

// Repo provides frequency table persistence backed by PostgreSQL.
type Repo struct {
	db        postgres.Querier
	batchSize int
}

// New creates a repository that inserts records in chunks of batchSize rows.
func New(db postgres.Querier, batchSize int) *Repo {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Repo{db: db, batchSize: batchSize}
}

// SaveTable inserts the run header followed by every record of table.
// Call it inside TxManager.RunInTx to store the table atomically.
func (r *Repo) SaveTable(ctx context.Context, run domain.FrequencyRun, table *domain.RankedTable) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Insert("freq_runs").
		Columns(runColumns...).
		Values(run.ID, run.Language, string(run.Unit), run.WithIPA, run.SpellChecked,
			run.TotalUnits, run.RecordCount, run.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build freq_runs insert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "freq run", run.ID)
	}

	for start := 0; start < len(table.Records); start += r.batchSize {
		end := min(start+r.batchSize, len(table.Records))

		insert := builder.Insert("freq_records").Columns(recordColumns...)
		for i, rec := range table.Records[start:end] {
			insert = insert.Values(run.ID, start+i+1, rec.Rank, rec.Unit,
				rec.Frequency, rec.FrequencyPerMillion, rec.Zipf, nullable(rec.IPA))
		}

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build freq_records insert: %w", err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, "freq records of run", run.ID)
		}
	}

	return nil
}

// ListRuns returns the stored runs for language, newest first.
// An empty language lists every run.
func (r *Repo) ListRuns(ctx context.Context, language string) ([]domain.FrequencyRun, error) {
	query := builder.Select(runColumns...).
		From("freq_runs").
		OrderBy("created_at DESC", "unit ASC")
	if language != "" {
		query = query.Where(squirrel.Eq{"language": language})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build freq_runs select: %w", err)
	}

	var rows []runRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "freq runs of language", language)
	}

	runs := make([]domain.FrequencyRun, len(rows))
	for i, row := range rows {
		runs[i] = row.toDomain()
	}
	return runs, nil
}

type runRow struct {
	ID           uuid.UUID `db:"id"`
	Language     string    `db:"language"`
	Unit         string    `db:"unit"`
	WithIPA      bool      `db:"with_ipa"`
	SpellChecked bool      `db:"spell_checked"`
	TotalUnits   int       `db:"total_units"`
	RecordCount  int       `db:"record_count"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r runRow) toDomain() domain.FrequencyRun {
	return domain.FrequencyRun{
		ID:           r.ID,
		Language:     r.Language,
		Unit:         domain.Unit(r.Unit),
		WithIPA:      r.WithIPA,
		SpellChecked: r.SpellChecked,
		TotalUnits:   r.TotalUnits,
		RecordCount:  r.RecordCount,
		CreatedAt:    r.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
