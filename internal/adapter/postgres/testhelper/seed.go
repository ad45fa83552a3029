package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// SeedRun inserts a freq_runs row without records and returns it.
func SeedRun(t *testing.T, pool *pgxpool.Pool, language string, unit domain.Unit) domain.FrequencyRun {
	t.Helper()

	run := domain.FrequencyRun{
		ID:        uuid.New(),
		Language:  language,
		Unit:      unit,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO freq_runs (id, language, unit, with_ipa, spell_checked, total_units, record_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.ID, run.Language, string(run.Unit), run.WithIPA, run.SpellChecked, run.TotalUnits, run.RecordCount, run.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRun insert: %v", err)
	}

	return run
}
