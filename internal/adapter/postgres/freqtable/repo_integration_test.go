//go:build integration

package freqtable_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/subfreq/internal/adapter/postgres"
	"github.com/heartmarshall/subfreq/internal/adapter/postgres/freqtable"
	"github.com/heartmarshall/subfreq/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/subfreq/internal/domain"
)

func TestRepo_SaveTable_Integration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := freqtable.New(pool, 2)
	tm := postgres.NewTxManager(pool)

	language := "it-" + uuid.New().String()[:8]
	table := &domain.RankedTable{
		Unit:       domain.UnitWord,
		TotalUnits: 4,
		Records: []domain.RankedRecord{
			{Rank: 1, Unit: "ciao", Frequency: 2, FrequencyPerMillion: 500000, Zipf: 8.69897},
			{Rank: 2, Unit: "mondo", Frequency: 1, FrequencyPerMillion: 250000, Zipf: 8.39794, IPA: "ˈmondo"},
			{Rank: 2, Unit: "sole", Frequency: 1, FrequencyPerMillion: 250000, Zipf: 8.39794},
		},
	}
	run := domain.NewFrequencyRun(language, table, time.Now().UTC().Truncate(time.Microsecond))

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SaveTable(ctx, run, table)
	})
	if err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM freq_records WHERE run_id = $1`, run.ID).Scan(&count); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 3 {
		t.Errorf("records = %d, want 3", count)
	}

	runs, err := repo.ListRuns(ctx, language)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID || runs[0].RecordCount != 3 {
		t.Errorf("ListRuns = %+v", runs)
	}

	err = tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SaveTable(ctx, run, table)
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("second SaveTable error = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_SaveTable_RollsBackOnFailure(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := freqtable.New(pool, 1)
	tm := postgres.NewTxManager(pool)

	table := &domain.RankedTable{
		Unit:       domain.UnitCharacter,
		TotalUnits: 1,
		Records: []domain.RankedRecord{
			{Rank: 1, Unit: "a", Frequency: 1, FrequencyPerMillion: 1e6, Zipf: 9},
			{Rank: 0, Unit: "b", Frequency: 1, FrequencyPerMillion: 1e6, Zipf: 9}, // violates rank >= 1
		},
	}
	run := domain.NewFrequencyRun("xx", table, time.Now().UTC())

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SaveTable(ctx, run, table)
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("SaveTable error = %v, want ErrValidation", err)
	}

	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM freq_runs WHERE id = $1)`, run.ID).Scan(&exists); err != nil {
		t.Fatalf("check run: %v", err)
	}
	if exists {
		t.Error("run header should have been rolled back")
	}
}
