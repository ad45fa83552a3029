package export

import (
	"context"
	"time"

	"github.com/heartmarshall/subfreq/internal/domain"
)

type tableStore interface {
	SaveTable(ctx context.Context, run domain.FrequencyRun, table *domain.RankedTable) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// StoreWriter saves each table as a run in one transaction.
type StoreWriter struct {
	store tableStore
	tx    txManager
	now   func() time.Time
}

// NewStoreWriter creates a StoreWriter.
func NewStoreWriter(store tableStore, tx txManager) *StoreWriter {
	return &StoreWriter{
		store: store,
		tx:    tx,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (w *StoreWriter) Format() string { return "postgres" }

// Write returns the ID of the stored run.
func (w *StoreWriter) Write(ctx context.Context, target Target, table *domain.RankedTable) (string, error) {
	run := domain.NewFrequencyRun(target.Code, table, w.now())

	err := w.tx.RunInTx(ctx, func(ctx context.Context) error {
		return w.store.SaveTable(ctx, run, table)
	})
	if err != nil {
		return "", err
	}

	return "freq_runs/" + run.ID.String(), nil
}
