package store

import (
	"context"
	"github.com/ogzhnclk/northwind-api/internal/pkg/store/xpgx"
	"github.com/ogzhnclk/northwind-api/internal/reports"
)

type Pool = xpgx.Pool

// Store is the data-access collaborator of the report catalog: it
// materializes one consistent snapshot of the Northwind dataset per call.
type Store interface {
	LoadSnapshot(ctx context.Context) (*reports.Snapshot, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
