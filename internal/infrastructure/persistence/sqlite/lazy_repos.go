// Package sqlite provides the SQLite consent audit store.
package sqlite

import (
	"context"
	"sync"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/domain/repository"
)

// LazyConsentAuditRepository wraps the consent audit repository with lazy
// database initialization.
type LazyConsentAuditRepository struct {
	provider port.DatabaseProvider
	repo     repository.ConsentAuditRepository
	once     sync.Once
	initErr  error
}

// NewLazyConsentAuditRepository creates a lazy-loading consent audit repository.
func NewLazyConsentAuditRepository(provider port.DatabaseProvider) repository.ConsentAuditRepository {
	return &LazyConsentAuditRepository{provider: provider}
}

func (r *LazyConsentAuditRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewConsentAuditRepository(db)
	})
	return r.initErr
}

func (r *LazyConsentAuditRepository) Record(ctx context.Context, records []*entity.ConsentRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, records)
}

func (r *LazyConsentAuditRepository) ListByNegotiation(ctx context.Context, negotiationID string) ([]*entity.ConsentRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListByNegotiation(ctx, negotiationID)
}

func (r *LazyConsentAuditRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ConsentRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListRecent(ctx, limit)
}
