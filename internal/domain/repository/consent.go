package repository

import (
	"context"

	"github.com/oneuniverse/onboard/internal/domain/entity"
)

// ConsentAuditRepository stores the decisions of past negotiations.
// Only outcome metadata is stored; tokens never reach this layer.
type ConsentAuditRepository interface {
	// Record saves the records of one negotiation.
	Record(ctx context.Context, records []*entity.ConsentRecord) error

	// ListByNegotiation returns the records of one negotiation in negotiation order.
	ListByNegotiation(ctx context.Context, negotiationID string) ([]*entity.ConsentRecord, error)

	// ListRecent returns the most recent records, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.ConsentRecord, error)
}
