package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/domain/repository"
	"github.com/oneuniverse/onboard/internal/logging"
)

const (
	insertConsentSQL = `
INSERT INTO consent_audit (negotiation_id, capability, position, status, error_kind, note, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (negotiation_id, capability) DO UPDATE SET
    status = excluded.status,
    error_kind = excluded.error_kind,
    note = excluded.note,
    recorded_at = excluded.recorded_at`

	listConsentByNegotiationSQL = `
SELECT negotiation_id, capability, status, error_kind, note, recorded_at
FROM consent_audit
WHERE negotiation_id = ?
ORDER BY position`

	listRecentConsentSQL = `
SELECT negotiation_id, capability, status, error_kind, note, recorded_at
FROM consent_audit
ORDER BY recorded_at DESC, id DESC
LIMIT ?`
)

type consentRepo struct {
	db *sql.DB
}

// NewConsentAuditRepository creates a new SQLite-backed consent audit repository.
func NewConsentAuditRepository(db *sql.DB) repository.ConsentAuditRepository {
	return &consentRepo{db: db}
}

func (r *consentRepo) Record(ctx context.Context, records []*entity.ConsentRecord) (err error) {
	log := logging.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin consent audit: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertConsentSQL)
	if err != nil {
		return fmt.Errorf("prepare consent insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if record == nil {
			return errors.New("cannot record nil consent record")
		}
		if _, err = stmt.ExecContext(ctx,
			record.NegotiationID,
			string(record.Capability),
			position(record.Capability),
			string(record.Status),
			string(record.ErrorKind),
			record.Note,
			record.RecordedAt,
		); err != nil {
			return fmt.Errorf("insert consent record %s: %w", record.Capability, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit consent audit: %w", err)
	}

	log.Debug().
		Str("negotiation_id", records[0].NegotiationID).
		Int("records", len(records)).
		Msg("consent audit recorded")
	return nil
}

func (r *consentRepo) ListByNegotiation(ctx context.Context, negotiationID string) ([]*entity.ConsentRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("negotiation_id", negotiationID).Msg("listing consent records")

	rows, err := r.db.QueryContext(ctx, listConsentByNegotiationSQL, negotiationID)
	if err != nil {
		return nil, err
	}
	return scanConsentRows(rows)
}

func (r *consentRepo) ListRecent(ctx context.Context, limit int) ([]*entity.ConsentRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, listRecentConsentSQL, limit)
	if err != nil {
		return nil, err
	}
	return scanConsentRows(rows)
}

func scanConsentRows(rows *sql.Rows) ([]*entity.ConsentRecord, error) {
	defer rows.Close()

	var records []*entity.ConsentRecord
	for rows.Next() {
		var (
			record     entity.ConsentRecord
			capability string
			status     string
			errorKind  string
		)
		if err := rows.Scan(
			&record.NegotiationID,
			&capability,
			&status,
			&errorKind,
			&record.Note,
			&record.RecordedAt,
		); err != nil {
			return nil, err
		}
		record.Capability = entity.CapabilityID(capability)
		record.Status = entity.OutcomeStatus(status)
		record.ErrorKind = entity.ErrorKind(errorKind)
		records = append(records, &record)
	}
	return records, rows.Err()
}

// position orders records of one negotiation the way they were negotiated.
func position(id entity.CapabilityID) int {
	for i, known := range entity.NegotiationOrder {
		if known == id {
			return i
		}
	}
	return len(entity.NegotiationOrder)
}
