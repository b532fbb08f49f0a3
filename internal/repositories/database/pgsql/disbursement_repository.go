package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acculab/vpledger/internal/apperrors"
	"github.com/acculab/vpledger/internal/core/domain"
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	"github.com/acculab/vpledger/internal/models"
	"github.com/acculab/vpledger/internal/utils/mapping"
	"github.com/acculab/vpledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDisbursementRepository struct {
	BaseRepository
}

// newPgxDisbursementRepository creates a new repository for disbursement data.
func newPgxDisbursementRepository(pool *pgxpool.Pool) portsrepo.DisbursementRepositoryFacade {
	return &PgxDisbursementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDisbursementRepository implements portsrepo.DisbursementRepositoryFacade
var _ portsrepo.DisbursementRepositoryFacade = (*PgxDisbursementRepository)(nil)

const disbursementColumns = `disbursement_id, sample_id, nurse_id, nurse_name, driver_id, driver_name,
	       float_id, amount, currency_code, notes, disbursed_at,
	       created_at, created_by, last_updated_at, last_updated_by`

// scanDisbursement scans one vp_disbursements row.
func scanDisbursement(row pgx.Row) (*models.VPDisbursement, error) {
	var m models.VPDisbursement
	var notes sql.NullString
	err := row.Scan(
		&m.DisbursementID,
		&m.SampleID,
		&m.NurseID,
		&m.NurseName,
		&m.DriverID,
		&m.DriverName,
		&m.FloatID,
		&m.Amount,
		&m.CurrencyCode,
		&notes,
		&m.DisbursedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.Notes = notes.String
	return &m, nil
}

// ApplyDisbursement runs the whole disbursement unit in one transaction: lock
// the float row, validate, append the journal entry, move the balance and
// insert the payment. Either all of it commits or none does.
func (r *PgxDisbursementRepository) ApplyDisbursement(ctx context.Context, d domain.VPDisbursement, entry domain.FloatTransaction) (*domain.FloatTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	applied, err := applyDisbursementInTx(ctx, tx, d, entry)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return applied, nil
}

// applyDisbursementInTx debits the float and records the payment inside tx.
// The FOR UPDATE lock on the float row must be taken before the payment
// INSERT: the vp_disbursements FK acquires a key-share lock on that row, and
// two transactions holding key-share while each waiting to upgrade to FOR
// UPDATE deadlock against each other.
func applyDisbursementInTx(ctx context.Context, tx pgx.Tx, d domain.VPDisbursement, entry domain.FloatTransaction) (*domain.FloatTransaction, error) {
	applied, err := applyEntryInTx(ctx, tx, entry)
	if err != nil {
		if isSerializationFailure(err) {
			return nil, apperrors.ErrConflict
		}
		if errors.Is(err, apperrors.ErrNotFound) ||
			errors.Is(err, apperrors.ErrFloatClosed) ||
			errors.Is(err, apperrors.ErrInsufficientBalance) ||
			errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to apply disbursement debit "+d.DisbursementID, err)
	}

	m := mapping.ToModelVPDisbursement(d)
	insertQuery := `
		INSERT INTO vp_disbursements (
			disbursement_id, sample_id, nurse_id, nurse_name, driver_id, driver_name,
			float_id, amount, currency_code, notes, disbursed_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.DisbursementID,
		m.SampleID,
		m.NurseID,
		m.NurseName,
		m.DriverID,
		m.DriverName,
		m.FloatID,
		m.Amount,
		m.CurrencyCode,
		nullIfEmpty(m.Notes),
		m.DisbursedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("disbursement %s: %w", m.DisbursementID, apperrors.ErrDuplicate)
		}
		if isSerializationFailure(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, apperrors.NewAppError(500, "failed to insert disbursement "+m.DisbursementID, err)
	}

	return applied, nil
}

// FindDisbursementByID retrieves a disbursement by its ID.
func (r *PgxDisbursementRepository) FindDisbursementByID(ctx context.Context, disbursementID string) (*domain.VPDisbursement, error) {
	query := `SELECT ` + disbursementColumns + ` FROM vp_disbursements WHERE disbursement_id = $1;`

	m, err := scanDisbursement(r.Pool.QueryRow(ctx, query, disbursementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("disbursement %s: %w", disbursementID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to query disbursement "+disbursementID, err)
	}

	d := mapping.ToDomainVPDisbursement(*m)
	return &d, nil
}

// FindDisbursementsByIDs retrieves multiple disbursements keyed by ID. IDs
// without a matching row are absent from the map.
func (r *PgxDisbursementRepository) FindDisbursementsByIDs(ctx context.Context, disbursementIDs []string) (map[string]domain.VPDisbursement, error) {
	result := make(map[string]domain.VPDisbursement, len(disbursementIDs))
	if len(disbursementIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + disbursementColumns + ` FROM vp_disbursements WHERE disbursement_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, disbursementIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query disbursements by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanDisbursement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan disbursement row", err)
		}
		result[m.DisbursementID] = mapping.ToDomainVPDisbursement(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading disbursement rows", err)
	}

	return result, nil
}

// ListDisbursements retrieves a page of disbursements newest first using
// keyset pagination over (disbursed_at, disbursement_id).
func (r *PgxDisbursementRepository) ListDisbursements(ctx context.Context, params portsrepo.ListDisbursementsParams) ([]domain.VPDisbursement, *string, error) {
	query := `SELECT ` + disbursementColumns + ` FROM vp_disbursements WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if params.DriverID != "" {
		query += fmt.Sprintf(" AND driver_id = $%d", argPos)
		args = append(args, params.DriverID)
		argPos++
	}
	if params.NurseID != "" {
		query += fmt.Sprintf(" AND nurse_id = $%d", argPos)
		args = append(args, params.NurseID)
		argPos++
	}
	if params.From != nil {
		query += fmt.Sprintf(" AND disbursed_at >= $%d", argPos)
		args = append(args, *params.From)
		argPos++
	}
	if params.To != nil {
		query += fmt.Sprintf(" AND disbursed_at <= $%d", argPos)
		args = append(args, *params.To)
		argPos++
	}
	if params.NextToken != nil && *params.NextToken != "" {
		tokenAt, tokenID, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(" AND (disbursed_at, disbursement_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, tokenAt, tokenID)
		argPos += 2
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(" ORDER BY disbursed_at DESC, disbursement_id DESC LIMIT $%d", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list disbursements", err)
	}
	defer rows.Close()

	var ds []models.VPDisbursement
	for rows.Next() {
		m, err := scanDisbursement(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan disbursement row", err)
		}
		ds = append(ds, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed reading disbursement rows", err)
	}

	var nextToken *string
	if len(ds) > limit {
		ds = ds[:limit]
		last := ds[len(ds)-1]
		token := pagination.EncodeToken(last.DisbursedAt, last.DisbursementID)
		nextToken = &token
	}

	return mapping.ToDomainVPDisbursementSlice(ds), nextToken, nil
}
