package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/acculab/vpledger/internal/apperrors"
	"github.com/acculab/vpledger/internal/core/domain"
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	"github.com/acculab/vpledger/internal/models"
	"github.com/acculab/vpledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFloatRepository struct {
	BaseRepository
}

// newPgxFloatRepository creates a new repository for driver float and journal data.
func newPgxFloatRepository(pool *pgxpool.Pool) portsrepo.FloatRepositoryFacade {
	return &PgxFloatRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxFloatRepository implements portsrepo.FloatRepositoryFacade
var _ portsrepo.FloatRepositoryFacade = (*PgxFloatRepository)(nil)

const floatColumns = `float_id, driver_id, driver_name, allocated_amount, remaining_balance,
	       currency_code, status, notes, created_at, created_by, last_updated_at, last_updated_by`

// scanFloat scans one driver_floats row.
func scanFloat(row pgx.Row) (*models.DriverFloat, error) {
	var m models.DriverFloat
	var notes sql.NullString
	err := row.Scan(
		&m.FloatID,
		&m.DriverID,
		&m.DriverName,
		&m.AllocatedAmount,
		&m.RemainingBalance,
		&m.CurrencyCode,
		&m.Status,
		&notes,
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

// FindFloatByID retrieves a float by its ID.
func (r *PgxFloatRepository) FindFloatByID(ctx context.Context, floatID string) (*domain.DriverFloat, error) {
	query := `SELECT ` + floatColumns + ` FROM driver_floats WHERE float_id = $1;`

	m, err := scanFloat(r.Pool.QueryRow(ctx, query, floatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("float %s: %w", floatID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to query float "+floatID, err)
	}

	float := mapping.ToDomainDriverFloat(*m)
	return &float, nil
}

// FindLatestActiveFloatByDriver retrieves the driver's most recently created
// ACTIVE float.
func (r *PgxFloatRepository) FindLatestActiveFloatByDriver(ctx context.Context, driverID string) (*domain.DriverFloat, error) {
	query := `SELECT ` + floatColumns + `
		FROM driver_floats
		WHERE driver_id = $1 AND status = $2
		ORDER BY created_at DESC, float_id DESC
		LIMIT 1;`

	m, err := scanFloat(r.Pool.QueryRow(ctx, query, driverID, models.FloatActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no active float for driver %s: %w", driverID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to query active float for driver "+driverID, err)
	}

	float := mapping.ToDomainDriverFloat(*m)
	return &float, nil
}

// ListFloats retrieves floats matching the params, newest first.
func (r *PgxFloatRepository) ListFloats(ctx context.Context, params portsrepo.ListFloatsParams) ([]domain.DriverFloat, error) {
	query := `SELECT ` + floatColumns + ` FROM driver_floats WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if params.DriverID != "" {
		query += fmt.Sprintf(" AND driver_id = $%d", argPos)
		args = append(args, params.DriverID)
		argPos++
	}
	if params.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(*params.Status))
		argPos++
	}
	query += " ORDER BY created_at DESC, float_id DESC"
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, params.Limit)
		argPos++
	}
	if params.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, params.Offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list floats", err)
	}
	defer rows.Close()

	var floats []models.DriverFloat
	for rows.Next() {
		m, err := scanFloat(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan float row", err)
		}
		floats = append(floats, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading float rows", err)
	}

	return mapping.ToDomainDriverFloatSlice(floats), nil
}

const transactionColumns = `transaction_id, float_id, driver_id, transaction_type, amount, reason,
	       reference_id, currency_code, notes, seq, created_at, created_by, last_updated_at, last_updated_by`

// scanTransaction scans one float_transactions row.
func scanTransaction(row pgx.Row) (*models.FloatTransaction, error) {
	var m models.FloatTransaction
	var referenceID, notes sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.FloatID,
		&m.DriverID,
		&m.TransactionType,
		&m.Amount,
		&m.Reason,
		&referenceID,
		&m.CurrencyCode,
		&notes,
		&m.Seq,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.ReferenceID = referenceID.String
	m.Notes = notes.String
	return &m, nil
}

// FindTransactionsByFloatID retrieves the float's full journal, oldest first.
// The seq tie-break keeps replay order stable for entries created in the same
// instant.
func (r *PgxFloatRepository) FindTransactionsByFloatID(ctx context.Context, floatID string) ([]domain.FloatTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM float_transactions
		WHERE float_id = $1
		ORDER BY created_at ASC, seq ASC;`

	rows, err := r.Pool.Query(ctx, query, floatID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal for float "+floatID, err)
	}
	defer rows.Close()

	var txns []models.FloatTransaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal row", err)
		}
		txns = append(txns, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading journal rows", err)
	}

	return mapping.ToDomainFloatTransactionSlice(txns), nil
}

const insertTransactionQuery = `
	INSERT INTO float_transactions (
		transaction_id, float_id, driver_id, transaction_type, amount, reason,
		reference_id, currency_code, notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING seq;
`

// insertTransactionInTx appends one journal row and returns its assigned seq.
func insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.FloatTransaction) (int64, error) {
	m := mapping.ToModelFloatTransaction(txn)
	var seq int64
	err := tx.QueryRow(ctx, insertTransactionQuery,
		m.TransactionID,
		m.FloatID,
		m.DriverID,
		m.TransactionType,
		m.Amount,
		m.Reason,
		nullIfEmpty(m.ReferenceID),
		m.CurrencyCode,
		nullIfEmpty(m.Notes),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&seq)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrDuplicate)
		}
		return 0, err
	}
	return seq, nil
}

// nullIfEmpty maps "" onto SQL NULL for nullable text columns.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveFloatWithAllocation inserts the float and its opening ALLOCATION entry
// in one transaction.
func (r *PgxFloatRepository) SaveFloatWithAllocation(ctx context.Context, float domain.DriverFloat, allocation domain.FloatTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDriverFloat(float)
	floatQuery := `
		INSERT INTO driver_floats (
			float_id, driver_id, driver_name, allocated_amount, remaining_balance,
			currency_code, status, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, floatQuery,
		m.FloatID,
		m.DriverID,
		m.DriverName,
		m.AllocatedAmount,
		m.RemainingBalance,
		m.CurrencyCode,
		m.Status,
		nullIfEmpty(m.Notes),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("float %s: %w", m.FloatID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert float "+m.FloatID, err)
	}

	if _, err := insertTransactionInTx(ctx, tx, allocation); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return err
		}
		return apperrors.NewAppError(500, "failed to insert allocation entry for float "+m.FloatID, err)
	}

	return r.Commit(ctx, tx)
}

// CloseFloat transitions a float to CLOSED. Returns transitioned=false when the
// float was already closed.
func (r *PgxFloatRepository) CloseFloat(ctx context.Context, floatID string, userID string, now time.Time) (bool, error) {
	query := `
		UPDATE driver_floats
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE float_id = $4 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, models.FloatClosed, now, userID, floatID, models.FloatActive)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to close float "+floatID, err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Nothing transitioned: either the float is already closed or it never
	// existed. Distinguish the two for the caller.
	var status models.FloatStatus
	err = r.Pool.QueryRow(ctx, `SELECT status FROM driver_floats WHERE float_id = $1;`, floatID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("float %s: %w", floatID, apperrors.ErrNotFound)
		}
		return false, apperrors.NewAppError(500, "failed to query float status for "+floatID, err)
	}
	return false, nil
}

// lockFloatInTx re-reads the float row FOR UPDATE inside tx. Every writer that
// touches remaining_balance goes through this lock, which serializes racing
// debits against the same float.
func lockFloatInTx(ctx context.Context, tx pgx.Tx, floatID string) (*models.DriverFloat, error) {
	query := `SELECT ` + floatColumns + ` FROM driver_floats WHERE float_id = $1 FOR UPDATE;`
	m, err := scanFloat(tx.QueryRow(ctx, query, floatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("float %s: %w", floatID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

// applyEntryInTx validates the entry against the locked float row, inserts it
// and moves remaining_balance. Shared by journal appends and disbursements.
func applyEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.FloatTransaction) (*domain.FloatTransaction, error) {
	locked, err := lockFloatInTx(ctx, tx, entry.FloatID)
	if err != nil {
		return nil, err
	}

	if locked.Status != models.FloatActive {
		return nil, fmt.Errorf("float %s: %w", entry.FloatID, apperrors.ErrFloatClosed)
	}

	signed, err := entry.SignedAmount()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to classify journal entry "+entry.TransactionID, err)
	}
	newBalance := locked.RemainingBalance.Add(signed)
	if newBalance.IsNegative() {
		return nil, fmt.Errorf("float %s balance %s cannot cover %s: %w",
			entry.FloatID, locked.RemainingBalance.String(), entry.Amount.String(), apperrors.ErrInsufficientBalance)
	}

	seq, err := insertTransactionInTx(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	balanceQuery := `
		UPDATE driver_floats
		SET remaining_balance = $1, last_updated_at = $2, last_updated_by = $3
		WHERE float_id = $4;
	`
	if _, err := tx.Exec(ctx, balanceQuery, newBalance, entry.LastUpdatedAt, entry.LastUpdatedBy, entry.FloatID); err != nil {
		return nil, err
	}

	entry.Seq = seq
	return &entry, nil
}

// ApplyJournalEntry appends a return/refund/adjustment entry and updates the
// float balance in one transaction.
func (r *PgxFloatRepository) ApplyJournalEntry(ctx context.Context, entry domain.FloatTransaction) (*domain.FloatTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

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
		return nil, apperrors.NewAppError(500, "failed to apply journal entry "+entry.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return applied, nil
}
