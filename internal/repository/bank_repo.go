package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/psepay/pse_api/internal/database"
	"github.com/psepay/pse_api/internal/models"
)

// BankFilter narrows a bank listing. The zero value selects all banks;
// a positive BankID selects the bank with that id.
type BankFilter struct {
	BankID int
}

// BankRepository provides data access methods for the banks table. It is a
// plain passthrough: existence checks and business rules live in the service
// layer, not here.
type BankRepository struct {
	db *sqlx.DB
}

// NewBankRepository creates a new BankRepository.
func NewBankRepository(db *sqlx.DB) *BankRepository {
	return &BankRepository{db: db}
}

const bankColumns = `bank_id, bank_code, bank_name, is_active, api_url, created_date`

// List returns banks matching the filter, ordered by bank_code.
func (r *BankRepository) List(ctx context.Context, filter BankFilter) ([]models.Bank, error) {
	var banks []models.Bank
	if filter.BankID > 0 {
		err := r.db.SelectContext(ctx, &banks,
			`SELECT `+bankColumns+` FROM banks WHERE bank_id = $1`, filter.BankID)
		return banks, err
	}
	err := r.db.SelectContext(ctx, &banks,
		`SELECT `+bankColumns+` FROM banks ORDER BY bank_code`)
	return banks, err
}

// GetByID returns the bank with the given id, or (nil, nil) if absent.
// Absence is not an error at this layer.
func (r *BankRepository) GetByID(ctx context.Context, bankID int) (*models.Bank, error) {
	return r.getBy(ctx, `bank_id = $1`, bankID)
}

// GetByCode returns the bank with the given code (exact, case-sensitive
// match), or (nil, nil) if absent.
func (r *BankRepository) GetByCode(ctx context.Context, bankCode string) (*models.Bank, error) {
	return r.getBy(ctx, `bank_code = $1`, bankCode)
}

func (r *BankRepository) getBy(ctx context.Context, where string, arg any) (*models.Bank, error) {
	var bank models.Bank
	err := r.db.GetContext(ctx, &bank,
		`SELECT `+bankColumns+` FROM banks WHERE `+where+` LIMIT 1`, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// Create inserts a bank and fills in the store-generated id and creation
// timestamp. Transient infrastructure failures are retried with backoff;
// SQL-level failures (constraint violations included) are returned as-is.
func (r *BankRepository) Create(ctx context.Context, bank *models.Bank) error {
	return withRetry(ctx, func() error {
		return r.db.QueryRowxContext(ctx,
			`INSERT INTO banks (bank_code, bank_name, is_active, api_url)
			 VALUES ($1, $2, $3, $4)
			 RETURNING bank_id, created_date`,
			bank.BankCode, bank.BankName, bank.IsActive, bank.APIURL,
		).Scan(&bank.BankID, &bank.CreatedDate)
	})
}

// Update persists the mutable fields of an existing bank matched by primary
// key. bank_code and created_date are never written. The caller is expected
// to have confirmed existence.
func (r *BankRepository) Update(ctx context.Context, bank *models.Bank) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE banks SET bank_name = $1, is_active = $2, api_url = $3 WHERE bank_id = $4`,
		bank.BankName, bank.IsActive, bank.APIURL, bank.BankID)
	return err
}

// Delete removes the bank with the given id. Deleting an absent row is a
// no-op here; the existence check is the service layer's responsibility.
func (r *BankRepository) Delete(ctx context.Context, bankID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM banks WHERE bank_id = $1`, bankID)
	return err
}

// withRetry runs op up to three times, backing off between attempts. Only
// infrastructure-class failures are retried: a *pq.Error means the statement
// reached the server (constraint violations must surface exactly once), and
// context errors mean the caller is gone.
func withRetry(ctx context.Context, op func() error) error {
	const (
		maxAttempts = 3
		baseDelay   = 250 * time.Millisecond
	)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		var pqErr *pq.Error
		if errors.As(lastErr, &pqErr) {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
		if attempt < maxAttempts {
			database.SleepWithBackoff(attempt, baseDelay)
		}
	}
	return lastErr
}
