package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-control/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already recorded")
)

const maxHistoryLimit = 1000

// transactionRepository implements TransactionRepositoryInterface. It only
// ever inserts; there is no update or delete path.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// Append records a movement in the journal
func (r *transactionRepository) Append(ctx context.Context, tx *gorm.DB, transaction *models.Transaction) error {
	if err := r.conn(ctx, tx).Omit(clause.Associations).Create(transaction).Error; err != nil {
		if isDuplicateKeyError(err) && transaction.IdempotencyKey != nil {
			return ErrDuplicateIdempotencyKey
		}
		if isForeignKeyError(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByIdempotencyKey looks up a previously recorded movement by its client key
func (r *transactionRepository) GetByIdempotencyKey(ctx context.Context, tx *gorm.DB, key string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.conn(ctx, tx).Where("idempotency_key = ?", key).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by idempotency key: %w", err)
	}
	return &transaction, nil
}

// ListByAccount returns the newest entries for an account
func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// SumByAccount returns income minus outcome across the whole journal for an
// account, which must equal its stored balance.
func (r *transactionRepository) SumByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (models.Money, error) {
	var sum int64
	err := r.conn(ctx, tx).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN amount_minor_units ELSE -amount_minor_units END), 0)", models.TransactionKindIncome).
		Where("account_id = ?", accountID).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return models.Money(sum), nil
}
