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
	ErrAccountNotFound    = models.ErrAccountNotFound
	ErrDuplicateAccountID = errors.New("account id already exists")
	// ErrBalanceConflict means the stored balance no longer matches the value
	// read under lock, so the write was refused.
	ErrBalanceConflict = errors.New("account balance changed concurrently")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// Create inserts a new account with its opening balance
func (r *accountRepository) Create(ctx context.Context, tx *gorm.DB, account *models.BankAccount) error {
	if err := r.conn(ctx, tx).Omit(clause.Associations).Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateAccountID
		}
		if isForeignKeyError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID reads an account without taking a lock
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUserID lists a user's accounts, newest first
func (r *accountRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// FetchForUpdate reads the account and holds an exclusive row lock on it
// until tx ends. Concurrent callers for the same account queue here.
func (r *accountRepository) FetchForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.BankAccount, error) {
	var account models.BankAccount
	err := r.conn(ctx, tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &account, nil
}

// PersistBalance overwrites the balance, guarded by the value read under lock
func (r *accountRepository) PersistBalance(ctx context.Context, tx *gorm.DB, id uuid.UUID, expected, newBalance models.Money) error {
	if newBalance.IsNegative() {
		return models.ErrNegativeBalance
	}

	result := r.conn(ctx, tx).
		Model(&models.BankAccount{}).
		Where("id = ? AND balance_minor_units = ?", id, expected).
		Update("balance_minor_units", newBalance)
	if result.Error != nil {
		return fmt.Errorf("failed to update account balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBalanceConflict
	}
	return nil
}
