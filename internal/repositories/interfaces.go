package repositories

import (
	"context"

	"finance-control/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Methods taking a tx handle run on that transaction and never begin or
// commit one themselves. A nil tx falls back to the repository's own handle.

// AccountRepositoryInterface is the account store. It is the only writer of
// bank account balances.
type AccountRepositoryInterface interface {
	Create(ctx context.Context, tx *gorm.DB, account *models.BankAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BankAccount, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.BankAccount, error)
	FetchForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.BankAccount, error)
	PersistBalance(ctx context.Context, tx *gorm.DB, id uuid.UUID, expected, newBalance models.Money) error
}

// TransactionRepositoryInterface is the append-only transaction journal
type TransactionRepositoryInterface interface {
	Append(ctx context.Context, tx *gorm.DB, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, tx *gorm.DB, key string) (*models.Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Transaction, error)
	SumByAccount(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (models.Money, error)
}

// UserRepositoryInterface is the read-mostly user store
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
