package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-control/internal/config"
	"finance-control/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.BankAccount{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQL migrations are the source of truth; AutoMigrate only covers
	// environments that skip them.
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	slog.Info("database initialized")

	return db, nil
}

// ErrUnitOfWorkTimeout is returned when a unit of work exceeds its deadline
var ErrUnitOfWorkTimeout = errors.New("unit of work timed out")

// UnitOfWork runs a function inside one database transaction. The function
// receives the transaction handle; returning an error rolls everything back.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type unitOfWork struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUnitOfWork returns a UnitOfWork bounded by timeout. A zero timeout
// leaves the caller's context deadline in charge.
func NewUnitOfWork(db *gorm.DB, timeout time.Duration) UnitOfWork {
	return &unitOfWork{db: db, timeout: timeout}
}

func (u *unitOfWork) Execute(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	err := u.db.WithContext(ctx).Transaction(fn)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %w", ErrUnitOfWorkTimeout, u.timeout, err)
	}
	return err
}
