package database

import (
	"fmt"

	"chequesaathi/config"
	"chequesaathi/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// NewDB opens the store. Duplicate-key errors are translated to
// gorm.ErrDuplicatedKey so services can report them as conflicts.
func NewDB(cfg *config.DatabaseConfig, log logger.Interface) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Default.LogMode(logger.Error)
	}
	db, err := gorm.Open(d, &gorm.Config{
		Logger:         log,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return db, nil
}

// liveUniqueIndexes enforce uniqueness among rows that are not soft-deleted.
// MySQL has no partial indexes; there the transactional check in the
// services is the only guard.
var liveUniqueIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_live_email ON customers (email) WHERE deleted_at IS NULL",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_live_phone ON customers (phone) WHERE deleted_at IS NULL",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_cheques_live_number ON cheques (customer_id, cheque_number) WHERE deleted_at IS NULL",
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Cheque{},
		&models.CashTransaction{},
		&models.AuditLog{},
	); err != nil {
		return err
	}
	switch db.Dialector.Name() {
	case "postgres", "sqlite":
		for _, stmt := range liveUniqueIndexes {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("create unique index: %w", err)
			}
		}
	}
	return nil
}
