package db

import (
	"github.com/Cam96stanley/e-com-api/internal/config" // Custom package for configuration
	"github.com/Cam96stanley/e-com-api/internal/domain" // Importing domain models

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Connect opens a database connection for the configured driver and
// registers the explicit join model, so the order↔product association
// always maps onto the composite (order_id, product_id) primary key.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	var (
		database *gorm.DB
		err      error
	)
	if cfg.DBDriver == "sqlite" {
		database, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	} else {
		database, err = gorm.Open(mysql.Open(cfg.DSN()), gormCfg)
	}
	if err != nil {
		return nil, err
	}
	if err := setupJoinTables(database); err != nil {
		return nil, err
	}
	return database, nil
}

// Migrate creates tables, foreign keys, constraints, columns and indexes
// for all domain models, including the order↔product join table
func Migrate(database *gorm.DB) error {
	if err := setupJoinTables(database); err != nil {
		return err
	}
	return database.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Order{}, &domain.OrderProduct{})
}

// setupJoinTables points both sides of the many-to-many at OrderProduct
func setupJoinTables(database *gorm.DB) error {
	if err := database.SetupJoinTable(&domain.Order{}, "Products", &domain.OrderProduct{}); err != nil {
		return err
	}
	return database.SetupJoinTable(&domain.Product{}, "Orders", &domain.OrderProduct{})
}
