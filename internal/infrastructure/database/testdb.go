package database

import (
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestConnection opens an in-memory sqlite database with the payments
// table migrated under the given name.
func NewTestConnection(table string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.Table(table).AutoMigrate(&domain.Payment{}); err != nil {
		return nil, err
	}
	return db, nil
}
