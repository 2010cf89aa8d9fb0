package database

import (
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/infrastructure/database/migrations"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB, table string) error {
	return migrations.Run(db, table)
}
