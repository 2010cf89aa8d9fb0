package migrations

import (
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"gorm.io/gorm"
)

func init() {
	Register(Migration{
		ID: "001_create_merchant_payments",
		Migrate: func(tx *gorm.DB, table string) error {
			return tx.Table(table).AutoMigrate(&domain.Payment{})
		},
	})
}
