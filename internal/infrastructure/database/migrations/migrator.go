package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	ID      string
	Migrate func(tx *gorm.DB, table string) error
}

type MigrationRecord struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	MigrationID string `gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

var registry []Migration

func Register(m Migration) {
	registry = append(registry, m)
}

// Run applies every registered migration that has not run yet. The payments
// table name comes from configuration, so it is threaded through here.
func Run(db *gorm.DB, table string) error {
	db.AutoMigrate(&MigrationRecord{})

	for _, m := range registry {
		var count int64
		db.Model(&MigrationRecord{}).Where("migration_id = ?", m.ID).Count(&count)
		if count > 0 {
			continue
		}

		log.Printf("running migration: %s", m.ID)
		if err := m.Migrate(db, table); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.ID, err)
		}

		db.Create(&MigrationRecord{MigrationID: m.ID})
		log.Printf("completed migration: %s", m.ID)
	}
	return nil
}
