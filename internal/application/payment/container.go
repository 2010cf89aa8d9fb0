package payment

import (
	"context"
	"log"
	"time"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/infrastructure/bank"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/infrastructure/database/repositories"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/infrastructure/idgen"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/infrastructure/sysclock"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/utils/config"
	"gorm.io/gorm"
)

type Container struct {
	PaymentService domain.PaymentService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	store := repositories.NewPaymentRepo(db, cfg.PaymentsTable)
	authority := bank.NewSimulator()
	lifecycle := NewLifecycle(idgen.NewUUIDGenerator(), sysclock.Clock{}, cfg.PaymentTTL)

	go startReaperLoop(store, cfg.CleanupInterval)

	return &Container{
		PaymentService: NewService(store, authority, lifecycle),
	}
}

// startReaperLoop removes expired payments that never settled. Expiry is
// enforced logically at read time; this keeps the table from accumulating
// abandoned records.
func startReaperLoop(store domain.PaymentStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		reaped, err := store.DeleteExpiredUnsettled(context.Background())
		if err != nil {
			log.Printf("reaper error: %v", err)
			continue
		}
		if reaped > 0 {
			log.Printf("reaped %d expired unsettled payments", reaped)
		}
	}
}
