package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"gorm.io/gorm"
)

type PaymentRepo struct {
	db    *gorm.DB
	table string
}

func NewPaymentRepo(db *gorm.DB, table string) domain.PaymentStore {
	return &PaymentRepo{db: db, table: table}
}

func (r *PaymentRepo) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *PaymentRepo) Get(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.conn(ctx).Where("payment_id = ?", paymentID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Put is the unconditional creation write. No record can exist yet for a
// freshly generated payment id, so no condition is needed.
func (r *PaymentRepo) Put(ctx context.Context, payment *domain.Payment) error {
	payment.Version = 1
	return r.conn(ctx).Create(payment).Error
}

// PutIfMatch only lands when the row still carries the observed version and
// owner, bumping the version by exactly 1. The single conditional UPDATE is
// the linearization point for concurrent settlement attempts.
func (r *PaymentRepo) PutIfMatch(ctx context.Context, payment *domain.Payment, expectedVersion int64, expectedMerchantID string) error {
	nextVersion := expectedVersion + 1

	result := r.conn(ctx).
		Where("payment_id = ? AND merchant_id = ? AND version = ?",
			payment.PaymentID, expectedMerchantID, expectedVersion).
		Updates(map[string]any{
			"status":          payment.Status,
			"amount":          payment.Amount,
			"currency":        payment.Currency,
			"card_name":       payment.CardName,
			"card_number":     payment.CardNumber,
			"expiry_month":    payment.ExpiryMonth,
			"expiry_year":     payment.ExpiryYear,
			"billing_address": payment.BillingAddress,
			"version":         nextVersion,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}

	payment.Version = nextVersion
	return nil
}

func (r *PaymentRepo) DeleteExpiredUnsettled(ctx context.Context) (int64, error) {
	result := r.conn(ctx).
		Where("status = ? AND expires_at < ?", domain.StatusCreated, time.Now()).
		Delete(&domain.Payment{})
	return result.RowsAffected, result.Error
}
