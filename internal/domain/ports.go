package domain

import (
	"context"
	"errors"
	"time"
)

// ErrVersionConflict is returned by PaymentStore.PutIfMatch when the stored
// record no longer carries the expected version and owner. No write happens.
var ErrVersionConflict = errors.New("payment version conflict")

type PaymentStore interface {
	// Get returns nil without error when no record exists.
	Get(ctx context.Context, paymentID string) (*Payment, error)
	// Put is the unconditional creation write; the store assigns version 1.
	Put(ctx context.Context, payment *Payment) error
	// PutIfMatch writes only if the stored record still has the expected
	// version and merchant, bumping the version by exactly 1.
	PutIfMatch(ctx context.Context, payment *Payment, expectedVersion int64, expectedMerchantID string) error
	// DeleteExpiredUnsettled reaps expired Created records. Storage-layer
	// cleanup only; expiry is enforced logically at read time.
	DeleteExpiredUnsettled(ctx context.Context) (int64, error)
}

type SettlementAuthority interface {
	// Decide renders a settlement decision for the candidate record. An
	// error means the outcome is undetermined and must not be persisted.
	Decide(ctx context.Context, candidate *Payment) (PaymentStatus, error)
}

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type PaymentService interface {
	CreatePayment(ctx context.Context, merchantID string) (*CreatePaymentResponse, error)
	SettlePayment(ctx context.Context, req SettlementRequest) (*SettlementOutcome, error)
	GetPayment(ctx context.Context, paymentID, merchantID string) (*PaymentProjection, error)
}
