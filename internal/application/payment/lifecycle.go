package payment

import (
	"time"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
)

// Lifecycle owns payment construction and eligibility rules.
type Lifecycle struct {
	ids   domain.IDGenerator
	clock domain.Clock
	ttl   time.Duration
}

func NewLifecycle(ids domain.IDGenerator, clock domain.Clock, ttl time.Duration) *Lifecycle {
	return &Lifecycle{ids: ids, clock: clock, ttl: ttl}
}

// NewPayment builds a fresh payment shell with a unique id and a fixed
// expiry window. The version is assigned by the store on the first write.
func (l *Lifecycle) NewPayment(merchantID string) *domain.Payment {
	now := l.clock.Now()
	return &domain.Payment{
		PaymentID:  l.ids.NewID(),
		MerchantID: merchantID,
		Status:     domain.StatusCreated,
		CreatedAt:  now,
		ExpiresAt:  now.Add(l.ttl),
	}
}

// ExpiredOrMissing gates settlement: an absent payment, or one strictly past
// its expiry window, can no longer be settled.
func (l *Lifecycle) ExpiredOrMissing(p *domain.Payment) bool {
	return p == nil || p.Expired(l.clock.Now())
}

// Gone gates viewing: expiry only hides payments that never settled. A
// settled payment's expiry is irrelevant once it has left Created.
func (l *Lifecycle) Gone(p *domain.Payment) bool {
	return p == nil || (!p.Settled() && p.Expired(l.clock.Now()))
}
