package bank

import (
	"context"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
)

// Simulator stands in for the acquiring bank. Decisions are deterministic
// by amount so every outcome can be exercised end to end without a real
// bank connection.
type Simulator struct{}

func NewSimulator() domain.SettlementAuthority {
	return &Simulator{}
}

func (s *Simulator) Decide(_ context.Context, candidate *domain.Payment) (domain.PaymentStatus, error) {
	var amount int64
	if candidate.Amount != nil {
		amount = *candidate.Amount
	}

	switch amount {
	case 1:
		return domain.StatusDeclined, nil
	case 2:
		return domain.StatusInsufficientFunds, nil
	case 24:
		// A repeat attempt on an already pending payment settles it.
		if candidate.Status == domain.StatusPending {
			return domain.StatusAccepted, nil
		}
		return domain.StatusPending, nil
	default:
		return domain.StatusAccepted, nil
	}
}
