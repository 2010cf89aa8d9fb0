package payment

import (
	"context"
	"errors"
	"log"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/utils/mask"
)

const (
	reasonExpiredOrNotFound = "PaymentId is expired or not found"
	reasonNotAuthorised     = "This merchant doesn't have access to this payment"
)

type service struct {
	store     domain.PaymentStore
	authority domain.SettlementAuthority
	lifecycle *Lifecycle
}

func NewService(store domain.PaymentStore, authority domain.SettlementAuthority, lifecycle *Lifecycle) domain.PaymentService {
	return &service{
		store:     store,
		authority: authority,
		lifecycle: lifecycle,
	}
}

func (s *service) CreatePayment(ctx context.Context, merchantID string) (*domain.CreatePaymentResponse, error) {
	p := s.lifecycle.NewPayment(merchantID)

	if err := s.store.Put(ctx, p); err != nil {
		log.Printf("failed saving new payment %s: %v", p.PaymentID, err)
		return nil, domain.ErrInternal("failed to save payment")
	}

	return &domain.CreatePaymentResponse{
		PaymentID:         p.PaymentID,
		Status:            p.Status,
		CreationTimestamp: p.CreatedAt,
	}, nil
}

// SettlePayment executes exactly one logical settlement attempt. The
// authority is invoked at most once per call, and the outcome lands through
// a conditional write keyed on the version observed at load time.
func (s *service) SettlePayment(ctx context.Context, req domain.SettlementRequest) (*domain.SettlementOutcome, error) {
	existing, err := s.store.Get(ctx, req.PaymentID)
	if err != nil {
		log.Printf("failed loading payment %s: %v", req.PaymentID, err)
		return nil, domain.ErrInternal("failed to load payment")
	}

	if s.lifecycle.ExpiredOrMissing(existing) {
		return &domain.SettlementOutcome{
			Status:     domain.StatusNotFound,
			FailCode:   404,
			FailReason: reasonExpiredOrNotFound,
		}, nil
	}

	if existing.MerchantID != req.MerchantID {
		return &domain.SettlementOutcome{
			Status:     domain.StatusNotAuthorised,
			FailCode:   401,
			FailReason: reasonNotAuthorised,
		}, nil
	}

	// Terminal payments are echoed back with no write and no authority
	// call. Pending is not terminal: a later attempt re-submits the stored
	// record as a brand-new attempt, which is how a pending payment
	// converges to its final status.
	if existing.Status.Terminal() {
		return &domain.SettlementOutcome{Status: existing.Status}, nil
	}

	candidate := buildCandidate(existing, req)

	status, err := s.authority.Decide(ctx, candidate)
	if err != nil {
		log.Printf("settlement authority unavailable for payment %s: %v", req.PaymentID, err)
		return nil, domain.ErrSettlementUndetermined(req.PaymentID)
	}
	candidate.Status = status

	if err := s.store.PutIfMatch(ctx, candidate, existing.Version, existing.MerchantID); err != nil {
		// The authority has already rendered its decision and it cannot be
		// un-rendered. A lost write leaves the store behind what the caller
		// is told; that divergence is logged, never surfaced as an error.
		if errors.Is(err, domain.ErrVersionConflict) {
			log.Printf("conditional write lost for payment %s at version %d", req.PaymentID, existing.Version)
		} else {
			log.Printf("failed saving settlement for payment %s: %v", req.PaymentID, err)
		}
	}

	return &domain.SettlementOutcome{Status: status}, nil
}

func (s *service) GetPayment(ctx context.Context, paymentID, merchantID string) (*domain.PaymentProjection, error) {
	p, err := s.store.Get(ctx, paymentID)
	if err != nil {
		log.Printf("failed loading payment %s: %v", paymentID, err)
		return nil, domain.ErrInternal("failed to load payment")
	}

	if s.lifecycle.Gone(p) {
		return &domain.PaymentProjection{
			FailCode:   404,
			FailReason: reasonExpiredOrNotFound,
		}, nil
	}

	if p.MerchantID != merchantID {
		return &domain.PaymentProjection{
			FailCode:   401,
			FailReason: reasonNotAuthorised,
		}, nil
	}

	proj := &domain.PaymentProjection{
		Status:            p.Status,
		CreationTimestamp: &p.CreatedAt,
	}

	if p.Settled() {
		proj.Amount = p.Amount
		proj.Currency = p.Currency
		proj.CardName = p.CardName
		proj.CardNumber = mask.Card(p.CardNumber)
		proj.ExpiryMonth = p.ExpiryMonth
		proj.ExpiryYear = p.ExpiryYear
		proj.BillingAddress = p.BillingAddress
	}

	return proj, nil
}

// buildCandidate merges the attempt into the stored record. Settlement
// details are written exactly once, at the first transition out of Created;
// a retry of a pending payment keeps the stored details untouched.
func buildCandidate(existing *domain.Payment, req domain.SettlementRequest) *domain.Payment {
	candidate := *existing
	if existing.Status == domain.StatusCreated {
		candidate.Amount = &req.Amount
		candidate.Currency = req.Currency
		candidate.CardName = req.CardName
		candidate.CardNumber = req.CardNumber
		candidate.ExpiryMonth = &req.ExpiryMonth
		candidate.ExpiryYear = &req.ExpiryYear
		candidate.BillingAddress = req.BillingAddress
	}
	return &candidate
}
