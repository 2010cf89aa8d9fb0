package domain

import "time"

type PaymentStatus string

// Persisted statuses. Created is the only pre-settlement state; Accepted,
// Declined and InsufficientFunds are terminal.
const (
	StatusCreated           PaymentStatus = "Created"
	StatusPending           PaymentStatus = "Pending"
	StatusAccepted          PaymentStatus = "Accepted"
	StatusDeclined          PaymentStatus = "Declined"
	StatusInsufficientFunds PaymentStatus = "InsufficientFunds"
)

// Synthetic outcomes. Returned to callers, never written to the store.
const (
	StatusNotFound      PaymentStatus = "NotFound"
	StatusNotAuthorised PaymentStatus = "NotAuthorised"
)

// Terminal reports whether no further settlement-driven transition can
// happen. Pending is not terminal: a later attempt re-settles it.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case StatusAccepted, StatusDeclined, StatusInsufficientFunds:
		return true
	default:
		return false
	}
}

// Payment is the stored merchant payment record. Settlement detail fields
// stay unset until the first settlement attempt and are never overwritten
// afterwards. Version is the optimistic-concurrency token, bumped by the
// store on every successful write.
type Payment struct {
	PaymentID      string        `json:"payment_id" gorm:"primaryKey;type:varchar(36)"`
	MerchantID     string        `json:"merchant_id" gorm:"type:varchar(100);not null"`
	Status         PaymentStatus `json:"status" gorm:"type:varchar(20);not null"`
	Amount         *int64        `json:"amount,omitempty"`
	Currency       string        `json:"currency,omitempty" gorm:"type:varchar(3)"`
	CardName       string        `json:"card_name,omitempty" gorm:"type:varchar(100)"`
	CardNumber     string        `json:"card_number,omitempty" gorm:"type:varchar(19)"`
	ExpiryMonth    *int          `json:"expiry_month,omitempty"`
	ExpiryYear     *int          `json:"expiry_year,omitempty"`
	BillingAddress string        `json:"billing_address,omitempty" gorm:"type:text"`
	CreatedAt      time.Time     `json:"creation_timestamp" gorm:"not null"`
	ExpiresAt      time.Time     `json:"-" gorm:"index;not null"`
	Version        int64         `json:"-" gorm:"not null"`
}

func (Payment) TableName() string {
	return "merchant_payments"
}

// Settled reports whether the payment has left Created. Pending counts as
// settled for field visibility, even though it can still transition.
func (p *Payment) Settled() bool {
	return p.Status != StatusCreated
}

func (p *Payment) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && p.ExpiresAt.Before(now)
}

type CreatePaymentRequest struct {
	MerchantID string `json:"merchant_id"`
}

type CreatePaymentResponse struct {
	PaymentID         string        `json:"payment_id"`
	Status            PaymentStatus `json:"status"`
	CreationTimestamp time.Time     `json:"creation_timestamp"`
}

// SettlementRequest carries one settlement attempt. Amount is in minor
// units of the currency.
type SettlementRequest struct {
	PaymentID      string `json:"payment_id"`
	MerchantID     string `json:"merchant_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	CardName       string `json:"card_name"`
	CardNumber     string `json:"card_number"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	BillingAddress string `json:"billing_address"`
}

// SettlementOutcome is what a settlement attempt tells the caller. Business
// failures (404/401) travel in FailCode/FailReason, never as errors.
type SettlementOutcome struct {
	Status     PaymentStatus `json:"status"`
	FailCode   int           `json:"fail_code,omitempty"`
	FailReason string        `json:"fail_reason,omitempty"`
}

// PaymentProjection is the merchant-facing read view. Settlement details
// appear only once the payment has settled, with the card number masked.
type PaymentProjection struct {
	Status            PaymentStatus `json:"status,omitempty"`
	CreationTimestamp *time.Time    `json:"creation_timestamp,omitempty"`
	Amount            *int64        `json:"amount,omitempty"`
	Currency          string        `json:"currency,omitempty"`
	CardName          string        `json:"card_name,omitempty"`
	CardNumber        string        `json:"card_number,omitempty"`
	ExpiryMonth       *int          `json:"expiry_month,omitempty"`
	ExpiryYear        *int          `json:"expiry_year,omitempty"`
	BillingAddress    string        `json:"billing_address,omitempty"`
	FailCode          int           `json:"fail_code,omitempty"`
	FailReason        string        `json:"fail_reason,omitempty"`
}
