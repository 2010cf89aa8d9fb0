package idgen

import (
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"github.com/google/uuid"
)

type UUIDGenerator struct{}

func NewUUIDGenerator() domain.IDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
