package domain

import (
	"fmt"
	"net/http"
	"strings"
)

type AppError struct {
	Code     string   `json:"code"`
	Messages []string `json:"messages"`
	HTTPCode int      `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Messages, "; "))
}

func ErrMalformedInput(reasons []string) *AppError {
	return &AppError{
		Code:     "MALFORMED_INPUT",
		Messages: reasons,
		HTTPCode: http.StatusBadRequest,
	}
}

// ErrSettlementUndetermined covers an unreachable settlement authority. The
// payment keeps its stored state; no guessed outcome is persisted.
func ErrSettlementUndetermined(paymentID string) *AppError {
	return &AppError{
		Code:     "SETTLEMENT_UNDETERMINED",
		Messages: []string{fmt.Sprintf("settlement outcome for payment '%s' could not be determined, retry later", paymentID)},
		HTTPCode: http.StatusBadGateway,
	}
}

func ErrInternal(msg string) *AppError {
	return &AppError{
		Code:     "INTERNAL_ERROR",
		Messages: []string{msg},
		HTTPCode: http.StatusInternalServerError,
	}
}
