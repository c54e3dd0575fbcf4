// Package payment holds the stand-in payment collaborator. It accepts any
// charge whose card fields are filled in and issues a reference id; there is
// no gateway behind it.
package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/wonderpark/parkpos/internal/core/domain"
	"github.com/wonderpark/parkpos/internal/core/ports"
)

type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) Charge(ctx context.Context, req ports.PaymentRequest) (ports.PaymentResult, error) {
	if req.CardNumber == "" || req.CardholderName == "" || req.CVV == "" {
		return ports.PaymentResult{}, domain.ErrMissingField
	}

	return ports.PaymentResult{
		Accepted:  true,
		Amount:    req.Amount,
		Reference: uuid.NewString(),
	}, nil
}
