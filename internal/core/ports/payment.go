package ports

import "context"

type PaymentRequest struct {
	CardNumber     string
	CardholderName string
	CVV            string
	Amount         float64
}

type PaymentResult struct {
	Accepted  bool
	Amount    float64
	Reference string
}

// PaymentProcessor is the external payment collaborator. The core only needs
// the accepted flag and the amount charged; card validation is not its job.
type PaymentProcessor interface {
	Charge(ctx context.Context, req PaymentRequest) (PaymentResult, error)
}
