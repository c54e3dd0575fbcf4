package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wonderpark/parkpos/internal/core/ports"
)

type PaymentProcessor struct {
	mock.Mock
}

func NewPaymentProcessor(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentProcessor {
	m := &PaymentProcessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentProcessor) Charge(ctx context.Context, req ports.PaymentRequest) (ports.PaymentResult, error) {
	ret := m.Called(ctx, req)

	var r0 ports.PaymentResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(ports.PaymentResult)
	}
	return r0, ret.Error(1)
}
