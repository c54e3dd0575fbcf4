package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

type OrderStore struct {
	mock.Mock
}

func NewOrderStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderStore {
	m := &OrderStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderStore) Load(ctx context.Context) (map[string]domain.OrderRecord, error) {
	ret := m.Called(ctx)

	var r0 map[string]domain.OrderRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]domain.OrderRecord)
	}
	return r0, ret.Error(1)
}

func (m *OrderStore) Save(ctx context.Context, orders map[string]domain.OrderRecord) error {
	return m.Called(ctx, orders).Error(0)
}
