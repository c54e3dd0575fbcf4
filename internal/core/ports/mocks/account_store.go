package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

type AccountStore struct {
	mock.Mock
}

func NewAccountStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountStore {
	m := &AccountStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountStore) Load(ctx context.Context) (map[string]domain.AccountRecord, error) {
	ret := m.Called(ctx)

	var r0 map[string]domain.AccountRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]domain.AccountRecord)
	}
	return r0, ret.Error(1)
}

func (m *AccountStore) Save(ctx context.Context, accounts map[string]domain.AccountRecord) error {
	return m.Called(ctx, accounts).Error(0)
}
