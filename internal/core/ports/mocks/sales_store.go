package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SalesStore struct {
	mock.Mock
}

func NewSalesStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SalesStore {
	m := &SalesStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SalesStore) Load(ctx context.Context) (map[string]map[string]int, error) {
	ret := m.Called(ctx)

	var r0 map[string]map[string]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]map[string]int)
	}
	return r0, ret.Error(1)
}

func (m *SalesStore) Save(ctx context.Context, sales map[string]map[string]int) error {
	return m.Called(ctx, sales).Error(0)
}
