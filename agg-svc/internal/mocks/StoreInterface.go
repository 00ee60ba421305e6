package mocks

import (
	context "context"

	domain "menurank/agg-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

// InvalidateMenu provides a mock function with given fields: ctx, restaurantRef
func (_m *StoreInterface) InvalidateMenu(ctx context.Context, restaurantRef string) error {
	ret := _m.Called(ctx, restaurantRef)
	return ret.Error(0)
}

// PromoteFavorite provides a mock function with given fields: ctx, userID, dishName, restaurantRef
func (_m *StoreInterface) PromoteFavorite(ctx context.Context, userID string, dishName string, restaurantRef string) error {
	ret := _m.Called(ctx, userID, dishName, restaurantRef)
	return ret.Error(0)
}

// RefreshDishStats provides a mock function with given fields: ctx, restaurantRef, dishName
func (_m *StoreInterface) RefreshDishStats(ctx context.Context, restaurantRef string, dishName string) (domain.DishStats, error) {
	ret := _m.Called(ctx, restaurantRef, dishName)
	return ret.Get(0).(domain.DishStats), ret.Error(1)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
