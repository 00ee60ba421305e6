package mocks

import (
	context "context"

	domain "menurank/menu-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// MenuRepository is a mock type for the MenuRepository type
type MenuRepository struct {
	mock.Mock
}

// CreateMenuItem provides a mock function with given fields: ctx, item
func (_m *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

// DeleteMenuItem provides a mock function with given fields: ctx, restaurantRef, id
func (_m *MenuRepository) DeleteMenuItem(ctx context.Context, restaurantRef string, id int) (int64, error) {
	ret := _m.Called(ctx, restaurantRef, id)
	return ret.Get(0).(int64), ret.Error(1)
}

// GetMenuItem provides a mock function with given fields: ctx, restaurantRef, id
func (_m *MenuRepository) GetMenuItem(ctx context.Context, restaurantRef string, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantRef, id)

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// ListMenuItems provides a mock function with given fields: ctx, restaurantRef
func (_m *MenuRepository) ListMenuItems(ctx context.Context, restaurantRef string) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantRef)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// UpdateMenuItem provides a mock function with given fields: ctx, item
func (_m *MenuRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

// UpsertMenuItems provides a mock function with given fields: ctx, restaurantRef, items
func (_m *MenuRepository) UpsertMenuItems(ctx context.Context, restaurantRef string, items []domain.MenuItem) error {
	ret := _m.Called(ctx, restaurantRef, items)
	return ret.Error(0)
}

// NewMenuRepository creates a new instance of MenuRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
