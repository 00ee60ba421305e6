package mocks

import (
	context "context"

	domain "menurank/menu-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// MenuServiceInterface is a mock type for the MenuServiceInterface type
type MenuServiceInterface struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, item
func (_m *MenuServiceInterface) Create(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, restaurantRef, id
func (_m *MenuServiceInterface) Delete(ctx context.Context, restaurantRef string, id int) error {
	ret := _m.Called(ctx, restaurantRef, id)
	return ret.Error(0)
}

// Get provides a mock function with given fields: ctx, restaurantRef, id
func (_m *MenuServiceInterface) Get(ctx context.Context, restaurantRef string, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantRef, id)

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// Import provides a mock function with given fields: ctx, restaurantRef, items
func (_m *MenuServiceInterface) Import(ctx context.Context, restaurantRef string, items []domain.MenuItem) (int, error) {
	ret := _m.Called(ctx, restaurantRef, items)
	return ret.Int(0), ret.Error(1)
}

// List provides a mock function with given fields: ctx, restaurantRef
func (_m *MenuServiceInterface) List(ctx context.Context, restaurantRef string) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantRef)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, item
func (_m *MenuServiceInterface) Update(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

// NewMenuServiceInterface creates a new instance of MenuServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
