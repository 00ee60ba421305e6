package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MenuCache is a mock type for the MenuCache type
type MenuCache struct {
	mock.Mock
}

// Invalidate provides a mock function with given fields: ctx, restaurantRef
func (_m *MenuCache) Invalidate(ctx context.Context, restaurantRef string) error {
	ret := _m.Called(ctx, restaurantRef)
	return ret.Error(0)
}

// NewMenuCache creates a new instance of MenuCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
