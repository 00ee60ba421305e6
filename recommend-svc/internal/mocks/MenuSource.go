package mocks

import (
	context "context"

	domain "menurank/recommend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// MenuSource is a mock type for the MenuSource type
type MenuSource struct {
	mock.Mock
}

// ListMenuItems provides a mock function with given fields: ctx, venue
func (_m *MenuSource) ListMenuItems(ctx context.Context, venue domain.Venue) ([]domain.MenuItemCandidate, error) {
	ret := _m.Called(ctx, venue)

	var r0 []domain.MenuItemCandidate
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItemCandidate)
	}

	return r0, ret.Error(1)
}

// NewMenuSource creates a new instance of MenuSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuSource {
	m := &MenuSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
