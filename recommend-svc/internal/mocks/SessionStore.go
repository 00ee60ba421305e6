package mocks

import (
	context "context"

	domain "menurank/recommend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SessionStore is a mock type for the SessionStore type
type SessionStore struct {
	mock.Mock
}

// AddSelection provides a mock function with given fields: ctx, id, sel
func (_m *SessionStore) AddSelection(ctx context.Context, id string, sel domain.FriendSelection) (*domain.DiningSession, error) {
	ret := _m.Called(ctx, id, sel)

	var r0 *domain.DiningSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DiningSession)
	}

	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *SessionStore) Get(ctx context.Context, id string) (*domain.DiningSession, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.DiningSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DiningSession)
	}

	return r0, ret.Error(1)
}

// Save provides a mock function with given fields: ctx, session
func (_m *SessionStore) Save(ctx context.Context, session *domain.DiningSession) error {
	ret := _m.Called(ctx, session)
	return ret.Error(0)
}

// NewSessionStore creates a new instance of SessionStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
