package mocks

import (
	context "context"

	domain "menurank/recommend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SessionServiceInterface is a mock type for the SessionServiceInterface type
type SessionServiceInterface struct {
	mock.Mock
}

// AddSelection provides a mock function with given fields: ctx, id, sel
func (_m *SessionServiceInterface) AddSelection(ctx context.Context, id string, sel domain.FriendSelection) (*domain.DiningSession, error) {
	ret := _m.Called(ctx, id, sel)

	var r0 *domain.DiningSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DiningSession)
	}

	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, venue, hostName
func (_m *SessionServiceInterface) Create(ctx context.Context, venue domain.Venue, hostName string) (*domain.DiningSession, error) {
	ret := _m.Called(ctx, venue, hostName)

	var r0 *domain.DiningSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DiningSession)
	}

	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *SessionServiceInterface) Get(ctx context.Context, id string) (*domain.DiningSession, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.DiningSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DiningSession)
	}

	return r0, ret.Error(1)
}

// QRCode provides a mock function with given fields: ctx, id
func (_m *SessionServiceInterface) QRCode(ctx context.Context, id string) ([]byte, error) {
	ret := _m.Called(ctx, id)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewSessionServiceInterface creates a new instance of SessionServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSessionServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionServiceInterface {
	m := &SessionServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
