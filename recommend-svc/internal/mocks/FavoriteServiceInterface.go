package mocks

import (
	context "context"

	domain "menurank/recommend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// FavoriteServiceInterface is a mock type for the FavoriteServiceInterface type
type FavoriteServiceInterface struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, fav
func (_m *FavoriteServiceInterface) Add(ctx context.Context, fav *domain.FavoriteDish) error {
	ret := _m.Called(ctx, fav)
	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, userID, id
func (_m *FavoriteServiceInterface) Delete(ctx context.Context, userID string, id int) error {
	ret := _m.Called(ctx, userID, id)
	return ret.Error(0)
}

// List provides a mock function with given fields: ctx, userID
func (_m *FavoriteServiceInterface) List(ctx context.Context, userID string) ([]domain.FavoriteDish, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.FavoriteDish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.FavoriteDish)
	}

	return r0, ret.Error(1)
}

// NewFavoriteServiceInterface creates a new instance of FavoriteServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewFavoriteServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *FavoriteServiceInterface {
	m := &FavoriteServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
