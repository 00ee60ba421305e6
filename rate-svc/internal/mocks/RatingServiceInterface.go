package mocks

import (
	context "context"

	domain "menurank/rate-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// RatingServiceInterface is a mock type for the RatingServiceInterface type
type RatingServiceInterface struct {
	mock.Mock
}

// CreateOrUpdate provides a mock function with given fields: ctx, rating
func (_m *RatingServiceInterface) CreateOrUpdate(ctx context.Context, rating *domain.Rating) error {
	ret := _m.Called(ctx, rating)
	return ret.Error(0)
}

// Distribution provides a mock function with given fields: ctx, restaurantRef
func (_m *RatingServiceInterface) Distribution(ctx context.Context, restaurantRef string) (map[string]int, error) {
	ret := _m.Called(ctx, restaurantRef)

	var r0 map[string]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int)
	}

	return r0, ret.Error(1)
}

// ListDishRatings provides a mock function with given fields: ctx, restaurantRef, dishName
func (_m *RatingServiceInterface) ListDishRatings(ctx context.Context, restaurantRef string, dishName string) ([]domain.Rating, error) {
	ret := _m.Called(ctx, restaurantRef, dishName)

	var r0 []domain.Rating
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Rating)
	}

	return r0, ret.Error(1)
}

// NewRatingServiceInterface creates a new instance of RatingServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRatingServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingServiceInterface {
	m := &RatingServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
