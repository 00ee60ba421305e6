package mocks

import (
	context "context"

	domain "menurank/rate-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// RatingRepository is a mock type for the RatingRepository type
type RatingRepository struct {
	mock.Mock
}

// DishOnMenu provides a mock function with given fields: ctx, restaurantRef, dishName
func (_m *RatingRepository) DishOnMenu(ctx context.Context, restaurantRef string, dishName string) (bool, error) {
	ret := _m.Called(ctx, restaurantRef, dishName)
	return ret.Bool(0), ret.Error(1)
}

// GetExistingRatingID provides a mock function with given fields: ctx, rating
func (_m *RatingRepository) GetExistingRatingID(ctx context.Context, rating *domain.Rating) (int, error) {
	ret := _m.Called(ctx, rating)
	return ret.Int(0), ret.Error(1)
}

// InsertRating provides a mock function with given fields: ctx, rating
func (_m *RatingRepository) InsertRating(ctx context.Context, rating *domain.Rating) error {
	ret := _m.Called(ctx, rating)
	return ret.Error(0)
}

// ListDishRatings provides a mock function with given fields: ctx, restaurantRef, dishName
func (_m *RatingRepository) ListDishRatings(ctx context.Context, restaurantRef string, dishName string) ([]domain.Rating, error) {
	ret := _m.Called(ctx, restaurantRef, dishName)

	var r0 []domain.Rating
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Rating)
	}

	return r0, ret.Error(1)
}

// RatingDistribution provides a mock function with given fields: ctx, restaurantRef
func (_m *RatingRepository) RatingDistribution(ctx context.Context, restaurantRef string) (map[string]int, error) {
	ret := _m.Called(ctx, restaurantRef)

	var r0 map[string]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int)
	}

	return r0, ret.Error(1)
}

// UpdateRating provides a mock function with given fields: ctx, id, rating
func (_m *RatingRepository) UpdateRating(ctx context.Context, id int, rating *domain.Rating) error {
	ret := _m.Called(ctx, id, rating)
	return ret.Error(0)
}

// NewRatingRepository creates a new instance of RatingRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRatingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingRepository {
	m := &RatingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
