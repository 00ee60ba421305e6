package mocks

import (
	context "context"

	domain "menurank/rate-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// RatingCache is a mock type for the RatingCache type
type RatingCache struct {
	mock.Mock
}

// Exists provides a mock function with given fields: ctx, key
func (_m *RatingCache) Exists(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

// RatingMarkerKey provides a mock function with given fields: rating
func (_m *RatingCache) RatingMarkerKey(rating *domain.Rating) string {
	ret := _m.Called(rating)
	return ret.String(0)
}

// SetMarker provides a mock function with given fields: ctx, key
func (_m *RatingCache) SetMarker(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

// NewRatingCache creates a new instance of RatingCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRatingCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingCache {
	m := &RatingCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
