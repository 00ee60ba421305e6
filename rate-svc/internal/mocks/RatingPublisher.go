package mocks

import (
	context "context"

	domain "menurank/rate-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// RatingPublisher is a mock type for the RatingPublisher type
type RatingPublisher struct {
	mock.Mock
}

// PublishRating provides a mock function with given fields: ctx, event
func (_m *RatingPublisher) PublishRating(ctx context.Context, event domain.RatingEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// NewRatingPublisher creates a new instance of RatingPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRatingPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingPublisher {
	m := &RatingPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
