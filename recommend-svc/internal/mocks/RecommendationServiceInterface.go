package mocks

import (
	context "context"

	domain "menurank/recommend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// RecommendationServiceInterface is a mock type for the RecommendationServiceInterface type
type RecommendationServiceInterface struct {
	mock.Mock
}

// AnalyzeTaste provides a mock function with given fields: ctx, favorites
func (_m *RecommendationServiceInterface) AnalyzeTaste(ctx context.Context, favorites []domain.FavoriteDish) (domain.TasteProfile, bool) {
	ret := _m.Called(ctx, favorites)
	return ret.Get(0).(domain.TasteProfile), ret.Bool(1)
}

// Explain provides a mock function with given fields: rec
func (_m *RecommendationServiceInterface) Explain(rec domain.ScoredRecommendation) []domain.Factor {
	ret := _m.Called(rec)

	var r0 []domain.Factor
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Factor)
	}

	return r0
}

// Recommend provides a mock function with given fields: ctx, req
func (_m *RecommendationServiceInterface) Recommend(ctx context.Context, req domain.Request) (*domain.Response, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Response
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Response)
	}

	return r0, ret.Error(1)
}

// NewRecommendationServiceInterface creates a new instance of RecommendationServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRecommendationServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RecommendationServiceInterface {
	m := &RecommendationServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
