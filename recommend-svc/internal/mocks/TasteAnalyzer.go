package mocks

import (
	context "context"

	domain "menurank/recommend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// TasteAnalyzer is a mock type for the TasteAnalyzer type
type TasteAnalyzer struct {
	mock.Mock
}

// BuildTasteProfile provides a mock function with given fields: ctx, dishNames
func (_m *TasteAnalyzer) BuildTasteProfile(ctx context.Context, dishNames []string) (domain.TasteProfile, error) {
	ret := _m.Called(ctx, dishNames)

	var r0 domain.TasteProfile
	if rf, ok := ret.Get(0).(func(context.Context, []string) domain.TasteProfile); ok {
		r0 = rf(ctx, dishNames)
	} else {
		r0 = ret.Get(0).(domain.TasteProfile)
	}

	return r0, ret.Error(1)
}

// PredictCompatibility provides a mock function with given fields: ctx, dishNames, profile, candidates
func (_m *TasteAnalyzer) PredictCompatibility(ctx context.Context, dishNames []string, profile domain.TasteProfile, candidates []domain.MenuItemCandidate) (map[string]domain.Prediction, error) {
	ret := _m.Called(ctx, dishNames, profile, candidates)

	var r0 map[string]domain.Prediction
	if rf, ok := ret.Get(0).(func(context.Context, []string, domain.TasteProfile, []domain.MenuItemCandidate) map[string]domain.Prediction); ok {
		r0 = rf(ctx, dishNames, profile, candidates)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]domain.Prediction)
	}

	return r0, ret.Error(1)
}

// NewTasteAnalyzer creates a new instance of TasteAnalyzer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTasteAnalyzer(t interface {
	mock.TestingT
	Cleanup(func())
}) *TasteAnalyzer {
	m := &TasteAnalyzer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
