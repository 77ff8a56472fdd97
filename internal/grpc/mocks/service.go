package mocks

import (
	"context"
	"errors"

	"github.com/godilite/survey-dashboard/internal/service"
)

// MockStatsService is a mock implementation of the StatsService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockStatsService struct {
	GetQuestionMeansFunc func(ctx context.Context) ([]service.QuestionMean, error)
	GetCrossTabFunc      func(ctx context.Context, questionID int) (service.CrossTab, error)
	GetNetPromoterFunc   func(ctx context.Context) (service.NetPromoter, error)
	GetSummaryFunc       func(ctx context.Context) (service.Summary, error)
}

func (m *MockStatsService) GetQuestionMeans(ctx context.Context) ([]service.QuestionMean, error) {
	if m.GetQuestionMeansFunc != nil {
		return m.GetQuestionMeansFunc(ctx)
	}
	return nil, errors.New("GetQuestionMeansFunc not implemented")
}

func (m *MockStatsService) GetCrossTab(ctx context.Context, questionID int) (service.CrossTab, error) {
	if m.GetCrossTabFunc != nil {
		return m.GetCrossTabFunc(ctx, questionID)
	}
	return service.CrossTab{}, errors.New("GetCrossTabFunc not implemented")
}

func (m *MockStatsService) GetNetPromoter(ctx context.Context) (service.NetPromoter, error) {
	if m.GetNetPromoterFunc != nil {
		return m.GetNetPromoterFunc(ctx)
	}
	return service.NetPromoter{}, errors.New("GetNetPromoterFunc not implemented")
}

func (m *MockStatsService) GetSummary(ctx context.Context) (service.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx)
	}
	return service.Summary{}, errors.New("GetSummaryFunc not implemented")
}
