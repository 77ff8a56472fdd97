package mocks

import (
	"context"
	"errors"

	"github.com/godilite/survey-dashboard/internal/repository/models"
)

// MockSurveyStatsRepository is a mock implementation of the SurveyStatsRepository
// interface for testing the service layer.
type MockSurveyStatsRepository struct {
	GetQuestionMeansFunc func(ctx context.Context) ([]models.QuestionCohortMean, error)
	GetQuestionFunc      func(ctx context.Context, questionID int) (models.QuestionInfo, error)
	GetFrequenciesFunc   func(ctx context.Context, questionID int) ([]models.FrequencyRow, error)
	GetSegmentTotalsFunc func(ctx context.Context, questionID int) (models.SegmentTotals, error)
}

// GetQuestionMeans implements the SurveyStatsRepository interface
func (m *MockSurveyStatsRepository) GetQuestionMeans(ctx context.Context) ([]models.QuestionCohortMean, error) {
	if m.GetQuestionMeansFunc != nil {
		return m.GetQuestionMeansFunc(ctx)
	}
	return nil, errors.New("GetQuestionMeansFunc not implemented")
}

// GetQuestion implements the SurveyStatsRepository interface
func (m *MockSurveyStatsRepository) GetQuestion(ctx context.Context, questionID int) (models.QuestionInfo, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, questionID)
	}
	return models.QuestionInfo{}, errors.New("GetQuestionFunc not implemented")
}

// GetFrequencies implements the SurveyStatsRepository interface
func (m *MockSurveyStatsRepository) GetFrequencies(ctx context.Context, questionID int) ([]models.FrequencyRow, error) {
	if m.GetFrequenciesFunc != nil {
		return m.GetFrequenciesFunc(ctx, questionID)
	}
	return nil, errors.New("GetFrequenciesFunc not implemented")
}

// GetSegmentTotals implements the SurveyStatsRepository interface
func (m *MockSurveyStatsRepository) GetSegmentTotals(ctx context.Context, questionID int) (models.SegmentTotals, error) {
	if m.GetSegmentTotalsFunc != nil {
		return m.GetSegmentTotalsFunc(ctx, questionID)
	}
	return models.SegmentTotals{}, errors.New("GetSegmentTotalsFunc not implemented")
}
