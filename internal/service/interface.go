package service

import (
	"context"

	"github.com/godilite/survey-dashboard/internal/repository/models"
)

// SurveyStatsRepository defines the database operations the stats service needs.
type SurveyStatsRepository interface {
	GetQuestionMeans(ctx context.Context) ([]models.QuestionCohortMean, error)
	GetQuestion(ctx context.Context, questionID int) (models.QuestionInfo, error)
	GetFrequencies(ctx context.Context, questionID int) ([]models.FrequencyRow, error)
	GetSegmentTotals(ctx context.Context, questionID int) (models.SegmentTotals, error)
}
