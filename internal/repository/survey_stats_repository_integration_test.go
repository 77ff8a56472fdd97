package repository_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/repository"
	"github.com/godilite/survey-dashboard/internal/repository/models"
)

func setupTestRepo(t *testing.T) *repository.SurveyStatsRepository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewSurveyStatsRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	require.NoError(t, repo.Seed(context.Background(), dataset.Builtin()))
	return repo
}

func TestSurveyStatsRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	t.Run("GetQuestionMeans", func(t *testing.T) {
		results, err := repo.GetQuestionMeans(ctx)
		require.NoError(t, err)
		// 7 Likert questions plus the 1-10 grade, two cohorts each.
		require.Len(t, results, 16)

		first := results[0]
		require.Equal(t, 1, first.QuestionID)
		require.Equal(t, "G1", first.Cohort)
		require.Equal(t, int64(7), first.Responses)
		require.InDelta(t, 32.0/7.0, first.Mean, 1e-9)

		last := results[len(results)-1]
		require.Equal(t, dataset.Scale10QuestionID, last.QuestionID)
		require.Equal(t, "G2", last.Cohort)
		require.Equal(t, 10, last.Scale)
		require.InDelta(t, 58.0/7.0, last.Mean, 1e-9)
	})

	t.Run("GetFrequencies", func(t *testing.T) {
		rows, err := repo.GetFrequencies(ctx, 3)
		require.NoError(t, err)
		require.Len(t, rows, 10)

		counts := map[string]map[int]int64{}
		for _, r := range rows {
			if counts[r.Cohort] == nil {
				counts[r.Cohort] = map[int]int64{}
			}
			counts[r.Cohort][r.Score] = r.Count
		}
		require.Equal(t, int64(2), counts["G1"][2])
		require.Equal(t, int64(3), counts["G1"][5])
		require.Equal(t, int64(2), counts["G2"][3])
	})

	t.Run("GetFrequencies unknown question", func(t *testing.T) {
		rows, err := repo.GetFrequencies(ctx, 99)
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("GetQuestion", func(t *testing.T) {
		q, err := repo.GetQuestion(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, 5, q.Scale)

		_, err = repo.GetQuestion(ctx, 99)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("GetSegmentTotals", func(t *testing.T) {
		totals, err := repo.GetSegmentTotals(ctx, dataset.Scale10QuestionID)
		require.NoError(t, err)
		require.Equal(t, int64(9), totals.Promoters)
		require.Equal(t, int64(5), totals.Passives)
		require.Equal(t, int64(0), totals.Detractors)
	})

	t.Run("Seed is repeatable", func(t *testing.T) {
		require.NoError(t, repo.Seed(ctx, dataset.Builtin()))
		results, err := repo.GetQuestionMeans(ctx)
		require.NoError(t, err)
		require.Len(t, results, 16)
	})
}
