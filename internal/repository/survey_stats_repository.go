package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/repository/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		scale INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS answer_counts (
		question_id INTEGER NOT NULL,
		cohort TEXT NOT NULL,
		score INTEGER NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (question_id, cohort, score),
		FOREIGN KEY (question_id) REFERENCES questions(id)
	);
`

type SurveyStatsRepository struct {
	db *sql.DB
}

func NewSurveyStatsRepository(db *sql.DB) *SurveyStatsRepository {
	return &SurveyStatsRepository{db: db}
}

// Migrate creates the tables if they do not exist.
func (s *SurveyStatsRepository) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Seed loads every question of ds, replacing what was stored before.
func (s *SurveyStatsRepository) Seed(ctx context.Context, ds *dataset.Dataset) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM answer_counts; DELETE FROM questions;`); err != nil {
		return fmt.Errorf("seed clear: %w", err)
	}

	for _, q := range ds.AllQuestions() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO questions (id, title, scale) VALUES (?, ?, ?)`,
			q.ID, q.Title, q.Scale); err != nil {
			return fmt.Errorf("seed question %d: %w", q.ID, err)
		}
		for _, c := range dataset.Cohorts() {
			dist := q.For(c)
			for _, p := range dist.Points() {
				if _, err = tx.ExecContext(ctx,
					`INSERT INTO answer_counts (question_id, cohort, score, count) VALUES (?, ?, ?, ?)`,
					q.ID, string(c), p, dist[p]); err != nil {
					return fmt.Errorf("seed answers %d/%s: %w", q.ID, c, err)
				}
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}
	return nil
}

// GetQuestionMeans computes the mean answer per question and cohort in SQL.
func (s *SurveyStatsRepository) GetQuestionMeans(ctx context.Context) ([]models.QuestionCohortMean, error) {
	const query = `
		SELECT
			q.id,
			q.title,
			q.scale,
			a.cohort,
			CASE
				WHEN SUM(a.count) > 0
				THEN SUM(CAST(a.score AS REAL) * a.count) / SUM(a.count)
				ELSE 0
			END AS mean,
			SUM(a.count) AS responses
		FROM questions AS q
		JOIN answer_counts AS a ON a.question_id = q.id
		GROUP BY q.id, a.cohort
		ORDER BY q.id, a.cohort
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query GetQuestionMeans: %w", err)
	}
	defer rows.Close()

	var results []models.QuestionCohortMean
	for rows.Next() {
		var r models.QuestionCohortMean
		if err := rows.Scan(&r.QuestionID, &r.Title, &r.Scale, &r.Cohort, &r.Mean, &r.Responses); err != nil {
			return nil, fmt.Errorf("scan GetQuestionMeans row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetQuestionMeans: %w", err)
	}
	return results, nil
}

// GetQuestion returns the stored header of one question.
func (s *SurveyStatsRepository) GetQuestion(ctx context.Context, questionID int) (models.QuestionInfo, error) {
	const query = `SELECT id, title, scale FROM questions WHERE id = ?`

	var q models.QuestionInfo
	err := s.db.QueryRowContext(ctx, query, questionID).Scan(&q.ID, &q.Title, &q.Scale)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuestionInfo{}, fmt.Errorf("question %d: %w", questionID, models.ErrNotFound)
		}
		return models.QuestionInfo{}, fmt.Errorf("query GetQuestion: %w", err)
	}
	return q, nil
}

// GetFrequencies returns the stored answer counts of one question by score and cohort.
func (s *SurveyStatsRepository) GetFrequencies(ctx context.Context, questionID int) ([]models.FrequencyRow, error) {
	const query = `
		SELECT score, cohort, SUM(count)
		FROM answer_counts
		WHERE question_id = ?
		GROUP BY score, cohort
		ORDER BY score, cohort
	`

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("query GetFrequencies: %w", err)
	}
	defer rows.Close()

	var results []models.FrequencyRow
	for rows.Next() {
		var r models.FrequencyRow
		if err := rows.Scan(&r.Score, &r.Cohort, &r.Count); err != nil {
			return nil, fmt.Errorf("scan GetFrequencies row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetFrequencies: %w", err)
	}
	return results, nil
}

// GetSegmentTotals buckets a 1-10 question into promoters (9-10), passives
// (7-8) and detractors (1-6).
func (s *SurveyStatsRepository) GetSegmentTotals(ctx context.Context, questionID int) (models.SegmentTotals, error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN score >= 9 THEN count ELSE 0 END), 0) AS promoters,
			COALESCE(SUM(CASE WHEN score BETWEEN 7 AND 8 THEN count ELSE 0 END), 0) AS passives,
			COALESCE(SUM(CASE WHEN score <= 6 THEN count ELSE 0 END), 0) AS detractors
		FROM answer_counts
		WHERE question_id = ?
	`

	var t models.SegmentTotals
	if err := s.db.QueryRowContext(ctx, query, questionID).Scan(&t.Promoters, &t.Passives, &t.Detractors); err != nil {
		return models.SegmentTotals{}, fmt.Errorf("query GetSegmentTotals: %w", err)
	}
	return t, nil
}
