package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/repository/models"
	"go.uber.org/zap"
)

const (
	dbTimeout = 1 * time.Second
)

// StatsService computes the comparative tables and headline figures.
type StatsService struct {
	storage SurveyStatsRepository
	data    *dataset.Dataset
	logger  *zap.Logger
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(storage SurveyStatsRepository, data *dataset.Dataset, logger *zap.Logger) *StatsService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if data == nil {
		panic("dataset must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &StatsService{
		storage: storage,
		data:    data,
		logger:  logger,
	}
}

var (
	ErrNoResponses      = errors.New("no responses found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrStorageFailure   = errors.New("storage failure")
)

// GetQuestionMeans returns the per-cohort mean of every question, ordered by id.
func (s *StatsService) GetQuestionMeans(ctx context.Context) ([]QuestionMean, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.GetQuestionMeans(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoResponses
	}

	var out []QuestionMean
	index := make(map[int]int)
	for _, r := range rows {
		i, ok := index[r.QuestionID]
		if !ok {
			i = len(out)
			index[r.QuestionID] = i
			out = append(out, QuestionMean{
				QuestionID: r.QuestionID,
				Title:      r.Title,
				Scale:      r.Scale,
			})
		}
		out[i].Cohorts = append(out[i].Cohorts, CohortMean{
			Cohort:    r.Cohort,
			Mean:      r.Mean,
			Responses: int(r.Responses),
		})
	}

	s.logger.Debug("computed question means", zap.Int("questions", len(out)))
	return out, nil
}

// GetCrossTab returns the frequency table of one question with a row for every
// point of its scale, zero-filled.
func (s *StatsService) GetCrossTab(ctx context.Context, questionID int) (CrossTab, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	q, err := s.storage.GetQuestion(dbCtx, questionID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return CrossTab{}, fmt.Errorf("%w: %d", ErrQuestionNotFound, questionID)
		}
		return CrossTab{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	rows, err := s.storage.GetFrequencies(dbCtx, questionID)
	if err != nil {
		s.logger.Error("failed to fetch frequencies", zap.Int("question_id", questionID), zap.Error(err))
		return CrossTab{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	table := CrossTab{
		QuestionID: q.ID,
		Title:      q.Title,
		Scale:      q.Scale,
		Rows:       make([]CrossTabRow, q.Scale),
	}
	for i := range table.Rows {
		table.Rows[i].Score = i + 1
	}
	for _, r := range rows {
		if r.Score < 1 || r.Score > q.Scale {
			s.logger.Warn("answer outside question scale",
				zap.Int("question_id", questionID),
				zap.Int("score", r.Score))
			continue
		}
		row := &table.Rows[r.Score-1]
		switch dataset.Cohort(r.Cohort) {
		case dataset.CohortG1:
			row.G1 += int(r.Count)
			table.TotalG1 += int(r.Count)
		case dataset.CohortG2:
			row.G2 += int(r.Count)
			table.TotalG2 += int(r.Count)
		}
	}
	return table, nil
}

// GetNetPromoter buckets the 1-10 workshop grade into NPS segments.
func (s *StatsService) GetNetPromoter(ctx context.Context) (NetPromoter, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	t, err := s.storage.GetSegmentTotals(dbCtx, dataset.Scale10QuestionID)
	if err != nil {
		return NetPromoter{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	total := t.Promoters + t.Passives + t.Detractors
	if total == 0 {
		return NetPromoter{}, ErrNoResponses
	}

	nps := NetPromoter{
		Promoters:  int(t.Promoters),
		Passives:   int(t.Passives),
		Detractors: int(t.Detractors),
		Total:      int(total),
		Score:      float64(t.Promoters-t.Detractors) * 100.0 / float64(total),
	}

	s.logger.Info("computed net promoter score",
		zap.Float64("score", nps.Score),
		zap.Int("total", nps.Total))

	return nps, nil
}

// GetSummary returns the header KPIs. It reads the dataset only.
func (s *StatsService) GetSummary(_ context.Context) (Summary, error) {
	kpis := s.data.KPIs()
	out := Summary{
		TotalResponses: kpis.TotalResponses(),
		GlobalMean:     kpis.GlobalMean(),
	}
	for _, c := range dataset.Cohorts() {
		k := kpis.For(c)
		out.Cohorts = append(out.Cohorts, CohortSummary{
			Cohort:        string(c),
			Enrolled:      k.Enrolled,
			Responses:     k.Responses,
			Participation: kpis.ParticipationRate(c),
			MeanGrade:     k.MeanGrade,
		})
	}
	return out, nil
}
