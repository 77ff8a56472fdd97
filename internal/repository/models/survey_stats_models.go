package models

import "errors"

// QuestionCohortMean is the SQL-computed mean of one question for one cohort.
type QuestionCohortMean struct {
	QuestionID int
	Title      string
	Scale      int
	Cohort     string
	Mean       float64
	Responses  int64
}

// FrequencyRow is the count of answers at one score for one cohort.
type FrequencyRow struct {
	Score  int
	Cohort string
	Count  int64
}

// QuestionInfo is the stored question header.
type QuestionInfo struct {
	ID    int
	Title string
	Scale int
}

// SegmentTotals partitions the answers of a 1-10 question into NPS groups.
type SegmentTotals struct {
	Promoters  int64
	Passives   int64
	Detractors int64
}

// ErrNotFound marks lookups of rows that are not stored.
var ErrNotFound = errors.New("not found")
