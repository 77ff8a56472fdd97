// Package dataset holds the survey results the dashboard renders. A Dataset is
// built once at startup and handed to every consumer; nothing mutates it.
package dataset

import (
	"errors"
	"fmt"
	"sort"
)

// Scale10QuestionID is the identifier of the 1-10 workshop grade question.
const Scale10QuestionID = 10

// Records is the raw material a Dataset is built from.
type Records struct {
	KPIs           KPIs
	ModuleScores   []ModuleScore
	QuestionScores []QuestionScore
	Distribution   []DistributionBucket
	Questions      []QuestionRecord
	Scale10        QuestionRecord
	Segments       []SegmentCount
	Feedback       []FeedbackCorpus
	Insights       []Insight
}

// Dataset is the read-only survey dataset. Accessors return copies.
type Dataset struct {
	rec Records
}

// New builds a Dataset from a deep copy of r.
func New(r Records) *Dataset {
	return &Dataset{rec: cloneRecords(r)}
}

func cloneRecords(r Records) Records {
	out := Records{
		KPIs:           r.KPIs,
		ModuleScores:   append([]ModuleScore(nil), r.ModuleScores...),
		QuestionScores: append([]QuestionScore(nil), r.QuestionScores...),
		Distribution:   append([]DistributionBucket(nil), r.Distribution...),
		Scale10:        r.Scale10.clone(),
		Segments:       append([]SegmentCount(nil), r.Segments...),
		Insights:       append([]Insight(nil), r.Insights...),
	}
	out.Questions = make([]QuestionRecord, len(r.Questions))
	for i, q := range r.Questions {
		out.Questions[i] = q.clone()
	}
	out.Feedback = make([]FeedbackCorpus, len(r.Feedback))
	for i, f := range r.Feedback {
		out.Feedback[i] = f.clone()
	}
	return out
}

func (d *Dataset) KPIs() KPIs { return d.rec.KPIs }

func (d *Dataset) ModuleScores() []ModuleScore {
	return append([]ModuleScore(nil), d.rec.ModuleScores...)
}

func (d *Dataset) QuestionScores() []QuestionScore {
	return append([]QuestionScore(nil), d.rec.QuestionScores...)
}

func (d *Dataset) Distribution() []DistributionBucket {
	return append([]DistributionBucket(nil), d.rec.Distribution...)
}

func (d *Dataset) Segments() []SegmentCount {
	return append([]SegmentCount(nil), d.rec.Segments...)
}

func (d *Dataset) Insights() []Insight {
	return append([]Insight(nil), d.rec.Insights...)
}

// Questions returns the 1-5 scale question records ordered by ID.
func (d *Dataset) Questions() []QuestionRecord {
	out := make([]QuestionRecord, len(d.rec.Questions))
	for i, q := range d.rec.Questions {
		out[i] = q.clone()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Scale10 returns the 1-10 workshop grade question.
func (d *Dataset) Scale10() QuestionRecord {
	return d.rec.Scale10.clone()
}

// Question looks a question up by ID, including the scale-10 summary record.
func (d *Dataset) Question(id int) (QuestionRecord, bool) {
	if id == d.rec.Scale10.ID && d.rec.Scale10.Scale != 0 {
		return d.rec.Scale10.clone(), true
	}
	for _, q := range d.rec.Questions {
		if q.ID == id {
			return q.clone(), true
		}
	}
	return QuestionRecord{}, false
}

// AllQuestions returns every Likert question followed by the scale-10 record.
func (d *Dataset) AllQuestions() []QuestionRecord {
	out := d.Questions()
	if d.rec.Scale10.Scale != 0 {
		out = append(out, d.Scale10())
	}
	return out
}

func (d *Dataset) Feedback() []FeedbackCorpus {
	out := make([]FeedbackCorpus, len(d.rec.Feedback))
	for i, f := range d.rec.Feedback {
		out[i] = f.clone()
	}
	return out
}

// FeedbackFor returns the corpus stored under key ("q8", "q9").
func (d *Dataset) FeedbackFor(key string) (FeedbackCorpus, bool) {
	for _, f := range d.rec.Feedback {
		if f.Key == key {
			return f.clone(), true
		}
	}
	return FeedbackCorpus{}, false
}

// TotalRespondents is the number of people who answered the survey.
func (d *Dataset) TotalRespondents() int {
	return d.rec.KPIs.TotalResponses()
}

var (
	ErrScaleMismatch    = errors.New("cohort distributions use different scales")
	ErrOutOfScale       = errors.New("score outside question scale")
	ErrTooManyResponses = errors.New("more responses than respondents")
	ErrSegmentTotal     = errors.New("segment counts do not partition respondents")
)

// Validate checks the dataset invariants and reports every violation found.
func (d *Dataset) Validate() error {
	var errs []error
	kpis := d.rec.KPIs

	for _, q := range d.AllQuestions() {
		if q.Scale != 5 && q.Scale != 10 {
			errs = append(errs, fmt.Errorf("question %d: %w: scale %d", q.ID, ErrScaleMismatch, q.Scale))
			continue
		}
		for _, c := range Cohorts() {
			dist := q.For(c)
			for _, p := range dist.Points() {
				if p < 1 || p > q.Scale {
					errs = append(errs, fmt.Errorf("question %d %s: %w: %d", q.ID, c, ErrOutOfScale, p))
				}
				if dist[p] < 0 {
					errs = append(errs, fmt.Errorf("question %d %s: negative count at %d", q.ID, c, p))
				}
			}
			if dist.Total() > kpis.For(c).Responses {
				errs = append(errs, fmt.Errorf("question %d %s: %w: %d > %d",
					q.ID, c, ErrTooManyResponses, dist.Total(), kpis.For(c).Responses))
			}
		}
	}

	if len(d.rec.Segments) > 0 {
		sum := 0
		for _, s := range d.rec.Segments {
			if s.Count < 0 {
				errs = append(errs, fmt.Errorf("segment %q: negative count", s.Name))
			}
			sum += s.Count
		}
		if sum != d.TotalRespondents() {
			errs = append(errs, fmt.Errorf("%w: %d != %d", ErrSegmentTotal, sum, d.TotalRespondents()))
		}
	}

	return errors.Join(errs...)
}
