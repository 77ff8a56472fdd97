package dataset

import "sort"

// Cohort identifies one of the two compared respondent groups.
type Cohort string

const (
	CohortG1 Cohort = "G1"
	CohortG2 Cohort = "G2"
)

// Cohorts returns both cohorts in display order.
func Cohorts() []Cohort {
	return []Cohort{CohortG1, CohortG2}
}

// ScoreDistribution maps a scale point to the number of responses at that point.
type ScoreDistribution map[int]int

// Total returns the number of responses in the distribution.
func (d ScoreDistribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Count returns the responses recorded for point, 0 when the point is absent.
func (d ScoreDistribution) Count(point int) int {
	return d[point]
}

// Mean returns the arithmetic mean of the distribution, 0 when it is empty.
func (d ScoreDistribution) Mean() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	var sum float64
	for point, n := range d {
		sum += float64(point * n)
	}
	return sum / float64(total)
}

// Points returns the scale points present in the distribution in ascending order.
func (d ScoreDistribution) Points() []int {
	out := make([]int, 0, len(d))
	for p := range d {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func (d ScoreDistribution) clone() ScoreDistribution {
	out := make(ScoreDistribution, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// QuestionRecord is one Likert question with the answer counts of both cohorts.
type QuestionRecord struct {
	ID    int
	Title string
	Scale int
	G1    ScoreDistribution
	G2    ScoreDistribution
}

// For returns the distribution of the given cohort.
func (q QuestionRecord) For(c Cohort) ScoreDistribution {
	if c == CohortG2 {
		return q.G2
	}
	return q.G1
}

func (q QuestionRecord) clone() QuestionRecord {
	q.G1 = q.G1.clone()
	q.G2 = q.G2.clone()
	return q
}

// CohortKPI summarises participation and grade for one cohort.
type CohortKPI struct {
	Enrolled  int
	Responses int
	MeanGrade float64
}

// KPIs holds the header figures of both cohorts.
type KPIs struct {
	G1 CohortKPI
	G2 CohortKPI
}

// For returns the KPI record of the given cohort.
func (k KPIs) For(c Cohort) CohortKPI {
	if c == CohortG2 {
		return k.G2
	}
	return k.G1
}

// ParticipationRate returns responses over enrolled as a percentage.
func (k KPIs) ParticipationRate(c Cohort) float64 {
	kpi := k.For(c)
	if kpi.Enrolled == 0 {
		return 0
	}
	return float64(kpi.Responses) * 100.0 / float64(kpi.Enrolled)
}

// GlobalMean is the unweighted mean of both cohort grades.
func (k KPIs) GlobalMean() float64 {
	return (k.G1.MeanGrade + k.G2.MeanGrade) / 2
}

// TotalResponses returns the responses of both cohorts together.
func (k KPIs) TotalResponses() int {
	return k.G1.Responses + k.G2.Responses
}

// ModuleScore is the per-cohort mean of a workshop module on a 0-10 scale.
type ModuleScore struct {
	Subject string
	G1      float64
	G2      float64
	Full    string
}

// QuestionScore is the per-cohort mean of a general question on a 0-5 scale.
type QuestionScore struct {
	Question string
	G1       float64
	G2       float64
	Full     string
}

// DistributionBucket is the head-count of each cohort inside a final grade bucket.
type DistributionBucket struct {
	Grade string
	G1    int
	G2    int
}

// SegmentCount is one named partition of the respondents.
type SegmentCount struct {
	Name  string
	Count int
	Color string
}

// FeedbackCorpus holds the free-text answers to one open question, in submission order.
type FeedbackCorpus struct {
	Key   string   `json:"key"`
	Title string   `json:"title"`
	G1    []string `json:"g1"`
	G2    []string `json:"g2"`
}

// For returns the responses of the given cohort.
func (f FeedbackCorpus) For(c Cohort) []string {
	if c == CohortG2 {
		return f.G2
	}
	return f.G1
}

func (f FeedbackCorpus) clone() FeedbackCorpus {
	f.G1 = append([]string(nil), f.G1...)
	f.G2 = append([]string(nil), f.G2...)
	return f
}

// Insight is one block of the qualitative analysis panel.
type Insight struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}
