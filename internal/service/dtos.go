package service

type CohortMean struct {
	Cohort    string  `json:"cohort"`
	Mean      float64 `json:"mean"`
	Responses int     `json:"responses"`
}

type QuestionMean struct {
	QuestionID int          `json:"question_id"`
	Title      string       `json:"title"`
	Scale      int          `json:"scale"`
	Cohorts    []CohortMean `json:"cohorts"`
}

type CrossTabRow struct {
	Score int `json:"score"`
	G1    int `json:"g1"`
	G2    int `json:"g2"`
}

type CrossTab struct {
	QuestionID int           `json:"question_id"`
	Title      string        `json:"title"`
	Scale      int           `json:"scale"`
	Rows       []CrossTabRow `json:"rows"`
	TotalG1    int           `json:"total_g1"`
	TotalG2    int           `json:"total_g2"`
}

type NetPromoter struct {
	Promoters  int     `json:"promoters"`
	Passives   int     `json:"passives"`
	Detractors int     `json:"detractors"`
	Total      int     `json:"total"`
	Score      float64 `json:"score"`
}

type CohortSummary struct {
	Cohort        string  `json:"cohort"`
	Enrolled      int     `json:"enrolled"`
	Responses     int     `json:"responses"`
	Participation float64 `json:"participation"`
	MeanGrade     float64 `json:"mean_grade"`
}

type Summary struct {
	TotalResponses int             `json:"total_responses"`
	GlobalMean     float64         `json:"global_mean"`
	Cohorts        []CohortSummary `json:"cohorts"`
}
