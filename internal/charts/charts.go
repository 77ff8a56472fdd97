// Package charts describes the dashboard charts: which dataset records feed
// them, which keys they plot and what hover events they emit.
package charts

import (
	"errors"
	"fmt"

	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/tooltip"
)

// Kind names a dashboard chart.
type Kind string

const (
	KindRadar Kind = "radar"
	KindBar   Kind = "bar"
	KindArea  Kind = "area"
	KindPie   Kind = "pie"
)

// Kinds lists every chart in dashboard order.
func Kinds() []Kind {
	return []Kind{KindPie, KindArea, KindRadar, KindBar}
}

const (
	ColorG1 = "#1E3A8A"
	ColorG2 = "#B91C1C"
)

// Series is one plotted data key.
type Series struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Chart is a chart configuration bound to its data.
type Chart struct {
	Kind        Kind                     `json:"kind"`
	Title       string                   `json:"title"`
	CategoryKey string                   `json:"category_key,omitempty"`
	Series      []Series                 `json:"series"`
	Data        []tooltip.ChartDataPoint `json:"points"`
}

var cohortSeries = []Series{
	{Key: string(dataset.CohortG1), Name: "Grupo 1", Color: ColorG1},
	{Key: string(dataset.CohortG2), Name: "Grupo 2", Color: ColorG2},
}

// ErrUnknownKind is returned by ByKind for names outside Kinds.
var ErrUnknownKind = errors.New("unknown chart kind")

// ByKind builds the chart of the given kind from ds.
func ByKind(ds *dataset.Dataset, kind Kind) (Chart, error) {
	switch kind {
	case KindRadar:
		return Radar(ds), nil
	case KindBar:
		return Bar(ds), nil
	case KindArea:
		return Area(ds), nil
	case KindPie:
		return Pie(ds), nil
	default:
		return Chart{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Radar compares the module scores on a 0-10 axis.
func Radar(ds *dataset.Dataset) Chart {
	modules := ds.ModuleScores()
	points := make([]tooltip.ChartDataPoint, len(modules))
	for i, m := range modules {
		points[i] = tooltip.ChartDataPoint{
			"subject": m.Subject,
			"G1":      m.G1,
			"G2":      m.G2,
			"full":    m.Full,
		}
	}
	return Chart{
		Kind:        KindRadar,
		Title:       "Comparativa por Módulos (Base 10)",
		CategoryKey: "subject",
		Series:      cohortSeries,
		Data:        points,
	}
}

// Bar compares the general question means on a 1-5 axis.
func Bar(ds *dataset.Dataset) Chart {
	scores := ds.QuestionScores()
	points := make([]tooltip.ChartDataPoint, len(scores))
	for i, q := range scores {
		points[i] = tooltip.ChartDataPoint{
			"question": q.Question,
			"G1":       q.G1,
			"G2":       q.G2,
			"full":     q.Full,
		}
	}
	return Chart{
		Kind:        KindBar,
		Title:       "Preguntas Generales (Promedios 1-5)",
		CategoryKey: "question",
		Series:      cohortSeries,
		Data:        points,
	}
}

// Area plots how many people of each cohort gave each final grade.
func Area(ds *dataset.Dataset) Chart {
	buckets := ds.Distribution()
	points := make([]tooltip.ChartDataPoint, len(buckets))
	for i, b := range buckets {
		points[i] = tooltip.ChartDataPoint{
			"nota": b.Grade,
			"G1":   b.G1,
			"G2":   b.G2,
		}
	}
	return Chart{
		Kind:        KindArea,
		Title:       "Curva de Satisfacción (Nota Final)",
		CategoryKey: "nota",
		Series:      cohortSeries,
		Data:        points,
	}
}

// Pie splits respondents into NPS segments.
func Pie(ds *dataset.Dataset) Chart {
	segments := ds.Segments()
	points := make([]tooltip.ChartDataPoint, len(segments))
	for i, s := range segments {
		points[i] = tooltip.ChartDataPoint{
			"name":  s.Name,
			"value": s.Count,
			"color": s.Color,
		}
	}
	return Chart{
		Kind:   KindPie,
		Title:  "Índice de Excelencia (NPS)",
		Series: []Series{{Key: "value"}},
		Data:   points,
	}
}

// Points returns the chart data.
func (c Chart) Points() []tooltip.ChartDataPoint {
	return c.Data
}

// Len is the number of hoverable categories or slices.
func (c Chart) Len() int {
	return len(c.Data)
}

// EventAt returns the event the charting engine emits while index i is
// hovered. An out-of-range index yields an inactive event.
func (c Chart) EventAt(i int) tooltip.ActiveEvent {
	if i < 0 || i >= len(c.Data) {
		return tooltip.ActiveEvent{}
	}
	point := c.Data[i]

	if c.Kind == KindPie {
		name, _ := point.String("name")
		color, _ := point.String("color")
		return tooltip.ActiveEvent{
			Active: true,
			Payload: []tooltip.SeriesEntry{{
				Name:    name,
				Value:   tooltip.ValueOf(point["value"]),
				Color:   color,
				Payload: point,
			}},
		}
	}

	label, _ := point.String(c.CategoryKey)
	entries := make([]tooltip.SeriesEntry, len(c.Series))
	for j, s := range c.Series {
		entries[j] = tooltip.SeriesEntry{
			Name:    s.Name,
			Value:   tooltip.ValueOf(point[s.Key]),
			Color:   s.Color,
			Payload: point,
		}
	}
	return tooltip.ActiveEvent{
		Active:   true,
		Label:    label,
		HasLabel: true,
		Payload:  entries,
	}
}
