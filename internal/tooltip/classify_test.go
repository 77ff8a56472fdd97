package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	sets := DefaultNameSets()

	tests := []struct {
		name  string
		ev    ActiveEvent
		shape Shape
	}{
		{"pie slice", pieEvent(), ShapeSegment},
		{"area bucket", areaEvent(), ShapeSeriesCount},
		{"radar module", radarEvent(), ShapeScored},
		{"bar question", barEvent(), ShapeScored},
		{
			"series label with empty question is still a head-count",
			ActiveEvent{Active: true, Label: "x", Payload: []SeriesEntry{{Name: "Grupo 1", Value: Number(1), Payload: ChartDataPoint{"question": ""}}}},
			ShapeSeriesCount,
		},
		{
			"series label with subject key is scored even when empty",
			ActiveEvent{Active: true, Label: "x", Payload: []SeriesEntry{{Name: "Grupo 1", Value: Number(1), Payload: ChartDataPoint{"subject": nil}}}},
			ShapeScored,
		},
		{
			"only the first entry name is inspected",
			ActiveEvent{Active: true, Label: "x", Payload: []SeriesEntry{
				{Name: "Grupo 2", Value: Number(1), Payload: ChartDataPoint{}},
				{Name: "Grupo 1", Value: Number(1), Payload: ChartDataPoint{}},
			}},
			ShapeScored,
		},
		{
			"nil payload point",
			ActiveEvent{Active: true, Label: "x", Payload: []SeriesEntry{{Name: "Grupo 1", Value: Number(3)}}},
			ShapeSeriesCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.ev, sets)
			require.NotNil(t, got)
			assert.Equal(t, tt.shape, got.Shape())
		})
	}
}

func TestClassify_ScoredScale(t *testing.T) {
	sets := DefaultNameSets()

	radar, ok := Classify(radarEvent(), sets).(ScoredPoint)
	require.True(t, ok)
	assert.Equal(t, ScaleTen, radar.ScaleMax)
	assert.Equal(t, "Módulo 3", radar.Category)

	bar, ok := Classify(barEvent(), sets).(ScoredPoint)
	require.True(t, ok)
	assert.Equal(t, ScaleFive, bar.ScaleMax)
}

func TestClassify_NotRenderable(t *testing.T) {
	assert.Nil(t, Classify(ActiveEvent{}, DefaultNameSets()))
	assert.Nil(t, Classify(ActiveEvent{Active: true}, DefaultNameSets()))
}

func TestClassify_ZeroNameSets(t *testing.T) {
	got := Classify(pieEvent(), NameSets{})
	assert.Equal(t, ShapeScored, got.Shape())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "segment", ShapeSegment.String())
	assert.Equal(t, "series-count", ShapeSeriesCount.String())
	assert.Equal(t, "scored", ShapeScored.String())
	assert.Equal(t, "unknown", Shape(0).String())
}
