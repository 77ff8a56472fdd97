package tooltip

// Data point keys the classifier inspects.
const (
	KeySubject  = "subject"
	KeyQuestion = "question"
	KeyColor    = "color"
)

// NameSets are the closed sets of series names the classifier recognises.
// Names outside both sets always fall through to the scored shape.
type NameSets struct {
	segments     map[string]struct{}
	seriesLabels map[string]struct{}
}

// NewNameSets builds the lookup sets from explicit name lists.
func NewNameSets(segments, seriesLabels []string) NameSets {
	return NameSets{
		segments:     toSet(segments),
		seriesLabels: toSet(seriesLabels),
	}
}

// Segment names of the NPS pie and the head-count series label of the
// distribution chart.
var (
	DefaultSegmentNames = []string{"Promotores (9-10)", "Neutros (7-8)", "Detractores (1-6)"}
	DefaultSeriesLabels = []string{"Grupo 1"}
)

func DefaultNameSets() NameSets {
	return NewNameSets(DefaultSegmentNames, DefaultSeriesLabels)
}

func (n NameSets) IsSegment(name string) bool {
	_, ok := n.segments[name]
	return ok
}

func (n NameSets) IsSeriesLabel(name string) bool {
	_, ok := n.seriesLabels[name]
	return ok
}

func toSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Shape tags the three payload shapes.
type Shape int

const (
	ShapeSegment Shape = iota + 1
	ShapeSeriesCount
	ShapeScored
)

func (s Shape) String() string {
	switch s {
	case ShapeSegment:
		return "segment"
	case ShapeSeriesCount:
		return "series-count"
	case ShapeScored:
		return "scored"
	default:
		return "unknown"
	}
}

// Classified is one of SegmentPoint, SeriesCountPoint or ScoredPoint.
type Classified interface {
	Shape() Shape
	sealed()
}

// SegmentPoint is a pie slice: a named population count.
type SegmentPoint struct {
	Name  string
	Count Value
	Color string
}

// SeriesCountPoint is a category with one head-count per series.
type SeriesCountPoint struct {
	Category string
	Series   []SeriesEntry
}

// ScoredPoint is a category with one mean score per series.
type ScoredPoint struct {
	Category string
	Series   []SeriesEntry
	ScaleMax Scale
}

func (SegmentPoint) Shape() Shape     { return ShapeSegment }
func (SeriesCountPoint) Shape() Shape { return ShapeSeriesCount }
func (ScoredPoint) Shape() Shape      { return ShapeScored }

func (SegmentPoint) sealed()     {}
func (SeriesCountPoint) sealed() {}
func (ScoredPoint) sealed()      {}

// Classify maps a renderable event to its shape. Checks run in priority order
// on the first series entry and the first match wins; anything unrecognised is
// scored. The result is nil only for events that are not renderable.
func Classify(ev ActiveEvent, sets NameSets) Classified {
	if !ev.Renderable() {
		return nil
	}
	first := ev.first()
	point := first.Payload

	if sets.IsSegment(first.Name) {
		color, ok := point.String(KeyColor)
		if !ok || color == "" {
			color = first.Color
		}
		return SegmentPoint{Name: first.Name, Count: first.Value, Color: color}
	}

	radar := point.Has(KeySubject)
	if sets.IsSeriesLabel(first.Name) && !radar && !point.Truthy(KeyQuestion) {
		return SeriesCountPoint{Category: ev.Label, Series: ev.Payload}
	}

	scale := ScaleFive
	if radar {
		scale = ScaleTen
	}
	return ScoredPoint{Category: ev.Label, Series: ev.Payload, ScaleMax: scale}
}
