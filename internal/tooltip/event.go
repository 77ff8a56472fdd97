package tooltip

import (
	"encoding/json"
	"math"
	"strconv"
)

// ChartDataPoint is the untyped record a chart was drawn from. Values are
// numbers or category labels; which keys are present depends on the chart.
type ChartDataPoint map[string]any

// Has reports whether key is present, whatever its value.
func (p ChartDataPoint) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Truthy reports whether key holds a non-empty value: absent keys, nil,
// empty strings, false and zero all count as empty.
func (p ChartDataPoint) Truthy(key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	}
	if f, ok := ValueOf(v).Float(); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// String returns the value under key as text.
func (p ChartDataPoint) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	return ValueOf(v).String(), true
}

// Value is a series value: either a number or a category label.
type Value struct {
	num     float64
	text    string
	numeric bool
}

func Number(f float64) Value { return Value{num: f, numeric: true} }

func Text(s string) Value { return Value{text: s} }

// ValueOf converts a decoded scalar (JSON, YAML, structpb) into a Value.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f)
		}
		return Text(t.String())
	case string:
		return Text(t)
	case bool:
		return Text(strconv.FormatBool(t))
	case nil:
		return Text("")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return Text("")
		}
		return Text(string(b))
	}
}

// Float returns the numeric value, false for category labels.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// String renders the value the way a chart prints a raw number: shortest
// representation, no trailing zeros.
func (v Value) String() string {
	if !v.numeric {
		return v.text
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

// Fixed renders a number with exactly decimals fractional digits (see
// FormatFixed). Labels are returned unchanged.
func (v Value) Fixed(decimals int) string {
	if !v.numeric {
		return v.text
	}
	return FormatFixed(v.num, decimals)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}

// SeriesEntry is one value-carrying line of a hover event.
type SeriesEntry struct {
	Name    string
	Value   Value
	Color   string
	Payload ChartDataPoint
}

// ActiveEvent is what the charting engine reports on every hover or focus.
type ActiveEvent struct {
	Active   bool
	Label    string
	HasLabel bool
	Payload  []SeriesEntry
}

// Renderable reports whether the event should produce a description at all.
func (e ActiveEvent) Renderable() bool {
	return e.Active && len(e.Payload) > 0
}

func (e ActiveEvent) first() SeriesEntry {
	return e.Payload[0]
}
