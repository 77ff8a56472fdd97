package tooltip

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Scale is the denominator a scored value is displayed against.
type Scale int

const (
	ScaleNone Scale = 0
	ScaleFive Scale = 5
	ScaleTen  Scale = 10
)

func (s Scale) String() string {
	if s == ScaleNone {
		return "none"
	}
	return strconv.Itoa(int(s))
}

// MarshalJSON encodes ScaleNone as null.
func (s Scale) MarshalJSON() ([]byte, error) {
	if s == ScaleNone {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(s))), nil
}

func (s *Scale) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ScaleNone
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = Scale(n)
	return nil
}

// Line is one styled row of a description.
type Line struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// Text joins label and value the way the panel prints them.
func (l Line) Text() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// FormattedDescription is the structured panel content for one hover event.
type FormattedDescription struct {
	Title    string `json:"title"`
	Lines    []Line `json:"lines"`
	ScaleMax Scale  `json:"scale_max"`
}

// String renders the description as plain text, title first.
func (d FormattedDescription) String() string {
	var sb strings.Builder
	sb.WriteString(d.Title)
	for _, l := range d.Lines {
		sb.WriteByte('\n')
		sb.WriteString(l.Text())
	}
	return sb.String()
}
