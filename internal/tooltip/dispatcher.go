// Package tooltip turns chart hover events into panel descriptions. The payload
// carries no explicit type, so the dispatcher classifies it by shape first and
// formats it second.
package tooltip

import "strconv"

type Options struct {
	sets   NameSets
	locale Locale
}

type Option func(*Options)

func WithNameSets(sets NameSets) Option {
	return func(o *Options) { o.sets = sets }
}

func WithLocale(l Locale) Option {
	return func(o *Options) { o.locale = l }
}

// Dispatcher formats hover events. It holds no mutable state and is safe for
// concurrent use.
type Dispatcher struct {
	sets   NameSets
	locale Locale
}

// NewDispatcher creates a Dispatcher with the default name sets and the es locale.
func NewDispatcher(opts ...Option) *Dispatcher {
	options := &Options{
		sets:   DefaultNameSets(),
		locale: LocaleES,
	}
	for _, opt := range opts {
		opt(options)
	}
	return &Dispatcher{sets: options.sets, locale: options.locale}
}

func (d *Dispatcher) Locale() Locale { return d.locale }

// Classify exposes the shape decision for the configured name sets.
func (d *Dispatcher) Classify(ev ActiveEvent) Classified {
	return Classify(ev, d.sets)
}

// Describe returns the description for ev. ok is false when the event is
// inactive or empty and nothing should be rendered.
func (d *Dispatcher) Describe(ev ActiveEvent) (desc FormattedDescription, ok bool) {
	switch p := d.Classify(ev).(type) {
	case SegmentPoint:
		return d.describeSegment(p), true
	case SeriesCountPoint:
		return d.describeSeriesCount(p), true
	case ScoredPoint:
		return d.describeScored(p), true
	default:
		return FormattedDescription{}, false
	}
}

func (d *Dispatcher) describeSegment(p SegmentPoint) FormattedDescription {
	return FormattedDescription{
		Title: p.Name,
		Lines: []Line{{
			Value: p.Count.String() + " " + d.locale.Participants,
			Color: p.Color,
		}},
		ScaleMax: ScaleNone,
	}
}

func (d *Dispatcher) describeSeriesCount(p SeriesCountPoint) FormattedDescription {
	lines := make([]Line, len(p.Series))
	for i, e := range p.Series {
		lines[i] = Line{
			Label: e.Name,
			Value: e.Value.String() + " " + d.locale.Persons,
			Color: e.Color,
		}
	}
	return FormattedDescription{Title: p.Category, Lines: lines, ScaleMax: ScaleNone}
}

func (d *Dispatcher) describeScored(p ScoredPoint) FormattedDescription {
	suffix := " / " + strconv.Itoa(int(p.ScaleMax))
	lines := make([]Line, len(p.Series))
	for i, e := range p.Series {
		lines[i] = Line{
			Label: e.Name,
			Value: e.Value.Fixed(2) + suffix,
			Color: e.Color,
		}
	}
	return FormattedDescription{Title: p.Category, Lines: lines, ScaleMax: p.ScaleMax}
}
