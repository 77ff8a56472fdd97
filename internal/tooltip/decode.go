package tooltip

// EventFromMap builds an ActiveEvent from decoded untyped data (structpb,
// JSON or YAML). Fields of the wrong type are ignored rather than rejected.
//
//	active:  bool
//	label:   string | number
//	payload: [{name, value, color, payload: {...}}]
func EventFromMap(m map[string]any) ActiveEvent {
	var ev ActiveEvent
	if m == nil {
		return ev
	}
	if b, ok := m["active"].(bool); ok {
		ev.Active = b
	}
	if raw, ok := m["label"]; ok && raw != nil {
		ev.Label = ValueOf(raw).String()
		ev.HasLabel = true
	}
	for _, item := range asList(m["payload"]) {
		entry, ok := asMap(item)
		if !ok {
			continue
		}
		ev.Payload = append(ev.Payload, entryFromMap(entry))
	}
	return ev
}

func entryFromMap(m map[string]any) SeriesEntry {
	e := SeriesEntry{Payload: ChartDataPoint{}}
	if raw, ok := m["name"]; ok && raw != nil {
		e.Name = ValueOf(raw).String()
	}
	e.Value = ValueOf(m["value"])
	if s, ok := m["color"].(string); ok {
		e.Color = s
	}
	if p, ok := asMap(m["payload"]); ok {
		e.Payload = ChartDataPoint(p)
	}
	return e
}

func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []map[string]any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case ChartDataPoint:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[ValueOf(k).String()] = val
		}
		return out, true
	}
	return nil, false
}

// ToMap is the inverse of EventFromMap.
func (e ActiveEvent) ToMap() map[string]any {
	entries := make([]any, len(e.Payload))
	for i, s := range e.Payload {
		var value any = s.Value.text
		if f, ok := s.Value.Float(); ok {
			value = f
		}
		point := make(map[string]any, len(s.Payload))
		for k, v := range s.Payload {
			point[k] = v
		}
		entries[i] = map[string]any{
			"name":    s.Name,
			"value":   value,
			"color":   s.Color,
			"payload": point,
		}
	}
	m := map[string]any{
		"active":  e.Active,
		"payload": entries,
	}
	if e.HasLabel {
		m["label"] = e.Label
	}
	return m
}
