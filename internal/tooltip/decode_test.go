package tooltip

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEventFromMap_JSON(t *testing.T) {
	raw := `{
		"active": true,
		"payload": [{
			"name": "Promotores (9-10)",
			"value": 9,
			"color": "#10B981",
			"payload": {"name": "Promotores (9-10)", "value": 9, "color": "#10B981"}
		}]
	}`
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	ev := EventFromMap(m)

	assert.True(t, ev.Active)
	assert.False(t, ev.HasLabel)
	require.Len(t, ev.Payload, 1)
	assert.Equal(t, "Promotores (9-10)", ev.Payload[0].Name)
	f, ok := ev.Payload[0].Value.Float()
	assert.True(t, ok)
	assert.Equal(t, 9.0, f)

	desc, ok := NewDispatcher().Describe(ev)
	require.True(t, ok)
	assert.Equal(t, "9 participantes", desc.Lines[0].Value)
}

func TestEventFromMap_YAML(t *testing.T) {
	raw := `
active: true
label: Módulo 3
payload:
  - name: Grupo 1
    value: 8.86
    color: "#1E3A8A"
    payload: {subject: Módulo 3, G1: 8.86, G2: 7.14}
  - name: Grupo 2
    value: 7
    color: "#B91C1C"
    payload: {subject: Módulo 3, G1: 8.86, G2: 7.14}
`
	var m map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(raw), &m))

	ev := EventFromMap(m)
	require.Len(t, ev.Payload, 2)
	assert.Equal(t, "Módulo 3", ev.Label)

	desc, ok := NewDispatcher().Describe(ev)
	require.True(t, ok)
	assert.Equal(t, ScaleTen, desc.ScaleMax)
	assert.Equal(t, "7.00 / 10", desc.Lines[1].Value)
}

func TestEventFromMap_Degrades(t *testing.T) {
	assert.False(t, EventFromMap(nil).Renderable())

	ev := EventFromMap(map[string]any{
		"active":  "yes",
		"label":   12,
		"payload": []any{"junk", map[string]any{"name": 7, "value": "x"}},
	})

	assert.False(t, ev.Active)
	assert.Equal(t, "12", ev.Label)
	require.Len(t, ev.Payload, 1)
	assert.Equal(t, "7", ev.Payload[0].Name)
	assert.Equal(t, "x", ev.Payload[0].Value.String())
	assert.NotNil(t, ev.Payload[0].Payload)
}

func TestActiveEvent_ToMapRoundTrip(t *testing.T) {
	ev := radarEvent()

	back := EventFromMap(ev.ToMap())

	assert.Equal(t, ev, back)
}

func TestValue(t *testing.T) {
	assert.Equal(t, "9", Number(9).String())
	assert.Equal(t, "4.57", Number(4.57).String())
	assert.Equal(t, "4.57", Number(4.567).Fixed(2))
	assert.Equal(t, "1.00", Number(1).Fixed(2))
	assert.Equal(t, "label", Text("label").Fixed(2))
	assert.Equal(t, "3", ValueOf(int64(3)).String())
	assert.Equal(t, "2.5", ValueOf(json.Number("2.5")).String())
	assert.Equal(t, "", ValueOf(nil).String())

	_, ok := Text("a").Float()
	assert.False(t, ok)
}

func TestChartDataPoint(t *testing.T) {
	p := ChartDataPoint{"question": "", "zero": 0, "subject": nil, "n": 2.5, "color": "#fff"}

	assert.True(t, p.Has("subject"))
	assert.False(t, p.Has("missing"))
	assert.False(t, p.Truthy("question"))
	assert.False(t, p.Truthy("zero"))
	assert.False(t, p.Truthy("subject"))
	assert.True(t, p.Truthy("n"))

	c, ok := p.String("color")
	assert.True(t, ok)
	assert.Equal(t, "#fff", c)
	_, ok = p.String("subject")
	assert.False(t, ok)
}

func TestLocaleByName(t *testing.T) {
	l, ok := LocaleByName("es_ES")
	assert.True(t, ok)
	assert.Equal(t, LocaleES, l)

	l, ok = LocaleByName("EN-us")
	assert.True(t, ok)
	assert.Equal(t, LocaleEN, l)

	_, ok = LocaleByName("fr")
	assert.False(t, ok)
}
