package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/godilite/survey-dashboard/internal/config"
	"github.com/godilite/survey-dashboard/internal/service"
	"github.com/godilite/survey-dashboard/internal/tooltip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:   "test",
		DBDriver: "sqlite3",
		DBPath:   ":memory:",
		CacheTTL: time.Minute,
		Locale:   "es",
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(testConfig())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const areaEventYAML = `
active: true
label: Nota 8
payload:
  - name: Grupo 1
    value: 1
    color: "#1E3A8A"
    payload: {nota: Nota 8, G1: 1, G2: 2}
  - name: Grupo 2
    value: 2
    color: "#B91C1C"
    payload: {nota: Nota 8, G1: 1, G2: 2}
`

func TestDescribe_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.yaml")
	require.NoError(t, os.WriteFile(path, []byte(areaEventYAML), 0o644))

	out, err := execute(t, "", "describe", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Nota 8")
	assert.Contains(t, out, "Grupo 1: 1 persona(s)")
	assert.Contains(t, out, "Grupo 2: 2 persona(s)")
}

func TestDescribe_StdinJSONWithEnglishLocale(t *testing.T) {
	out, err := execute(t, areaEventYAML, "describe", "--locale", "en", "--json")
	require.NoError(t, err)

	var desc tooltip.FormattedDescription
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, "Nota 8", desc.Title)
	require.Len(t, desc.Lines, 2)
	assert.Equal(t, "1 person(s)", desc.Lines[0].Value)
	assert.Equal(t, tooltip.ScaleNone, desc.ScaleMax)
}

func TestDescribe_InactivePrintsNothing(t *testing.T) {
	out, err := execute(t, "active: false\n", "describe")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "", "describe")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDescribe_MissingFile(t *testing.T) {
	_, err := execute(t, "", "describe", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestHover(t *testing.T) {
	out, err := execute(t, "", "hover", "pie", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Promotores (9-10)")
	assert.Contains(t, out, "participantes")

	out, err = execute(t, "", "hover", "radar", "0", "--json")
	require.NoError(t, err)
	var desc tooltip.FormattedDescription
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, tooltip.ScaleTen, desc.ScaleMax)
	assert.True(t, strings.HasSuffix(desc.Lines[0].Value, " / 10"))
}

func TestHover_BadArgs(t *testing.T) {
	_, err := execute(t, "", "hover", "scatter", "0")
	assert.ErrorContains(t, err, "unknown chart kind")

	_, err = execute(t, "", "hover", "bar", "x")
	assert.ErrorContains(t, err, "invalid index")

	_, err = execute(t, "", "hover", "bar", "99")
	assert.ErrorContains(t, err, "out of range")
}

func TestTable(t *testing.T) {
	out, err := execute(t, "", "table", "10", "--json")
	require.NoError(t, err)

	var ct service.CrossTab
	require.NoError(t, json.Unmarshal([]byte(out), &ct))
	assert.Equal(t, 10, ct.Scale)
	assert.Len(t, ct.Rows, 10)

	_, err = execute(t, "", "table", "404")
	assert.ErrorIs(t, err, service.ErrQuestionNotFound)

	_, err = execute(t, "", "table", "one")
	assert.ErrorContains(t, err, "invalid question id")
}

func TestMeansAndNPS(t *testing.T) {
	out, err := execute(t, "", "means")
	require.NoError(t, err)
	assert.Contains(t, out, "Promedios por pregunta")

	out, err = execute(t, "", "nps", "--json")
	require.NoError(t, err)
	var nps service.NetPromoter
	require.NoError(t, json.Unmarshal([]byte(out), &nps))
	assert.Equal(t, nps.Promoters+nps.Passives+nps.Detractors, nps.Total)
}

func TestFeedback(t *testing.T) {
	out, err := execute(t, "", "feedback", "Q9")
	require.NoError(t, err)
	assert.Contains(t, out, "Grupo 1")

	_, err = execute(t, "", "feedback", "q1")
	assert.ErrorContains(t, err, "unknown feedback key")
}

func TestSummary(t *testing.T) {
	out, err := execute(t, "", "summary", "--json")
	require.NoError(t, err)

	var s service.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Len(t, s.Cohorts, 2)
	assert.Equal(t, 14, s.TotalResponses)
}
