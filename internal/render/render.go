// Package render draws dashboard content as terminal panels.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/godilite/survey-dashboard/internal/charts"
	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/service"
	"github.com/godilite/survey-dashboard/internal/tooltip"
)

const (
	colorBorder = lipgloss.Color("#444444")
	colorMuted  = lipgloss.Color("#888888")
	colorTitle  = lipgloss.Color("#5B8DEF")

	feedbackWidth = 44
	cellWidth     = 8
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Right)
)

func cohortColor(c dataset.Cohort) lipgloss.Color {
	if c == dataset.CohortG2 {
		return lipgloss.Color(charts.ColorG2)
	}
	return lipgloss.Color(charts.ColorG1)
}

func cohortName(c dataset.Cohort) string {
	if c == dataset.CohortG2 {
		return "Grupo 2"
	}
	return "Grupo 1"
}

// Panel draws a hover description: bold title, then one row per line in its series colour.
// A description with neither title nor lines draws nothing.
func Panel(desc tooltip.FormattedDescription) string {
	if desc.Title == "" && len(desc.Lines) == 0 {
		return ""
	}
	rows := make([]string, 0, len(desc.Lines)+1)
	if desc.Title != "" {
		rows = append(rows, titleStyle.Render(desc.Title))
	}
	for _, l := range desc.Lines {
		style := lipgloss.NewStyle()
		if l.Color != "" {
			style = style.Foreground(lipgloss.Color(l.Color))
		}
		rows = append(rows, style.Render(l.Text()))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// CrossTab draws a question's frequency table with a totals row.
func CrossTab(ct service.CrossTab) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cellStyle.Bold(true).Render("Nota"),
		cellStyle.Bold(true).Foreground(cohortColor(dataset.CohortG1)).Render("G1"),
		cellStyle.Bold(true).Foreground(cohortColor(dataset.CohortG2)).Render("G2"),
	)
	rows := []string{
		titleStyle.Render(ct.Title),
		mutedStyle.Render("Escala 1-" + strconv.Itoa(ct.Scale)),
		header,
	}
	for _, r := range ct.Rows {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Render(strconv.Itoa(r.Score)),
			cellStyle.Render(strconv.Itoa(r.G1)),
			cellStyle.Render(strconv.Itoa(r.G2)),
		))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		cellStyle.Bold(true).Render("Total"),
		cellStyle.Bold(true).Render(strconv.Itoa(ct.TotalG1)),
		cellStyle.Bold(true).Render(strconv.Itoa(ct.TotalG2)),
	))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// QuestionMeans draws the per-cohort mean of every question, one row each.
func QuestionMeans(means []service.QuestionMean) string {
	rows := []string{titleStyle.Render("Promedios por pregunta")}
	for _, q := range means {
		cells := []string{lipgloss.NewStyle().Width(4).Render(strconv.Itoa(q.QuestionID))}
		for _, c := range q.Cohorts {
			cells = append(cells, cellStyle.
				Foreground(cohortColor(dataset.Cohort(c.Cohort))).
				Render(tooltip.FormatFixed(c.Mean, 2)))
		}
		cells = append(cells, mutedStyle.Render("  / "+strconv.Itoa(q.Scale)+"  "+q.Title))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// NetPromoter draws the segment split and the resulting score.
func NetPromoter(n service.NetPromoter, segments []dataset.SegmentCount) string {
	rows := []string{
		titleStyle.Render("NPS " + tooltip.FormatFixed(n.Score, 1)),
	}
	for _, s := range segments {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Color)).
			Render(s.Name+": "+strconv.Itoa(s.Count)))
	}
	rows = append(rows, mutedStyle.Render("Total: "+strconv.Itoa(n.Total)))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Feedback draws the open answers of both cohorts side by side.
func Feedback(corpus dataset.FeedbackCorpus) string {
	columns := make([]string, 0, 2)
	for _, c := range dataset.Cohorts() {
		items := []string{lipgloss.NewStyle().Bold(true).Foreground(cohortColor(c)).Render(cohortName(c))}
		responses := corpus.For(c)
		if len(responses) == 0 {
			items = append(items, mutedStyle.Render("(sin respuestas)"))
		}
		for _, r := range responses {
			items = append(items, "• "+strings.TrimSpace(r))
		}
		columns = append(columns, panelStyle.Width(feedbackWidth).Render(lipgloss.JoinVertical(lipgloss.Left, items...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(corpus.Title),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

// Summary draws the header KPI cards followed by the qualitative insights.
func Summary(s service.Summary, insights []dataset.Insight) string {
	cards := []string{
		card("Respuestas", strconv.Itoa(s.TotalResponses), colorTitle),
		card("Nota media", tooltip.FormatFixed(s.GlobalMean, 2), colorTitle),
	}
	for _, c := range s.Cohorts {
		cohort := dataset.Cohort(c.Cohort)
		cards = append(cards, card(
			cohortName(cohort)+" participación",
			tooltip.FormatFixed(c.Participation, 1)+"% ("+strconv.Itoa(c.Responses)+"/"+strconv.Itoa(c.Enrolled)+")",
			cohortColor(cohort),
		))
	}
	sections := []string{lipgloss.JoinHorizontal(lipgloss.Top, cards...)}
	for _, in := range insights {
		sections = append(sections, panelStyle.Width(2*feedbackWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(in.Heading), in.Body),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func card(label, value string, color lipgloss.Color) string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(label),
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(value),
	))
}
