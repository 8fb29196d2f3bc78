// Package report renders a summary of the points and connections logs.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/philipparndt/photodist/internal/journal"
	"github.com/philipparndt/photodist/pkg/analysis"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	labelStyle  = lipgloss.NewStyle().Width(12)
	cellStyle   = lipgloss.NewStyle().Width(10).Align(lipgloss.Right).PaddingRight(1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Options selects the optional sections of a report
type Options struct {
	// Top is how many of the longest and shortest lines are listed
	Top int
	// Lines with a distance in [MinLength, MaxLength] are listed when MaxLength > 0
	MinLength float64
	MaxLength float64
}

// Render writes the connection table, statistics and the selected line lists to w
func Render(w io.Writer, points []int, connections []journal.Connection, opts Options) error {
	edges := make([]analysis.EdgeInfo, len(connections))
	for i, c := range connections {
		edges[i] = analysis.EdgeInfo{StartID: c.StartID, EndID: c.EndID, Length: c.Distance}
	}
	result := analysis.AnalyzeEdges(edges)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Measurement Report"))
	b.WriteString("\n\n")

	if len(edges) == 0 {
		b.WriteString("No connections recorded.\n")
	} else {
		b.WriteString(boxStyle.Render(edgeTable(edges)))
		b.WriteString("\n\n")
	}

	stats := [][2]string{
		{"Points", strconv.Itoa(len(points))},
		{"Lines", strconv.Itoa(result.EdgeCount)},
		{"Self lines", strconv.Itoa(result.SelfLoops)},
		{"Total", analysis.FormatMeasurement(result.TotalLength, "px")},
		{"Shortest", analysis.FormatMeasurement(result.MinEdgeLength, "px")},
		{"Longest", analysis.FormatMeasurement(result.MaxEdgeLength, "px")},
		{"Average", analysis.FormatMeasurement(result.AvgEdgeLength, "px")},
	}
	rows := make([]string, 0, len(stats)+1)
	rows = append(rows, headerStyle.Render("Statistics"))
	for _, s := range stats {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(s[0]), s[1]))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")

	writeEdgeList(&b, "Longest", analysis.FindLongestEdges(result, opts.Top))
	writeEdgeList(&b, "Shortest", analysis.FindShortestEdges(result, opts.Top))
	if opts.MaxLength > 0 {
		title := fmt.Sprintf("Between %.2f and %.2f px:", opts.MinLength, opts.MaxLength)
		writeEdgeList(&b, title, analysis.FindEdgesByLength(result, opts.MinLength, opts.MaxLength))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeEdgeList writes a numbered section; a title ending in ':' is kept as is,
// otherwise the count is appended
func writeEdgeList(b *strings.Builder, title string, edges []analysis.EdgeInfo) {
	if len(edges) == 0 {
		return
	}
	if !strings.HasSuffix(title, ":") {
		title = fmt.Sprintf("%s %d", title, len(edges))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for i, e := range edges {
		fmt.Fprintf(b, "%2d. %d-%d %s\n", i+1, e.StartID, e.EndID, analysis.FormatMeasurement(e.Length, "px"))
	}
}

// edgeTable lays out one row per connection in log order
func edgeTable(edges []analysis.EdgeInfo) string {
	row := func(cells ...string) string {
		rendered := make([]string, len(cells))
		for i, c := range cells {
			rendered[i] = cellStyle.Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	rows := []string{headerStyle.Render(row("#", "Start", "End", "Distance"))}
	for i, e := range edges {
		rows = append(rows, row(strconv.Itoa(i+1), strconv.Itoa(e.StartID), strconv.Itoa(e.EndID), fmt.Sprintf("%.2f", e.Length)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
