// Package chart renders a time series as a terminal line chart. It is
// the rendering side of the charting boundary: it consumes points and
// an axis domain and knows nothing about assessments.
package chart

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"assay/internal/series"
	"assay/internal/ui/theme"
)

// cell kinds in the plot grid, used to pick a style per rune.
const (
	cellEmpty = iota
	cellMean
	cellLine
	cellPoint
)

// Config controls chart geometry. Lo and Hi bound the value axis.
type Config struct {
	Lo     float64
	Hi     float64
	Width  int
	Height int
}

// Render draws the series as a line chart with a dashed mean overlay
// and a time axis labeled with the first and last observation dates.
// An empty series renders as a placeholder message.
func Render(points []series.Point, cfg Config) string {
	if len(points) == 0 {
		return theme.Hint.Render("No data available")
	}
	if cfg.Height < 3 {
		cfg.Height = 3
	}

	gutter := len(fmt.Sprintf("%g", cfg.Hi-0.5)) + 1
	plotWidth := cfg.Width - gutter - 1
	if plotWidth < 8 {
		plotWidth = 8
	}

	grid := make([][]int, cfg.Height)
	for i := range grid {
		grid[i] = make([]int, plotWidth)
	}

	if mean, ok := series.Mean(points); ok {
		if row, ok := rowFor(mean, cfg); ok {
			for col := range grid[row] {
				if col%2 == 0 {
					grid[row][col] = cellMean
				}
			}
		}
	}

	cols := columnsFor(points, plotWidth)
	plotSegments(grid, points, cols, cfg)
	for i, p := range points {
		if row, ok := rowFor(p.Value, cfg); ok {
			grid[row][cols[i]] = cellPoint
		}
	}

	var b strings.Builder
	for row := 0; row < cfg.Height; row++ {
		b.WriteString(gutterLabel(row, gutter, cfg))
		b.WriteString(theme.Subtitle.Render("┤"))
		b.WriteString(renderRow(grid[row]))
		b.WriteString("\n")
	}

	// Time axis.
	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(theme.Subtitle.Render("└" + strings.Repeat("─", plotWidth)))
	b.WriteString("\n")
	b.WriteString(timeLabels(points, gutter+1, plotWidth))

	if mean, ok := series.Mean(points); ok {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", gutter+1))
		b.WriteString(theme.Badge.Render(fmt.Sprintf("Avg: %.1f", mean)))
	}

	return b.String()
}

// rowFor maps a value into a grid row, top row = Hi.
func rowFor(v float64, cfg Config) (int, bool) {
	if cfg.Hi <= cfg.Lo {
		return 0, false
	}
	row := int((cfg.Hi - v) / (cfg.Hi - cfg.Lo) * float64(cfg.Height-1))
	if row < 0 || row >= cfg.Height {
		return 0, false
	}
	return row, true
}

// columnsFor spreads the points over the plot width by timestamp. A
// single point lands in the middle.
func columnsFor(points []series.Point, plotWidth int) []int {
	cols := make([]int, len(points))
	tMin := points[0].Timestamp
	tMax := points[len(points)-1].Timestamp
	if tMax == tMin {
		for i := range cols {
			cols[i] = plotWidth / 2
		}
		return cols
	}
	for i, p := range points {
		cols[i] = int(float64(p.Timestamp-tMin) / float64(tMax-tMin) * float64(plotWidth-1))
	}
	return cols
}

// plotSegments draws straight interpolation between consecutive points.
func plotSegments(grid [][]int, points []series.Point, cols []int, cfg Config) {
	for i := 1; i < len(points); i++ {
		c0, c1 := cols[i-1], cols[i]
		v0, v1 := points[i-1].Value, points[i].Value
		if c1 <= c0 {
			continue
		}
		for c := c0; c <= c1; c++ {
			frac := float64(c-c0) / float64(c1-c0)
			v := v0 + (v1-v0)*frac
			if row, ok := rowFor(v, cfg); ok && grid[row][c] != cellPoint {
				grid[row][c] = cellLine
			}
		}
	}
}

func gutterLabel(row, gutter int, cfg Config) string {
	var label string
	switch row {
	case 0:
		label = fmt.Sprintf("%g", cfg.Hi-0.5)
	case cfg.Height - 1:
		label = fmt.Sprintf("%g", cfg.Lo+0.5)
	}
	return theme.Subtitle.Render(fmt.Sprintf("%*s", gutter, label))
}

func renderRow(cells []int) string {
	var b strings.Builder
	for _, kind := range cells {
		switch kind {
		case cellPoint:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●"))
		case cellLine:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("·"))
		case cellMean:
			b.WriteString(theme.Badge.Render("╌"))
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

// timeLabels renders the first and last observation dates under the
// axis, as far apart as the width allows.
func timeLabels(points []series.Point, indent, plotWidth int) string {
	first := time.UnixMilli(points[0].Timestamp).Format("Jan 02")
	last := time.UnixMilli(points[len(points)-1].Timestamp).Format("Jan 02")

	if len(points) == 1 || first == last {
		return strings.Repeat(" ", indent) + theme.Subtitle.Render(first)
	}

	gap := plotWidth - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", indent) +
		theme.Subtitle.Render(first+strings.Repeat(" ", gap)+last)
}
