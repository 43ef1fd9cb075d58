package triangle

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas cells. Terminal cells are roughly twice as tall as wide, so the
// rasterizer halves the vertical resolution to keep proportions.
const (
	edgeRune   = '·'
	vertexRune = '●'
	cellAspect = 2.0
)

var (
	edgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "45"})
	vertexStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "208"})
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
)

// Render rasterizes the triangle onto a character canvas of the given width
// and returns it with an angle and side-length caption. Width below 20 is
// clamped so the shape stays recognizable.
func (t *Triangle) Render(width int) string {
	if width < 20 {
		width = 20
	}

	minX := math.Min(0, t.P3.X)
	maxX := math.Max(1, t.P3.X)
	spanX := maxX - minX
	spanY := t.P3.Y

	cols := width
	rows := int(math.Round(float64(cols) * (spanY / spanX) / cellAspect))
	if rows < 2 {
		rows = 2
	}

	grid := make([][]rune, rows+1)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	toCell := func(p Point) (col, row int) {
		col = int(math.Round((p.X - minX) / spanX * float64(cols-1)))
		row = rows - int(math.Round(p.Y/spanY*float64(rows)))
		return col, row
	}

	plotLine(grid, toCell, t.P1, t.P2)
	plotLine(grid, toCell, t.P2, t.P3)
	plotLine(grid, toCell, t.P1, t.P3)
	for _, p := range []Point{t.P1, t.P2, t.P3} {
		col, row := toCell(p)
		grid[row][col] = vertexRune
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(styleRow(line))
		sb.WriteByte('\n')
	}

	_, right, left := t.SideLengths()
	sb.WriteString(labelStyle.Render(fmt.Sprintf(
		"angles %v˚ %v˚ %v˚ · relative sides 1, %.2f, %.2f",
		t.A1, t.A2, t.A3, right, left)))
	return sb.String()
}

// plotLine samples the segment densely enough that no cell gap appears.
func plotLine(grid [][]rune, toCell func(Point) (int, int), a, b Point) {
	ac, ar := toCell(a)
	bc, br := toCell(b)
	steps := int(math.Max(math.Abs(float64(bc-ac)), math.Abs(float64(br-ar)))) * 2
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		p := Point{a.X + (b.X-a.X)*f, a.Y + (b.Y-a.Y)*f}
		col, row := toCell(p)
		if row >= 0 && row < len(grid) && col >= 0 && col < len(grid[row]) {
			grid[row][col] = edgeRune
		}
	}
}

// styleRow renders one canvas row, styling edges and vertices separately.
func styleRow(line []rune) string {
	var sb strings.Builder
	for _, r := range line {
		switch r {
		case edgeRune:
			sb.WriteString(edgeStyle.Render(string(r)))
		case vertexRune:
			sb.WriteString(vertexStyle.Render(string(r)))
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
