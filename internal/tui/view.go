package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/render"
)

type glyph uint8

const (
	glyphEmpty glyph = iota
	glyphEdge
	glyphDrag
	glyphDragCrossing
	glyphAnchor
	glyphDragged
)

var (
	edgeStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	dragStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#4fc3f7"))
	dragCrossingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	anchorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	draggedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd400")).Bold(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
)

var glyphs = [...]struct {
	r     rune
	style *lipgloss.Style
}{
	glyphEmpty:        {' ', nil},
	glyphEdge:         {'·', &edgeStyle},
	glyphDrag:         {'-', &dragStyle},
	glyphDragCrossing: {'x', &dragCrossingStyle},
	glyphAnchor:       {'o', &anchorStyle},
	glyphDragged:      {'@', &draggedStyle},
}

// View renders the canvas, a status line and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 || m.state == nil {
		return "waiting for terminal size..."
	}

	var b strings.Builder
	grid := m.rasterize()
	for _, row := range grid {
		writeRow(&b, row)
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

// rasterize draws edges, the drag line and anchors into a glyph grid,
// later layers overwriting earlier ones.
func (m Model) rasterize() [][]glyph {
	rows, cols := m.canvasRows(), m.width
	grid := make([][]glyph, rows)
	for r := range grid {
		grid[r] = make([]glyph, cols)
	}

	set := func(col, row int, g glyph) {
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = g
		}
	}
	line := func(a, b planar.Point, g glyph) {
		c0, r0 := m.pointToCell(a)
		c1, r1 := m.pointToCell(b)
		bresenham(c0, r0, c1, r1, func(c, r int) { set(c, r, g) })
	}

	anchors := m.state.Anchors()
	for _, e := range m.state.Edges() {
		line(anchors[e.From].Pos, anchors[e.To].Pos, glyphEdge)
	}

	dragged, dragging := m.state.DraggedAnchor()
	if dragging && m.hasPointer {
		g := glyphDrag
		if m.state.IsDraggingIntersecting(m.pointer) {
			g = glyphDragCrossing
		}
		line(anchors[dragged].Pos, m.pointer, g)
	}

	for i, a := range anchors {
		c, r := m.pointToCell(a.Pos)
		if dragging && i == dragged {
			set(c, r, glyphDragged)
		} else {
			set(c, r, glyphAnchor)
		}
	}
	return grid
}

// writeRow renders runs of equal glyphs with a single style call each.
func writeRow(b *strings.Builder, row []glyph) {
	for start := 0; start < len(row); {
		end := start + 1
		for end < len(row) && row[end] == row[start] {
			end++
		}
		g := glyphs[row[start]]
		run := strings.Repeat(string(g.r), end-start)
		if g.style != nil {
			run = g.style.Render(run)
		}
		b.WriteString(run)
		start = end
	}
}

func (m Model) statusLine() string {
	line := render.Summary(m.state) + " | " + m.status
	if m.toneOn {
		line += fmt.Sprintf(" | %.0f Hz", m.tone.Cell().Frequency())
	}
	if m.wiggle {
		line += " | wiggle"
	}
	return line
}

func (m Model) helpLine() string {
	parts := make([]string, 0, 6)
	for _, k := range m.keys.bindings() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "drag: connect • " + strings.Join(parts, " • ")
}

// bresenham visits every cell on the line from (x0,y0) to (x1,y1).
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
