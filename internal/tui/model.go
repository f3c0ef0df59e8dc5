// Package tui hosts a planar.State in the terminal.
//
// Each terminal cell maps to a fixed rectangle of editor units. The left
// mouse button drives the drag gesture and single keys trigger bulk edits.
package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/internal/config"
	"github.com/gogpu/planar/tone"
)

// Cell size in editor units. Terminal cells are about twice as tall as
// they are wide.
const (
	DefaultCellWidth  float32 = 4
	DefaultCellHeight float32 = 8
)

// frameInterval is the period of the wiggle and tone updates.
const frameInterval = 50 * time.Millisecond

type frameMsg time.Time

// ConfigMsg delivers a reloaded config to a running Model.
type ConfigMsg struct {
	Config *config.Config
}

// Options configures a Model.
type Options struct {
	CellWidth    float32
	CellHeight   float32
	WiggleAmount float32
	Tone         *tone.Controller
	ToneEnabled  bool
	Keys         *KeyMap

	// NewState builds the state once the terminal size is known, from the
	// canvas size in editor units. Used only when New gets a nil state.
	NewState func(width, height float32) *planar.State
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	state    *planar.State
	newState func(width, height float32) *planar.State
	tone     *tone.Controller
	keys     KeyMap

	width, height int
	cellW, cellH  float32

	pointer    planar.Point
	hasPointer bool

	wiggle       bool
	wiggleAmount float32
	toneOn       bool

	status   string
	quitting bool
}

// New creates a Model editing s. When s is nil, opts.NewState creates the
// state on the first window size message.
func New(s *planar.State, opts Options) Model {
	m := Model{
		state:        s,
		newState:     opts.NewState,
		tone:         opts.Tone,
		keys:         DefaultKeyMap,
		cellW:        opts.CellWidth,
		cellH:        opts.CellHeight,
		wiggleAmount: opts.WiggleAmount,
		toneOn:       opts.ToneEnabled,
		status:       "click to add anchors, drag between anchors to connect",
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if m.cellW <= 0 {
		m.cellW = DefaultCellWidth
	}
	if m.cellH <= 0 {
		m.cellH = DefaultCellHeight
	}
	if m.tone == nil {
		m.tone = tone.NewController(nil, nil)
	}
	return m
}

// State returns the edited state.
func (m Model) State() *planar.State { return m.state }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update handles terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.state == nil && m.newState != nil {
			m.state = m.newState(float32(m.width)*m.cellW, float32(m.canvasRows())*m.cellH)
		}
		return m, nil

	case tea.MouseMsg:
		if m.state != nil {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if m.state == nil {
			return m, frame()
		}
		if m.wiggle {
			m.state.Wiggle(m.wiggleAmount)
		}
		if m.toneOn && m.hasPointer {
			m.tone.Update(m.state, m.pointer)
		}
		return m, frame()

	case ConfigMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.pointer = m.cellToPoint(msg.X, msg.Y)
	m.hasPointer = true

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		// A second press during a drag is ignored.
		if _, dragging := m.state.DraggedAnchor(); dragging {
			return
		}
		if i, ok := m.state.TryStartDrag(m.pointer); ok {
			m.status = fmt.Sprintf("dragging from anchor %d", i)
		} else {
			m.status = fmt.Sprintf("added anchor %d", m.state.AnchorCount()-1)
		}

	case tea.MouseActionRelease:
		from, dragging := m.state.DraggedAnchor()
		if !dragging {
			return
		}
		if e, ok := m.state.TryEndDrag(m.pointer); ok {
			m.status = fmt.Sprintf("connected %d to %d", e.From, e.To)
		} else {
			m.status = fmt.Sprintf("no edge from anchor %d", from)
		}
		m.tone.Reset()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.tone.Cell().Stop()
		return m, tea.Quit

	case m.state == nil:
		return m, nil

	case key.Matches(msg, m.keys.Randomize):
		m.state.RandomizeEdges()
		m.status = fmt.Sprintf("randomized %d edges", m.state.EdgeCount())

	case key.Matches(msg, m.keys.Clear):
		m.state.ClearEdges()
		m.status = "cleared edges"

	case key.Matches(msg, m.keys.Remove):
		if !m.hasPointer {
			return m, nil
		}
		if i, ok := m.state.HitTest(m.pointer); ok && m.state.RemoveAnchor(i) {
			m.status = fmt.Sprintf("removed anchor %d", i)
		}

	case key.Matches(msg, m.keys.Wiggle):
		m.wiggle = !m.wiggle
		m.status = fmt.Sprintf("wiggle %s", onOff(m.wiggle))

	case key.Matches(msg, m.keys.Tone):
		m.toneOn = !m.toneOn
		if m.toneOn {
			m.tone.Cell().SetFrequency(tone.BaseFrequency)
		} else {
			m.tone.Cell().Stop()
		}
		m.tone.Reset()
		m.status = fmt.Sprintf("tone %s", onOff(m.toneOn))
	}
	return m, nil
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.tone.Cell().SetVolume(cfg.Tone.Volume)
	m.tone.SetSmoothing(cfg.Tone.Smoothing)
	m.wiggleAmount = cfg.Interaction.WiggleAmount
	m.status = "config reloaded"
}

// canvasRows is the number of rows available for drawing; the last two
// rows hold the status and help lines.
func (m Model) canvasRows() int {
	return max(m.height-2, 1)
}

// cellToPoint converts a terminal cell to the editor point at its centre.
func (m Model) cellToPoint(col, row int) planar.Point {
	cols, rows := m.width, m.canvasRows()
	return planar.Pt(
		float32(col-cols/2)*m.cellW,
		float32(rows/2-row)*m.cellH,
	)
}

// pointToCell is the inverse of cellToPoint, rounding to the nearest cell.
func (m Model) pointToCell(p planar.Point) (col, row int) {
	cols, rows := m.width, m.canvasRows()
	col = int(math.Round(float64(p.X/m.cellW))) + cols/2
	row = rows/2 - int(math.Round(float64(p.Y/m.cellH)))
	return col, row
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
