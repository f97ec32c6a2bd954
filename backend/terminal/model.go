// Package terminal hosts a scroll view in a Bubble Tea program. Each item
// is one terminal row; scroll units are rows.
package terminal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/scrollview"
)

// frameInterval is the tick rate driving inertia and reconciliation.
const frameInterval = time.Second / 60

// headerRows is the number of rows above the viewport.
const headerRows = 1

// ScrollView is the part of a scroll view the model drives.
// RecycleView and DefaultView implement it.
type ScrollView interface {
	scrollview.View
	Viewport() scrollview.Viewport
	SetViewport(vp scrollview.Viewport)
	Scroller() *scrollview.Scroller
	VisibleItems() []scrollview.Placement
}

// Labeled is implemented by items that render as text.
type Labeled interface {
	Text() string
}

// Styles holds the lipgloss styles of the model.
type Styles struct {
	Title  lipgloss.Style
	Status lipgloss.Style
	Row    lipgloss.Style
	RowAlt lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Row:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RowAlt: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	}
}

type tickMsg time.Time

// Model is a Bubble Tea model hosting one scroll view.
type Model struct {
	view   ScrollView
	input  *scrollview.InputState
	keys   KeyMap
	help   help.Model
	styles Styles
	title  string

	width, height int
	lastTick      time.Time
}

// New creates a model around view.
func New(view ScrollView, title string) Model {
	return Model{
		view:   view,
		input:  scrollview.NewInputState(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		title:  title,
	}
}

// Run starts a full-screen program with mouse support and blocks until the
// user quits.
func Run(view ScrollView, title string) error {
	p := tea.NewProgram(New(view, title), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()

	case tea.KeyMsg:
		scroller := m.view.Scroller()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ScrollDown):
			scroller.Scroll(scrollview.Vec2{Y: -1})
		case key.Matches(msg, m.keys.ScrollUp):
			scroller.Scroll(scrollview.Vec2{Y: 1})
		case key.Matches(msg, m.keys.PageDown):
			scroller.Page(1)
		case key.Matches(msg, m.keys.PageUp):
			scroller.Page(-1)
		case key.Matches(msg, m.keys.Top):
			m.top()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		}

	case tea.MouseMsg:
		m.routeMouse(msg)

	case tickMsg:
		now := time.Time(msg)
		var dt float32
		if !m.lastTick.IsZero() {
			dt = float32(now.Sub(m.lastTick).Seconds())
		}
		m.lastTick = now
		m.view.Tick(dt)
		return m, tick()
	}
	return m, nil
}

// resize fits the viewport between the header and the help footer.
func (m *Model) resize() {
	rows := m.height - headerRows - lipgloss.Height(m.help.View(m.keys))
	vp := m.view.Viewport()
	vp.Size = scrollview.Vec2{X: float32(m.width), Y: float32(max(rows, 1))}
	vp.Transform = scrollview.Translate(0, headerRows)
	m.view.SetViewport(vp)
	m.settle()
}

// settle reconciles until the mounted window covers the resized viewport.
func (m *Model) settle() {
	if r, ok := m.view.(interface{ Settle() int }); ok {
		r.Settle()
	}
}

// top jumps back to the first item.
func (m *Model) top() {
	switch v := m.view.(type) {
	case interface{ JumpTo(int) error }:
		_ = v.JumpTo(0)
	case interface{ SetIndex(int) error }:
		_ = v.SetIndex(0)
	}
}

// routeMouse converts a mouse event into one frame of input.
func (m *Model) routeMouse(msg tea.MouseMsg) {
	in := m.input
	in.SetMousePos(float32(msg.X), float32(msg.Y))

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		in.SetMouseWheel(0, 1)
	case tea.MouseButtonWheelDown:
		in.SetMouseWheel(0, -1)
	case tea.MouseButtonWheelLeft:
		in.SetMouseWheel(1, 0)
	case tea.MouseButtonWheelRight:
		in.SetMouseWheel(-1, 0)
	case tea.MouseButtonLeft:
		in.SetMouseButton(scrollview.MouseButtonLeft, msg.Action != tea.MouseActionRelease)
	}
	if msg.Action == tea.MouseActionRelease {
		in.SetMouseButton(scrollview.MouseButtonLeft, false)
	}

	m.view.HandleInput(in)
	in.Reset()
}

// View implements tea.Model.
func (m Model) View() string {
	vp := m.view.Viewport()
	rows := int(vp.Size.Y)
	width := int(vp.Size.X)

	lines := make([]string, rows)
	for _, p := range m.view.VisibleItems() {
		row := int(math.Floor(float64(p.Rect.Y)))
		if row < 0 || row >= rows {
			continue
		}
		style := m.styles.Row
		if p.Index%2 == 1 {
			style = m.styles.RowAlt
		}
		lines[row] = style.Width(width).MaxWidth(width).Render(label(p))
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteByte('\n')
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	title := m.styles.Title.Render(m.title)
	w, ok := m.view.(interface{ Window() *scrollview.Window })
	if !ok {
		return title
	}
	win := w.Window()
	status := fmt.Sprintf(" mounted [%d,%d) pooled %d", win.Start(), win.End(), win.Pool().Len())
	return title + m.styles.Status.Render(status)
}

func label(p scrollview.Placement) string {
	if l, ok := p.Item.(Labeled); ok {
		return l.Text()
	}
	return fmt.Sprintf("#%d", p.Index)
}
