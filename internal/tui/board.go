// Package tui renders the assignment board in the terminal.
//
// The model polls the board.Syncer for its latest state on a short tick, so
// the screen follows background refreshes without the syncer knowing about
// bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"technician-board/internal/board"
	apperrors "technician-board/internal/errors"
	"technician-board/internal/roster"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const redrawInterval = 200 * time.Millisecond

type inputMode int

const (
	modeBrowse inputMode = iota
	modePin
)

type rowKind int

const (
	rowForeman rowKind = iota
	rowTechnician
)

// row is one selectable line of the board
type row struct {
	kind       rowKind
	department string
	foreman    roster.Foreman
	technician roster.Technician
}

type tickMsg time.Time

type unlockResultMsg struct {
	err error
}

type moveResultMsg struct {
	technician string
	err        error
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#1F4E79")).Padding(0, 1)
	deptStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FB3D5")).MarginTop(1)
	foremanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5CBA7"))
	techStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D5D8DC"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	pickedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F")).Bold(true)
	notesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")).Bold(true)
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	promptStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#1F4E79")).Padding(0, 1)
)

// Model is the bubbletea model for the board
type Model struct {
	ctx    context.Context
	syncer *board.Syncer
	lock   *board.LockController

	state  board.State
	rows   []row
	cursor int
	picked *roster.Technician
	mode   inputMode
	pin    textinput.Model
	status string

	width  int
	height int
}

// New creates a board model driven by syncer. ctx bounds the requests the model issues.
func New(ctx context.Context, syncer *board.Syncer) Model {
	pin := textinput.New()
	pin.Placeholder = "PIN"
	pin.CharLimit = 4
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '•'

	m := Model{
		ctx:    ctx,
		syncer: syncer,
		lock:   syncer.Lock(),
		pin:    pin,
	}
	m.sync()
	return m
}

// Init starts the redraw tick
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sync pulls the latest state from the syncer and rebuilds the row list
func (m *Model) sync() {
	m.state = m.syncer.State()
	m.rows = buildRows(m.state.View)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.picked != nil {
		if _, _, ok := m.state.View.Locate(m.picked.ID); !ok {
			m.picked = nil
		}
	}
}

func buildRows(v roster.View) []row {
	var rows []row
	for _, dept := range v.DepartmentNames() {
		for _, f := range v[dept].Foremen {
			rows = append(rows, row{kind: rowForeman, department: dept, foreman: f})
			for _, t := range f.Technicians {
				rows = append(rows, row{kind: rowTechnician, department: dept, foreman: f, technician: t})
			}
		}
	}
	return rows
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.sync()
		return m, tick()

	case unlockResultMsg:
		m.pin.Reset()
		switch {
		case msg.err == nil:
			m.mode = modeBrowse
			m.pin.Blur()
			m.status = "Board unlocked"
		case errors.Is(msg.err, apperrors.ErrInvalidPin):
			m.status = ""
		default:
			m.status = "PIN check failed: " + msg.err.Error()
		}
		return m, nil

	case moveResultMsg:
		m.picked = nil
		if msg.err != nil {
			m.status = fmt.Sprintf("Move of %s failed: %v", msg.technician, msg.err)
		} else {
			m.status = "Moved " + msg.technician
		}
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if m.mode == modePin {
			return m.updatePin(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updatePin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeBrowse
		m.pin.Reset()
		m.pin.Blur()
		return m, nil
	case "enter":
		return m, m.unlock(m.pin.Value())
	}

	var cmd tea.Cmd
	m.pin, cmd = m.pin.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.syncer.RequestRefresh()
		m.status = "Refreshing..."
	case "u":
		if m.lock.CanMove() {
			m.status = "Board is already unlocked"
			return m, nil
		}
		m.mode = modePin
		m.status = ""
		cmd := m.pin.Focus()
		return m, cmd
	case "l":
		m.lock.Lock()
		m.picked = nil
		m.status = "Board locked"
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "esc":
		m.picked = nil
		m.status = ""
	case " ":
		r, ok := m.current()
		if !ok || r.kind != rowTechnician {
			return m, nil
		}
		if !m.lock.CanMove() {
			m.status = "Board is locked, press u to unlock"
			return m, nil
		}
		t := r.technician
		m.picked = &t
		m.status = "Moving " + t.Name + ": select a foreman and press enter"
	case "enter":
		r, ok := m.current()
		if !ok || m.picked == nil {
			return m, nil
		}
		move := roster.Move{
			TechnicianID:   m.picked.ID,
			NewDepartment:  r.department,
			NewForemanName: r.foreman.Name,
			NewForemanID:   r.foreman.ID,
		}
		name := m.picked.Name
		m.status = "Saving..."
		return m, m.move(move, name)
	}
	return m, nil
}

func (m Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) unlock(pin string) tea.Cmd {
	ctx, lock := m.ctx, m.lock
	return func() tea.Msg {
		return unlockResultMsg{err: lock.Unlock(ctx, pin)}
	}
}

func (m Model) move(move roster.Move, name string) tea.Cmd {
	ctx, syncer := m.ctx, m.syncer
	return func() tea.Msg {
		return moveResultMsg{technician: name, err: syncer.Move(ctx, move)}
	}
}

// View renders the board
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")

	if len(m.rows) == 0 {
		switch {
		case m.state.Loading:
			b.WriteString("\nLoading assignments...\n")
		case !m.state.Online && m.state.LastUpdated.IsZero():
			b.WriteString("\nWaiting for the server...\n")
		default:
			b.WriteString("\nNo assignments\n")
		}
	}

	lastDept := ""
	for i, r := range m.rows {
		if r.department != lastDept {
			count := m.state.View[r.department].TechnicianCount()
			b.WriteString(deptStyle.Render(fmt.Sprintf("%s (%d)", r.department, count)))
			b.WriteString("\n")
			lastDept = r.department
		}
		line := m.renderRow(r)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.mode == modePin {
		prompt := "Enter PIN to unlock editing\n" + m.pin.View()
		if m.lock.PinError() {
			prompt += "\n" + errorStyle.Render("Incorrect PIN")
		}
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(prompt))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.state.LastError != "" {
		b.WriteString(errorStyle.Render("Last error: " + m.state.LastError))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select · space pick · enter drop · r refresh · u unlock · l lock · q quit"))

	return b.String()
}

func (m Model) header() string {
	conn := offlineStyle.Render("OFFLINE")
	if m.state.Online {
		conn = onlineStyle.Render("ONLINE")
	}
	parts := []string{titleStyle.Render("Technician Board"), conn, m.lock.State().String()}
	if !m.state.LastUpdated.IsZero() {
		parts = append(parts, "updated "+m.state.LastUpdated.Local().Format("15:04:05"))
	}
	if m.state.Saving {
		parts = append(parts, "saving...")
	}
	if m.state.Loading {
		parts = append(parts, "syncing...")
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderRow(r row) string {
	if r.kind == rowForeman {
		id := ""
		if r.foreman.ID != "" {
			id = " #" + r.foreman.ID
		}
		return foremanStyle.Render(fmt.Sprintf("  %s%s [%d]", r.foreman.Name, id, len(r.foreman.Technicians)))
	}

	marker := "    "
	style := techStyle
	if m.picked != nil && m.picked.ID == r.technician.ID {
		marker = "  * "
		style = pickedStyle
	}
	line := style.Render(fmt.Sprintf("%s%s #%s", marker, r.technician.Name, r.technician.ID))
	if r.technician.Notes != "" {
		line += " " + notesStyle.Render(r.technician.Notes)
	}
	return line
}
