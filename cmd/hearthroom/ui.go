package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mhollis/hearthroom/internal/config"
	"github.com/mhollis/hearthroom/pkg/dialogue"
	"github.com/mhollis/hearthroom/pkg/ledger"
	"github.com/mhollis/hearthroom/pkg/spirit"
)

const valueStep = 0.05

// RoomUI is the BubbleTea model that runs the room.
// https://github.com/charmbracelet/bubbletea
type RoomUI struct {
	cfg        *config.Config
	controller *dialogue.Controller
	registry   *spirit.Registry

	transcript viewport.Model
	lines      []string
	lastLine   string

	hovered  int
	lastTick time.Time
	width    int
	height   int
	ready    bool
	status   string
}

type tickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	spiritStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	hoveredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true)

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")) // soft green

	lineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	meterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	bandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	warmthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("209")) // ember orange

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green
)

var titleCaser = cases.Title(language.English)

// NewRoomUI creates the UI model.
func NewRoomUI(cfg *config.Config, controller *dialogue.Controller, registry *spirit.Registry) RoomUI {
	vp := viewport.New(60, 10)
	return RoomUI{
		cfg:        cfg,
		controller: controller,
		registry:   registry,
		transcript: vp,
		lastTick:   time.Now(),
	}
}

// Init schedules the first engine tick.
func (m RoomUI) Init() tea.Cmd {
	return m.tickCmd()
}

func (m RoomUI) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles input and tick messages.
func (m RoomUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		m.controller.Tick(now.Sub(m.lastTick))
		m.lastTick = now
		m.syncTranscript()
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.transcript.Width = msg.Width - 4
		m.transcript.Height = max(4, msg.Height-16)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m RoomUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.controller.View()
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.controller.Close()
		return m, nil
	case "y":
		if err := clipboard.WriteAll(strings.Join(m.lines, "\n")); err == nil {
			m.status = "transcript copied"
		}
		return m, nil
	}

	switch v.State {
	case dialogue.StateClosed:
		switch msg.String() {
		case "left", "h":
			m.hovered = (m.hovered + m.registry.Len() - 1) % m.registry.Len()
			m.controller.Hover(m.registry.All()[m.hovered].ID)
		case "right", "l", "tab":
			m.hovered = (m.hovered + 1) % m.registry.Len()
			m.controller.Hover(m.registry.All()[m.hovered].ID)
		case "enter", " ":
			m.controller.Open(m.registry.All()[m.hovered].ID)
		}

	case dialogue.StatePresenting:
		if msg.String() == "enter" || msg.String() == " " {
			m.controller.Advance()
		}

	case dialogue.StateChoicePending:
		switch msg.String() {
		case "1", "2", "3":
			m.controller.SelectChoice(int(msg.String()[0] - '1'))
		}

	case dialogue.StateChallengeActive:
		m.handleChallengeKey(msg, v)
	}

	m.syncTranscript()
	return m, nil
}

func (m *RoomUI) handleChallengeKey(msg tea.KeyMsg, v dialogue.View) {
	if v.Session == nil || v.Session.Challenge == nil {
		return
	}
	ch := v.Session.Challenge

	switch ch.Kind {
	case spirit.KindCalibration:
		switch msg.String() {
		case "left", "h":
			m.controller.SetValue(ch.Value - valueStep)
		case "right", "l":
			m.controller.SetValue(ch.Value + valueStep)
		case "e", "enter":
			m.controller.Evaluate()
		case "r":
			m.controller.ResetValue()
		}
	case spirit.KindSteady:
		switch msg.String() {
		case "f":
			m.controller.Focus()
		case "a", "enter":
			m.controller.Attempt()
		case "z":
			m.controller.Rest()
		}
	case spirit.KindGathering:
		switch msg.String() {
		case "p", "enter":
			m.controller.Place("")
		case "1", "2", "3":
			i := int(msg.String()[0] - '1')
			if i < len(ch.Placements) {
				m.controller.Place(ch.Placements[i])
			}
		}
	}
}

// syncTranscript appends newly presented lines to the scrollback.
func (m *RoomUI) syncTranscript() {
	v := m.controller.View()
	if v.Session == nil || v.Session.Line == "" || v.Session.Line == m.lastLine {
		return
	}
	m.lastLine = v.Session.Line
	m.lines = append(m.lines, fmt.Sprintf("%s: %s", titleCaser.String(v.Session.Name), v.Session.Line))
	m.transcript.SetContent(wordwrap.String(strings.Join(m.lines, "\n"), m.transcript.Width))
	m.transcript.GotoBottom()
}

// View renders the room from the controller's snapshot.
func (m RoomUI) View() string {
	if !m.ready {
		return "lighting the room..."
	}
	v := m.controller.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("The Quiet Room"))
	b.WriteString("  ")
	b.WriteString(m.renderWarmth(v.Ledger))
	b.WriteString("\n\n")
	b.WriteString(m.renderSpirits(v))
	b.WriteString("\n\n")
	b.WriteString(m.transcript.View())
	b.WriteString("\n")
	b.WriteString(m.renderSession(v))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.helpLine(v)))
	return b.String()
}

func (m RoomUI) renderWarmth(snap ledger.Snapshot) string {
	filled := int(snap.Warmth * 10)
	bar := strings.Repeat("●", filled) + strings.Repeat("○", 10-filled)
	return warmthStyle.Render(fmt.Sprintf("warmth %s  fragments %d/%d  [%s]",
		bar, snap.Count, len(snap.Slots), snap.Tier))
}

func (m RoomUI) renderSpirits(v dialogue.View) string {
	parts := make([]string, 0, len(v.Spirits))
	for _, s := range v.Spirits {
		label := s.Icon + " " + titleCaser.String(s.Name)
		switch {
		case s.Hovered:
			label = hoveredStyle.Render(label)
		case s.Complete:
			label = completeStyle.Render(label + " ✓")
		default:
			label = spiritStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return wordwrap.String(strings.Join(parts, "   "), m.width-2)
}

func (m RoomUI) renderSession(v dialogue.View) string {
	if v.Session == nil {
		return helpStyle.Render("Something is hiding in this room. Look closer.")
	}

	var b strings.Builder
	b.WriteString(speakerStyle.Render(titleCaser.String(v.Session.Name)))
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(wordwrap.String(v.Session.Line, m.width-4)))
	b.WriteString("\n")

	for i, choice := range v.Session.Choices {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("  %d) %s", i+1, choice.Label)))
		b.WriteString("\n")
	}

	if ch := v.Session.Challenge; ch != nil {
		b.WriteString(m.renderChallenge(ch))
	}
	return b.String()
}

func (m RoomUI) renderChallenge(ch *dialogue.ChallengeView) string {
	switch ch.Kind {
	case spirit.KindCalibration:
		return m.renderMeter("value", ch.Value) + "\n" +
			bandStyle.Render(fmt.Sprintf("  settle it between %.2f and %.2f", ch.BandMin, ch.BandMax))
	case spirit.KindSteady:
		return m.renderMeter("instability", ch.Instability) + "\n" +
			meterStyle.Render(fmt.Sprintf("  steady for %d ticks  progress %d/%d", ch.Streak, ch.Progress, ch.ProgressTarget))
	case spirit.KindGathering:
		var b strings.Builder
		b.WriteString(meterStyle.Render(fmt.Sprintf("  gathered %d of %d", ch.Count, ch.CountTarget)))
		b.WriteString("\n")
		for i, p := range ch.Placements {
			b.WriteString(choiceStyle.Render(fmt.Sprintf("  %d) %s", i+1, p)))
			b.WriteString("\n")
		}
		return b.String()
	}
	return ""
}

func (m RoomUI) renderMeter(name string, value float64) string {
	width := 24
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return meterStyle.Render(fmt.Sprintf("  %s %s %.2f", name, bar, value))
}

func (m RoomUI) helpLine(v dialogue.View) string {
	switch v.State {
	case dialogue.StateClosed:
		return "←/→ look around • enter greet • y copy transcript • q quit"
	case dialogue.StatePresenting:
		return "space continue • esc step away • q quit"
	case dialogue.StateChoicePending:
		return "1-3 choose • esc step away • q quit"
	case dialogue.StateChallengeActive:
		if v.Session != nil && v.Session.Challenge != nil {
			switch v.Session.Challenge.Kind {
			case spirit.KindCalibration:
				return "←/→ adjust • e settle • r start over • esc step away"
			case spirit.KindSteady:
				return "f focus • a reach out • z rest • esc step away"
			case spirit.KindGathering:
				return "1-3 or p place • esc step away"
			}
		}
	}
	return "q quit"
}
