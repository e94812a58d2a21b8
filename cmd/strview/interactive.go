package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	boundaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	continuationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input    textinput.Model
	rep      report
	repErr   error
	capacity int
}

func newInteractiveModel(capacity int) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type text to inspect"
	ti.Focus()
	ti.CharLimit = 512

	m := &interactiveModel{
		input:    ti,
		capacity: capacity,
	}
	m.refresh()
	return m
}

func runInteractive(capacity int) error {
	if _, err := inspectAt(capacity, ""); err != nil {
		return err
	}
	_, err := tea.NewProgram(newInteractiveModel(capacity), tea.WithAltScreen()).Run()
	return err
}

func (m *interactiveModel) refresh() {
	m.rep, m.repErr = inspectAt(m.capacity, m.input.Value())
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("strview: fixed string inspector (cap %d)", m.capacity)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.repErr != nil {
		b.WriteString(errorStyle.Render(m.repErr.Error()))
	} else {
		b.WriteString(m.rep.renderStyled())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc/ctrl+c: quit"))
	return b.String()
}

func (r *report) renderStyled() string {
	var b strings.Builder

	if r.rejectErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("rejected: %v", r.rejectErr)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render("capacity:"),
			valueStyle.Render(fmt.Sprintf("%d bytes", r.capacity)))
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("content: "),
		valueStyle.Render(fmt.Sprintf("%q", r.content)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("length:  "),
		valueStyle.Render(fmt.Sprintf("%d/%d bytes, ascii=%v", r.length, r.capacity, r.ascii)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("bytes:   "),
		styledBytes([]byte(r.content), r.boundaries))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("upper:   "),
		valueStyle.Render(fmt.Sprintf("%q", r.upper)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("lower:   "),
		valueStyle.Render(fmt.Sprintf("%q", r.lower)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("wire:    "),
		valueStyle.Render(fmt.Sprintf("% x (%d bytes, max %d)", r.encoded, len(r.encoded), r.maxEncoded)))
	return b.String()
}

// styledBytes renders the hex dump with rune-boundary bytes highlighted
// and continuation bytes dimmed.
func styledBytes(data []byte, boundaries []bool) string {
	parts := make([]string, len(data))
	for i, c := range data {
		hex := fmt.Sprintf("%02x", c)
		if i < len(boundaries) && boundaries[i] {
			parts[i] = boundaryStyle.Render(hex)
		} else {
			parts[i] = continuationStyle.Render(hex)
		}
	}
	return strings.Join(parts, " ")
}
