/*
Package ui implements the terminal memory browser behind the memphora ui
command. Type a query and press enter to search the bound user's memories;
results are rendered with their relevance scores into a scrollback pane.
*/
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/memphora"
)

const gap = "\n\n"

const searchTimeout = 30 * time.Second

type model struct {
	viewport viewport.Model
	lines    []string
	textarea textarea.Model
	sdk      *memphora.Memphora
}

// New builds the memory browser around an initialized SDK.
func New(sdk *memphora.Memphora) tea.Model {
	ta := textarea.New()
	ta.Placeholder = "Search your memories..."
	ta.Focus()

	ta.Prompt = "┃ "
	ta.CharLimit = 500

	ta.SetWidth(80)
	ta.SetHeight(3)

	// Remove cursor line styling
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.SetContent(titleStyle.Render("Memphora memory browser") + `

Type a query and press Enter to search your memories.
Press Ctrl+C or Esc to quit.`)

	ta.KeyMap.InsertNewline.SetEnabled(false)

	return model{
		textarea: ta,
		lines:    []string{},
		viewport: vp,
		sdk:      sdk,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.textarea.SetWidth(msg.Width)
		m.viewport.Height = msg.Height - m.textarea.Height() - lipgloss.Height(gap) - 2

		if len(m.lines) > 0 {
			m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(strings.Join(m.lines, "\n")))
		}
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.textarea.Value())
			if query != "" {
				m.lines = append(m.lines, queryStyle.Render("Query: ")+query)
				m.lines = append(m.lines, m.runSearch(query)...)

				m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(strings.Join(m.lines, "\n")))
				m.textarea.Reset()
				m.viewport.GotoBottom()
			}
		}
	}

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m model) View() string {
	return fmt.Sprintf(
		"%s%s%s",
		m.viewport.View(),
		gap,
		m.textarea.View(),
	)
}

// runSearch queries the API and renders one line per result.
func (m model) runSearch(query string) []string {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	memories, err := m.sdk.Search(ctx, query, 10)
	if err != nil {
		return []string{errorStyle.Render("Error: ") + err.Error()}
	}

	if len(memories) == 0 {
		return []string{metaStyle.Render("No memories found.")}
	}

	lines := make([]string, 0, len(memories)+1)
	for _, memory := range memories {
		line := scoreStyle.Render(fmt.Sprintf("%.2f ", memory.Relevance())) + memory.Content
		if memory.CreatedAt != "" {
			line += metaStyle.Render("  (" + memory.CreatedAt + ")")
		}
		lines = append(lines, line)
	}
	lines = append(lines, metaStyle.Render(fmt.Sprintf("%d result(s)", len(memories))))

	return lines
}
