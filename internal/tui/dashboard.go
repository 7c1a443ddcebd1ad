// Package tui is a live terminal dashboard for a search run: it drains a
// search.SearchResult stream and renders depth progress and discovered
// algorithms as they arrive.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbrt/algfinder/internal/cube"
	"github.com/mbrt/algfinder/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	depthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	algStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type resultMsg struct {
	result search.SearchResult
	ok     bool
}

type tickMsg time.Time

// Model is a bubbletea model that drives a single search run to completion
// or until the user quits.
type Model struct {
	results  <-chan search.SearchResult
	cancel   context.CancelFunc
	depth    int
	found    []string
	done     bool
	quitting bool
	started  time.Time
	maxShown int
}

// NewModel wraps a running search's result channel and its cancel function
// so the TUI can stop the search cleanly when the user quits.
func NewModel(results <-chan search.SearchResult, cancel context.CancelFunc) Model {
	return Model{
		results:  results,
		cancel:   cancel,
		started:  time.Now(),
		maxShown: 20,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForResult(m.results), tickEvery())
}

func waitForResult(results <-chan search.SearchResult) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-results
		return resultMsg{result: r, ok: ok}
	}
}

func tickEvery() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case resultMsg:
		if !msg.ok {
			m.done = true
			return m, nil
		}
		switch msg.result.Kind {
		case search.KindDepth:
			m.depth = msg.result.Depth
		case search.KindAlgorithm:
			m.found = append(m.found, cube.FormatMoves(msg.result.Algorithm))
		}
		return m, waitForResult(m.results)

	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tickEvery()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("algfinder search"))
	b.WriteString("\n\n")

	status := fmt.Sprintf("depth %d", m.depth)
	if m.done {
		status += " (complete)"
	}
	b.WriteString(depthStyle.Render(status))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  elapsed %s", time.Since(m.started).Round(time.Second))))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("%d solution(s) found", len(m.found))))
	b.WriteString("\n")

	shown := m.found
	truncated := false
	if len(shown) > m.maxShown {
		truncated = true
		shown = shown[len(shown)-m.maxShown:]
	}
	for _, alg := range shown {
		b.WriteString(algStyle.Render("  " + alg))
		b.WriteString("\n")
	}
	if truncated {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  ... showing last %d\n", m.maxShown)))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(helpStyle.Render("search complete — q to exit"))
	} else {
		b.WriteString(helpStyle.Render("q/esc/ctrl+c to stop the search"))
	}
	b.WriteString("\n")

	return b.String()
}
