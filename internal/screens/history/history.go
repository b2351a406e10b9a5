package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"intervu/internal/router"
	"intervu/internal/screen"
	"intervu/internal/store"
	"intervu/internal/ui/layout"
	"intervu/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []store.LLMEvent
	Usage  []store.PurposeUsage
	Err    error
}

// HistoryScreen lists recent LLM requests with a usage summary.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.LLMEvent
	usage     []store.PurposeUsage
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		events, err := s.eventRepo.QueryLLMEvents(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		usage, err := s.eventRepo.UsageByPurpose(ctx)
		if err != nil {
			return historyLoadedMsg{Events: events}
		}

		return historyLoadedMsg{Events: events, Usage: usage}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
			s.usage = msg.Usage
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("\n  Loading history...")
	}
	if s.errMsg != "" {
		return theme.Bad.Render("\n  " + s.errMsg)
	}
	if len(s.events) == 0 {
		return theme.Hint.Render("\n  No LLM requests recorded yet.")
	}

	var b strings.Builder

	b.WriteString(theme.Section.Render("  Usage by purpose"))
	b.WriteString("\n")
	for _, u := range s.usage {
		b.WriteString(theme.Hint.Render(fmt.Sprintf(
			"  %-20s %4d calls  %6d in  %6d out  %5dms avg",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("  Recent requests"))
	b.WriteString("\n")
	for i, ev := range s.events {
		status := theme.Good.Render("ok")
		if !ev.Success {
			status = theme.Bad.Render("err")
		}
		line := fmt.Sprintf("%s  %-20s %-24s %s",
			ev.Timestamp.Format("Jan 02 15:04"), ev.Purpose, ev.Model, status)

		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("      run %s  provider %s  %d in / %d out tokens  %dms",
				ev.RunID, ev.Provider, ev.InputTokens, ev.OutputTokens, ev.LatencyMs)
			b.WriteString(theme.Hint.Render(detail))
			b.WriteString("\n")
			if ev.ErrorMessage != "" {
				b.WriteString(theme.Bad.Render("      " + ev.ErrorMessage))
				b.WriteString("\n")
			}
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(b.String())
}
