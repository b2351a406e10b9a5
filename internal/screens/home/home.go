package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"intervu/internal/interview"
	"intervu/internal/llm"
	"intervu/internal/router"
	"intervu/internal/screen"
	"intervu/internal/screens/history"
	"intervu/internal/screens/wizard"
	"intervu/internal/store"
	"intervu/internal/ui/components"
	"intervu/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the LLM provider and event
// store. The provider drives the interview and calibration flows; the
// event repo backs the history view.
func New(provider llm.Provider, cfg interview.Config, eventRepo store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:  "NEW INTERVIEW",
			Detail: "generate a question with follow-ups",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: wizard.New(provider, cfg, wizard.ModeInterview)}
				}
			},
		},
		{
			Label:  "CALIBRATE",
			Detail: "generate and assess actual difficulty",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: wizard.New(provider, cfg, wizard.ModeCalibrate)}
				}
			},
		},
		{
			Label:    "HISTORY",
			Detail:   "past LLM requests and usage",
			Disabled: eventRepo == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(eventRepo)}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("INTERVU")
	subtitle := theme.Subtitle.Width(width).Render("technical interview question generator")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(h.menu.View()))

	sections := []string{"", title, subtitle, "", menu}
	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
