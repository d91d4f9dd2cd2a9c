package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/listen2bea/listen2bea/internal/router"
	"github.com/listen2bea/listen2bea/internal/screen"
	"github.com/listen2bea/listen2bea/internal/store"
	"github.com/listen2bea/listen2bea/internal/ui/layout"
	"github.com/listen2bea/listen2bea/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Err      error
}

// HistoryScreen lists past listening sessions, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummary
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.RecentSessions(context.Background(), 50)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
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
			s.sessions = msg.Sessions
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
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return centered(width, "\n\n  Loading history...")
	}
	if s.errMsg != "" {
		return centered(width, lipgloss.NewStyle().Foreground(theme.Error).Render("\n\n  "+s.errMsg))
	}
	if len(s.sessions) == 0 {
		return centered(width, theme.Hint.Render("\n\n  No sessions yet. Go listen to something!"))
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, sess := range s.sessions {
		marker := "    "
		style := theme.Unselected
		if i == s.selected {
			marker = "  ▸ "
			style = theme.Selected
		}

		when := sess.EndedAt.Local().Format("Jan 2 15:04")
		line := fmt.Sprintf("%s%s  %s → %s", marker, when, sess.FromLang, sess.ToLang)
		detail := fmt.Sprintf("%d sentences, %s", sess.SentencesPlayed, fmtDuration(sess.DurationSecs))

		pad := width - lipgloss.Width(line) - lipgloss.Width(detail) - 6
		if pad < 1 {
			pad = 1
		}
		b.WriteString(style.Render(line) + strings.Repeat(" ", pad) + theme.Hint.Render(detail) + "\n")
	}
	return b.String()
}

func fmtDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
