package home

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/listen2bea/listen2bea/internal/audio"
	"github.com/listen2bea/listen2bea/internal/hints"
	"github.com/listen2bea/listen2bea/internal/router"
	"github.com/listen2bea/listen2bea/internal/screen"
	"github.com/listen2bea/listen2bea/internal/screens/history"
	"github.com/listen2bea/listen2bea/internal/screens/player"
	"github.com/listen2bea/listen2bea/internal/screens/settings"
	"github.com/listen2bea/listen2bea/internal/sequencer"
	"github.com/listen2bea/listen2bea/internal/store"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
	"github.com/listen2bea/listen2bea/internal/ui/components"
	"github.com/listen2bea/listen2bea/internal/ui/theme"
)

// Fallback language pair when nothing is saved or configured.
const (
	defaultFromLang = "spa"
	defaultToLang   = "eng"
)

const titleArt = `  ♪ ♫ ♪
L I S T E N 2 B E A`

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	stats store.Stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. hintSvc may be nil when no LLM provider
// is configured.
func New(client *tatoeba.Client, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, hintSvc *hints.Service, audioPlayer audio.Player) *HomeScreen {
	var stats store.Stats
	if eventRepo != nil {
		stats, _ = eventRepo.Stats(context.Background())
	}

	items := []components.MenuItem{
		{Label: "START LISTENING", Action: func() tea.Cmd {
			// Preferences are read at press time so a settings visit in
			// between is picked up.
			st, from, to := loadPrefs(snapRepo)
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: player.New(client, eventRepo, hintSvc, audioPlayer, from, to, st),
				}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			st, from, to := loadPrefs(snapRepo)
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: settings.New(snapRepo, st, from, to),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}, Disabled: eventRepo == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		stats: stats,
	}
}

// loadPrefs reads settings and the language pair from the latest
// snapshot, with env overrides for the languages and defaults for
// everything else.
func loadPrefs(snapRepo store.SnapshotRepo) (sequencer.Settings, string, string) {
	st := sequencer.DefaultSettings()
	from, to := defaultFromLang, defaultToLang

	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			if snap.Data.FromLang != "" {
				from = snap.Data.FromLang
			}
			if snap.Data.ToLang != "" {
				to = snap.Data.ToLang
			}
			if ms := snap.Data.Settings.PostSentenceDelayMs; ms > 0 {
				st.PostSentenceDelay = time.Duration(ms) * time.Millisecond
			}
			if ms := snap.Data.Settings.PostTranslationDelayMs; ms > 0 {
				st.PostTranslationDelay = time.Duration(ms) * time.Millisecond
			}
			st.RepeatOriginal = snap.Data.Settings.RepeatOriginal
		}
	}

	if v := os.Getenv("LISTEN2BEA_FROM_LANG"); v != "" {
		from = v
	}
	if v := os.Getenv("LISTEN2BEA_TO_LANG"); v != "" {
		to = v
	}

	return st.Normalize(), from, to
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
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(titleArt))

	statsLine := fmt.Sprintf("%d sessions   %d sentences   %s listened",
		h.stats.Sessions, h.stats.SentencesPlayed, fmtListening(h.stats.ListeningSecs))
	sections = append(sections, theme.Subtitle.Width(width).Render(statsLine))

	menuBox := theme.Card.Render(h.menu.View())
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menuBox))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func fmtListening(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm", secs/60)
	}
	return fmt.Sprintf("%dh%02dm", secs/3600, (secs%3600)/60)
}
