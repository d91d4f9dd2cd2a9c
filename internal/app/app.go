package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/listen2bea/listen2bea/internal/audio"
	"github.com/listen2bea/listen2bea/internal/hints"
	"github.com/listen2bea/listen2bea/internal/router"
	"github.com/listen2bea/listen2bea/internal/screen"
	"github.com/listen2bea/listen2bea/internal/screens/home"
	"github.com/listen2bea/listen2bea/internal/screens/welcome"
	"github.com/listen2bea/listen2bea/internal/store"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
	"github.com/listen2bea/listen2bea/internal/ui/layout"
)

// Deps bundles everything the screens need. Nil services degrade
// gracefully: no event repo disables history, no hint service hides
// the explain key.
type Deps struct {
	Client    *tatoeba.Client
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	HintSvc   *hints.Service
	Player    audio.Player
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen.
func newAppModel(deps Deps) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(deps.Client, deps.EventRepo, deps.SnapRepo, deps.HintSvc, deps.Player)
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Esc is the screens' business: the player has a session to
		// close and settings has changes to persist.
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	pair := ""
	if active != nil {
		title = active.Title()
		if pp, ok := active.(screen.PairProvider); ok {
			pair = pp.LanguagePair()
		}
	}

	// The splash screen draws its own full frame.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, pair, m.width)

	var footerHints []layout.KeyHint
	if khp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = khp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
