package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/listen2bea/listen2bea/internal/router"
	"github.com/listen2bea/listen2bea/internal/screen"
	"github.com/listen2bea/listen2bea/internal/sequencer"
	"github.com/listen2bea/listen2bea/internal/store"
	"github.com/listen2bea/listen2bea/internal/ui/components"
	"github.com/listen2bea/listen2bea/internal/ui/layout"
	"github.com/listen2bea/listen2bea/internal/ui/theme"
)

const (
	delayStep = 500 * time.Millisecond
	delayMax  = 10 * time.Second
)

// rows, top to bottom.
const (
	rowSentenceDelay = iota
	rowTranslationDelay
	rowRepeat
	rowFromLang
	rowToLang
	rowCount
)

type savedMsg struct {
	Err error
}

// SettingsScreen edits playback timing and the language pair. Changes
// are persisted as a snapshot when the screen is left.
type SettingsScreen struct {
	snapRepo store.SnapshotRepo
	settings sequencer.Settings

	fromInput components.TextInput
	toInput   components.TextInput

	row     int
	editing bool
	errMsg  string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen seeded with the current values.
func New(snapRepo store.SnapshotRepo, settings sequencer.Settings, fromLang, toLang string) *SettingsScreen {
	fromInput := components.NewTextInput("spa", false, 3)
	fromInput.Model.SetValue(fromLang)
	toInput := components.NewTextInput("eng", false, 3)
	toInput.Model.SetValue(toLang)

	return &SettingsScreen{
		snapRepo:  snapRepo,
		settings:  settings.Normalize(),
		fromInput: fromInput,
		toInput:   toInput,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Toggle/Edit"},
		{Key: "Esc", Description: "Save & back"},
	}
}

// Settings returns the current (possibly unsaved) values.
func (s *SettingsScreen) Settings() sequencer.Settings {
	return s.settings
}

// Languages returns the current language pair, lowercased.
func (s *SettingsScreen) Languages() (string, string) {
	return strings.ToLower(strings.TrimSpace(s.fromInput.Value())),
		strings.ToLower(strings.TrimSpace(s.toInput.Value()))
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if saved, ok := msg.(savedMsg); ok {
		if saved.Err != nil {
			s.errMsg = saved.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.editing {
		switch kmsg.String() {
		case "enter", "esc":
			s.editing = false
			return s, nil
		}
		var cmd tea.Cmd
		if s.row == rowFromLang {
			s.fromInput, cmd = s.fromInput.Update(msg)
		} else {
			s.toInput, cmd = s.toInput.Update(msg)
		}
		return s, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < rowCount-1 {
			s.row++
		}
	case "left", "h":
		s.adjust(-delayStep)
	case "right", "l":
		s.adjust(+delayStep)
	case "enter", " ", "space":
		switch s.row {
		case rowRepeat:
			s.settings.RepeatOriginal = !s.settings.RepeatOriginal
		case rowFromLang, rowToLang:
			s.editing = true
		}
	case "esc":
		return s, s.save()
	}
	return s, nil
}

// adjust changes the delay on the selected row, clamped to the
// configurable range.
func (s *SettingsScreen) adjust(delta time.Duration) {
	clamp := func(d time.Duration) time.Duration {
		if d < sequencer.MinDelay {
			return sequencer.MinDelay
		}
		if d > delayMax {
			return delayMax
		}
		return d
	}
	switch s.row {
	case rowSentenceDelay:
		s.settings.PostSentenceDelay = clamp(s.settings.PostSentenceDelay + delta)
	case rowTranslationDelay:
		s.settings.PostTranslationDelay = clamp(s.settings.PostTranslationDelay + delta)
	}
}

// save persists the current values as a snapshot, then pops.
func (s *SettingsScreen) save() tea.Cmd {
	if s.snapRepo == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	from, to := s.Languages()
	snap := &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:  1,
			FromLang: from,
			ToLang:   to,
			Settings: store.PlaybackSettings{
				PostSentenceDelayMs:    s.settings.PostSentenceDelay.Milliseconds(),
				PostTranslationDelayMs: s.settings.PostTranslationDelay.Milliseconds(),
				RepeatOriginal:         s.settings.RepeatOriginal,
			},
		},
	}
	repo := s.snapRepo
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.Save(ctx, snap); err != nil {
			return savedMsg{Err: err}
		}
		_ = repo.Prune(ctx, 10)
		return savedMsg{}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder

	rows := []struct {
		label string
		value string
	}{
		{"Pause after sentence", fmtDelay(s.settings.PostSentenceDelay)},
		{"Pause after translation", fmtDelay(s.settings.PostTranslationDelay)},
		{"Repeat sentence after translation", fmtBool(s.settings.RepeatOriginal)},
		{"Practice language", s.langView(rowFromLang)},
		{"Translation language", s.langView(rowToLang)},
	}

	b.WriteString("\n")
	for i, row := range rows {
		marker := "    "
		labelStyle := theme.Unselected
		if i == s.row {
			marker = "  ▸ "
			labelStyle = theme.Selected
		}
		line := marker + labelStyle.Render(row.label)
		pad := width - lipgloss.Width(line) - lipgloss.Width(row.value) - 6
		if pad < 1 {
			pad = 1
		}
		b.WriteString(line + strings.Repeat(" ", pad) + row.value + "\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SettingsScreen) langView(row int) string {
	input := s.toInput
	if row == rowFromLang {
		input = s.fromInput
	}
	if s.editing && s.row == row {
		return input.View()
	}
	return theme.Body.Render(input.Value())
}

func fmtDelay(d time.Duration) string {
	return theme.Body.Render(fmt.Sprintf("%.1fs", d.Seconds()))
}

func fmtBool(v bool) string {
	if v {
		return lipgloss.NewStyle().Foreground(theme.Success).Render("on")
	}
	return theme.Hint.Render("off")
}
