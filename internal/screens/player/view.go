package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/listen2bea/listen2bea/internal/sequencer"
	"github.com/listen2bea/listen2bea/internal/ui/components"
	"github.com/listen2bea/listen2bea/internal/ui/theme"
)

func (p *PlayerScreen) View(width, height int) string {
	if p.loading {
		return centered(width, "\n\n  Fetching sentences...")
	}
	if p.errMsg != "" && p.pl.Len() == 0 {
		return renderError(width, p.errMsg)
	}

	var b strings.Builder

	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	rec, ok := p.pl.At(p.index)
	if !ok {
		b.WriteString(centered(width, "Playlist is empty."))
		return b.String()
	}

	// The sentence being practiced.
	sentenceStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(sentenceStyle.Render(rec.Text))
	b.WriteString("\n\n")

	// Translation, revealed on demand or while it is being spoken.
	if p.showTranslation || p.phase == sequencer.PhasePlayTranslation {
		if tr, trOk := rec.FirstTranslation(); trOk {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Italic(true).
				Render(tr.Text))
			b.WriteString("\n\n")
		}
	}

	if p.hintPending {
		b.WriteString(centered(width, theme.Hint.Render("Asking the tutor...")))
		b.WriteString("\n")
	}
	if p.hint != nil {
		b.WriteString(p.renderHint(width))
		b.WriteString("\n")
	}

	// Position through the playlist so far.
	if n := p.pl.Len(); n > 0 {
		bar := components.NewProgressBar("", float64(p.index+1)/float64(n), false, min(width-8, 60))
		b.WriteString("\n")
		b.WriteString(centered(width, bar.View()))
		b.WriteString("\n")
	}

	if p.notice != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Render(p.notice)))
	}
	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg)))
	}

	return b.String()
}

func (p *PlayerScreen) renderStatusLine(width int) string {
	var status string
	if p.seq != nil && p.seq.Playing() {
		status = theme.Playing.Render("▶ " + p.phase.String())
	} else {
		status = theme.Paused.Render("‖ paused")
	}

	left := "  " + status
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("sentence %d / %d", p.index+1, p.pl.Len()))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (p *PlayerScreen) renderHint(width int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render(p.hint.Literal))
	b.WriteString("\n\n")
	for _, v := range p.hint.Vocabulary {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(v.Word))
		b.WriteString(theme.Body.Render(" — " + v.Meaning))
		b.WriteString("\n")
	}
	if p.hint.GrammarNote != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(p.hint.GrammarNote))
	}

	card := theme.Card.Width(min(width-8, 72)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n  " + msg + "\n\n  Press R to retry or Esc to go back.")
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
