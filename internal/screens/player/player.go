package player

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/listen2bea/listen2bea/internal/audio"
	"github.com/listen2bea/listen2bea/internal/hints"
	"github.com/listen2bea/listen2bea/internal/playlist"
	"github.com/listen2bea/listen2bea/internal/router"
	"github.com/listen2bea/listen2bea/internal/screen"
	"github.com/listen2bea/listen2bea/internal/sequencer"
	"github.com/listen2bea/listen2bea/internal/store"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
	"github.com/listen2bea/listen2bea/internal/ui/layout"

	"github.com/google/uuid"
)

const hintPollInterval = 100 * time.Millisecond

// Pace keys nudge the delays without leaving the player; the settings
// screen has the fine-grained controls.
const (
	paceStep = 500 * time.Millisecond
	paceMax  = 10 * time.Second
)

// PlayerScreen runs a listening session: it owns the sequencer and
// renders whatever sentence is currently playing.
type PlayerScreen struct {
	client    *tatoeba.Client
	eventRepo store.EventRepo
	hintSvc   *hints.Service
	player    audio.Player
	fromLang  string
	toLang    string
	settings  sequencer.Settings

	pl  *playlist.Playlist
	seq *sequencer.Sequencer

	sessionID   string
	startedAt   time.Time
	playedCount int

	index           int
	phase           sequencer.Phase
	showTranslation bool
	hint            *hints.Hint
	hintPending     bool
	loading         bool
	notice          string
	errMsg          string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New creates a PlayerScreen with injected dependencies. hintSvc may be
// nil when no LLM provider is configured.
func New(client *tatoeba.Client, eventRepo store.EventRepo, hintSvc *hints.Service, player audio.Player, fromLang, toLang string, settings sequencer.Settings) *PlayerScreen {
	return &PlayerScreen{
		client:    client,
		eventRepo: eventRepo,
		hintSvc:   hintSvc,
		player:    player,
		fromLang:  fromLang,
		toLang:    toLang,
		settings:  settings,
		pl:        playlist.New(),
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		loading:   true,
	}
}

func (p *PlayerScreen) Init() tea.Cmd {
	return tea.Batch(
		p.loadPlaylist(),
		p.persistSessionStart(),
	)
}

func (p *PlayerScreen) Title() string {
	return "Listening"
}

func (p *PlayerScreen) LanguagePair() string {
	return p.fromLang + " → " + p.toLang
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	kh := []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "T", Description: "Translation"},
		{Key: "[ ]", Description: "Pace"},
		{Key: "O", Description: "Repeat"},
	}
	if p.hintSvc != nil {
		kh = append(kh, layout.KeyHint{Key: "E", Description: "Explain"})
	}
	kh = append(kh,
		layout.KeyHint{Key: "R", Description: "Reload"},
		layout.KeyHint{Key: "Esc", Description: "End session"},
	)
	return kh
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playlistLoadedMsg:
		return p.handlePlaylistLoaded(msg)

	case seqEventMsg:
		return p.handleSequencerEvent(msg.Event)

	case hintPollMsg:
		return p.handleHintPoll()

	case persistDoneMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case " ", "space":
		if p.seq != nil {
			p.seq.Toggle(!p.seq.Playing())
		}
		return p, nil

	case "right", "l":
		return p, p.seek(+1)

	case "left", "h":
		return p, p.seek(-1)

	case "t":
		p.showTranslation = !p.showTranslation
		return p, nil

	case "[":
		p.adjustPace(-paceStep)
		return p, nil

	case "]":
		p.adjustPace(+paceStep)
		return p, nil

	case "o":
		p.settings.RepeatOriginal = !p.settings.RepeatOriginal
		p.applySettings()
		if p.settings.RepeatOriginal {
			p.notice = "Repeat on"
		} else {
			p.notice = "Repeat off"
		}
		return p, nil

	case "e":
		return p, p.requestHint()

	case "r":
		return p, p.reload()

	case "esc":
		return p, p.endSession()
	}
	return p, nil
}

// adjustPace nudges both delays together. The running activation picks
// the change up at its next phase boundary.
func (p *PlayerScreen) adjustPace(delta time.Duration) {
	p.settings.PostSentenceDelay = clampPace(p.settings.PostSentenceDelay + delta)
	p.settings.PostTranslationDelay = clampPace(p.settings.PostTranslationDelay + delta)
	p.applySettings()
	p.notice = fmt.Sprintf("Pauses %s / %s", p.settings.PostSentenceDelay, p.settings.PostTranslationDelay)
}

func (p *PlayerScreen) applySettings() {
	p.settings = p.settings.Normalize()
	if p.seq != nil {
		p.seq.SetSettings(p.settings)
	}
}

func clampPace(d time.Duration) time.Duration {
	if d < sequencer.MinDelay {
		return sequencer.MinDelay
	}
	if d > paceMax {
		return paceMax
	}
	return d
}

// loadPlaylist fetches the first page for the language pair.
func (p *PlayerScreen) loadPlaylist() tea.Cmd {
	q := tatoeba.Query{From: p.fromLang, To: p.toLang}
	return func() tea.Msg {
		page, err := p.client.FetchPage(context.Background(), q)
		return playlistLoadedMsg{Page: page, Err: err}
	}
}

func (p *PlayerScreen) handlePlaylistLoaded(msg playlistLoadedMsg) (screen.Screen, tea.Cmd) {
	p.loading = false
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	p.errMsg = ""
	p.notice = ""
	p.index = 0
	p.pl.Replace(msg.Page.Sentences)

	if p.seq == nil {
		var source sequencer.Source
		if msg.Page.HasMore() {
			source = tatoeba.NewPaginator(p.client, tatoeba.Query{
				From: p.fromLang, To: p.toLang, Page: msg.Page.Number + 1,
			})
		}
		p.seq = sequencer.New(p.pl, p.player, source, p.client.AudioURL, p.settings)
		p.seq.Toggle(true)
		return p, p.waitEvent()
	}

	// Reload with a live sequencer: restart from the top of the new list.
	p.seq.Restart()
	return p, nil
}

// waitEvent blocks on the sequencer's event channel and re-arms itself
// after each event.
func (p *PlayerScreen) waitEvent() tea.Cmd {
	seq := p.seq
	return func() tea.Msg {
		ev, ok := <-seq.Events()
		if !ok {
			return nil
		}
		return seqEventMsg{Event: ev}
	}
}

func (p *PlayerScreen) handleSequencerEvent(ev sequencer.Event) (screen.Screen, tea.Cmd) {
	cmds := []tea.Cmd{p.waitEvent()}

	switch ev.Kind {
	case sequencer.KindSentenceStarted:
		if ev.Index != p.index {
			// The previous sentence ran to completion.
			p.playedCount++
			cmds = append(cmds, p.persistPlayback(p.index, store.PlaybackCompleted, ""))
		}
		p.index = ev.Index
		p.hint = nil
		p.notice = ""

	case sequencer.KindPhaseChanged:
		p.phase = ev.Phase

	case sequencer.KindPlaybackError:
		p.phase = sequencer.PhaseIdle
		if ev.Err != nil {
			p.errMsg = ev.Err.Error()
			cmds = append(cmds, p.persistPlayback(ev.Index, store.PlaybackError, ev.Err.Error()))
		}

	case sequencer.KindEndOfPlaylist:
		p.phase = sequencer.PhaseIdle
		p.notice = "End of playlist. Press R to reload."

	case sequencer.KindPlaylistExtended:
		// Growth is silent; the position indicator just gets a bigger
		// denominator.

	case sequencer.KindFetchError:
		if ev.Err != nil {
			p.notice = "Couldn't fetch more sentences: " + ev.Err.Error()
		}
	}

	return p, tea.Batch(cmds...)
}

func (p *PlayerScreen) seek(delta int) tea.Cmd {
	if p.seq == nil {
		return nil
	}
	prev := p.index
	p.index = p.seq.Seek(delta)
	p.hint = nil
	p.showTranslation = false
	p.notice = ""
	if delta > 0 && p.index != prev {
		return p.persistPlayback(prev, store.PlaybackSkipped, "")
	}
	return nil
}

func (p *PlayerScreen) requestHint() tea.Cmd {
	if p.hintSvc == nil || p.hintPending {
		return nil
	}
	rec, ok := p.pl.At(p.index)
	if !ok {
		return nil
	}
	p.hintPending = true
	p.hintSvc.RequestHint(context.Background(), hints.HintInput{
		Sentence: rec,
		FromLang: p.fromLang,
		ToLang:   p.toLang,
	})
	return p.pollHint()
}

func (p *PlayerScreen) pollHint() tea.Cmd {
	return tea.Tick(hintPollInterval, func(t time.Time) tea.Msg {
		return hintPollMsg(t)
	})
}

func (p *PlayerScreen) handleHintPoll() (screen.Screen, tea.Cmd) {
	if !p.hintPending {
		return p, nil
	}
	hint, done, err := p.hintSvc.ConsumeHint()
	if !done {
		return p, p.pollHint()
	}
	p.hintPending = false
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	p.hint = hint
	return p, nil
}

func (p *PlayerScreen) reload() tea.Cmd {
	p.loading = true
	p.hint = nil
	p.showTranslation = false
	return p.loadPlaylist()
}

// endSession tears down the sequencer, records the session end, and
// pops back to the home screen.
func (p *PlayerScreen) endSession() tea.Cmd {
	if p.seq != nil {
		p.seq.Dispose()
		p.seq = nil
	}
	persist := p.persistSessionEnd()
	return tea.Batch(persist, func() tea.Msg {
		return router.PopScreenMsg{}
	})
}

func (p *PlayerScreen) persistSessionStart() tea.Cmd {
	if p.eventRepo == nil {
		return nil
	}
	data := store.SessionEventData{
		SessionID: p.sessionID,
		Action:    store.SessionStart,
		FromLang:  p.fromLang,
		ToLang:    p.toLang,
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: p.eventRepo.AppendSessionEvent(context.Background(), data)}
	}
}

func (p *PlayerScreen) persistSessionEnd() tea.Cmd {
	if p.eventRepo == nil {
		return nil
	}
	data := store.SessionEventData{
		SessionID:       p.sessionID,
		Action:          store.SessionEnd,
		FromLang:        p.fromLang,
		ToLang:          p.toLang,
		SentencesPlayed: p.playedCount,
		DurationSecs:    int(time.Since(p.startedAt).Seconds()),
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: p.eventRepo.AppendSessionEvent(context.Background(), data)}
	}
}

func (p *PlayerScreen) persistPlayback(index int, action, errMsg string) tea.Cmd {
	if p.eventRepo == nil {
		return nil
	}
	rec, ok := p.pl.At(index)
	if !ok {
		return nil
	}
	data := store.PlaybackEventData{
		SessionID:     p.sessionID,
		SentenceID:    rec.ID,
		Action:        action,
		PlaylistIndex: index,
		ErrorMessage:  errMsg,
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: p.eventRepo.AppendPlaybackEvent(context.Background(), data)}
	}
}
