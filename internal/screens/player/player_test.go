package player

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/listen2bea/listen2bea/internal/audio"
	"github.com/listen2bea/listen2bea/internal/hints"
	"github.com/listen2bea/listen2bea/internal/llm"
	"github.com/listen2bea/listen2bea/internal/sequencer"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
)

func testPage() *tatoeba.Page {
	return &tatoeba.Page{
		Sentences: []tatoeba.Sentence{
			{
				ID:   1,
				Text: "El gato duerme.",
				Lang: "spa",
				Translations: [][]tatoeba.Translation{
					{{ID: 11, Text: "The cat is sleeping.", Lang: "eng"}},
				},
			},
			{ID: 2, Text: "Hace frío.", Lang: "spa"},
		},
		Number:   1,
		LastPage: 1,
	}
}

func newTestScreen(t *testing.T) *PlayerScreen {
	t.Helper()
	p := New(tatoeba.NewClient(), nil, nil, audio.NewExecPlayerWith("true"), "spa", "eng", sequencer.DefaultSettings())
	t.Cleanup(func() {
		if p.seq != nil {
			p.seq.Dispose()
		}
	})
	return p
}

func loadTestPlaylist(t *testing.T, p *PlayerScreen) {
	t.Helper()
	_, _ = p.Update(playlistLoadedMsg{Page: testPage()})
	if p.seq == nil {
		t.Fatal("expected sequencer after playlist load")
	}
}

func TestLoadedPlaylistStartsPlaying(t *testing.T) {
	p := newTestScreen(t)
	loadTestPlaylist(t, p)

	if !p.seq.Playing() {
		t.Error("expected auto-play to start after load")
	}
	view := p.View(80, 20)
	if !strings.Contains(view, "El gato duerme.") {
		t.Errorf("view missing sentence text:\n%s", view)
	}
}

func TestLoadErrorIsShown(t *testing.T) {
	p := newTestScreen(t)
	_, _ = p.Update(playlistLoadedMsg{Err: &tatoeba.StatusError{StatusCode: 502, URL: "http://x"}})

	view := p.View(80, 20)
	if !strings.Contains(view, "502") {
		t.Errorf("view missing error:\n%s", view)
	}
	if p.seq != nil {
		t.Error("no sequencer should exist after a failed load")
	}
}

func TestTranslationToggle(t *testing.T) {
	p := newTestScreen(t)
	loadTestPlaylist(t, p)

	if strings.Contains(p.View(80, 20), "The cat is sleeping.") {
		t.Fatal("translation should be hidden by default")
	}

	_, _ = p.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if !strings.Contains(p.View(80, 20), "The cat is sleeping.") {
		t.Error("translation should be visible after pressing t")
	}

	_, _ = p.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if strings.Contains(p.View(80, 20), "The cat is sleeping.") {
		t.Error("translation should hide again on second press")
	}
}

func TestSeekMovesAndClamps(t *testing.T) {
	p := newTestScreen(t)
	loadTestPlaylist(t, p)

	_, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if p.index != 1 {
		t.Errorf("index after right = %d, want 1", p.index)
	}
	_, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if p.index != 1 {
		t.Errorf("index after right at end = %d, want 1", p.index)
	}
	_, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if p.index != 0 {
		t.Errorf("index after left = %d, want 0", p.index)
	}
	_, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if p.index != 0 {
		t.Errorf("index after left at start = %d, want 0", p.index)
	}
}

func TestEndOfPlaylistNotice(t *testing.T) {
	p := newTestScreen(t)
	loadTestPlaylist(t, p)

	_, _ = p.Update(seqEventMsg{Event: sequencer.Event{Kind: sequencer.KindEndOfPlaylist, Index: 2}})
	if !strings.Contains(p.View(80, 20), "End of playlist") {
		t.Error("expected end-of-playlist notice")
	}
}

func TestPaceKeysAdjustLiveSettings(t *testing.T) {
	p := newTestScreen(t)
	loadTestPlaylist(t, p)

	base := p.seq.Settings().PostSentenceDelay
	_, _ = p.Update(tea.KeyPressMsg{Code: ']', Text: "]"})
	if got := p.seq.Settings().PostSentenceDelay; got != base+paceStep {
		t.Errorf("post-sentence delay = %v, want %v", got, base+paceStep)
	}

	// Repeated [ presses bottom out at the minimum.
	for i := 0; i < 10; i++ {
		_, _ = p.Update(tea.KeyPressMsg{Code: '[', Text: "["})
	}
	if got := p.seq.Settings().PostSentenceDelay; got != sequencer.MinDelay {
		t.Errorf("post-sentence delay = %v, want clamped to %v", got, sequencer.MinDelay)
	}

	_, _ = p.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	if !p.seq.Settings().RepeatOriginal {
		t.Error("expected o to enable repeat on the running sequencer")
	}
	_, _ = p.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	if p.seq.Settings().RepeatOriginal {
		t.Error("expected o to toggle repeat back off")
	}
}

func TestHintFailureStopsPollingAndSurfacesError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := hints.NewService(mock, hints.DefaultConfig())
	p := New(tatoeba.NewClient(), nil, svc, audio.NewExecPlayerWith("true"), "spa", "eng", sequencer.DefaultSettings())
	t.Cleanup(func() {
		if p.seq != nil {
			p.seq.Dispose()
		}
	})
	loadTestPlaylist(t, p)

	if cmd := p.requestHint(); cmd == nil {
		t.Fatal("expected hint request to start polling")
	}

	// Drive the poll loop the way the program would; it must terminate
	// once the failed generation lands.
	for i := 0; i < 100 && p.hintPending; i++ {
		time.Sleep(10 * time.Millisecond)
		_, _ = p.Update(hintPollMsg(time.Now()))
	}
	if p.hintPending {
		t.Fatal("hint polling never terminated after a failed generation")
	}
	if p.errMsg == "" {
		t.Error("expected the generation error to be shown")
	}

	// The explain key works again after a failure.
	if cmd := p.requestHint(); cmd == nil {
		t.Error("expected a new hint request to be accepted")
	}
}

func TestEscDisposesSequencer(t *testing.T) {
	p := newTestScreen(t)
	loadTestPlaylist(t, p)

	_, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if p.seq != nil {
		t.Error("expected sequencer to be disposed on esc")
	}
}
