package sequencer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/listen2bea/listen2bea/internal/playlist"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
)

func testAudioURL(a tatoeba.Audio) string {
	return fmt.Sprintf("audio://%d", a.ID)
}

// fakePlayer records playback requests and can simulate duration and
// failures. It tracks concurrent Play calls to verify the single-
// audio-resource invariant.
type fakePlayer struct {
	mu        sync.Mutex
	plays     []string
	playDur   time.Duration
	failURL   string
	active    int
	maxActive int
}

func (f *fakePlayer) Play(ctx context.Context, url string) error {
	f.mu.Lock()
	f.plays = append(f.plays, url)
	f.active++
	if f.active > f.maxActive {
		f.maxActive = f.active
	}
	dur := f.playDur
	fail := f.failURL != "" && url == f.failURL
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	if fail {
		return errors.New("audio decode failed")
	}
	if dur > 0 {
		timer := time.NewTimer(dur)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return ctx.Err()
}

func (f *fakePlayer) Stop() {}

func (f *fakePlayer) playedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.plays...)
}

// fakeSource serves canned pages.
type fakeSource struct {
	mu    sync.Mutex
	pages [][]tatoeba.Sentence
	err   error
	calls int
}

func (f *fakeSource) NextPage(ctx context.Context) ([]tatoeba.Sentence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.pages) == 0 {
		return nil, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// withAudio builds a sentence with original audio and one translation
// that also has audio.
func withAudio(id int) tatoeba.Sentence {
	return tatoeba.Sentence{
		ID:     id,
		Text:   fmt.Sprintf("sentence %d", id),
		Audios: []tatoeba.Audio{{ID: id}},
		Translations: [][]tatoeba.Translation{
			{{ID: id + 100, Text: fmt.Sprintf("translation %d", id), Audios: []tatoeba.Audio{{ID: id + 100}}}},
		},
	}
}

// newTestSequencer builds a sequencer with millisecond timing so tests
// run quickly. Delays are set directly to bypass the learner-facing
// minimum.
func newTestSequencer(t *testing.T, items []tatoeba.Sentence, player *fakePlayer, source Source) *Sequencer {
	t.Helper()
	pl := playlist.New()
	pl.Replace(items)
	s := New(pl, player, source, testAudioURL, DefaultSettings())
	s.initialPause = time.Millisecond
	s.mu.Lock()
	s.settings.PostSentenceDelay = 5 * time.Millisecond
	s.settings.PostTranslationDelay = 5 * time.Millisecond
	s.mu.Unlock()
	t.Cleanup(s.Dispose)
	return s
}

// collectUntil drains events until stop returns true or the timeout
// expires.
func collectUntil(t *testing.T, s *Sequencer, timeout time.Duration, stop func(Event) bool) []Event {
	t.Helper()
	var events []Event
	deadline := time.After(timeout)
	for {
		select {
		case e := <-s.Events():
			events = append(events, e)
			if stop(e) {
				return events
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event; got %d events", len(events))
		}
	}
}

func TestFullSequenceWithRepeat(t *testing.T) {
	player := &fakePlayer{}
	s := newTestSequencer(t, []tatoeba.Sentence{withAudio(1), withAudio(2)}, player, nil)
	s.mu.Lock()
	s.settings.RepeatOriginal = true
	s.mu.Unlock()

	s.Toggle(true)
	events := collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindEndOfPlaylist
	})

	want := []string{
		"audio://1", "audio://101", "audio://1",
		"audio://2", "audio://102", "audio://2",
	}
	got := player.playedURLs()
	if len(got) != len(want) {
		t.Fatalf("plays = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("plays = %v, want %v", got, want)
		}
	}

	var started []int
	for _, e := range events {
		if e.Kind == KindSentenceStarted {
			started = append(started, e.Index)
		}
	}
	if len(started) != 2 || started[0] != 0 || started[1] != 1 {
		t.Errorf("sentence starts = %v, want [0 1]", started)
	}

	if s.Playing() {
		t.Error("expected playing to be disabled at end of playlist")
	}
}

func TestNoRepeatWhenDisabled(t *testing.T) {
	player := &fakePlayer{}
	s := newTestSequencer(t, []tatoeba.Sentence{withAudio(1)}, player, nil)

	s.Toggle(true)
	collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindEndOfPlaylist
	})

	got := player.playedURLs()
	if len(got) != 2 {
		t.Fatalf("plays = %v, want original then translation only", got)
	}
}

func TestSentenceWithoutAudioIsSkippedNotFailed(t *testing.T) {
	player := &fakePlayer{}
	silent := tatoeba.Sentence{ID: 7, Text: "no recording"}
	s := newTestSequencer(t, []tatoeba.Sentence{silent}, player, nil)

	s.Toggle(true)
	events := collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindEndOfPlaylist
	})

	if got := player.playedURLs(); len(got) != 0 {
		t.Errorf("plays = %v, want none", got)
	}
	for _, e := range events {
		if e.Kind == KindPlaybackError {
			t.Fatal("silent sentence must not produce a playback error")
		}
	}
}

func TestToggleOffStopsFurtherPhases(t *testing.T) {
	player := &fakePlayer{playDur: 200 * time.Millisecond}
	s := newTestSequencer(t, []tatoeba.Sentence{withAudio(1), withAudio(2)}, player, nil)

	s.Toggle(true)
	collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindPhaseChanged && e.Phase == PhasePlayOriginal
	})
	s.Toggle(false)

	// The superseded activation must produce no further phase events.
	quiet := time.After(300 * time.Millisecond)
	for {
		select {
		case e := <-s.Events():
			if e.Kind == KindPhaseChanged || e.Kind == KindSentenceStarted {
				t.Fatalf("phase event after toggle off: %+v", e)
			}
		case <-quiet:
			if s.Playing() {
				t.Error("expected playing to be off")
			}
			if got := s.playlist.Cursor(); got != 0 {
				t.Errorf("cursor = %d, want 0", got)
			}
			return
		}
	}
}

func TestSupersedeKeepsSingleAudioResource(t *testing.T) {
	player := &fakePlayer{playDur: 100 * time.Millisecond}
	items := []tatoeba.Sentence{withAudio(1), withAudio(2), withAudio(3), withAudio(4)}
	s := newTestSequencer(t, items, player, nil)

	s.Toggle(true)
	collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindPhaseChanged && e.Phase == PhasePlayOriginal
	})
	for i := 0; i < 3; i++ {
		s.Seek(+1)
		time.Sleep(20 * time.Millisecond)
	}
	s.Toggle(false)

	player.mu.Lock()
	maxActive := player.maxActive
	player.mu.Unlock()
	if maxActive > 1 {
		t.Errorf("max concurrent playbacks = %d, want 1", maxActive)
	}
}

func TestSeekClampsAtBounds(t *testing.T) {
	player := &fakePlayer{}
	s := newTestSequencer(t, []tatoeba.Sentence{withAudio(1), withAudio(2)}, player, nil)

	if got := s.Seek(-1); got != 0 {
		t.Errorf("seek(-1) at 0 = %d, want 0", got)
	}
	if got := s.Seek(+1); got != 1 {
		t.Errorf("seek(+1) = %d, want 1", got)
	}
	if got := s.Seek(+1); got != 1 {
		t.Errorf("seek(+1) at end = %d, want 1", got)
	}
}

func TestPlaybackErrorDisablesPlayingWithoutAdvance(t *testing.T) {
	player := &fakePlayer{failURL: "audio://1"}
	s := newTestSequencer(t, []tatoeba.Sentence{withAudio(1), withAudio(2)}, player, nil)

	s.Toggle(true)
	events := collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindPlaybackError
	})

	last := events[len(events)-1]
	if last.Index != 0 {
		t.Errorf("error index = %d, want 0", last.Index)
	}
	if last.Err == nil {
		t.Error("expected error payload")
	}
	if s.Playing() {
		t.Error("expected playing to be disabled after playback error")
	}
	if got := s.playlist.Cursor(); got != 0 {
		t.Errorf("cursor = %d, want 0 (no advance on error)", got)
	}
}

func TestFetchAheadOncePerCrossing(t *testing.T) {
	player := &fakePlayer{}
	source := &fakeSource{pages: [][]tatoeba.Sentence{
		{withAudio(10), withAudio(11), withAudio(12)},
	}}
	items := []tatoeba.Sentence{
		withAudio(1), withAudio(2), withAudio(3),
		withAudio(4), withAudio(5), withAudio(6),
	}
	s := newTestSequencer(t, items, player, source)

	// Inside the trailing window: first crossing fetches.
	s.maybeFetchAhead(1)
	waitFor(t, func() bool { return s.playlist.Len() == 9 })
	if got := source.callCount(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1", got)
	}

	// Same window, same crossing semantics: length changed, but index 2
	// is no longer within the window of the grown playlist.
	s.maybeFetchAhead(2)
	time.Sleep(20 * time.Millisecond)
	if got := source.callCount(); got != 1 {
		t.Fatalf("fetch calls = %d, want still 1", got)
	}

	// New crossing against the grown playlist fetches again; the source
	// is now empty, which marks it exhausted.
	s.maybeFetchAhead(4)
	waitFor(t, func() bool { return source.callCount() == 2 })

	// Exhausted sources are not polled again.
	s.maybeFetchAhead(8)
	time.Sleep(20 * time.Millisecond)
	if got := source.callCount(); got != 2 {
		t.Fatalf("fetch calls = %d, want 2 (exhausted)", got)
	}
}

func TestFetchErrorLeavesPlaylistAndRetries(t *testing.T) {
	player := &fakePlayer{}
	source := &fakeSource{err: errors.New("network down")}
	items := []tatoeba.Sentence{withAudio(1), withAudio(2)}
	s := newTestSequencer(t, items, player, source)

	s.maybeFetchAhead(1)
	collectUntil(t, s, 2*time.Second, func(e Event) bool {
		return e.Kind == KindFetchError
	})
	if got := s.playlist.Len(); got != 2 {
		t.Errorf("playlist len = %d, want 2 (untouched on fetch error)", got)
	}

	// The failed crossing may be retried.
	source.mu.Lock()
	source.err = nil
	source.pages = [][]tatoeba.Sentence{{withAudio(20)}}
	source.mu.Unlock()

	s.maybeFetchAhead(1)
	waitFor(t, func() bool { return s.playlist.Len() == 3 })
}

func TestSetSettingsAppliesAtNextBoundary(t *testing.T) {
	player := &fakePlayer{playDur: 50 * time.Millisecond}
	s := newTestSequencer(t, []tatoeba.Sentence{withAudio(1)}, player, nil)

	s.Toggle(true)
	collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindPhaseChanged && e.Phase == PhasePlayOriginal
	})

	// Flip repeat on while the original is still playing. The decision
	// point comes later in the same activation and must see the change.
	st := s.Settings()
	st.RepeatOriginal = true
	s.SetSettings(st)

	events := collectUntil(t, s, 10*time.Second, func(e Event) bool {
		return e.Kind == KindEndOfPlaylist
	})

	got := player.playedURLs()
	want := []string{"audio://1", "audio://101", "audio://1"}
	if len(got) != len(want) {
		t.Fatalf("plays = %v, want %v", got, want)
	}
	var repeated bool
	for _, e := range events {
		if e.Kind == KindPhaseChanged && e.Phase == PhaseRepeatOriginal {
			repeated = true
		}
	}
	if !repeated {
		t.Error("expected a repeat phase after the mid-activation settings change")
	}
}

func TestDisposeClosesEvents(t *testing.T) {
	player := &fakePlayer{playDur: 100 * time.Millisecond}
	s := newTestSequencer(t, []tatoeba.Sentence{withAudio(1), withAudio(2)}, player, nil)

	s.Toggle(true)
	collectUntil(t, s, 5*time.Second, func(e Event) bool {
		return e.Kind == KindPhaseChanged && e.Phase == PhasePlayOriginal
	})
	s.Dispose()

	// A reader blocked on Events must observe the close rather than
	// hang for the life of the process.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-s.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after Dispose")
		}
	}
}

func TestSettingsNormalize(t *testing.T) {
	got := Settings{}.Normalize()
	if got.PostSentenceDelay != MinDelay || got.PostTranslationDelay != MinDelay {
		t.Errorf("normalized delays = %v/%v, want %v", got.PostSentenceDelay, got.PostTranslationDelay, MinDelay)
	}
}

func TestToggleOnEmptyPlaylistStopsCleanly(t *testing.T) {
	player := &fakePlayer{}
	s := newTestSequencer(t, nil, player, nil)

	s.Toggle(true)
	collectUntil(t, s, 2*time.Second, func(e Event) bool {
		return e.Kind == KindEndOfPlaylist
	})
	if s.Playing() {
		t.Error("expected playing off on empty playlist")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
