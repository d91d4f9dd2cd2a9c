// Package sequencer drives auto-play of a sentence playlist: for each
// sentence it plays the original audio, waits, plays the first
// translation that has audio, waits, optionally repeats the original,
// then advances. Every activation carries a generation number and a
// context; superseded activations stop at the next suspension point and
// never mutate shared state again.
package sequencer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/listen2bea/listen2bea/internal/audio"
	"github.com/listen2bea/listen2bea/internal/playlist"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
)

// Phase is one step of the per-sentence sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInitialPause
	PhasePlayOriginal
	PhasePostSentenceDelay
	PhasePlayTranslation
	PhasePostTranslationDelay
	PhaseRepeatOriginal
	PhasePostRepeatDelay
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInitialPause:
		return "starting"
	case PhasePlayOriginal:
		return "playing"
	case PhasePostSentenceDelay:
		return "waiting"
	case PhasePlayTranslation:
		return "translation"
	case PhasePostTranslationDelay:
		return "waiting"
	case PhaseRepeatOriginal:
		return "repeating"
	case PhasePostRepeatDelay:
		return "waiting"
	}
	return "unknown"
}

// defaultInitialPause is the fixed settling delay before each sentence.
const defaultInitialPause = 500 * time.Millisecond

// fetchLookahead is how close to the end of the playlist the cursor may
// get before the next page is requested.
const fetchLookahead = 5

// MinDelay is the lower bound for the configurable delays.
const MinDelay = time.Second

// Settings is the learner-configurable timing, read fresh at every
// phase boundary so changes apply from the next phase on.
type Settings struct {
	PostSentenceDelay    time.Duration
	PostTranslationDelay time.Duration
	RepeatOriginal       bool
}

// Normalize clamps delays to MinDelay.
func (s Settings) Normalize() Settings {
	if s.PostSentenceDelay < MinDelay {
		s.PostSentenceDelay = MinDelay
	}
	if s.PostTranslationDelay < MinDelay {
		s.PostTranslationDelay = MinDelay
	}
	return s
}

// DefaultSettings returns the out-of-the-box timing.
func DefaultSettings() Settings {
	return Settings{
		PostSentenceDelay:    2 * time.Second,
		PostTranslationDelay: 2 * time.Second,
		RepeatOriginal:       false,
	}
}

// Source supplies the next page of sentences for background pagination.
type Source interface {
	NextPage(ctx context.Context) ([]tatoeba.Sentence, error)
}

// EventKind classifies sequencer events.
type EventKind int

const (
	// KindSentenceStarted fires when an activation begins a sentence.
	KindSentenceStarted EventKind = iota
	// KindPhaseChanged fires at every phase boundary.
	KindPhaseChanged
	// KindPlaybackError fires when audio playback fails; playback is
	// disabled and the cursor is not advanced.
	KindPlaybackError
	// KindEndOfPlaylist fires when the loop runs past the last item.
	KindEndOfPlaylist
	// KindPlaylistExtended fires when a pagination fetch appends items.
	KindPlaylistExtended
	// KindFetchError fires when a pagination fetch fails; the existing
	// playlist is untouched.
	KindFetchError
)

// Event is a notification delivered to the UI.
type Event struct {
	Kind     EventKind
	Index    int
	Phase    Phase
	Appended int
	Err      error
}

// Sequencer owns the playback loop. Create with New, shut down with
// Dispose.
type Sequencer struct {
	playlist *playlist.Playlist
	player   audio.Player
	source   Source
	audioURL func(tatoeba.Audio) string

	life     context.Context
	lifeStop context.CancelFunc

	emitMu   sync.Mutex
	disposed bool
	events   chan Event

	initialPause time.Duration

	mu           sync.Mutex
	gen          uint64
	cancel       context.CancelFunc
	playing      bool
	settings     Settings
	lastFetchLen int
	exhausted    bool
}

// New creates a Sequencer. audioURL resolves an audio reference to a
// playable URL (typically tatoeba.Client.AudioURL). source may be nil
// to disable pagination.
func New(pl *playlist.Playlist, player audio.Player, source Source, audioURL func(tatoeba.Audio) string, settings Settings) *Sequencer {
	life, stop := context.WithCancel(context.Background())
	return &Sequencer{
		playlist:     pl,
		player:       player,
		source:       source,
		audioURL:     audioURL,
		life:         life,
		lifeStop:     stop,
		events:       make(chan Event, 32),
		settings:     settings.Normalize(),
		initialPause: defaultInitialPause,
		lastFetchLen: -1,
	}
}

// Events returns the channel the UI consumes. Closed by Dispose.
func (s *Sequencer) Events() <-chan Event {
	return s.events
}

// Playing reports whether auto-play is currently enabled.
func (s *Sequencer) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Settings returns the current settings.
func (s *Sequencer) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings replaces the settings. An in-flight activation picks up
// the new values at its next phase boundary.
func (s *Sequencer) SetSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.Normalize()
}

// Toggle enables or disables auto-play. Enabling activates the current
// cursor position; disabling cancels the in-flight activation and stops
// the audio.
func (s *Sequencer) Toggle(on bool) {
	s.mu.Lock()
	if on {
		if s.playing {
			s.mu.Unlock()
			return
		}
		s.playing = true
		index := s.playlist.Cursor()
		s.activateLocked(index)
		s.mu.Unlock()
		return
	}
	s.playing = false
	s.supersedeLocked()
	s.mu.Unlock()
	s.player.Stop()
}

// Seek moves the cursor by delta (clamped), cancelling whatever is in
// flight. When playing, the new position is activated.
func (s *Sequencer) Seek(delta int) int {
	s.mu.Lock()
	s.supersedeLocked()
	playing := s.playing
	s.mu.Unlock()
	s.player.Stop()

	index := s.playlist.Seek(delta)

	s.mu.Lock()
	if playing && s.playing {
		s.activateLocked(index)
	}
	s.mu.Unlock()
	return index
}

// Restart cancels any in-flight activation, resets the pagination
// guard, and, when playing, re-activates from the current cursor. Used
// after the playlist has been replaced.
func (s *Sequencer) Restart() {
	s.mu.Lock()
	s.supersedeLocked()
	s.lastFetchLen = -1
	s.exhausted = false
	playing := s.playing
	index := s.playlist.Cursor()
	if playing {
		s.activateLocked(index)
	}
	s.mu.Unlock()
	if !playing {
		s.player.Stop()
	}
}

// Dispose cancels everything and closes the event channel. The
// sequencer must not be used afterwards. Safe to call more than once.
func (s *Sequencer) Dispose() {
	s.mu.Lock()
	s.playing = false
	s.supersedeLocked()
	s.mu.Unlock()
	s.player.Stop()
	s.lifeStop()

	// lifeStop has unblocked any emit stuck on a full buffer, so taking
	// emitMu here cannot deadlock, and the disposed flag keeps late
	// emitters off the closed channel.
	s.emitMu.Lock()
	if !s.disposed {
		s.disposed = true
		close(s.events)
	}
	s.emitMu.Unlock()
}

// supersedeLocked invalidates the in-flight activation. Callers hold mu.
func (s *Sequencer) supersedeLocked() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// activateLocked starts a new activation at index. Callers hold mu.
func (s *Sequencer) activateLocked(index int) {
	s.gen++
	ctx, cancel := context.WithCancel(s.life)
	s.cancel = cancel
	gen := s.gen
	go s.run(ctx, gen, index)
}

// current reports whether gen is still the live activation.
func (s *Sequencer) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}

// run is the playback loop for one activation: an explicit walk over
// playlist indices rather than recursion, ending at cancellation, a
// playback error, or the end of the playlist.
func (s *Sequencer) run(ctx context.Context, gen uint64, index int) {
	for ; ; index++ {
		if ctx.Err() != nil {
			return
		}

		rec, ok := s.playlist.At(index)
		if !ok {
			// Pagination lagged behind playback or the source is
			// exhausted: stop cleanly instead of stalling.
			s.mu.Lock()
			if gen == s.gen {
				s.playing = false
			}
			stale := gen != s.gen
			s.mu.Unlock()
			if !stale {
				s.emit(Event{Kind: KindEndOfPlaylist, Index: index})
			}
			return
		}

		s.maybeFetchAhead(index)

		if !s.syncCursor(gen, index) {
			return
		}
		s.emit(Event{Kind: KindSentenceStarted, Index: index})

		err := s.playSentence(ctx, gen, index, rec)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			s.mu.Lock()
			if gen == s.gen {
				s.playing = false
			}
			stale := gen != s.gen
			s.mu.Unlock()
			if !stale {
				s.emit(Event{Kind: KindPlaybackError, Index: index, Err: err})
			}
			return
		}

		if !s.current(gen) {
			return
		}
	}
}

// playSentence runs the phase sequence for one record. Audio phases are
// skipped, not failed, when the record has no recording.
func (s *Sequencer) playSentence(ctx context.Context, gen uint64, index int, rec tatoeba.Sentence) error {
	if err := s.delay(ctx, gen, index, PhaseInitialPause, s.initialPause); err != nil {
		return err
	}

	if rec.HasAudio() {
		if err := s.play(ctx, gen, index, PhasePlayOriginal, rec.Audios[0]); err != nil {
			return err
		}
	}
	if err := s.delay(ctx, gen, index, PhasePostSentenceDelay, s.Settings().PostSentenceDelay); err != nil {
		return err
	}

	if tr, ok := rec.FirstTranslationWithAudio(); ok {
		if err := s.play(ctx, gen, index, PhasePlayTranslation, tr.Audios[0]); err != nil {
			return err
		}
	}
	if err := s.delay(ctx, gen, index, PhasePostTranslationDelay, s.Settings().PostTranslationDelay); err != nil {
		return err
	}

	// Repeat decision uses the settings as they are when this step is
	// reached, not when the sentence started.
	if st := s.Settings(); st.RepeatOriginal && rec.HasAudio() {
		if err := s.play(ctx, gen, index, PhaseRepeatOriginal, rec.Audios[0]); err != nil {
			return err
		}
		if err := s.delay(ctx, gen, index, PhasePostRepeatDelay, st.PostSentenceDelay); err != nil {
			return err
		}
	}

	return nil
}

// play runs one audio phase.
func (s *Sequencer) play(ctx context.Context, gen uint64, index int, phase Phase, ref tatoeba.Audio) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if !s.current(gen) {
		return context.Canceled
	}
	s.emit(Event{Kind: KindPhaseChanged, Index: index, Phase: phase})
	return s.player.Play(ctx, s.audioURL(ref))
}

// delay runs one wait phase, returning early on cancellation.
func (s *Sequencer) delay(ctx context.Context, gen uint64, index int, phase Phase, d time.Duration) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if !s.current(gen) {
		return context.Canceled
	}
	s.emit(Event{Kind: KindPhaseChanged, Index: index, Phase: phase})

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// syncCursor moves the playlist cursor to index on behalf of gen.
// Returns false when the activation has been superseded.
func (s *Sequencer) syncCursor(gen uint64, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.playlist.SetCursor(index)
	return true
}

// maybeFetchAhead issues one background page fetch per length crossing
// when the cursor is within fetchLookahead of the end of the playlist.
// The fetch is fire-and-forget: playback never waits for it.
func (s *Sequencer) maybeFetchAhead(index int) {
	if s.source == nil {
		return
	}

	length := s.playlist.Len()
	if index < length-fetchLookahead {
		return
	}

	s.mu.Lock()
	if s.exhausted || s.lastFetchLen == length {
		s.mu.Unlock()
		return
	}
	s.lastFetchLen = length
	s.mu.Unlock()

	go func() {
		items, err := s.source.NextPage(s.life)
		if err != nil {
			s.mu.Lock()
			s.lastFetchLen = -1 // retry on the next crossing
			s.mu.Unlock()
			if s.life.Err() == nil {
				s.emit(Event{Kind: KindFetchError, Err: err})
			}
			return
		}
		if len(items) == 0 {
			s.mu.Lock()
			s.exhausted = true
			s.mu.Unlock()
			return
		}
		s.playlist.Append(items)
		s.emit(Event{Kind: KindPlaylistExtended, Appended: len(items)})
	}()
}

// emit delivers an event unless the sequencer has been disposed.
func (s *Sequencer) emit(e Event) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if s.disposed {
		return
	}
	select {
	case s.events <- e:
	case <-s.life.Done():
	}
}
