package playlist

import (
	"sync"

	"github.com/listen2bea/listen2bea/internal/tatoeba"
)

// Playlist is the session's working set of sentences plus a cursor.
// Items only grow (pagination appends) until Replace swaps the whole
// list on a reload or language change. Safe for concurrent use: the
// sequencer reads it from its playback goroutine while the UI and
// pagination fetches mutate it.
type Playlist struct {
	mu     sync.RWMutex
	items  []tatoeba.Sentence
	cursor int
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{}
}

// Replace swaps the entire item list and resets the cursor to 0.
func (p *Playlist) Replace(items []tatoeba.Sentence) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
	p.cursor = 0
}

// Append extends the playlist with more records. The cursor is untouched.
func (p *Playlist) Append(items []tatoeba.Sentence) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, items...)
}

// Len returns the number of items.
func (p *Playlist) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

// At returns the sentence at index, or false when out of range.
func (p *Playlist) At(index int) (tatoeba.Sentence, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if index < 0 || index >= len(p.items) {
		return tatoeba.Sentence{}, false
	}
	return p.items[index], true
}

// Cursor returns the current cursor position.
func (p *Playlist) Cursor() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cursor
}

// SetCursor moves the cursor to index, clamped into [0, Len()-1].
// Returns the position actually set.
func (p *Playlist) SetCursor(index int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = clamp(index, len(p.items))
	return p.cursor
}

// Seek moves the cursor by delta (typically ±1), clamped into bounds,
// and returns the new position.
func (p *Playlist) Seek(delta int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = clamp(p.cursor+delta, len(p.items))
	return p.cursor
}

func clamp(index, length int) int {
	if length == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
