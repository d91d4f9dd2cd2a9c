package playlist

import (
	"testing"

	"github.com/listen2bea/listen2bea/internal/tatoeba"
)

func sentences(n int) []tatoeba.Sentence {
	out := make([]tatoeba.Sentence, n)
	for i := range out {
		out[i] = tatoeba.Sentence{ID: i + 1}
	}
	return out
}

func TestReplaceResetsCursor(t *testing.T) {
	p := New()
	p.Replace(sentences(5))
	p.SetCursor(3)

	p.Replace(sentences(2))
	if got := p.Cursor(); got != 0 {
		t.Errorf("cursor after replace = %d, want 0", got)
	}
	if got := p.Len(); got != 2 {
		t.Errorf("len after replace = %d, want 2", got)
	}
}

func TestAppendKeepsCursor(t *testing.T) {
	p := New()
	p.Replace(sentences(3))
	p.SetCursor(2)

	p.Append(sentences(4))
	if got := p.Cursor(); got != 2 {
		t.Errorf("cursor after append = %d, want 2", got)
	}
	if got := p.Len(); got != 7 {
		t.Errorf("len after append = %d, want 7", got)
	}
}

func TestSeekClamps(t *testing.T) {
	p := New()
	p.Replace(sentences(3))

	if got := p.Seek(-1); got != 0 {
		t.Errorf("seek(-1) at 0 = %d, want 0", got)
	}
	if got := p.Seek(+1); got != 1 {
		t.Errorf("seek(+1) = %d, want 1", got)
	}
	p.SetCursor(2)
	if got := p.Seek(+1); got != 2 {
		t.Errorf("seek(+1) at end = %d, want 2", got)
	}
}

func TestSetCursorClamps(t *testing.T) {
	p := New()
	p.Replace(sentences(4))

	if got := p.SetCursor(99); got != 3 {
		t.Errorf("set cursor 99 = %d, want 3", got)
	}
	if got := p.SetCursor(-5); got != 0 {
		t.Errorf("set cursor -5 = %d, want 0", got)
	}
}

func TestAtBounds(t *testing.T) {
	p := New()
	p.Replace(sentences(2))

	if _, ok := p.At(1); !ok {
		t.Error("expected At(1) to succeed")
	}
	if _, ok := p.At(2); ok {
		t.Error("expected At(2) to fail")
	}
	if _, ok := p.At(-1); ok {
		t.Error("expected At(-1) to fail")
	}
}

func TestEmptyPlaylist(t *testing.T) {
	p := New()
	if got := p.Seek(+1); got != 0 {
		t.Errorf("seek on empty = %d, want 0", got)
	}
	if _, ok := p.At(0); ok {
		t.Error("expected At(0) on empty to fail")
	}
}
