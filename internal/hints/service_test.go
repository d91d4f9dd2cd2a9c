package hints

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/listen2bea/listen2bea/internal/llm"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
)

func validHintJSON() json.RawMessage {
	return json.RawMessage(`{
		"literal": "The cat sleeps on the sofa",
		"vocabulary": [
			{"word": "duerme", "meaning": "sleeps (dormir)"},
			{"word": "sofá", "meaning": "sofa"}
		],
		"grammar_note": "Dormir is stem-changing: o becomes ue in the present tense."
	}`)
}

func testInput() HintInput {
	return HintInput{
		Sentence: tatoeba.Sentence{
			ID:   321,
			Text: "El gato duerme en el sofá.",
			Lang: "spa",
			Translations: [][]tatoeba.Translation{
				{{ID: 654, Text: "The cat is sleeping on the sofa.", Lang: "eng"}},
			},
		},
		FromLang: "spa",
		ToLang:   "eng",
	}
}

func consumeWithin(t *testing.T, svc *Service, d time.Duration) (*Hint, error, bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if hint, done, err := svc.ConsumeHint(); done {
			return hint, err, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, nil, false
}

func TestService_GeneratesHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validHintJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestHint(t.Context(), testInput())

	hint, err, done := consumeWithin(t, svc, 5*time.Second)
	if !done || err != nil || hint == nil {
		t.Fatalf("expected hint to be generated, err = %v", err)
	}

	if hint.SentenceID != 321 {
		t.Errorf("sentence ID = %d, want 321", hint.SentenceID)
	}
	if hint.Literal == "" {
		t.Error("expected non-empty literal translation")
	}
	if len(hint.Vocabulary) != 2 {
		t.Fatalf("vocabulary entries = %d, want 2", len(hint.Vocabulary))
	}
	if hint.Vocabulary[0].Word != "duerme" {
		t.Errorf("first vocab word = %q, want 'duerme'", hint.Vocabulary[0].Word)
	}
	if hint.GrammarNote == "" {
		t.Error("expected non-empty grammar note")
	}
}

func TestService_ConsumeClearsHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validHintJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestHint(t.Context(), testInput())

	if _, _, done := consumeWithin(t, svc, 5*time.Second); !done {
		t.Fatal("expected hint")
	}

	if _, done, _ := svc.ConsumeHint(); done {
		t.Error("expected second ConsumeHint to report nothing pending")
	}
}

func TestService_LLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestHint(t.Context(), testInput())

	hint, err, done := consumeWithin(t, svc, 5*time.Second)
	if !done {
		t.Fatal("a failed generation must still complete the request")
	}
	if err == nil {
		t.Error("expected the generation error to be reported")
	}
	if hint != nil {
		t.Error("expected no hint on LLM error")
	}

	// The slot is cleared either way.
	if _, done, _ := svc.ConsumeHint(); done {
		t.Error("expected the error to be consumed exactly once")
	}
}

func TestService_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validHintJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestHint(t.Context(), testInput())

	if _, _, done := consumeWithin(t, svc, 5*time.Second); !done {
		t.Fatal("expected hint")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "sentence-hint" {
		t.Error("expected schema name 'sentence-hint'")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}
