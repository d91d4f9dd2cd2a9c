package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/listen2bea/listen2bea/internal/llm"
)

// Service explains sentences asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Hint
	err     error
	ready   bool
}

// NewService creates a hint generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestHint starts async hint generation. Only one hint is in-flight
// at a time — new requests replace pending ones.
func (s *Service) RequestHint(ctx context.Context, input HintInput) {
	go func() {
		hint, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = hint
		s.err = err
		s.ready = true
	}()
}

// ConsumeHint returns the finished request, if any. done is false while
// generation is still in flight; once it is true the slot is cleared and
// either hint or err carries the outcome. A failed generation is a
// completed one — pollers must stop on it, not keep waiting.
func (s *Service) ConsumeHint() (hint *Hint, done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false, nil
	}
	hint, err = s.pending, s.err
	s.pending = nil
	s.ready = false
	s.err = nil
	return hint, true, err
}

type hintOutput struct {
	Literal    string `json:"literal"`
	Vocabulary []struct {
		Word    string `json:"word"`
		Meaning string `json:"meaning"`
	} `json:"vocabulary"`
	GrammarNote string `json:"grammar_note"`
}

func (s *Service) generate(ctx context.Context, input HintInput) (*Hint, error) {
	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintUserMessage(input)},
		},
		Schema:      HintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}

	hint := &Hint{
		SentenceID:  input.Sentence.ID,
		Literal:     out.Literal,
		GrammarNote: out.GrammarNote,
	}
	for _, v := range out.Vocabulary {
		hint.Vocabulary = append(hint.Vocabulary, VocabEntry{Word: v.Word, Meaning: v.Meaning})
	}
	return hint, nil
}
