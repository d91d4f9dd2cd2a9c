package hints

import "github.com/listen2bea/listen2bea/internal/tatoeba"

// Hint is an LLM-generated explanation of one sentence.
type Hint struct {
	SentenceID  int
	Literal     string
	Vocabulary  []VocabEntry
	GrammarNote string
}

// VocabEntry glosses a single word or phrase from the sentence.
type VocabEntry struct {
	Word    string
	Meaning string
}

// HintInput holds all context needed to explain a sentence.
type HintInput struct {
	Sentence tatoeba.Sentence
	FromLang string // language being practiced
	ToLang   string // language to explain in
}
