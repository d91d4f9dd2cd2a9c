package tatoeba

// Audio is a reference to a recorded pronunciation of a sentence.
// The ID resolves to a playable stream via AudioURL.
type Audio struct {
	ID     int    `json:"id"`
	Author string `json:"author,omitempty"`
}

// Sentence is one example sentence as returned by the search API.
// Translations preserve the API's document order: a sequence of groups
// (direct translations, then indirect ones), each group an ordered
// sequence of sentences.
type Sentence struct {
	ID           int             `json:"id"`
	Text         string          `json:"text"`
	Lang         string          `json:"lang"`
	Audios       []Audio         `json:"audios"`
	Translations [][]Translation `json:"translations"`
}

// Translation is a translated sentence nested under a result.
type Translation struct {
	ID     int     `json:"id"`
	Text   string  `json:"text"`
	Lang   string  `json:"lang"`
	Audios []Audio `json:"audios"`
}

// HasAudio reports whether the sentence has at least one recording.
func (s Sentence) HasAudio() bool {
	return len(s.Audios) > 0
}

// HasAudio reports whether the translation has at least one recording.
func (t Translation) HasAudio() bool {
	return len(t.Audios) > 0
}

// FirstTranslationWithAudio returns the first translation, in group then
// entry document order, that has at least one audio reference. The second
// return value is false when no translation has audio.
func (s Sentence) FirstTranslationWithAudio() (Translation, bool) {
	for _, group := range s.Translations {
		for _, t := range group {
			if t.HasAudio() {
				return t, true
			}
		}
	}
	return Translation{}, false
}

// FirstTranslation returns the first translation in document order
// regardless of audio, for display purposes.
func (s Sentence) FirstTranslation() (Translation, bool) {
	for _, group := range s.Translations {
		if len(group) > 0 {
			return group[0], true
		}
	}
	return Translation{}, false
}

// Page is one page of search results.
type Page struct {
	Sentences []Sentence
	Number    int
	LastPage  int
	Total     int
}

// HasMore reports whether pages beyond this one exist.
func (p Page) HasMore() bool {
	return p.LastPage == 0 || p.Number < p.LastPage
}
