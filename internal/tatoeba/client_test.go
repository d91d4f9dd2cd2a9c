package tatoeba

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleResponse = `{
	"paging": {
		"Sentences": {"page": 2, "pageCount": 7, "count": 64}
	},
	"results": [
		{
			"id": 1276, "text": "Tengo que irme a dormir.", "lang": "spa",
			"audios": [{"id": 300}],
			"translations": [
				[{"id": 1277, "text": "I have to go to sleep.", "lang": "eng", "audios": [{"id": 7}]}],
				[{"id": 1280, "text": "I must go to bed.", "lang": "eng", "audios": []}]
			]
		},
		{
			"id": 2481, "text": "No lo sé.", "lang": "spa",
			"audios": [],
			"translations": []
		}
	]
}`

func TestFetchPage(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/eng/api_v0/search" {
			http.NotFound(w, r)
			return
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	page, err := c.FetchPage(context.Background(), Query{From: "spa", To: "eng", Page: 2})
	if err != nil {
		t.Fatalf("fetch page: %v", err)
	}

	if gotQuery["from"] != "spa" || gotQuery["to"] != "eng" {
		t.Errorf("language params = %q/%q, want spa/eng", gotQuery["from"], gotQuery["to"])
	}
	if gotQuery["has_audio"] != "yes" {
		t.Errorf("has_audio = %q, want yes", gotQuery["has_audio"])
	}
	if gotQuery["page"] != "2" {
		t.Errorf("page = %q, want 2", gotQuery["page"])
	}

	if len(page.Sentences) != 2 {
		t.Fatalf("sentences = %d, want 2", len(page.Sentences))
	}
	if page.Number != 2 || page.LastPage != 7 || page.Total != 64 {
		t.Errorf("paging = %d/%d (%d), want 2/7 (64)", page.Number, page.LastPage, page.Total)
	}
	if !page.HasMore() {
		t.Error("expected HasMore for page 2 of 7")
	}

	s := page.Sentences[0]
	if s.Text != "Tengo que irme a dormir." {
		t.Errorf("text = %q", s.Text)
	}
	if !s.HasAudio() {
		t.Error("expected first sentence to have audio")
	}
	if page.Sentences[1].HasAudio() {
		t.Error("expected second sentence to have no audio")
	}
}

func TestFetchPageDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Errorf("page = %q, want 1", got)
		}
		if got := r.URL.Query().Get("sort"); got != "relevance" {
			t.Errorf("sort = %q, want relevance", got)
		}
		_, _ = w.Write([]byte(`{"paging":{"Sentences":{"page":1,"pageCount":1,"count":0}},"results":[]}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	if _, err := c.FetchPage(context.Background(), Query{From: "spa", To: "eng"}); err != nil {
		t.Fatalf("fetch page: %v", err)
	}
}

func TestFetchPageMissingLanguages(t *testing.T) {
	c := NewClient()
	if _, err := c.FetchPage(context.Background(), Query{From: "spa"}); err == nil {
		t.Error("expected error for missing target language")
	}
}

func TestFetchPageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	_, err := c.FetchPage(context.Background(), Query{From: "spa", To: "eng"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", statusErr.StatusCode)
	}
}

func TestFirstTranslationWithAudio(t *testing.T) {
	s := Sentence{
		Translations: [][]Translation{
			{{Text: "a", Audios: nil}},
			{
				{Text: "b", Audios: []Audio{{ID: 1}}},
				{Text: "c", Audios: []Audio{{ID: 2}}},
			},
		},
	}
	got, ok := s.FirstTranslationWithAudio()
	if !ok {
		t.Fatal("expected a translation with audio")
	}
	if got.Text != "b" {
		t.Errorf("text = %q, want b (first in document order)", got.Text)
	}
}

func TestFirstTranslationWithAudioNone(t *testing.T) {
	s := Sentence{
		Translations: [][]Translation{
			{{Text: "a"}},
			{{Text: "b"}},
		},
	}
	if _, ok := s.FirstTranslationWithAudio(); ok {
		t.Error("expected no translation with audio")
	}
}

func TestAudioURL(t *testing.T) {
	c := NewClient()
	got := c.AudioURL(Audio{ID: 1234})
	want := "https://tatoeba.org/audio/download/1234"
	if got != want {
		t.Errorf("audio URL = %q, want %q", got, want)
	}
}
