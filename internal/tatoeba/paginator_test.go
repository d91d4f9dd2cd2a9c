package tatoeba

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPaginatorWalksPagesThenStops(t *testing.T) {
	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		requested = append(requested, page)
		fmt.Fprintf(w, `{
			"paging": {"Sentences": {"page": %s, "pageCount": 2, "count": 4}},
			"results": [{"id": %s0, "text": "hola", "lang": "spa"}]
		}`, page, page)
	}))
	defer srv.Close()

	p := NewPaginator(NewClient(WithBaseURL(srv.URL)), Query{From: "spa", To: "eng"})

	first, err := p.NextPage(context.Background())
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(first) != 1 || first[0].ID != 10 {
		t.Fatalf("page 1 sentences = %+v", first)
	}

	second, err := p.NextPage(context.Background())
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(second) != 1 || second[0].ID != 20 {
		t.Fatalf("page 2 sentences = %+v", second)
	}

	// Past the last page: empty result, no request made.
	third, err := p.NextPage(context.Background())
	if err != nil || third != nil {
		t.Fatalf("exhausted paginator = (%v, %v), want (nil, nil)", third, err)
	}

	if len(requested) != 2 || requested[0] != "1" || requested[1] != "2" {
		t.Errorf("requested pages = %v, want [1 2]", requested)
	}
}

func TestPaginatorRetriesFailedPage(t *testing.T) {
	var fail bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprintf(w, `{
			"paging": {"Sentences": {"page": 1, "pageCount": 1, "count": 1}},
			"results": [{"id": 1, "text": "hola", "lang": "spa"}]
		}`)
	}))
	defer srv.Close()

	p := NewPaginator(NewClient(WithBaseURL(srv.URL)), Query{From: "spa", To: "eng"})

	fail = true
	if _, err := p.NextPage(context.Background()); err == nil {
		t.Fatal("expected error from failing server")
	}

	// The position was not advanced; the retry serves page 1.
	fail = false
	items, err := p.NextPage(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("retry sentences = %+v", items)
	}
}
