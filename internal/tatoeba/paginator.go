package tatoeba

import (
	"context"
	"sync"
)

// Paginator walks the pages of one search query in order, remembering
// where it left off. It satisfies the sequencer's Source interface so
// the playlist can grow in the background while audio plays.
type Paginator struct {
	client *Client
	query  Query

	mu   sync.Mutex
	next int
	done bool
}

// NewPaginator starts paging q from its Page field (or page 1).
func NewPaginator(client *Client, q Query) *Paginator {
	start := q.Page
	if start < 1 {
		start = 1
	}
	return &Paginator{client: client, query: q, next: start}
}

// NextPage fetches the next unread page and returns its sentences. Once
// the last page has been read it returns (nil, nil) forever. A fetch
// error leaves the position unchanged so the same page can be retried.
func (p *Paginator) NextPage(ctx context.Context) ([]Sentence, error) {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		return nil, nil
	}
	q := p.query
	q.Page = p.next
	p.mu.Unlock()

	page, err := p.client.FetchPage(ctx, q)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.next++
	if !page.HasMore() {
		p.done = true
	}
	p.mu.Unlock()

	return page.Sentences, nil
}
