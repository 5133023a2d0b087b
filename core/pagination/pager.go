package pagination

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxPages is used when Config.MaxPages is not positive.
const DefaultMaxPages = 1000

var (
	// ErrExhausted is returned by Next once the final page has been consumed.
	ErrExhausted = errors.New("pagination: sequence exhausted")
)

// OverrunError is returned when an upstream keeps returning a cursor after
// MaxPages pages have been fetched.
type OverrunError struct {
	MaxPages    int
	NextPageKey string
}

// Error implements the error interface.
func (e *OverrunError) Error() string {
	return fmt.Sprintf("pagination overrun: upstream still returned a page key after %d pages (next=%q)", e.MaxPages, e.NextPageKey)
}

// FetchFunc fetches the page identified by pageKey ("" for the first page)
// and returns its items plus the next page key ("" when this is the last page).
type FetchFunc[T any] func(ctx context.Context, pageKey string) (items []T, nextPageKey string, err error)

// Config holds pager configuration.
type Config struct {
	// MaxPages is the maximum number of pages fetched before giving up.
	MaxPages int
}

// Pager walks a cursor chain one page per call.
type Pager[T any] struct {
	fetch   FetchFunc[T]
	config  Config
	pageKey string
	pages   int
	done    bool
	err     error
}

// New creates a pager starting at the first page.
func New[T any](fetch FetchFunc[T], config Config) *Pager[T] {
	if config.MaxPages <= 0 {
		config.MaxPages = DefaultMaxPages
	}
	return &Pager[T]{fetch: fetch, config: config}
}

// Next fetches the next page. After the last page, or after any error, the
// pager is finished and further calls return ErrExhausted or the sticky error.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.done {
		return nil, ErrExhausted
	}

	if p.pages >= p.config.MaxPages {
		p.err = &OverrunError{MaxPages: p.config.MaxPages, NextPageKey: p.pageKey}
		return nil, p.err
	}

	items, next, err := p.fetch(ctx, p.pageKey)
	if err != nil {
		p.err = fmt.Errorf("page %d: %w", p.pages+1, err)
		return nil, p.err
	}

	p.pages++
	p.pageKey = next
	if next == "" {
		p.done = true
	}
	return items, nil
}

// Done reports whether the final page has been consumed.
func (p *Pager[T]) Done() bool {
	return p.done
}

// Pages returns the number of pages fetched so far.
func (p *Pager[T]) Pages() int {
	return p.pages
}

// Drain fetches every remaining page and concatenates the items in cursor order.
func Drain[T any](ctx context.Context, p *Pager[T]) ([]T, error) {
	var all []T
	for !p.Done() {
		items, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}
