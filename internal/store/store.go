// Package store holds the long-lived per-collection state containers. One
// container exists per collection kind for the whole process lifetime; it is
// mutated only by the fetch lifecycle transitions and the user-driven setters.
package store

import (
	"context"
	"sync"

	"github.com/Rishikeshk9/astudio/internal/domain"
)

const defaultFetchErrMsg = "failed to fetch collection"

// State is a point-in-time snapshot of one collection container. Items hold
// the current page only, never the full remote collection; Total is the
// remote-reported count across all pages.
type State[T any] struct {
	Items       []T
	Total       int
	Loading     bool
	Error       string
	PageSize    int
	CurrentPage int
	SearchTerm  string
}

// Params returns the remote paging parameters implied by the state.
func (s State[T]) Params() domain.PageParams {
	return domain.PageParams{CurrentPage: s.CurrentPage, PageSize: s.PageSize}
}

// Effect is invoked whenever (currentPage, pageSize) changes. The fetch that
// used to be an implicit re-render coupling is registered here explicitly.
type Effect func(ctx context.Context, p domain.PageParams)

// Container is a mutex-guarded state container for one collection kind.
// Setters never fetch by themselves; they only notify the registered effect.
type Container[T any] struct {
	mu      sync.Mutex
	state   State[T]
	started bool
	effect  Effect
}

// New creates an idle container with empty items and zero total.
func New[T any](pageSize int) *Container[T] {
	return &Container[T]{
		state: State[T]{PageSize: pageSize},
	}
}

// OnPageParamsChange registers the fetch effect. Only one effect is kept.
func (c *Container[T]) OnPageParamsChange(fn Effect) {
	c.mu.Lock()
	c.effect = fn
	c.mu.Unlock()
}

// SetPageSize changes the page size and re-anchors to the first page.
func (c *Container[T]) SetPageSize(ctx context.Context, size int) {
	c.mu.Lock()
	if c.state.PageSize == size {
		c.mu.Unlock()
		return
	}
	c.state.PageSize = size
	c.state.CurrentPage = 0
	params, fn := c.state.Params(), c.effect
	c.mu.Unlock()
	if fn != nil {
		fn(ctx, params)
	}
}

// SetCurrentPage moves to a zero-based page index.
func (c *Container[T]) SetCurrentPage(ctx context.Context, page int) {
	c.mu.Lock()
	changed := c.state.CurrentPage != page
	c.state.CurrentPage = page
	params, fn := c.state.Params(), c.effect
	c.mu.Unlock()
	if changed && fn != nil {
		fn(ctx, params)
	}
}

// SetPageParams applies page index and page size together, notifying the
// effect at most once. A non-positive size keeps the current page size.
func (c *Container[T]) SetPageParams(ctx context.Context, page, size int) {
	c.mu.Lock()
	if size <= 0 {
		size = c.state.PageSize
	}
	prev := c.state.Params()
	c.state.PageSize = size
	c.state.CurrentPage = page
	params, fn := c.state.Params(), c.effect
	c.mu.Unlock()
	if params != prev && fn != nil {
		fn(ctx, params)
	}
}

// SetSearchTerm stores the global search term. Search is applied client-side
// over the loaded page, so no fetch is triggered.
func (c *Container[T]) SetSearchTerm(term string) {
	c.mu.Lock()
	c.state.SearchTerm = term
	c.mu.Unlock()
}

// EnsureStarted triggers the effect once for a container that has never
// fetched, so the first browse loads the initial page.
func (c *Container[T]) EnsureStarted(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	params, fn := c.state.Params(), c.effect
	c.mu.Unlock()
	if fn != nil {
		fn(ctx, params)
	}
}

// BeginFetch marks the pending transition: loading set, error cleared.
func (c *Container[T]) BeginFetch() {
	c.mu.Lock()
	c.started = true
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()
}

// CompleteFetch stores a fetched page verbatim. There is no cancellation
// token: a stale response arriving late overwrites fresher state.
func (c *Container[T]) CompleteFetch(items []T, total int) {
	c.mu.Lock()
	c.state.Loading = false
	c.state.Items = items
	c.state.Total = total
	c.mu.Unlock()
}

// FailFetch records the rejected transition with the error message.
func (c *Container[T]) FailFetch(err error) {
	msg := defaultFetchErrMsg
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	c.mu.Lock()
	c.state.Loading = false
	c.state.Error = msg
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state. The items slice is shared;
// callers treat fetched records as immutable.
func (c *Container[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
