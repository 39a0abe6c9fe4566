// Package appctx provides request-scoped context for page assembly.
//
// RequestContext memoizes CMS reads for the lifetime of one request, so the
// layout, the page body and the structured data can all ask for the site
// settings without issuing the query three times. It also carries the
// preview flag that selects between published and draft content.
//
//	rc := appctx.New(ctx)
//	ctx = appctx.WithRequestContext(ctx, rc)
//
//	settings, err := appctx.GetOrFetch(rc, "settings:vi", fetchSettings)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a request-scoped memo cache. Unlike a plain map it is
// safe for concurrent use, because home page sections are loaded in
// parallel and may share lookups. Concurrent callers for the same key wait
// for the first fetch instead of issuing their own.
type RequestContext struct {
	context.Context
	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// done is closed once value and err are set.
type cacheEntry struct {
	done  chan struct{}
	value any
	err   error
}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]*cacheEntry),
	}
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached to
// prevent redundant calls within the same request.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
//
// fetchFn receives the RequestContext itself.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	return getOrFetch(rc, rc.Context, key, fetchFn)
}

// getOrFetch runs fetchFn with ctx. A waiter whose ctx is done stops waiting
// and returns ctx.Err() while the first fetch carries on.
func getOrFetch[T any](rc *RequestContext, ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	rc.mu.Lock()
	entry, ok := rc.cache[key]
	if !ok {
		entry = &cacheEntry{done: make(chan struct{})}
		rc.cache[key] = entry
	}
	rc.mu.Unlock()

	if !ok {
		val, err := fetchFn(ctx)
		entry.value, entry.err = val, err
		close(entry.done)
		return val, err
	}

	select {
	case <-entry.done:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	if entry.err != nil {
		return zero, entry.err
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

type (
	requestContextKey struct{}
	previewKey        struct{}
)

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok
}

// Memo fetches through the RequestContext stored in ctx, or calls fetchFn
// directly when there is none (background jobs, tests). fetchFn receives
// ctx, so deadlines and spans set after the RequestContext was created
// still apply.
func Memo[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if rc, ok := FromContext(ctx); ok {
		return getOrFetch(rc, ctx, key, fetchFn)
	}
	return fetchFn(ctx)
}

// WithPreview marks ctx as belonging to a verified preview session.
func WithPreview(ctx context.Context) context.Context {
	return context.WithValue(ctx, previewKey{}, true)
}

// IsPreview reports whether ctx belongs to a verified preview session.
func IsPreview(ctx context.Context) bool {
	v, _ := ctx.Value(previewKey{}).(bool)
	return v
}
