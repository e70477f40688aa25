package pricing

import (
	"context"
	"sync"
	"time"
)

// Origin records how a cached value was obtained.
type Origin int

const (
	// OriginLive means the value was fetched from upstream by this call.
	OriginLive Origin = iota
	// OriginCache means the value was served from cache within its TTL.
	OriginCache
	// OriginStale means the TTL had expired, the refresh failed, and the last
	// known value was served instead.
	OriginStale
)

func (o Origin) String() string {
	switch o {
	case OriginLive:
		return "live"
	case OriginCache:
		return "cache"
	case OriginStale:
		return "stale"
	}
	return "unknown"
}

// Cached is a value together with when it was fetched and how it was served.
type Cached[T any] struct {
	Value     T
	FetchedAt time.Time
	Origin    Origin
	// Err is the refresh failure that forced a stale value to be served.
	Err error
}

// Slot is a single-value cache with a fixed TTL. It is safe for concurrent
// use; Load holds the slot's lock across check, fetch and write so that
// concurrent callers never both refresh or observe a half-written entry.
type Slot[T any] struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	value     T
	fetchedAt time.Time
	filled    bool
}

// NewSlot creates an empty slot. A nil now uses time.Now.
func NewSlot[T any](ttl time.Duration, now func() time.Time) *Slot[T] {
	if now == nil {
		now = time.Now
	}
	return &Slot[T]{ttl: ttl, now: now}
}

// Load returns the cached value while it is within its TTL. Otherwise it calls
// fetch; a successful result replaces the entry, a failed one falls back to the
// expired entry if there is one. With no entry at all the fetch error is
// returned.
func (s *Slot[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (Cached[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filled && s.fresh() {
		return Cached[T]{Value: s.value, FetchedAt: s.fetchedAt, Origin: OriginCache}, nil
	}

	v, err := fetch(ctx)
	if err == nil {
		s.value, s.fetchedAt, s.filled = v, s.now(), true
		return Cached[T]{Value: v, FetchedAt: s.fetchedAt, Origin: OriginLive}, nil
	}

	if s.filled {
		return Cached[T]{Value: s.value, FetchedAt: s.fetchedAt, Origin: OriginStale, Err: err}, nil
	}

	var zero T
	return Cached[T]{Value: zero}, err
}

// Peek returns the current entry without fetching. ok is false for an empty
// slot; an expired entry is reported with OriginStale.
func (s *Slot[T]) Peek() (c Cached[T], ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.filled {
		return c, false
	}
	origin := OriginCache
	if !s.fresh() {
		origin = OriginStale
	}
	return Cached[T]{Value: s.value, FetchedAt: s.fetchedAt, Origin: origin}, true
}

// Store replaces the entry, stamping it with the current time.
func (s *Slot[T]) Store(v T) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value, s.fetchedAt, s.filled = v, s.now(), true
	return s.fetchedAt
}

// Clear empties the slot.
func (s *Slot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value, s.fetchedAt, s.filled = zero, time.Time{}, false
}

// fresh must be called with mu held.
func (s *Slot[T]) fresh() bool {
	return s.now().Sub(s.fetchedAt) < s.ttl
}
