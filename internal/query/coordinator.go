package query

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/atomicstack/smm-uncleared/internal/logging/events"
)

const defaultCacheSize = 16

// Fetcher performs the request for a key.
type Fetcher[T any] func(ctx context.Context, key Key) (T, error)

// Ticket is handed out by Request and must accompany the matching Run and
// Resolve calls.
type Ticket struct {
	Key Key
	id  string
}

// ID is the canonical key string the ticket was issued for.
func (t Ticket) ID() string {
	return t.id
}

// Coordinator owns the observable result of one query slot.
type Coordinator[T any] struct {
	fetch     Fetcher[T]
	group     singleflight.Group
	cacheSize int

	mu      sync.Mutex
	current Ticket
	result  Result[T]
	cache   map[string]T
	order   []string
}

// Option tweaks a Coordinator.
type Option func(*options)

type options struct {
	cacheSize int
}

// WithCacheSize bounds the number of successful results kept. Zero
// disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

func NewCoordinator[T any](fetch Fetcher[T], opts ...Option) *Coordinator[T] {
	o := options{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	return &Coordinator[T]{
		fetch:     fetch,
		cacheSize: o.cacheSize,
		cache:     make(map[string]T),
	}
}

// Request makes key the current one. It reports whether the caller must
// Run the ticket: false when the key is already current or served from the
// cache. Any result held for a different key is discarded.
func (c *Coordinator[T]) Request(key Key) (Ticket, bool) {
	id := key.String()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current.id == id && c.result.Status != StatusIdle {
		events.Query.Request(id, c.result.Status == StatusOK)
		return c.current, false
	}
	c.current = Ticket{Key: key, id: id}
	if data, ok := c.cache[id]; ok {
		c.result = Result[T]{Status: StatusOK, Data: data, ResponseCode: 200}
		events.Query.Request(id, true)
		return c.current, false
	}
	c.result = Result[T]{Status: StatusLoading}
	events.Query.Request(id, false)
	return c.current, true
}

// Run performs the fetch for ticket. Concurrent runs of the same key share
// a single call. The result is not committed; pass it to Resolve.
func (c *Coordinator[T]) Run(ctx context.Context, ticket Ticket) Result[T] {
	v, err, shared := c.group.Do(ticket.id, func() (interface{}, error) {
		return c.fetch(ctx, ticket.Key)
	})
	events.Query.Fetch(ticket.id, shared)
	var data T
	if err == nil {
		data = v.(T)
	}
	return FromError(data, err)
}

// Resolve commits res when ticket still names the current key and reports
// whether it did. Results for superseded keys are dropped.
func (c *Coordinator[T]) Resolve(ticket Ticket, res Result[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ticket.id != c.current.id {
		events.Query.Stale(ticket.id, c.current.id)
		return false
	}
	if c.result.Status != StatusLoading {
		return false
	}
	c.result = res
	if res.Status == StatusOK {
		c.remember(ticket.id, res.Data)
	}
	events.Query.Resolve(ticket.id, res.Status.String(), res.ResponseCode)
	return true
}

// Current returns the current ticket and its result.
func (c *Coordinator[T]) Current() (Ticket, Result[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.result
}

// Result returns the current result.
func (c *Coordinator[T]) Result() Result[T] {
	_, res := c.Current()
	return res
}

// remember stores data, evicting the oldest entry when full. Callers hold mu.
func (c *Coordinator[T]) remember(id string, data T) {
	if c.cacheSize == 0 {
		return
	}
	if _, ok := c.cache[id]; !ok {
		c.order = append(c.order, id)
	}
	c.cache[id] = data
	for len(c.order) > c.cacheSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.cache, oldest)
	}
}
