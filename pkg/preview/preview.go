// Package preview is the asynchronous facade over the synchronous theory
// engine. It debounces rapid-fire UI input and applies results under a
// last-issued-wins policy: every request carries a monotonically increasing
// sequence number and a result is delivered only while its sequence is the
// highest issued, so a slow older lookup can never overwrite a newer one.
package preview

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Conceptual-Machines/magda-theory/internal/logger"
)

// DefaultDebounce is the quiescence window used when the caller passes a
// non-positive one.
const DefaultDebounce = 150 * time.Millisecond

// Previewer debounces queries against a synchronous lookup and hands
// results to apply on settle. The lookup runs off the caller's goroutine;
// apply always runs under the previewer's lock, so it is never invoked
// concurrently and never after Close returns.
type Previewer[T any] struct {
	lookup   func(query string) T
	apply    func(result T)
	debounce time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	latest uint64 // highest sequence issued; only this one may apply
	closed bool
}

// New builds a previewer around a pure lookup and an apply callback.
// Neither may be nil.
func New[T any](lookup func(string) T, apply func(T), debounce time.Duration) *Previewer[T] {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Previewer[T]{
		lookup:   lookup,
		apply:    apply,
		debounce: debounce,
	}
}

// Preview schedules a lookup for query after the debounce window. Calls
// arriving inside the window replace the pending query; only settled input
// reaches the engine.
func (p *Previewer[T]) Preview(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, func() {
		p.fire(query)
	})
}

// fire issues the lookup for a settled query. The sequence number is taken
// while still holding the lock, so issue order matches sequence order.
func (p *Previewer[T]) fire(query string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.latest++
	seq := p.latest
	requestID := uuid.NewString()
	p.mu.Unlock()

	logger.Debug("preview issued", logger.WithRequest(requestID, query))

	go func() {
		result := p.lookup(query)

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed {
			return
		}
		if seq != p.latest {
			// Superseded while in flight; drop silently.
			logger.Debug("preview superseded", logger.WithRequest(requestID, query))
			return
		}
		p.apply(result)
	}()
}

// Close cancels any pending debounce and guarantees no apply callback runs
// afterwards. In-flight lookups are not interrupted (the engine has no
// cancellable steps); their results are discarded.
func (p *Previewer[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
