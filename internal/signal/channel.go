// Package signal implements a named rendezvous primitive: values are published
// under a topic and any number of waiters block until a value arrives on that
// topic or their deadline passes.
package signal

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"
)

// DefaultRetention is how long a value nobody consumed stays observable.
const DefaultRetention = 250 * time.Millisecond

// Forever disables the deadline of Await.
const Forever = time.Duration(math.MaxInt64)

var (
	// ErrTimedOut is returned by Await when the deadline passes first.
	// It is a normal outcome, not a fault.
	ErrTimedOut = errors.New("signal: timed out")

	// ErrInvalidTimeout indicates an already elapsed (negative) deadline.
	ErrInvalidTimeout = errors.New("signal: invalid timeout")
)

// waiter is a one-shot registration created by Await.
type waiter[V any] struct {
	accept func(V) bool
	ch     chan V // buffered, receives at most one value
}

// retained хранит значение, которое никто не забрал
type retained[V any] struct {
	expires time.Time
	value   V
}

// Channel is a many-writer/many-reader rendezvous keyed by topic strings.
// All methods are safe for concurrent use.
type Channel[V any] struct {
	now       func() time.Time
	waiters   map[string]map[uint64]*waiter[V]
	subs      map[string]map[uint64]*Subscription[V]
	retained  map[string]retained[V]
	cleanupC  chan struct{}
	retention time.Duration
	nextID    uint64
	mu        sync.Mutex
	closeOnce sync.Once
}

// Option configures a Channel.
type Option func(*options)

type options struct {
	now       func() time.Time
	retention time.Duration
	janitor   time.Duration
}

// WithRetention sets the grace window during which an unconsumed value is kept.
// Zero disables retention: values published with nobody waiting are dropped.
func WithRetention(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.retention = d
		}
	}
}

// WithJanitorInterval sets how often expired values are purged. Zero disables the janitor.
func WithJanitorInterval(d time.Duration) Option {
	return func(o *options) { o.janitor = d }
}

// withClock подменяет источник времени (для тестов)
func withClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewChannel creates a Channel. The janitor goroutine runs until Close.
func NewChannel[V any](opts ...Option) *Channel[V] {
	o := options{
		now:       time.Now,
		retention: DefaultRetention,
		janitor:   time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Channel[V]{
		now:       o.now,
		waiters:   make(map[string]map[uint64]*waiter[V]),
		subs:      make(map[string]map[uint64]*Subscription[V]),
		retained:  make(map[string]retained[V]),
		cleanupC:  make(chan struct{}),
		retention: o.retention,
	}

	if o.janitor > 0 {
		go c.cleanup(o.janitor)
	}

	return c
}

// Close stops the janitor. Pending waiters are not woken; they still honor
// their own deadlines.
func (c *Channel[V]) Close() {
	c.closeOnce.Do(func() { close(c.cleanupC) })
}

// cleanup периодически удаляет просроченные значения
func (c *Channel[V]) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.purgeExpired()
		case <-c.cleanupC:
			return
		}
	}
}

func (c *Channel[V]) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for topic, r := range c.retained {
		if !now.Before(r.expires) {
			delete(c.retained, topic)
		}
	}
}

// Publish wakes every waiter on topic whose filter accepts v and delivers v to
// every live subscription. If nobody consumed the value it is retained for the
// retention window; a later publish on the same topic replaces it. Publish
// never blocks.
func (c *Channel[V]) Publish(topic string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	consumed := false

	for id, w := range c.waiters[topic] {
		if w.accept != nil && !w.accept(v) {
			continue
		}
		w.ch <- v // буфер 1, ожидающий удаляется сразу, поэтому не блокирует
		delete(c.waiters[topic], id)
		consumed = true
	}
	if len(c.waiters[topic]) == 0 {
		delete(c.waiters, topic)
	}

	for _, s := range c.subs[topic] {
		s.deliver(v)
		consumed = true
	}

	if consumed || c.retention == 0 {
		delete(c.retained, topic)
		return
	}

	c.retained[topic] = retained[V]{value: v, expires: c.now().Add(c.retention)}
}

// Await blocks until a value is published on topic or timeout elapses.
// A value retained within the grace window satisfies the call immediately.
// It returns ErrTimedOut when the deadline passes, ErrInvalidTimeout for a
// negative timeout and ctx.Err() when the context is done. Timeout zero
// returns ErrTimedOut unless a value is retained.
func (c *Channel[V]) Await(ctx context.Context, topic string, timeout time.Duration) (V, error) {
	return c.AwaitFunc(ctx, topic, timeout, nil)
}

// AwaitFunc is Await restricted to values accepted by accept. Rejected values
// neither satisfy nor retire the waiter. A nil accept takes every value.
func (c *Channel[V]) AwaitFunc(ctx context.Context, topic string, timeout time.Duration, accept func(V) bool) (V, error) {
	var zero V

	if timeout < 0 {
		return zero, ErrInvalidTimeout
	}

	c.mu.Lock()
	if r, ok := c.retained[topic]; ok {
		if c.now().Before(r.expires) {
			if accept == nil || accept(r.value) {
				c.mu.Unlock()
				return r.value, nil
			}
		} else {
			delete(c.retained, topic)
		}
	}

	if timeout == 0 {
		c.mu.Unlock()
		return zero, ErrTimedOut
	}

	c.nextID++
	id := c.nextID
	w := &waiter[V]{accept: accept, ch: make(chan V, 1)}
	if c.waiters[topic] == nil {
		c.waiters[topic] = make(map[uint64]*waiter[V])
	}
	c.waiters[topic][id] = w
	c.mu.Unlock()

	var deadline <-chan time.Time
	if timeout != Forever {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case v := <-w.ch:
		return v, nil
	case <-deadline:
		return c.retire(topic, id, w, ErrTimedOut)
	case <-ctx.Done():
		return c.retire(topic, id, w, ctx.Err())
	}
}

// retire снимает ожидающего; значение, успевшее прийти до снятия, не теряется
func (c *Channel[V]) retire(topic string, id uint64, w *waiter[V], cause error) (V, error) {
	c.mu.Lock()
	delete(c.waiters[topic], id)
	if len(c.waiters[topic]) == 0 {
		delete(c.waiters, topic)
	}
	c.mu.Unlock()

	select {
	case v := <-w.ch:
		return v, nil
	default:
		var zero V
		return zero, cause
	}
}

// Subscribe registers a stream of the values published on topic from now on.
// Retained values are not replayed.
func (c *Channel[V]) Subscribe(topic string) *Subscription[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	s := &Subscription[V]{
		ch:      make(chan V, subscriptionBuffer),
		channel: c,
		topic:   topic,
		id:      c.nextID,
	}
	if c.subs[topic] == nil {
		c.subs[topic] = make(map[uint64]*Subscription[V])
	}
	c.subs[topic][s.id] = s

	return s
}

func (c *Channel[V]) unsubscribe(s *Subscription[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.subs[s.topic], s.id)
	if len(c.subs[s.topic]) == 0 {
		delete(c.subs, s.topic)
	}
}

// Waiters returns the number of goroutines blocked in Await on topic.
func (c *Channel[V]) Waiters(topic string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.waiters[topic])
}
