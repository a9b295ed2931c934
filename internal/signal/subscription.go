package signal

import "sync"

const subscriptionBuffer = 8

// Subscription is a stream of values published on one topic after it was
// registered. A slow reader never blocks publishers: when the buffer is full
// the oldest pending value is dropped in favor of the newest.
type Subscription[V any] struct {
	ch      chan V
	channel *Channel[V]
	topic   string
	id      uint64
	once    sync.Once
}

// C returns the delivery channel. It is never closed; select on your own
// termination signal alongside it.
func (s *Subscription[V]) C() <-chan V {
	return s.ch
}

// Topic returns the subscribed topic.
func (s *Subscription[V]) Topic() string {
	return s.topic
}

// Close retires the subscription. Values published afterwards are not delivered.
func (s *Subscription[V]) Close() {
	s.once.Do(func() { s.channel.unsubscribe(s) })
}

// deliver вызывается под мьютексом канала
func (s *Subscription[V]) deliver(v V) {
	for {
		select {
		case s.ch <- v:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}
