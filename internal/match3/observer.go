package match3

import "sync"

// Observer receives emissions in stream order.
// Observers run synchronously inside the emitting call and must not block.
type Observer interface {
	Observe(Emission)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Emission)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Emission) {
	f(e)
}

type subscription struct {
	id  int
	obs Observer
}

// bus is the ordered observer list shared by a board and its controller.
type bus struct {
	nextID int
	subs   []subscription
	seq    uint64
}

// subscribe registers o and returns an idempotent cancel function.
func (b *bus) subscribe(o Observer) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, obs: o})

	var once sync.Once
	return func() {
		once.Do(func() {
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (b *bus) publish(e Event, delay Pacing) Emission {
	b.seq++
	em := Emission{Seq: b.seq, Event: e, Delay: delay.DelayFor(e)}
	// Iterate over a copy so observers may unsubscribe while being notified.
	subs := append([]subscription(nil), b.subs...)
	for _, s := range subs {
		s.obs.Observe(em)
	}
	return em
}

// Queue is a FIFO observer the presentation layer drains at its own cadence.
type Queue struct {
	items []Emission
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Observe appends e to the queue.
func (q *Queue) Observe(e Emission) {
	q.items = append(q.items, e)
}

// Len returns the number of pending emissions.
func (q *Queue) Len() int {
	return len(q.items)
}

// Peek returns the oldest pending emission without removing it.
func (q *Queue) Peek() (Emission, bool) {
	if len(q.items) == 0 {
		return Emission{}, false
	}
	return q.items[0], true
}

// Pop removes and returns the oldest pending emission.
func (q *Queue) Pop() (Emission, bool) {
	if len(q.items) == 0 {
		return Emission{}, false
	}
	e := q.items[0]
	q.items = q.items[1:]
	return e, true
}

// Drain removes and returns every pending emission.
func (q *Queue) Drain() []Emission {
	items := q.items
	q.items = nil
	return items
}

// Events returns the pending events without their envelopes.
func (q *Queue) Events() []Event {
	events := make([]Event, len(q.items))
	for i, e := range q.items {
		events[i] = e.Event
	}
	return events
}
