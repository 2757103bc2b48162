package application

import (
	"sync"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
)

// ChangeListener receives the review list, newest first, after a review has
// been accepted. The slice is a private copy per listener.
type ChangeListener func(reviews []model.Review)

// changeFeed holds the registered listeners behind a mutex so listeners can
// be added and removed while submissions are in flight.
type changeFeed struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]ChangeListener
}

func newChangeFeed() *changeFeed {
	return &changeFeed{listeners: make(map[uint64]ChangeListener)}
}

// subscribe registers l and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (f *changeFeed) subscribe(l ChangeListener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.listeners, id)
		})
	}
}

// hasListeners reports whether any listener is registered.
func (f *changeFeed) hasListeners() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.listeners) > 0
}

// publish calls every listener with its own copy of reviews. Listeners run
// outside the lock so they may unsubscribe themselves.
func (f *changeFeed) publish(reviews []model.Review) {
	f.mu.RLock()
	targets := make([]ChangeListener, 0, len(f.listeners))
	for _, l := range f.listeners {
		targets = append(targets, l)
	}
	f.mu.RUnlock()

	for _, l := range targets {
		snapshot := make([]model.Review, len(reviews))
		copy(snapshot, reviews)
		l(snapshot)
	}
}
