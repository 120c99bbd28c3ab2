package client

import "sync"

// observers is a minimal subscription list shared by the client-side
// stores. Callbacks run outside store locks.
type observers struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// subscribe registers fn and returns its unsubscribe function.
func (o *observers) subscribe(fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.subs == nil {
		o.subs = make(map[int]func())
	}
	id := o.next
	o.next++
	o.subs[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

func (o *observers) notify() {
	o.mu.Lock()
	fns := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
