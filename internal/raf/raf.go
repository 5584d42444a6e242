// Package raf runs named per-frame callbacks, once per display refresh.
package raf

// Scheduler keeps callbacks in subscription order.
// It is driven from the game loop and is not safe for concurrent use.
type Scheduler struct {
	names []string
	subs  map[string]func()
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{subs: make(map[string]func())}
}

// Subscribe registers fn under name. Subscribing an existing name replaces
// its callback and keeps its place in the order.
func (s *Scheduler) Subscribe(name string, fn func()) {
	if _, ok := s.subs[name]; !ok {
		s.names = append(s.names, name)
	}
	s.subs[name] = fn
}

// Unsubscribe removes name. Unknown names are ignored.
func (s *Scheduler) Unsubscribe(name string) {
	if _, ok := s.subs[name]; !ok {
		return
	}
	delete(s.subs, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of subscriptions.
func (s *Scheduler) Len() int {
	return len(s.names)
}

// Tick runs every callback once.
func (s *Scheduler) Tick() {
	// callbacks may unsubscribe themselves
	names := append([]string(nil), s.names...)
	for _, name := range names {
		if fn, ok := s.subs[name]; ok {
			fn()
		}
	}
}
