package sections

import "sync"

// PushObserver is an Observer whose batches are delivered explicitly, for
// callers that receive intersection data from elsewhere (HTTP, tests).
type PushObserver struct {
	mu   sync.Mutex
	next int
	subs map[int]func([]Entry)
}

// NewPushObserver returns an observer with no subscribers.
func NewPushObserver() *PushObserver {
	return &PushObserver{subs: map[int]func([]Entry){}}
}

// Observe implements Observer.
func (p *PushObserver) Observe(_ []string, _ Options, deliver func([]Entry)) func() {
	p.mu.Lock()
	id := p.next
	p.next++
	p.subs[id] = deliver
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Deliver sends one batch to every subscriber synchronously.
func (p *PushObserver) Deliver(entries []Entry) {
	p.mu.Lock()
	subs := make([]func([]Entry), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()
	for _, fn := range subs {
		fn(entries)
	}
}

// Len returns the number of live subscriptions.
func (p *PushObserver) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
