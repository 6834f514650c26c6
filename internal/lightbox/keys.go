package lightbox

import "sync"

// Key is a keyboard key name as reported by the browser.
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowLeft  Key = "ArrowLeft"
)

// KeySource delivers global key presses. The returned cancel func detaches
// the handler; calling it more than once is harmless.
type KeySource interface {
	Subscribe(handler func(Key)) (cancel func())
}

// Dispatcher is an in-process KeySource that fans key presses out to the
// live subscribers in subscription order.
type Dispatcher struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Key)
	ids  []int
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: map[int]func(Key){}}
}

// Subscribe implements KeySource.
func (d *Dispatcher) Subscribe(handler func(Key)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.next
	d.next++
	d.subs[id] = handler
	d.ids = append(d.ids, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.subs, id)
			for i, v := range d.ids {
				if v == id {
					d.ids = append(d.ids[:i], d.ids[i+1:]...)
					break
				}
			}
		})
	}
}

// Dispatch delivers k to every live subscriber.
func (d *Dispatcher) Dispatch(k Key) {
	d.mu.Lock()
	handlers := make([]func(Key), 0, len(d.ids))
	for _, id := range d.ids {
		handlers = append(handlers, d.subs[id])
	}
	d.mu.Unlock()
	for _, h := range handlers {
		h(k)
	}
}

// Len returns the number of live subscriptions.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}
