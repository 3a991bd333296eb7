package core

// Observable holds a value and notifies typed listeners whenever it is set.
//
// Observable is NOT thread-safe. It must only be accessed from the UI
// goroutine.
//
// Example:
//
//	count := core.NewObservable(0)
//	count.AddListener(func(v int) {
//	    fmt.Println("count is now", v)
//	})
//	count.Set(1)
//	count.Update(func(v int) int { return v + 1 })
type Observable[T any] struct {
	value          T
	listeners      map[int]func(T)
	nextListenerID int
}

// NewObservable creates an observable with the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set stores a new value and notifies all listeners.
func (o *Observable[T]) Set(value T) {
	o.value = value
	for _, listener := range o.listeners {
		listener(value)
	}
}

// Update applies a transformation to the current value and notifies listeners.
func (o *Observable[T]) Update(transform func(T) T) {
	o.Set(transform(o.value))
}

// AddListener adds a callback that receives each new value.
// Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	id := o.nextListenerID
	o.nextListenerID++
	o.listeners[id] = fn
	return func() {
		delete(o.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	return len(o.listeners)
}
