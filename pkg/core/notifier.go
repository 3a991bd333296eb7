package core

// Listenable is implemented by types that can notify listeners of changes.
type Listenable interface {
	// AddListener registers a callback and returns an unsubscribe function.
	AddListener(fn func()) func()
}

// Disposable is implemented by types that hold resources requiring explicit
// release.
type Disposable interface {
	Dispose()
}

// Notifier is the basic Listenable implementation. It maintains a set of
// listeners and invokes them synchronously on NotifyListeners.
//
// Notifier is NOT thread-safe. It must only be used from the UI goroutine.
type Notifier struct {
	listeners      map[int]func()
	nextListenerID int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener adds a callback that fires on every notification.
// Returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// NotifyListeners invokes every registered listener.
func (n *Notifier) NotifyListeners() {
	for _, listener := range n.listeners {
		listener()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return len(n.listeners)
}
