package core

import "sync"

// Lifetime tracks whether an owning object is still live and runs cleanup
// functions when it is disposed.
//
// Deferred work scheduled against a Lifetime should check IsDisposed before
// mutating anything: once Dispose has run, the owner has torn down and late
// callbacks must do nothing.
//
// Example:
//
//	type panel struct {
//	    life core.Lifetime
//	}
//
//	func (p *panel) open() {
//	    unsub := someListenable.AddListener(p.refresh)
//	    p.life.OnDispose(unsub)
//	}
//
//	func (p *panel) close() {
//	    p.life.Dispose()
//	}
type Lifetime struct {
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// OnDispose registers a cleanup function to run when the lifetime is
// disposed. Returns an unregister function that removes the cleanup again.
// If the lifetime is already disposed, cleanup runs immediately.
// Each cleanup runs at most once.
func (l *Lifetime) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		cleanup()
		return func() {}
	}
	index := len(l.disposers)
	l.disposers = append(l.disposers, cleanup)
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if index < len(l.disposers) {
			l.disposers[index] = nil
		}
	}
}

// Dispose marks the lifetime as dead and runs all registered cleanups in
// reverse registration order (LIFO). Subsequent calls are no-ops.
//
// The disposed flag is set before any cleanup runs, so cleanups and anything
// they trigger observe IsDisposed() == true.
func (l *Lifetime) Dispose() {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	l.disposed = true
	disposers := l.disposers
	l.disposers = nil
	l.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// IsDisposed returns true once Dispose has been called.
func (l *Lifetime) IsDisposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}
