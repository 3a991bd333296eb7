// Package core provides the observer and lifetime primitives the motion
// library is built on.
//
// # Observers
//
// Notifier is the basic change-notification primitive: listeners register
// with AddListener and receive a synchronous callback on NotifyListeners.
// Observable wraps a value of any type and notifies typed listeners each
// time the value is set:
//
//	visible := core.NewObservable(false)
//	unsubscribe := visible.AddListener(func(v bool) {
//	    fmt.Println("visible:", v)
//	})
//	visible.Set(true)
//	unsubscribe()
//
// Neither is synchronized; like the rest of the library they are meant to be
// driven from a single UI goroutine.
//
// # Lifetimes
//
// Lifetime tracks whether an owning object is still live and runs registered
// cleanup functions exactly once when it is disposed. Anything scheduled
// against a Lifetime — subscriptions, timers, frame callbacks — can check
// IsDisposed before acting, so work that fires after teardown does nothing.
//
// # Hooks
//
// UseController, UseListenable, and UseObservable tie resources and
// subscriptions to a Lifetime so they are released automatically on
// disposal.
package core
