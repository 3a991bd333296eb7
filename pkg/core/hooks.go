package core

// UseController creates a controller and registers it for automatic disposal.
// The controller is disposed when the lifetime is disposed.
//
// Example:
//
//	func (p *panel) init() {
//	    p.toggle = core.UseController(&p.life, func() *motion.Controller {
//	        return motion.New(false, motion.Options{})
//	    })
//	}
func UseController[C Disposable](life *Lifetime, create func() C) C {
	controller := create()
	life.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes fn to a listenable for the duration of the
// lifetime. The subscription is removed automatically on disposal.
func UseListenable(life *Lifetime, listenable Listenable, fn func()) {
	unsub := listenable.AddListener(fn)
	life.OnDispose(unsub)
}

// UseObservable subscribes fn to an observable for the duration of the
// lifetime. The subscription is removed automatically on disposal.
//
// Example:
//
//	core.UseObservable(&p.life, controller.Presence(), func(present bool) {
//	    p.requestFrame()
//	})
func UseObservable[T any](life *Lifetime, obs *Observable[T], fn func(T)) {
	unsub := obs.AddListener(fn)
	life.OnDispose(unsub)
}
