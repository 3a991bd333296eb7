package core

import "testing"

// MockDisposable for testing UseController
type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	var life Lifetime

	controller := UseController(&life, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	life.Dispose()

	if !controller.disposed {
		t.Error("Controller should be disposed when Lifetime is disposed")
	}
}

func TestUseListenable(t *testing.T) {
	var life Lifetime
	notifier := NewNotifier()

	calls := 0
	UseListenable(&life, notifier, func() { calls++ })

	if notifier.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", notifier.ListenerCount())
	}

	notifier.NotifyListeners()
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}

	life.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}

	notifier.NotifyListeners()
	if calls != 1 {
		t.Errorf("Expected no calls after dispose, got %d", calls)
	}
}

func TestUseObservable(t *testing.T) {
	var life Lifetime
	obs := NewObservable(42)

	var seen []int
	UseObservable(&life, obs, func(v int) { seen = append(seen, v) })

	if obs.Value() != 42 {
		t.Errorf("Expected 42, got %d", obs.Value())
	}

	obs.Set(100)

	if len(seen) != 1 || seen[0] != 100 {
		t.Errorf("Expected [100], got %v", seen)
	}
}

func TestUseObservable_Cleanup(t *testing.T) {
	var life Lifetime
	obs := NewObservable(0)

	calls := 0
	UseObservable(&life, obs, func(int) { calls++ })

	life.Dispose()

	obs.Set(999)

	if calls != 0 {
		t.Errorf("Expected no calls after dispose, got %d", calls)
	}
}
