package errors

import (
	"errors"
	"testing"
	"time"
)

func TestMotionErrorString(t *testing.T) {
	err := &MotionError{
		Op:   "test.operation",
		Kind: KindConfig,
		Err:  errors.New("bad duration"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestMotionErrorWithPreset(t *testing.T) {
	err := &MotionError{
		Op:     "config.RegisterPresets",
		Kind:   KindConfig,
		Preset: "wobble",
		Err:    errors.New("empty keyframes"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	// Should contain preset info
	want := "preset=wobble"
	if !contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindCallback, "callback"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "term.Panel.frame",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in term.Panel.frame: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestCallbackErrorString(t *testing.T) {
	// Test with panic value
	err := &CallbackError{
		Hook:      "OnEntered",
		Recovered: "nil pointer dereference",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in OnEntered callback: nil pointer dereference"
	if got != want {
		t.Errorf("CallbackError.Error() = %q, want %q", got, want)
	}

	// Test with error
	err2 := &CallbackError{
		Hook:      "OnExit",
		Err:       errors.New("listener gone"),
		Timestamp: time.Now(),
	}
	got2 := err2.Error()
	if !contains(got2, "error in OnExit callback") {
		t.Errorf("CallbackError.Error() = %q, should contain 'error in'", got2)
	}

	// Test unknown error
	err3 := &CallbackError{
		Hook: "OnEnter",
	}
	got3 := err3.Error()
	want3 := "unknown error in OnEnter callback"
	if got3 != want3 {
		t.Errorf("CallbackError.Error() = %q, want %q", got3, want3)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *MotionError
	handler := &testHandler{
		onError: func(err *MotionError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&MotionError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  errors.New("boom"),
	})

	if capturedErr == nil {
		t.Error("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{
		Value:     "test panic value",
		Timestamp: time.Now(),
	})

	if capturedPanic == nil {
		t.Error("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Error("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverCallback(t *testing.T) {
	var captured *CallbackError
	handler := &testHandler{
		onCallbackError: func(err *CallbackError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer RecoverCallback("OnEntered")
		panic("callback boom")
	}()

	if captured == nil {
		t.Fatal("expected callback panic to be recovered and captured")
	}
	if captured.Hook != "OnEntered" {
		t.Errorf("Hook = %q, want %q", captured.Hook, "OnEntered")
	}
	if captured.Recovered != "callback boom" {
		t.Errorf("Recovered = %v, want %q", captured.Recovered, "callback boom")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	// Stack should contain some runtime info (either test function or testing infrastructure)
	if !contains(stack, "testing") && !contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestReportCallbackError(t *testing.T) {
	var captured *CallbackError
	handler := &testHandler{
		onCallbackError: func(err *CallbackError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportCallbackError(&CallbackError{
		Hook:      "OnExited",
		Recovered: "test panic",
	})

	if captured == nil {
		t.Error("expected callback error to be captured")
	}
	if captured.Hook != "OnExited" {
		t.Errorf("Hook = %q, want %q", captured.Hook, "OnExited")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

type testHandler struct {
	onError         func(*MotionError)
	onPanic         func(*PanicError)
	onCallbackError func(*CallbackError)
}

func (h *testHandler) HandleError(err *MotionError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleCallbackError(err *CallbackError) {
	if h.onCallbackError != nil {
		h.onCallbackError(err)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsAt(s, substr, 0))
}

func containsAt(s, substr string, start int) bool {
	for i := start; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
