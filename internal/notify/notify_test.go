package notify

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/govtec-events/backend/internal/models"
)

type fakeSink struct {
	name     string
	result   bool
	delay    time.Duration
	panics   bool
	attempts atomic.Int32
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Attempt(ctx context.Context, reg *models.Registration) bool {
	f.attempts.Add(1)
	if f.panics {
		panic("sink exploded")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return false
		}
	}
	return f.result
}

func testRegistration() *models.Registration {
	return &models.Registration{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
}

func TestDispatcherAttemptsAllSinks(t *testing.T) {
	a := &fakeSink{name: "a", result: true}
	b := &fakeSink{name: "b", result: true}
	d := NewDispatcher([]Sink{a, b}, time.Second, nil)

	d.Notify(context.Background(), testRegistration())

	if a.attempts.Load() != 1 || b.attempts.Load() != 1 {
		t.Fatalf("expected each sink attempted once, got a=%d b=%d", a.attempts.Load(), b.attempts.Load())
	}
}

func TestFailingSinkDoesNotSuppressOthers(t *testing.T) {
	failing := &fakeSink{name: "failing", result: false}
	ok := &fakeSink{name: "ok", result: true}
	d := NewDispatcher([]Sink{failing, ok}, time.Second, nil)

	d.Notify(context.Background(), testRegistration())

	if ok.attempts.Load() != 1 {
		t.Fatal("expected the healthy sink to be attempted despite the other failing")
	}
}

func TestPanickingSinkIsContained(t *testing.T) {
	exploding := &fakeSink{name: "exploding", panics: true}
	ok := &fakeSink{name: "ok", result: true}
	d := NewDispatcher([]Sink{exploding, ok}, time.Second, nil)

	// Must not propagate the panic.
	d.Notify(context.Background(), testRegistration())

	if ok.attempts.Load() != 1 {
		t.Fatal("expected the healthy sink to be attempted despite the panic")
	}
}

func TestSlowSinkDoesNotHangDispatch(t *testing.T) {
	slow := &fakeSink{name: "slow", result: true, delay: 5 * time.Second}
	d := NewDispatcher([]Sink{slow}, 50*time.Millisecond, nil)

	start := time.Now()
	d.Notify(context.Background(), testRegistration())
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("dispatch blocked for %v; timeout not enforced", elapsed)
	}
}

func TestConfirmationEmailContents(t *testing.T) {
	subject, text, html := ConfirmationEmail("Ada", "Lovelace", "GOV-000042")

	if !strings.Contains(subject, "Registration Confirmed") {
		t.Errorf("subject missing confirmation: %q", subject)
	}
	for _, body := range []string{text, html} {
		if !strings.Contains(body, "GOV-000042") {
			t.Error("body missing formatted registration id")
		}
		if !strings.Contains(body, "Ada") || !strings.Contains(body, "Lovelace") {
			t.Error("body missing registrant name")
		}
	}
}
