package speech

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"
)

// recordingEngine collects delivered texts.
type recordingEngine struct {
	mu        sync.Mutex
	delivered []string
}

func (e *recordingEngine) Say(_ context.Context, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.delivered = append(e.delivered, text)
	return nil
}

func (e *recordingEngine) all() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.delivered))
	copy(out, e.delivered)
	return out
}

// gatedEngine blocks each Say until released, so tests can hold an item
// mid-delivery.
type gatedEngine struct {
	recordingEngine
	started chan string
	release chan struct{}
}

func (e *gatedEngine) Say(ctx context.Context, text string) error {
	e.started <- text
	select {
	case <-e.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return e.recordingEngine.Say(ctx, text)
}

func TestQueue_DeliversInOrder(t *testing.T) {
	engine := &recordingEngine{}
	q := NewQueue(engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Deliver("one", false)
	q.Deliver("two", false)
	q.Deliver("three", false)
	q.Wait()

	want := []string{"one", "two", "three"}
	if got := engine.all(); !reflect.DeepEqual(got, want) {
		t.Errorf("delivered = %v, want %v", got, want)
	}
}

func TestQueue_PriorityDropsOnlyUndelivered(t *testing.T) {
	// Scenario: two queued normal messages, then a priority message while
	// the first is mid-delivery. The first completes, the second is
	// dropped, the priority message plays next.
	engine := &gatedEngine{
		started: make(chan string),
		release: make(chan struct{}),
	}
	q := NewQueue(engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Deliver("first", false)

	// Wait until "first" is mid-delivery, then queue the rest.
	select {
	case got := <-engine.started:
		if got != "first" {
			t.Fatalf("started %q, want first", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("worker never started delivering")
	}

	q.Deliver("second", false)
	q.Deliver("urgent", true)

	// Let "first" finish.
	engine.release <- struct{}{}

	// The next item delivered must be "urgent", not "second".
	select {
	case got := <-engine.started:
		if got != "urgent" {
			t.Fatalf("started %q after priority flush, want urgent", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("priority message never delivered")
	}
	engine.release <- struct{}{}

	q.Wait()
	want := []string{"first", "urgent"}
	if got := engine.all(); !reflect.DeepEqual(got, want) {
		t.Errorf("delivered = %v, want %v", got, want)
	}
}

func TestQueue_CloseDrainsBacklog(t *testing.T) {
	engine := &recordingEngine{}
	q := NewQueue(engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q.Deliver("pending", false)
	q.Close()

	done := make(chan struct{})
	go func() {
		q.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not exit after Close")
	}

	if got := engine.all(); !reflect.DeepEqual(got, []string{"pending"}) {
		t.Errorf("delivered = %v, want [pending]", got)
	}

	// Deliveries after Close are ignored.
	q.Deliver("late", false)
	if got := engine.all(); len(got) != 1 {
		t.Errorf("delivered after Close = %v", got)
	}
}

func TestQueue_EmptyTextIgnored(t *testing.T) {
	engine := &recordingEngine{}
	q := NewQueue(engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Deliver("", false)
	q.Deliver("real", false)
	q.Wait()

	if got := engine.all(); !reflect.DeepEqual(got, []string{"real"}) {
		t.Errorf("delivered = %v, want [real]", got)
	}
}
