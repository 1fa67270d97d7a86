package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDoCoalesces(t *testing.T) {
	d := New(30 * time.Millisecond)
	defer d.Stop()

	var calls int32
	for i := 0; i < 10; i++ {
		d.Do("name", func() { atomic.AddInt32(&calls, 1) })
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected 1 call after burst, got %d", got)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()

	var a, b int32
	d.Do("a", func() { atomic.AddInt32(&a, 1) })
	d.Do("b", func() { atomic.AddInt32(&b, 1) })

	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&a) != 1 || atomic.LoadInt32(&b) != 1 {
		t.Errorf("keys cancelled each other: a=%d b=%d", a, b)
	}
}

func TestStopCancelsPending(t *testing.T) {
	d := New(30 * time.Millisecond)

	var calls int32
	d.Do("a", func() { atomic.AddInt32(&calls, 1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("stopped debouncer still fired")
	}
}

func TestFlush(t *testing.T) {
	d := New(30 * time.Millisecond)
	defer d.Stop()

	var calls int32
	d.Do("a", func() { atomic.AddInt32(&calls, 1) })
	if !d.Flush("a") {
		t.Error("expected a pending call to flush")
	}
	if d.Flush("a") {
		t.Error("second flush should find nothing")
	}
	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("flushed call still fired")
	}
}
