package utils

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebounceCoalescesBurst(t *testing.T) {
	var d Debouncer
	var calls int32
	for i := 0; i < 5; i++ {
		d.Debounce(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
	}
	if !d.Pending() {
		t.Fatal("call should be pending")
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
	if d.Pending() {
		t.Error("nothing should be pending after the call ran")
	}
}

func TestStopCancels(t *testing.T) {
	var d Debouncer
	var calls int32
	d.Debounce(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
	d.Stop()
	d.Debounce(time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("calls = %d after Stop, want 0", got)
	}
}
