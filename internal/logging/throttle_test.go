package logging

import (
	"testing"
	"time"
)

func TestThrottledBacksOffAfterFirstMessage(t *testing.T) {
	th := NewThrottled(New(false), time.Hour, time.Hour)
	if !th.ready() {
		t.Fatal("expected the first call to be ready")
	}
	if th.ready() {
		t.Fatal("expected the immediate next call to be suppressed")
	}
}
