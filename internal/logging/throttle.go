/**
 * Throttled logging.
 *
 * Grounded directly in Brightgate-product's aputil.ThrottledLogger: an
 * exponential backoff per Throttled instance (shared by every message
 * logged through it), so a capture worker logging "channel full" on every
 * dropped record degrades to one line per backoff interval, growing up to
 * maxDelay, instead of flooding output during a chatter storm.
 */

package logging

import (
	"time"

	"go.uber.org/zap"
)

// Throttled wraps a sugared logger with exponential-backoff rate limiting.
type Throttled struct {
	log       *zap.SugaredLogger
	next      time.Time
	baseDelay time.Duration
	maxDelay  time.Duration
	curDelay  time.Duration
}

// NewThrottled returns a Throttled logger backed by log, starting at
// baseDelay between messages and backing off up to maxDelay.
func NewThrottled(log *zap.SugaredLogger, baseDelay, maxDelay time.Duration) *Throttled {
	return &Throttled{
		log:       log,
		next:      time.Now(),
		baseDelay: baseDelay,
		curDelay:  baseDelay,
		maxDelay:  maxDelay,
	}
}

func (t *Throttled) ready() bool {
	now := time.Now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.curDelay)
	t.curDelay *= 2
	if t.curDelay > t.maxDelay {
		t.curDelay = t.maxDelay
	}
	return true
}

// Debugf issues a DEBUG message if the throttle window has elapsed.
func (t *Throttled) Debugf(format string, args ...interface{}) {
	if t.ready() {
		t.log.Debugf(format, args...)
	}
}

// Warnf issues a WARN message if the throttle window has elapsed.
func (t *Throttled) Warnf(format string, args ...interface{}) {
	if t.ready() {
		t.log.Warnf(format, args...)
	}
}

// Errorf issues an ERROR message if the throttle window has elapsed.
func (t *Throttled) Errorf(format string, args ...interface{}) {
	if t.ready() {
		t.log.Errorf(format, args...)
	}
}

// Infof issues an INFO message if the throttle window has elapsed.
func (t *Throttled) Infof(format string, args ...interface{}) {
	if t.ready() {
		t.log.Infof(format, args...)
	}
}
