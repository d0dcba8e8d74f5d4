// Package retry implements the backoff policy used when fetching remote CSV
// sources. The tokenizer and reader never retry; only source adapters that talk
// to the network consult a Policy.
package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("csvcursor.retry")

// Policy describes how many times and how often an operation is retried.
type Policy struct {
	Clock           Clock         // time source
	MaxAttempts     int           // maximum attempts, including the first one
	TimeLimit       time.Duration // no retries once this much time has passed since the first attempt
	MinDelay        time.Duration // delay before the second attempt
	MaxDelay        time.Duration // upper bound for any delay
	RandomizeDelays bool          // pick delays uniformly in [MinDelay, computed delay]
	ExpBackoffBase  float64       // growth factor between consecutive delays
}

// Op tracks the retries of a single operation.
type Op struct {
	Policy  *Policy
	Attempt int           // 1-based index of the current attempt
	Expires time.Time     // no retries after this point
	Delay   time.Duration // last computed delay
}

// NewNoRetryPolicy returns a policy that never retries.
func NewNoRetryPolicy() *Policy {
	return &Policy{MaxAttempts: 1, Clock: WallClock{}}
}

// NewDefaultPolicy returns the policy used for downloads: up to 5 attempts
// within 2 minutes, delays growing by the golden ratio from 500ms to 30s.
func NewDefaultPolicy(clock Clock) *Policy {
	if clock == nil {
		clock = WallClock{}
	}
	return &Policy{
		Clock:           clock,
		MaxAttempts:     5,
		TimeLimit:       2 * time.Minute,
		MinDelay:        500 * time.Millisecond,
		MaxDelay:        30 * time.Second,
		RandomizeDelays: true,
		ExpBackoffBase:  1.618,
	}
}

// StartOperation begins tracking a new operation.
func (p *Policy) StartOperation() *Op {
	return &Op{
		Policy:  p,
		Attempt: 1,
		Expires: p.Clock.Now().Add(p.TimeLimit),
	}
}

// ShouldRetry reports whether the failed attempt described by message may be
// retried. When it returns true it has already waited for the backoff delay.
// It returns false without waiting when the attempt budget or time limit is
// spent, or when ctx is done.
func (op *Op) ShouldRetry(ctx context.Context, message string, args ...interface{}) bool {
	what := fmt.Sprintf(message, args...)

	diag := ""
	if op.Attempt >= op.Policy.MaxAttempts {
		diag = "reached max number of attempts"
	} else if op.Policy.Clock.Now().After(op.Expires) {
		diag = "exceeded time limit for retries"
	} else if ctx.Err() != nil {
		diag = ctx.Err().Error()
	}
	if diag != "" {
		log.Errorf("%s: attempt #%d failed, not retrying (%s)", what, op.Attempt, diag)
		return false
	}

	if op.Attempt == 1 {
		op.Delay = op.Policy.MinDelay
	} else {
		op.Delay = time.Duration(float64(op.Delay) * op.Policy.ExpBackoffBase)
		if op.Delay > op.Policy.MaxDelay {
			op.Delay = op.Policy.MaxDelay
		}
	}

	wait := op.Delay
	if op.Policy.RandomizeDelays && op.Delay > op.Policy.MinDelay {
		wait = op.Policy.MinDelay + time.Duration(float64(op.Delay-op.Policy.MinDelay)*rand.Float64())
	}

	log.Warningf("%s: attempt #%d failed, retrying in %s", what, op.Attempt, wait)
	op.Attempt++

	select {
	case <-op.Policy.Clock.After(wait):
		return true
	case <-ctx.Done():
		return false
	}
}
