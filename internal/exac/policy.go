package exac

import (
	"time"

	"github.com/cenkalti/backoff"
)

// Policy controls how a lookup is retried.
type Policy struct {
	MaxAttempts int           // total attempts, including the first
	Timeout     time.Duration // per-attempt request timeout
	Backoff     time.Duration // constant wait between attempts
}

// DefaultPolicy returns the policy used against the public ExAC server:
// 20 attempts, 180s per attempt, 10s between attempts.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 20,
		Timeout:     180 * time.Second,
		Backoff:     10 * time.Second,
	}
}

// attempts returns MaxAttempts, never less than one.
func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// backOff builds a fresh constant backoff that stops after the last attempt.
func (p Policy) backOff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Backoff), uint64(p.attempts()-1))
}
