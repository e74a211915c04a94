package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/hodlscope-backend/internal/provider"
)

// Kind classifies a failed lookup.
type Kind string

const (
	KindInvalidFormat       Kind = "invalid_format"
	KindNotFound            Kind = "not_found"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindTimeout             Kind = "timeout"
	KindHistoryUnresolved   Kind = "history_unresolved"
	KindInternal            Kind = "internal"
)

// Error is returned by Service.Lookup for every failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindInternal
}

var errNoProviders = errors.New("no providers configured")

// exhaustedError reports that every provider for a capability failed. It
// unwraps to the failure of the last provider tried.
type exhaustedError struct {
	capability string
	attempts   int
	rejected   bool
	last       error
}

func (e *exhaustedError) Error() string {
	return fmt.Sprintf("%s: %d provider(s) failed, last: %v", e.capability, e.attempts, e.last)
}

func (e *exhaustedError) Unwrap() error {
	return e.last
}

func isTimeout(err error) bool {
	return provider.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded)
}

// classifyUpstream maps an exhausted or cancelled capability to a kind.
// fallback is used when the terminal cause is not a timeout.
func classifyUpstream(op string, err error, fallback Kind) *Error {
	var ex *exhaustedError
	if errors.As(err, &ex) && ex.rejected {
		return newError(KindInvalidFormat, op, err)
	}
	if isTimeout(err) {
		return newError(KindTimeout, op, err)
	}
	if errors.Is(err, context.Canceled) {
		return newError(KindInternal, op, err)
	}
	return newError(fallback, op, err)
}
