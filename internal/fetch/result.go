package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies why a remote call did not produce a usable value.
type Kind int

const (
	KindNone Kind = iota
	KindTransport
	KindStatus
	KindParse
	KindEmpty
	KindTimeout
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindParse:
		return "parse"
	case KindEmpty:
		return "empty"
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate_limited"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors wrapped by Client so Classify can recover the Kind.
var (
	ErrStatus      = errors.New("unexpected status")
	ErrDecode      = errors.New("decode response")
	ErrEmpty       = errors.New("empty result")
	ErrRateLimited = errors.New("rate limited")
)

// Result is the outcome of one remote call: either Value is usable (Kind is
// KindNone) or Err explains the failure.
type Result[T any] struct {
	Value T
	Err   error
	Kind  Kind
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps err and classifies it.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result[T]{Err: err, Kind: Classify(err)}
}

// Empty reports a payload that decoded fine but held nothing usable.
func Empty[T any](reason string) Result[T] {
	return Result[T]{Err: fmt.Errorf("%w: %s", ErrEmpty, reason), Kind: KindEmpty}
}

// OK reports whether the call produced a usable value.
func (r Result[T]) OK() bool {
	return r.Kind == KindNone && r.Err == nil
}

// Classify maps an error from Client into a Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindTimeout
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrEmpty):
		return KindEmpty
	case errors.Is(err, ErrDecode):
		return KindParse
	case errors.Is(err, ErrStatus):
		return KindStatus
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}
