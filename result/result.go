package result

import (
	"fmt"

	"github.com/npillmayer/cssprefix/maybe"
)

// Result is either Ok(value) or Err(error).
type Result[T any] interface {
	Match() Matcher[T]
	Error() error
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful outcome.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil err is replaced by a generic one, as a failed
// result without a reason would match as Ok.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("unspecified failure")
	}
	return result[T]{err: err}
}

// Failed is short for Err(fmt.Errorf(format, args…)).
func Failed[T any](format string, args ...interface{}) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

// From converts a conventional (value, error) return pair.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Error returns the failure reason, or nil for Ok.
func (r result[T]) Error() error {
	return r.err
}

// ToMaybe drops the failure reason.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(&err):
	}
	return maybe.Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Result.Match. Exactly one of its methods returns
// the matcher itself, the other returns nil.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
