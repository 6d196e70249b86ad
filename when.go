package when

import (
	"errors"

	"github.com/npillmayer/when/result"
)

// ErrMissingCatchAllPattern is returned if no clause matched a value. Add a catch-all
// clause (Otherwise, Wildcard) as the last clause to avoid it.
var ErrMissingCatchAllPattern = errors.New("missing catch-all pattern as last clause, add Otherwise() or Wildcard()")

// ErrContinuationArgs is returned if a continuation cannot be called with the bound
// values.
var ErrContinuationArgs = errors.New("continuation does not accept bound values")

// Clauses is a list of clauses to match a value against.
type Clauses interface {
	Apply(p *Pattern) Outcome
}

// ClauseFunc is a clause list written as a function, usually as a chain of checks
// started with Pattern.With.
type ClauseFunc func(p *Pattern) Outcome

// Apply calls f(p).
func (f ClauseFunc) Apply(p *Pattern) Outcome {
	return f(p)
}

// Matcher matches a value against a fixed list of clauses.
type Matcher func(value any) (any, error)

// New creates a re-usable Matcher for clauses c.
func New(c Clauses) Matcher {
	return func(value any) (any, error) {
		return dispatch(c.Apply(newPattern(value)))
	}
}

// Evaluate matches value against clauses c, i.e., it is New(c)(value).
func Evaluate(value any, c Clauses) (any, error) {
	return New(c)(value)
}

// Try is Evaluate with the outcome wrapped into a result.
func Try(value any, c Clauses) result.Result[any] {
	v, err := Evaluate(value, c)
	return result.Of(v, err)
}

// dispatch interprets the outcome of a clause list. An unmatched outcome is an error,
// a continuation is called with the bound values, anything else is the result.
func dispatch(o Outcome) (any, error) {
	yield, ok := o.Yield().Get()
	if !ok {
		return nil, ErrMissingCatchAllPattern
	}
	if isContinuation(yield) {
		return invoke(yield, o.Bound().Args())
	}
	return yield, nil
}
