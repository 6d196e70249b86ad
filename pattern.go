package when

import (
	"reflect"

	"github.com/npillmayer/when/maybe"
	"github.com/npillmayer/when/structural"
)

// marker is the type of the head/tail sentinels.
type marker struct {
	name string
}

func (m *marker) String() string {
	return m.name
}

// Head and Tail are the sentinels of a head/tail decomposition request, see Split.
var (
	Head = &marker{"head"}
	Tail = &marker{"tail"}
)

// Pattern is the matching context for a single value. It is handed to clauses and offers
// the checks a clause may perform on the value.
//
// Every check is a pure function of the value and the check's arguments.
type Pattern struct {
	subject any
	Head    any // sentinel for Split, same as package-level Head
	Tail    any // sentinel for Split, same as package-level Tail
}

func newPattern(value any) *Pattern {
	return &Pattern{subject: value, Head: Head, Tail: Tail}
}

// Value returns the value under test.
func (p *Pattern) Value() any {
	return p.subject
}

// With starts a chain of checks. The returned Outcome has not matched yet.
func (p *Pattern) With() Outcome {
	return Outcome{}
}

// Wildcard matches any value. It is the catch-all check.
func (p *Pattern) Wildcard() Check {
	return p.check(true)
}

// Test matches if pattern matches the value, see structural.Matches.
func (p *Pattern) Test(pattern any) Check {
	return p.check(structural.Matches(pattern, p.subject))
}

// Split is HeadTail if called as Split(Head, Tail). Any other pair of arguments fails.
func (p *Pattern) Split(head, tail any) Check {
	if head == any(Head) && tail == any(Tail) {
		return p.HeadTail()
	}
	return Check{}
}

// Range matches if start <= value <= end. Only numbers and strings are ordered, and
// only among themselves.
func (p *Pattern) Range(start, end any) Check {
	lo, ok1 := structural.Compare(start, p.subject)
	hi, ok2 := structural.Compare(p.subject, end)
	return p.check(ok1 && ok2 && lo <= 0 && hi <= 0)
}

// HeadTail matches if the value is a non-empty sequence. It binds the first element and a
// new slice holding the remaining elements. The value itself is left untouched.
func (p *Pattern) HeadTail() Check {
	head, tail, ok := decompose(p.subject)
	if !ok {
		return Check{}
	}
	pair := P[any, any](head, tail)
	return Check{ok: true, bound: Bound{value: p.subject, pair: &pair}}
}

// And matches if all of the patterns match. And() matches.
func (p *Pattern) And(patterns ...any) Check {
	for _, pattern := range patterns {
		if !structural.Matches(pattern, p.subject) {
			return Check{}
		}
	}
	return p.check(true)
}

// Or matches if at least one of the patterns matches. Or() does not match.
func (p *Pattern) Or(patterns ...any) Check {
	for _, pattern := range patterns {
		if structural.Matches(pattern, p.subject) {
			return p.check(true)
		}
	}
	return Check{}
}

func (p *Pattern) check(ok bool) Check {
	if !ok {
		return Check{}
	}
	return Check{ok: true, bound: Bound{value: p.subject}}
}

func decompose(v any) (head, tail any, ok bool) {
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); (k != reflect.Slice && k != reflect.Array) || rv.Len() == 0 {
		return nil, nil, false
	}
	n := rv.Len()
	typ := rv.Type()
	if typ.Kind() == reflect.Array {
		typ = reflect.SliceOf(typ.Elem())
	}
	rest := reflect.MakeSlice(typ, n-1, n-1)
	for i := 1; i < n; i++ {
		rest.Index(i - 1).Set(rv.Index(i))
	}
	tracer().Debugf("decomposed %T into head and tail of length %d", v, n-1)
	return rv.Index(0).Interface(), rest.Interface(), true
}

// --- Check -----------------------------------------------------------------

// Check is the result of a single check on a Pattern: whether it matched, and the
// values it binds for a continuation.
type Check struct {
	ok    bool
	bound Bound
}

// OK reports whether the check matched.
func (c Check) OK() bool {
	return c.ok
}

// Bound returns the values bound by the check. It is empty for a failed check.
func (c Check) Bound() Bound {
	return c.bound
}

// Then starts a chain of checks with c, yielding yield if c matched.
func (c Check) Then(yield any) Outcome {
	return Outcome{}.Or(c, yield)
}

// --- Bound -----------------------------------------------------------------

// Bound holds the values a matching check passes on to a continuation: either the
// value under test, or head and tail of it after a decomposition.
type Bound struct {
	value any
	pair  *Pair[any, any]
}

// Value returns the bound value: the decomposed pair if there is one, else the value
// under test.
func (b Bound) Value() any {
	if b.pair != nil {
		return *b.pair
	}
	return b.value
}

// Pair returns head and tail, if the value has been decomposed.
func (b Bound) Pair() (Pair[any, any], bool) {
	if b.pair == nil {
		return Pair[any, any]{}, false
	}
	return *b.pair, true
}

// Args returns the arguments for a continuation: head and tail for a decomposed value,
// the value under test otherwise.
func (b Bound) Args() []any {
	if b.pair != nil {
		return []any{b.pair.Head, b.pair.Tail}
	}
	return []any{b.value}
}

// --- Outcome ---------------------------------------------------------------

// Outcome is the result of a chain of clauses. Once a clause has matched, the outcome
// sticks with it.
type Outcome struct {
	matched bool
	bound   Bound
	yield   any
}

// Or adds a clause to the chain: if the chain has not matched yet and c did, the outcome
// becomes yield with the values bound by c.
func (o Outcome) Or(c Check, yield any) Outcome {
	if o.matched || !c.ok {
		return o
	}
	return Outcome{matched: true, bound: c.bound, yield: yield}
}

// Matched reports whether one of the clauses matched.
func (o Outcome) Matched() bool {
	return o.matched
}

// Bound returns the values bound by the matching clause.
func (o Outcome) Bound() Bound {
	return o.bound
}

// Yield returns the yield of the matching clause, if any.
func (o Outcome) Yield() maybe.Maybe[any] {
	if o.matched {
		return maybe.Just(o.yield)
	}
	return maybe.Nothing[any]()
}
