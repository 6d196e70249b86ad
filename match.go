package when

import (
	"fmt"
	"reflect"

	tp "github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// --- Pair ------------------------------------------------------------------

// Pair is the result of a head/tail decomposition.
type Pair[A, B any] struct {
	Head A
	Tail B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns head and tail of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Head, p.Tail
}

// --- Guards ----------------------------------------------------------------

// Guard is the check of a single case.
type Guard interface {
	Check(p *Pattern) Check
	String() string
}

type guard struct {
	name  string
	check func(*Pattern) Check
}

func (g guard) Check(p *Pattern) Check {
	return g.check(p)
}

func (g guard) String() string {
	return g.name
}

// Is guards with a single pattern.
func Is(pattern any) Guard {
	return guard{
		name:  fmt.Sprintf("is %v", pattern),
		check: func(p *Pattern) Check { return p.Test(pattern) },
	}
}

// Otherwise is the catch-all guard.
func Otherwise() Guard {
	return guard{
		name:  "otherwise",
		check: (*Pattern).Wildcard,
	}
}

// Within guards with an inclusive range, see Pattern.Range.
func Within(start, end any) Guard {
	return guard{
		name:  fmt.Sprintf("within %v…%v", start, end),
		check: func(p *Pattern) Check { return p.Range(start, end) },
	}
}

// Between guards with an inclusive range of type T. Values of other types do not match.
func Between[T constraints.Ordered](lo, hi T) Guard {
	return guard{
		name: fmt.Sprintf("between %v…%v", lo, hi),
		check: func(p *Pattern) Check {
			x, ok := p.Value().(T)
			return p.check(ok && lo <= x && x <= hi)
		},
	}
}

// HeadTail guards with a head/tail decomposition, see Pattern.HeadTail.
func HeadTail() Guard {
	return guard{
		name:  "head|tail",
		check: (*Pattern).HeadTail,
	}
}

// Split guards with Pattern.Split.
func Split(head, tail any) Guard {
	return guard{
		name:  fmt.Sprintf("split %v|%v", head, tail),
		check: func(p *Pattern) Check { return p.Split(head, tail) },
	}
}

// AllOf guards with Pattern.And.
func AllOf(patterns ...any) Guard {
	return guard{
		name:  fmt.Sprintf("all of %v", patterns),
		check: func(p *Pattern) Check { return p.And(patterns...) },
	}
}

// AnyOf guards with Pattern.Or.
func AnyOf(patterns ...any) Guard {
	return guard{
		name:  fmt.Sprintf("any of %v", patterns),
		check: func(p *Pattern) Check { return p.Or(patterns...) },
	}
}

// Where guards with an arbitrary predicate on the pattern.
func Where(name string, pred func(p *Pattern) bool) Guard {
	return guard{
		name:  name,
		check: func(p *Pattern) Check { return p.check(pred(p)) },
	}
}

// --- Cases -----------------------------------------------------------------

// Case pairs a guard with the result of the case. Yield is either the result itself or
// a continuation, i.e. a function to be called with the bound values.
type Case struct {
	When  Guard
	Yield any
}

// Cases is an ordered list of cases. The first case with a matching guard wins.
// A case without a guard never matches.
type Cases []Case

// Apply runs the guards of cs in order.
func (cs Cases) Apply(p *Pattern) Outcome {
	o := p.With()
	for _, c := range cs {
		if c.When == nil {
			continue
		}
		if o = o.Or(c.When.Check(p), c.Yield); o.Matched() {
			return o
		}
	}
	tracer().Debugf("none of %d cases matched %v:\n%s", len(cs), p.Value(), cs)
	return o
}

// String renders the cases as a tree.
func (cs Cases) String() string {
	printer := tp.New()
	for i, c := range cs {
		when := "never"
		if c.When != nil {
			when = c.When.String()
		}
		branch := printer.AddBranch(fmt.Sprintf("#%d %s", i, when))
		branch.AddNode(describeYield(c.Yield))
	}
	return fmt.Sprintf("cases (%d)\n", len(cs)) + printer.String()
}

func describeYield(yield any) string {
	if isContinuation(yield) {
		return fmt.Sprintf("→ %T", yield)
	}
	return fmt.Sprintf("= %#v", yield)
}

func isContinuation(yield any) bool {
	v := reflect.ValueOf(yield)
	return v.Kind() == reflect.Func && !v.IsNil()
}
