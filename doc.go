/*
Package when evaluates values against an ordered list of patterns and yields the result
of the first pattern that matches. It stands in for the match expression Go does not
have.

A list of clauses is written either as explicit Cases

	fact = func(n int) int {
		r, _ := when.Evaluate(n, when.Cases{
			{When: when.Is(0), Yield: 1},
			{When: when.Otherwise(), Yield: func(n int) int { return n * fact(n-1) }},
		})
		return r.(int)
	}

or as a chain of checks on a Pattern, where the first check to succeed wins:

	parse := when.New(when.ClauseFunc(func(p *when.Pattern) when.Outcome {
		return p.With().
			Or(p.Or("-h", "--help"), "help").
			Or(p.Or("-v", "--version"), "version").
			Or(p.Wildcard(), func(arg string) (any, error) {
				return nil, fmt.Errorf("unknown argument %s", arg)
			})
	}))

A yield which is a function is a continuation: it is called with the matched value, or
with head and tail if the clause decomposed a sequence with HeadTail. Any other yield is
the result as is.

If no clause matches, evaluation fails with ErrMissingCatchAllPattern. Terminating a
clause list with a catch-all (Otherwise, Wildcard) avoids this.

Matching of single patterns is done by package structural.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package when

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'when'.
func tracer() tracing.Trace {
	return tracing.Select("when")
}
