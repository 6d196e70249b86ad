package when_test

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/npillmayer/when"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := when.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConstAsContinuation(t *testing.T) {
	r, err := when.Evaluate(5, when.Cases{
		{When: when.Otherwise(), Yield: when.Const[string, int]("five")},
	})
	if err != nil || r != "five" {
		t.Errorf("expected const continuation to yield 'five', got (%v, %v)", r, err)
	}
}

func TestMapStopsAtError(t *testing.T) {
	m := when.New(when.Cases{
		{When: when.Is(1), Yield: "one"},
	})
	_, err := when.Map([]int{1, 2, 1}, m)
	if !errors.Is(err, when.ErrMissingCatchAllPattern) {
		t.Errorf("expected missing catch-all error for 2, got %v", err)
	}
}

func TestFilterInvalidEmails(t *testing.T) {
	isInvalid := when.New(when.Cases{
		{When: when.Is(regexp.MustCompile(`\S+@\S+\.\S+`)), Yield: false},
		{When: when.Otherwise(), Yield: true},
	})
	invalid, err := when.Filter([]string{"hey.com", "fg@plop.com", "fg+plop@plop.com", "wat"}, isInvalid)
	if err != nil {
		t.Fatal(err)
	}
	if len(invalid) != 2 || invalid[0] != "hey.com" || invalid[1] != "wat" {
		t.Errorf("expected [hey.com wat] to be invalid, have %v", invalid)
	}
}
