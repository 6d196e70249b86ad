package structural_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	. "github.com/npillmayer/when/structural"
)

type message struct {
	Protocol string `json:"protocol"`
	I        int    `json:"i"`
	Note     string
	secret   string
}

func TestScalarsMatchThemselves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "when.structural")
	defer teardown()
	//
	scalars := []any{0, 42, -7, 3.5, "value", "", true, false, uint8(9), 'x'}
	for _, v := range scalars {
		if !Matches(v, v) {
			t.Errorf("expected %#v to match itself, didn't", v)
		}
	}
	for i, v := range scalars {
		w := scalars[(i+1)%len(scalars)]
		if Matches(v, w) {
			t.Errorf("expected %#v not to match %#v", v, w)
		}
	}
}

func TestNumbersMatchAcrossTypes(t *testing.T) {
	assert.True(t, Matches(10, int64(10)))
	assert.True(t, Matches(10, 10.0))
	assert.True(t, Matches(uint16(3), int8(3)))
	assert.False(t, Matches(10, 10.5))
	assert.False(t, Matches(-1, uint64(math.MaxUint64)))
	assert.False(t, Matches(math.NaN(), math.NaN()))
	assert.False(t, Matches("1", 1), "no coercion between text and numbers")
}

func TestRecordSubsetMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "when.structural")
	defer teardown()
	//
	rec := map[string]any{"protocol": "HTTP", "i": 10}
	tests := []struct {
		name    string
		pattern any
		want    bool
	}{
		{"subset", map[string]any{"protocol": "HTTP"}, true},
		{"all keys", map[string]any{"protocol": "HTTP", "i": 10}, true},
		{"different value", map[string]any{"protocol": "HTTP", "i": 12}, false},
		{"missing key", map[string]any{"port": 80}, false},
		{"missing key against nil", map[string]any{"port": nil}, true},
		{"empty pattern", map[string]any{}, true},
		{"typed map pattern", map[string]string{"protocol": "HTTP"}, true},
		{"number pattern", 5, true},
		{"boolean pattern", true, true},
		{"nil pattern", nil, true},
		{"empty string pattern", "", true},
		{"empty slice pattern", []any{}, true},
		{"string pattern", "HTTP", false},
		{"slice pattern", []any{"HTTP"}, false},
		{"array pattern", [1]string{"HTTP"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.pattern, rec))
		})
	}
}

func TestIndexedPatternsAgainstRecords(t *testing.T) {
	rec := map[string]any{"0": "H", "1": 10}
	assert.True(t, Matches("H", rec), "characters are keyed by index")
	assert.False(t, Matches("HT", rec))
	assert.True(t, Matches([]any{"H", 10}, rec), "elements are keyed by index")
	assert.False(t, Matches([]any{"H", 11}, rec))
	assert.False(t, Matches("-h", message{Protocol: "-h"}))
}

func TestRecordMatchIsOneLevelDeep(t *testing.T) {
	inner := map[string]any{"x": 1}
	rec := map[string]any{"inner": inner}
	assert.True(t, Matches(map[string]any{"inner": inner}, rec), "same nested map is identical")
	assert.False(t, Matches(map[string]any{"inner": map[string]any{"x": 1}}, rec),
		"equal but distinct nested maps are not identical")
}

func TestStructRecords(t *testing.T) {
	msg := message{Protocol: "AMQP", I: 5, Note: "n", secret: "s"}
	assert.True(t, IsRecord(msg))
	assert.True(t, IsRecord(&msg))
	assert.True(t, Matches(map[string]any{"protocol": "AMQP"}, msg))
	assert.True(t, Matches(map[string]any{"protocol": "AMQP", "i": 5}, &msg))
	assert.True(t, Matches(map[string]any{"Note": "n"}, msg))
	assert.True(t, Matches(map[string]any{"Protocol": "AMQP"}, msg), "Go field name works as key")
	assert.False(t, Matches(map[string]any{"secret": "s"}, msg), "unexported fields are not keys")
	assert.True(t, Matches(message{Protocol: "AMQP", I: 5, Note: "n"}, msg))
	assert.False(t, Matches(message{Protocol: "AMQP"}, msg), "struct patterns compare all fields")
}

func TestSequencesMatchByCanonicalForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "when.structural")
	defer teardown()
	//
	assert.True(t, Matches([]any{"a", "b"}, []string{"a", "b"}))
	assert.True(t, Matches([]any{"d", "e", 1}, []any{"d", "e", 1}))
	assert.True(t, Matches([2]int{1, 2}, []int{1, 2}))
	assert.False(t, Matches([]any{"b", "a"}, []string{"a", "b"}), "order matters")
	assert.False(t, Matches([]any{"a"}, []string{"a", "b"}), "length matters")
	assert.False(t, Matches("a,b", []string{"a", "b"}))
	assert.True(t, Matches([]any{}, []int(nil)), "nil slice is an empty sequence")
	assert.True(t, Matches([]map[string]int{{"b": 2, "a": 1}}, []map[string]int{{"a": 1, "b": 2}}))
}

func TestRegexpPatterns(t *testing.T) {
	assert.True(t, Matches(regexp.MustCompile(`1`), 1))
	assert.True(t, Matches(regexp.MustCompile(`2`), " 2"))
	assert.True(t, Matches(regexp.MustCompile(`(?i)zero`), "zEro"))
	assert.False(t, Matches(regexp.MustCompile(`zero`), "zEro"))
	assert.True(t, Matches(regexp.MustCompile(`^true$`), true))
	assert.False(t, Matches(regexp.MustCompile(`a`), []string{"a"}), "sequences are compared structurally")
}

func TestText(t *testing.T) {
	assert.Equal(t, "90", Text(90))
	assert.Equal(t, "1.5", Text(1.5))
	assert.Equal(t, "90", Text(90.0))
	assert.Equal(t, "null", Text(nil))
	assert.Equal(t, "a,1,true", Text([]any{"a", 1, true}))
	assert.Equal(t, "^x$", Text(regexp.MustCompile(`^x$`)))
	assert.Equal(t, "1e+21", Text(1e21))
	assert.Equal(t, "123456789012345680000", Text(1.2345678901234568e20))
	assert.Equal(t, "-2.5e-7", Text(-2.5e-7))
	assert.Equal(t, "0.000001", Text(1e-6))
	assert.Equal(t, "Infinity", Text(math.Inf(1)))
	assert.Equal(t, "NaN", Text(math.NaN()))
}

func TestCompare(t *testing.T) {
	c, ok := Compare(3, 4.5)
	assert.True(t, ok)
	assert.Equal(t, -1, c)
	c, ok = Compare(uint(7), -2)
	assert.True(t, ok)
	assert.Equal(t, 1, c)
	c, ok = Compare("b", "a")
	assert.True(t, ok)
	assert.Equal(t, 1, c)
	_, ok = Compare("1", 1)
	assert.False(t, ok)
	_, ok = Compare(math.NaN(), 1)
	assert.False(t, ok)
}

func TestStrictEqualIdentity(t *testing.T) {
	s := []int{1, 2}
	m := map[string]int{"a": 1}
	assert.True(t, StrictEqual(s, s))
	assert.False(t, StrictEqual(s, []int{1, 2}))
	assert.True(t, StrictEqual(m, m))
	assert.False(t, StrictEqual(m, map[string]int{"a": 1}))
	assert.True(t, StrictEqual(nil, (*message)(nil)))
	assert.False(t, StrictEqual(nil, 0))
	assert.True(t, StrictEqual(message{I: 1}, message{I: 1}))
}
