package structural

import (
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

// StrictEqual reports whether a and b are identical on the level of primitive values.
//
// Numbers are equal if they denote the same number, regardless of their Go numeric type.
// Strings and booleans compare by value. Other comparable values compare with ==.
// Slices, maps, pointers and channels compare by identity; functions never compare equal.
// Untyped nil equals any nil pointer, slice, map, channel, function or interface.
func StrictEqual(a, b any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	x, y := reflect.ValueOf(a), reflect.ValueOf(b)
	if isNumber(x) && isNumber(y) {
		c, ok := compareNumbers(x, y)
		return ok && c == 0
	}
	switch {
	case x.Kind() == reflect.String && y.Kind() == reflect.String:
		return x.String() == y.String()
	case x.Kind() == reflect.Bool && y.Kind() == reflect.Bool:
		return x.Bool() == y.Bool()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Func:
		return false
	case reflect.Slice:
		return x.Len() == y.Len() && x.Pointer() == y.Pointer()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	}
	if !x.Comparable() || !y.Comparable() {
		return false
	}
	return x.Equal(y)
}

// Compare orders a and b by their native ordering. Numbers of any Go numeric type are
// ordered numerically, strings lexically. For any other combination, including NaN,
// ok is false.
func Compare(a, b any) (c int, ok bool) {
	x, y := reflect.ValueOf(a), reflect.ValueOf(b)
	if isNumber(x) && isNumber(y) {
		return compareNumbers(x, y)
	}
	if x.Kind() == reflect.String && y.Kind() == reflect.String {
		return strings.Compare(x.String(), y.String()), true
	}
	return 0, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// --- Numbers ---------------------------------------------------------------

type numClass int8

const (
	notNumber numClass = iota
	signed
	unsigned
	float
)

func classify(v reflect.Value) numClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return float
	}
	return notNumber
}

func isNumber(v reflect.Value) bool {
	return classify(v) != notNumber
}

// compareNumbers compares two numeric values without losing precision for integers.
func compareNumbers(x, y reflect.Value) (int, bool) {
	cx, cy := classify(x), classify(y)
	switch {
	case cx == float || cy == float:
		fx, fy := toFloat(x, cx), toFloat(y, cy)
		if fx != fx || fy != fy { // NaN
			return 0, false
		}
		return order(fx, fy), true
	case cx == signed && cy == signed:
		return order(x.Int(), y.Int()), true
	case cx == unsigned && cy == unsigned:
		return order(x.Uint(), y.Uint()), true
	case cx == signed: // y unsigned
		if x.Int() < 0 {
			return -1, true
		}
		return order(uint64(x.Int()), y.Uint()), true
	default: // x unsigned, y signed
		if y.Int() < 0 {
			return 1, true
		}
		return order(x.Uint(), uint64(y.Int())), true
	}
}

func toFloat(v reflect.Value, c numClass) float64 {
	switch c {
	case signed:
		return float64(v.Int())
	case unsigned:
		return float64(v.Uint())
	}
	return v.Float()
}

func order[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
