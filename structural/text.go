package structural

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Text coerces v to the text a regular expression is matched against.
// Sequences render as their comma-separated elements, nil as "null".
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	rv := reflect.ValueOf(v)
	switch classify(rv) {
	case signed:
		return strconv.FormatInt(rv.Int(), 10)
	case unsigned:
		return strconv.FormatUint(rv.Uint(), 10)
	case float:
		return formatFloat(rv.Float(), rv.Type().Bits())
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Text(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// formatFloat renders f the way script engines print numbers: plain decimals from 1e-6
// up to 1e21, exponent notation without a padded exponent outside of it.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if a := math.Abs(f); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	s := strconv.FormatFloat(f, 'e', -1, bits)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
