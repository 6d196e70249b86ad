package structural

import (
	"bytes"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// canon is the serializer for sequence comparison. It sorts map keys, which makes the
// output of two equal maps identical.
var canon = jsoniter.ConfigCompatibleWithStandardLibrary

// Regexp is implemented by regular expressions usable as patterns, first of all
// *regexp.Regexp.
type Regexp interface {
	MatchString(s string) bool
}

// Matches reports whether pattern matches value.
//
// If value is a sequence, pattern has to be deeply and order-sensitively equal to it.
// Otherwise, if pattern is a regular expression, it has to match the text of value.
// Otherwise, if value is a record, every key of pattern has to be present in value with a
// strictly equal entry. Otherwise pattern and value have to be strictly equal.
func Matches(pattern, value any) bool {
	if IsSequence(value) {
		return sameCanonical(pattern, value)
	}
	if re, ok := pattern.(Regexp); ok {
		return re.MatchString(Text(value))
	}
	if rec, ok := record(value); ok {
		return matchesRecord(pattern, rec)
	}
	return StrictEqual(pattern, value)
}

// IsSequence reports whether v is an ordered sequence, i.e. a slice or an array.
// Strings are not sequences.
func IsSequence(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// IsRecord reports whether v is a keyed record: a map with string keys, a struct, or a
// non-nil pointer to one of them.
func IsRecord(v any) bool {
	_, ok := record(v)
	return ok
}

// Canonical returns the canonical serialization of v. A nil slice serializes as an empty
// sequence.
func Canonical(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return []byte("[]"), nil
	}
	return canon.Marshal(v)
}

func sameCanonical(pattern, value any) bool {
	p, err := Canonical(pattern)
	if err != nil {
		tracer().Debugf("cannot serialize pattern of type %T: %v", pattern, err)
		return false
	}
	v, err := Canonical(value)
	if err != nil {
		tracer().Debugf("cannot serialize value of type %T: %v", value, err)
		return false
	}
	return bytes.Equal(p, v)
}

// --- Records ---------------------------------------------------------------

func record(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv, rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return rv, true
	}
	return rv, false
}

// matchesRecord checks every entry of pattern against rec. Strings and sequences are
// keyed by their indices "0", "1", …, which a record rarely holds. Patterns without any
// keys (numbers, booleans, nil, empty strings and sequences) match any record.
func matchesRecord(pattern any, rec reflect.Value) bool {
	match := true
	check := func(key string, want any) bool {
		got, _ := lookup(rec, key)
		match = StrictEqual(got, want)
		return match
	}
	if pat, ok := record(pattern); ok {
		eachEntry(pat, check)
	} else {
		eachIndex(pattern, check)
	}
	return match
}

// eachIndex calls f for every element of a string or sequence, keyed by its decimal
// index, until f returns false. Elements of a string are its characters.
func eachIndex(v any, f func(key string, val any) bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		for i, r := range []rune(rv.String()) {
			if !f(strconv.Itoa(i), string(r)) {
				return
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !f(strconv.Itoa(i), rv.Index(i).Interface()) {
				return
			}
		}
	}
}

// eachEntry calls f for every entry of a record until f returns false.
func eachEntry(rec reflect.Value, f func(key string, val any) bool) {
	switch rec.Kind() {
	case reflect.Map:
		iter := rec.MapRange()
		for iter.Next() {
			if !f(iter.Key().String(), iter.Value().Interface()) {
				return
			}
		}
	case reflect.Struct:
		t := rec.Type()
		for i := 0; i < t.NumField(); i++ {
			fld := t.Field(i)
			if !fld.IsExported() {
				continue
			}
			name := fieldKey(fld)
			if name == "" {
				continue
			}
			if !f(name, rec.Field(i).Interface()) {
				return
			}
		}
	}
}

// lookup finds the entry for key. Missing entries are reported as (nil, false).
func lookup(rec reflect.Value, key string) (any, bool) {
	switch rec.Kind() {
	case reflect.Map:
		k := reflect.ValueOf(key).Convert(rec.Type().Key())
		v := rec.MapIndex(k)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		t := rec.Type()
		for i := 0; i < t.NumField(); i++ {
			if fld := t.Field(i); fld.IsExported() && fieldKey(fld) == key {
				return rec.Field(i).Interface(), true
			}
		}
		if fld, ok := t.FieldByName(key); ok && fld.IsExported() {
			if v, err := rec.FieldByIndexErr(fld.Index); err == nil {
				return v.Interface(), true
			}
		}
	}
	return nil, false
}

// fieldKey is the record key of a struct field: its JSON name if tagged, else its Go
// name. Fields tagged "-" have no key.
func fieldKey(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return fld.Name
}
