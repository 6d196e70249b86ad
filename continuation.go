package when

import (
	"fmt"
	"reflect"
)

// Continuation is the most general form of a continuation. Any other function type
// may be used as a continuation as well; it is then called via reflection.
//
// A continuation receives the bound values: head and tail after a head/tail
// decomposition, the matched value otherwise. Surplus arguments are dropped, missing
// ones are passed as zero values. A trailing error result is returned as the error of
// the evaluation, unchanged.
type Continuation func(args ...any) (any, error)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func invoke(fn any, args []any) (any, error) {
	tracer().Debugf("calling continuation %T with %d argument(s)", fn, len(args))
	switch f := fn.(type) {
	case Continuation:
		return f(args...)
	case func(...any) (any, error):
		return f(args...)
	case func(any) any:
		return f(arg(args, 0)), nil
	case func(any) (any, error):
		return f(arg(args, 0))
	case func(any, any) any:
		return f(arg(args, 0), arg(args, 1)), nil
	case func(any, any) (any, error):
		return f(arg(args, 0), arg(args, 1))
	}
	return invokeReflect(reflect.ValueOf(fn), args)
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func invokeReflect(fn reflect.Value, args []any) (any, error) {
	ft := fn.Type()
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		v, err := argValue(arg(args, i), ft.In(i), i)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	if ft.IsVariadic() {
		elem := ft.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := argValue(args[i], elem, i)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}
	return results(ft, fn.Call(in))
}

func argValue(a any, t reflect.Type, i int) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: argument #%d of type %T is not assignable to %s",
			ErrContinuationArgs, i, a, t)
	}
	return v, nil
}

// results collects the return values of a continuation. A trailing error is split off;
// of the remaining values, none is nil, one is the result, more are returned as a slice.
func results(ft reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	values := make([]any, len(out))
	for i, v := range out {
		values[i] = v.Interface()
	}
	return values, err
}
