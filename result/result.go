/*
Package result implements results of computations which may fail.

	var v any
	var err error
	switch m := when.Try(x, cases).Match(); m {
	case m.Ok(&v):
		…
	case m.Err(&err):
		…
	}
*/
package result

// Result is either Ok with a value or Err with an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of wraps the return values of a function, Err if err is non-nil.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

// --- Matching --------------------------------------------------------------

// Matcher selects the case of a Result in a switch statement. The case which does not
// apply returns nil.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
