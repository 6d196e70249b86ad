package when

// Map applies m to every element of xs. It stops at the first error.
func Map[S any](xs []S, m Matcher) ([]any, error) {
	out := make([]any, len(xs))
	for i, x := range xs {
		r, err := m(x)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// Filter keeps the elements of xs for which m results in true. It stops at the first
// error.
func Filter[S any](xs []S, m Matcher) ([]S, error) {
	var out []S
	for _, x := range xs {
		r, err := m(x)
		if err != nil {
			return nil, err
		}
		if keep, ok := r.(bool); ok && keep {
			out = append(out, x)
		}
	}
	return out, nil
}

// Const returns a continuation which ignores its argument and produces a.
func Const[T, A any](a T) func(A) T {
	return func(A) T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
