package nast

// Pair is a generic two-element tuple used for pair-shaped recursive
// fields (class requirements, type-parameter constraints).
type Pair[A, B any] struct {
	First  A
	Second B
}

// MapSlice applies f to every element of xs, threading the same env value
// to each call. Order and arity are preserved; a nil slice stays nil.
func MapSlice[Env, T any](f func(Env, T) T, env Env, xs []T) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = f(env, x)
	}
	return out
}

// MapOption applies f to x when present; nil stays nil.
func MapOption[Env any, T any](f func(Env, *T) *T, env Env, x *T) *T {
	if x == nil {
		return nil
	}
	return f(env, x)
}

// MapFirst rewrites the first component of a pair, leaving the second
// untouched.
func MapFirst[Env, A, B any](f func(Env, A) A, env Env, p Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: f(env, p.First), Second: p.Second}
}

// MapSecond rewrites the second component of a pair, leaving the first
// untouched.
func MapSecond[Env, A, B any](f func(Env, B) B, env Env, p Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First, Second: f(env, p.Second)}
}
