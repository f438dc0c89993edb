/*
Package result implements a type for the result of a computation that may fail.

A Result[T] is either Ok, holding a value of type T, or Err, holding an
error. Clients pattern-match on it:

    var v T
    var err error
    switch m := r.Match(); m {
    case m.Ok(&v):
        … use v
    case m.Err(&err):
        … handle err
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is the result of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return &result[T]{value: x}
}

// Err wraps an error. err should not be nil.
func Err[T any](err error) Result[T] {
	return &result[T]{err: err}
}

func (r *result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Unwrap returns the Go-style pair of value and error.
func (r *result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// AndThen chains a computation which may fail onto r.
func AndThen[T, S any](r Result[T], f func(T) Result[S]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switching over the cases of a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r *result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
