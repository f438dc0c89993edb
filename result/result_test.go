package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/widgets/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultAndThen(t *testing.T) {
	half := func(n int) Result[int] {
		if n%2 != 0 {
			return Err[int](errors.New("odd"))
		}
		return Ok(n / 2)
	}
	if v, err := AndThen(Ok(8), half).Unwrap(); err != nil || v != 4 {
		t.Errorf("expected 8/2 = 4, got %d (err=%v)", v, err)
	}
	if _, err := AndThen(Ok(7), half).Unwrap(); err == nil {
		t.Error("expected odd number to fail")
	}
	if _, err := AndThen(Err[int](errors.New("x")), half).Unwrap(); err == nil || err.Error() != "x" {
		t.Errorf("expected error to short-circuit, got %v", err)
	}
}
