package nast

import (
	"reflect"
	"strings"
	"testing"
)

func TestMapSlicePreservesOrderAndArity(t *testing.T) {
	env := struct{}{}
	in := []string{"a", "b", "c"}

	out := MapSlice(func(_ struct{}, s string) string { return strings.ToUpper(s) }, env, in)

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("MapSlice = %v, want %v", out, want)
	}
	if !reflect.DeepEqual(in, []string{"a", "b", "c"}) {
		t.Errorf("MapSlice mutated its input: %v", in)
	}
}

func TestMapSliceNil(t *testing.T) {
	out := MapSlice(func(_ struct{}, s string) string { return s }, struct{}{}, nil)
	if out != nil {
		t.Errorf("MapSlice(nil) = %v, want nil", out)
	}
}

func TestMapOption(t *testing.T) {
	double := func(_ struct{}, x *int) *int {
		v := *x * 2
		return &v
	}

	if got := MapOption(double, struct{}{}, nil); got != nil {
		t.Errorf("MapOption(nil) = %v, want nil", got)
	}

	x := 21
	got := MapOption(double, struct{}{}, &x)
	if got == nil || *got != 42 {
		t.Errorf("MapOption(&21) = %v, want 42", got)
	}
}

func TestPairProjections(t *testing.T) {
	env := "env"
	p := Pair[string, int]{First: "a", Second: 7}

	first := MapFirst(func(e, s string) string { return e + ":" + s }, env, p)
	if first.First != "env:a" || first.Second != 7 {
		t.Errorf("MapFirst = %+v, want {env:a 7}", first)
	}

	second := MapSecond(func(_ string, n int) int { return n + 1 }, env, p)
	if second.First != "a" || second.Second != 8 {
		t.Errorf("MapSecond = %+v, want {a 8}", second)
	}

	// Projections never touch the other component.
	if p.First != "a" || p.Second != 7 {
		t.Errorf("projection mutated input pair: %+v", p)
	}
}
