package interval

import "testing"

func TestMulFourCorner(t *testing.T) {
	got := Mul(New(Finite(-2), Finite(3)), New(Finite(1), Finite(2)))
	want := New(Finite(-4), Finite(6))
	if got != want {
		t.Fatalf("Mul = %v, want %v", got, want)
	}
}

func TestDivStraddlingZeroWidensToFull(t *testing.T) {
	got := Div(New(Finite(1), Finite(2)), New(Finite(-1), Finite(1)))
	if got != Full() {
		t.Fatalf("Div = %v, want Full", got)
	}
}

func TestDivByZeroPointNumeratorNonZero(t *testing.T) {
	got := Div(New(Finite(1), Finite(1)), Point(Finite(0)))
	if !got.IsEmpty() {
		t.Fatalf("Div = %v, want Empty", got)
	}
}

func TestPowEvenSpanningZero(t *testing.T) {
	got := Pow(New(Finite(-2), Finite(3)), 2)
	want := New(Finite(0), Finite(9))
	if got != want {
		t.Fatalf("Pow = %v, want %v", got, want)
	}
}

func TestNthRootOdd(t *testing.T) {
	got := NthRoot(New(Finite(-8), Finite(27)), 3)
	want := New(Finite(-2), Finite(3))
	if got != want {
		t.Fatalf("NthRoot = %v, want %v", got, want)
	}
}
