package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNewEmptyWhenLoGreaterThanHi(t *testing.T) {
	iv := New(Finite(2), Finite(1))
	assert.True(t, iv.IsEmpty())
}

func TestDiameterPropagatesInfinity(t *testing.T) {
	iv := New(Finite(0), PosInf)
	assert.True(t, iv.Diameter().IsInf())
}

func TestUnionReduceMergesOverlaps(t *testing.T) {
	u := NewUnion(New(Finite(0), Finite(2)), New(Finite(1), Finite(3)), New(Finite(10), Finite(12)))
	assert.Len(t, u.Parts(), 2)
	assert.Equal(t, Finite(0), u.Parts()[0].Lo)
	assert.Equal(t, Finite(3), u.Parts()[0].Hi)
}

func TestUnionReduceDropsEmpties(t *testing.T) {
	u := NewUnion(Empty(), New(Finite(1), Finite(2)))
	assert.Len(t, u.Parts(), 1)
}

func TestIntersectComponentWise(t *testing.T) {
	a := NewUnion(New(Finite(-1), Finite(1)))
	b := NewUnion(New(Finite(0), Finite(5)))
	got := a.Intersect(b)
	assert.Equal(t, "[0, 1]", got.String())
}

func TestSubsetNeverWidens(t *testing.T) {
	before := NewUnion(New(Finite(-1), Finite(1)))
	after := before.Intersect(NewUnion(New(Finite(-1), Finite(0.5))))
	assert.True(t, after.Subset(before), "contraction must stay within the original domain")
}

func TestUnionCmpUsesEqualMethod(t *testing.T) {
	// Union's parts slice is unexported, so cmp.Diff would otherwise
	// panic; it instead dispatches to Union.Equal, which is order- and
	// representation-sensitive rather than a raw field comparison.
	a := NewUnion(New(Finite(0), Finite(2)), New(Finite(5), Finite(6)))
	b := NewUnion(New(Finite(5), Finite(6)), New(Finite(0), Finite(2)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}
}
