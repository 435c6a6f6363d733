package algebra

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"github.com/shopspring/decimal"
)

// checkContracts verifies the algebra contracts on a few sample values.
func checkContracts[V comparable, D any](t *testing.T, alg segtree.Algebra[V, D], values []V, deltas []D) {
	t.Helper()
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				l := alg.Combine(a, alg.Combine(b, c))
				r := alg.Combine(alg.Combine(a, b), c)
				if l != r {
					t.Fatalf("combine not associative for %v, %v, %v", a, b, c)
				}
			}
		}
	}
	for _, v := range values {
		for _, d1 := range deltas {
			for _, d2 := range deltas {
				seq := alg.Apply(alg.Apply(v, d1, 1), d2, 1)
				composed := alg.Apply(v, alg.Compose(d1, d2), 1)
				if seq != composed {
					t.Fatalf("composed delta %v∘%v on %v: %v, sequential %v", d2, d1, v, composed, seq)
				}
			}
			for m := 1; m <= 4; m++ {
				folded := v
				single := alg.Apply(v, d1, 1)
				singles := single
				for range m - 1 {
					folded = alg.Combine(folded, v)
					singles = alg.Combine(singles, single)
				}
				if got := alg.Apply(folded, d1, m); got != singles {
					t.Fatalf("apply does not distribute for v=%v d=%v m=%d: %v != %v",
						v, d1, m, got, singles)
				}
			}
		}
	}
}

func TestContracts(t *testing.T) {
	ints := []int{-7, 0, 3, 12}
	checkContracts[int, int](t, MinSet[int]{}, ints, ints)
	checkContracts[int, int](t, MaxSet[int]{}, ints, ints)
	checkContracts[int, int](t, MinAdd[int]{}, ints, ints)
	checkContracts[int, int](t, MaxAdd[int]{}, ints, ints)
	checkContracts[int, int](t, SumAdd[int]{}, ints, ints)
	checkContracts[int, int](t, SumSet[int]{}, ints, ints)
	checkContracts[int64, Affine[int64]](t, SumAffine[int64]{}, []int64{-2, 0, 5},
		[]Affine[int64]{Assign[int64](4), Increment[int64](-3), Scale[int64](2), {Mul: 3, Add: 1}})
	checkContracts[string, string](t, MinSet[string]{}, []string{"a", "b", "zz"}, []string{"q", ""})
}

func TestAffineCompositionIsOrdered(t *testing.T) {
	alg := SumAffine[int]{}
	inc := Increment(1)
	dbl := Scale(2)
	if a, b := alg.Compose(inc, dbl).Of(5), alg.Compose(dbl, inc).Of(5); a == b {
		t.Fatalf("expected affine composition to depend on order, both give %d", a)
	}
	if got := alg.Compose(inc, dbl).Of(5); got != 12 {
		t.Fatalf("expected (5+1)*2 = 12, got %d", got)
	}
}

func TestMinSetConfigScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree, err := segtree.FromSlice(MinSetConfig[int](), []int{6, -2, 1, 8, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = tree.UpdateRange(2, 4, 4)
	if m, _ := tree.Query(0, 3); m != -2 {
		t.Fatalf("expected -2, got %d", m)
	}
	_ = tree.UpdateRange(0, 4, 5)
	_ = tree.Update(3, 2)
	_ = tree.Update(3, 1)
	want := []int{5, 5, 5, 1, 5}
	got := tree.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected values %v, got %v", want, got)
		}
	}
	if m, _ := tree.Query(0, 3); m != 1 {
		t.Fatalf("expected 1, got %d", m)
	}
}

func TestSumAffineTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree, err := segtree.New(SumAffineConfig[int](), 6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = tree.UpdateRange(0, 5, Increment(2)) // 3 3 3 3 3 3
	_ = tree.UpdateRange(2, 3, Scale(10))    // 3 3 30 30 3 3
	_ = tree.UpdateRange(0, 2, Assign(0))    // 0 0 0 30 3 3
	_ = tree.UpdateRange(3, 5, Increment(1)) // 0 0 0 31 4 4
	if s, _ := tree.Query(0, 5); s != 39 {
		t.Fatalf("expected sum 39, got %d (values %v)", s, tree.Values())
	}
	if s, _ := tree.Query(2, 4); s != 35 {
		t.Fatalf("expected sum 35, got %d", s)
	}
	if err := tree.Check(func(a, b int) bool { return a == b }); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestSumSetAndMaxAdd(t *testing.T) {
	sums, _ := segtree.FromSlice(SumSetConfig[float64](), []float64{1, 2, 3, 4})
	_ = sums.UpdateRange(1, 2, 0.5)
	if s, _ := sums.Query(0, 3); s != 6 {
		t.Fatalf("expected sum 6, got %v", s)
	}
	maxima, _ := segtree.FromSlice(MaxAddConfig[int](), []int{1, 9, 3, 4})
	_ = maxima.UpdateRange(2, 3, 10)
	if m, _ := maxima.Query(0, 3); m != 14 {
		t.Fatalf("expected max 14, got %d", m)
	}
	if m, _ := maxima.Query(0, 2); m != 13 {
		t.Fatalf("expected max 13, got %d", m)
	}
	minima, _ := segtree.FromSlice(MinAddConfig[int](), []int{1, 9, 3, 4})
	_ = minima.UpdateRange(0, 1, 5)
	if m, _ := minima.Query(0, 3); m != 3 {
		t.Fatalf("expected min 3, got %d", m)
	}
	top, _ := segtree.FromSlice(MaxSetConfig[int](), []int{1, 9, 3, 4})
	_ = top.UpdateRange(0, 2, 2)
	if m, _ := top.Query(0, 3); m != 4 {
		t.Fatalf("expected max 4, got %d", m)
	}
}

func TestDecimalAlgebras(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	prices := []decimal.Decimal{
		decimal.RequireFromString("0.10"),
		decimal.RequireFromString("0.20"),
		decimal.RequireFromString("0.30"),
	}
	sums, err := segtree.FromSlice(DecimalSumAddConfig(), prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = sums.UpdateRange(0, 2, decimal.RequireFromString("0.01"))
	s, _ := sums.Query(0, 2)
	if !s.Equal(decimal.RequireFromString("0.63")) {
		t.Fatalf("expected exact sum 0.63, got %s", s)
	}
	if err := sums.Check(DecimalEqual); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	minima, _ := segtree.FromSlice(DecimalMinSetConfig(), prices)
	_ = minima.Update(0, decimal.RequireFromString("0.25"))
	m, _ := minima.Query(0, 2)
	if !m.Equal(decimal.RequireFromString("0.20")) {
		t.Fatalf("expected min 0.20, got %s", m)
	}
}
