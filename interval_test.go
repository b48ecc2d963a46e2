package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fi(v int) Bound[Orderable[int]] {
	return Finite(Orderable[int](v))
}

func closedI(a, b int) Interval[Orderable[int]]     { return Closed(fi(a), fi(b)) }
func openI(a, b int) Interval[Orderable[int]]       { return Open(fi(a), fi(b)) }
func openClosedI(a, b int) Interval[Orderable[int]] { return OpenClosed(fi(a), fi(b)) }
func closedOpenI(a, b int) Interval[Orderable[int]] { return ClosedOpen(fi(a), fi(b)) }
func singletonI(x int) Interval[Orderable[int]]     { return Singleton(fi(x)) }

func TestEmpty(t *testing.T) {
	e := Empty[Orderable[int]]()
	if !e.IsEmpty() {
		t.Fatal("Empty() is not reported empty")
	}
	if !e.IsAtomic() {
		t.Fatal("Empty() should be atomic (at most one atomic)")
	}
	if !e.Lower().IsPosInf() || !e.Upper().IsNegInf() {
		t.Fatal("Empty() should have Lower()=+inf, Upper()=-inf")
	}
	if e.Left() != Open || e.Right() != Open {
		t.Fatal("Empty() brackets should be Open")
	}
	var zero Interval[Orderable[int]]
	if !zero.Equal(e) {
		t.Fatal("zero value Interval should equal Empty()")
	}
}

func TestClosedAtInfinityCoerces(t *testing.T) {
	a := Closed(NegInf[Orderable[int]](), PosInf[Orderable[int]]())
	b := Open(NegInf[Orderable[int]](), PosInf[Orderable[int]]())
	if !a.Equal(b) {
		t.Fatalf("closed(-inf,+inf) should coerce to open(-inf,+inf): got %s vs %s", a, b)
	}
}

func TestUnionMergesTouchingClosedOpen(t *testing.T) {
	got := closedI(0, 1).Union(openI(1, 2))
	want := closedOpenI(0, 2)
	if !got.Equal(want) {
		t.Fatalf("Union = %s, want %s", got, want)
	}
}

func TestUnionLeavesGapBetweenOpenAtoms(t *testing.T) {
	got := openI(0, 1).Union(openI(1, 2))
	if got.Len() != 2 {
		t.Fatalf("open(0,1) | open(1,2) should remain two atomics (gap at 1), got %s", got)
	}
}

func TestSingletonBridgesGap(t *testing.T) {
	got := New(openI(1, 2), singletonI(2), openI(2, 3))
	want := openI(1, 3)
	if !got.Equal(want) {
		t.Fatalf("New(open(1,2),singleton(2),open(2,3)) = %s, want %s", got, want)
	}
}

func TestIntersection(t *testing.T) {
	got := closedI(0, 3).Intersection(closedI(2, 5))
	want := closedI(2, 3)
	if !got.Equal(want) {
		t.Fatalf("Intersection = %s, want %s", got, want)
	}
}

func TestIntersectionTieBreakPicksOpen(t *testing.T) {
	got := closedI(0, 1).Intersection(openClosedI(1, 2))
	if !got.IsEmpty() {
		t.Fatalf("[0,1] ∩ (1,2] should be empty, got %s", got)
	}
}

func TestComplement(t *testing.T) {
	got := closedI(0, 1).Complement()
	want := Open(NegInf[Orderable[int]](), fi(0)).Union(Open(fi(1), PosInf[Orderable[int]]()))
	if !got.Equal(want) {
		t.Fatalf("Complement([0,1]) = %s, want %s", got, want)
	}
}

func TestComplementOfEmptyIsEverything(t *testing.T) {
	got := Empty[Orderable[int]]().Complement()
	want := Open(NegInf[Orderable[int]](), PosInf[Orderable[int]]())
	if !got.Equal(want) {
		t.Fatalf("Complement(empty) = %s, want %s", got, want)
	}
}

func TestDifference(t *testing.T) {
	got := closedI(0, 5).Difference(closedI(2, 3))
	want := New(closedOpenI(0, 2), openClosedI(3, 5))
	if !got.Equal(want) {
		t.Fatalf("Difference = %s, want %s", got, want)
	}
}

func TestContains(t *testing.T) {
	iv := closedOpenI(0, 1)
	if !iv.Contains(fi(0)) {
		t.Fatal("[0,1) should contain 0")
	}
	if iv.Contains(fi(1)) {
		t.Fatal("[0,1) should not contain 1")
	}
	if iv.Contains(NegInf[Orderable[int]]()) || iv.Contains(PosInf[Orderable[int]]()) {
		t.Fatal("no interval should contain an infinity sentinel")
	}
}

func TestContainsInterval(t *testing.T) {
	big := closedI(0, 10)
	if !big.ContainsInterval(closedI(2, 3)) {
		t.Fatal("[0,10] should contain [2,3]")
	}
	if big.ContainsInterval(closedI(9, 11)) {
		t.Fatal("[0,10] should not contain [9,11]")
	}
	if !big.ContainsInterval(Empty[Orderable[int]]()) {
		t.Fatal("every interval contains the empty interval")
	}
	if Empty[Orderable[int]]().ContainsInterval(closedI(0, 1)) {
		t.Fatal("the empty interval contains nothing non-empty")
	}
}

func TestOverlaps(t *testing.T) {
	if closedI(0, 1).Overlaps(openI(1, 2)) {
		t.Fatal("[0,1] and (1,2) share no point, should not overlap")
	}
	if !closedI(0, 1).Overlaps(closedI(1, 2)) {
		t.Fatal("[0,1] and [1,2] share point 1, should overlap")
	}
	if Empty[Orderable[int]]().Overlaps(closedI(0, 1)) {
		t.Fatal("empty interval overlaps nothing")
	}
}

func TestAdjacent(t *testing.T) {
	if !closedI(0, 1).Union(closedI(2, 3)).Adjacent(openI(1, 2)) {
		t.Fatal("[0,1] ∪ [2,3] should be adjacent to (1,2): union forms one atomic, no overlap")
	}
	if closedI(0, 1).Adjacent(closedI(1, 2)) {
		t.Fatal("[0,1] and [1,2] overlap, should not be adjacent")
	}
	if !Empty[Orderable[int]]().Adjacent(closedI(0, 1)) {
		t.Fatal("the empty interval is adjacent to any atomic interval")
	}
	if Empty[Orderable[int]]().Adjacent(closedI(0, 1).Union(closedI(2, 3))) {
		t.Fatal("the empty interval is not adjacent to a multi-atomic interval")
	}
}

func TestEnclosure(t *testing.T) {
	iv := closedI(0, 1).Union(openI(2, 3))
	got := iv.Enclosure()
	want := closedOpenI(0, 3)
	if !got.Equal(want) {
		t.Fatalf("Enclosure = %s, want %s", got, want)
	}
}

func TestOrdering(t *testing.T) {
	if !closedI(0, 1).Less(closedI(2, 3)) {
		t.Fatal("[0,1] should be Less than [2,3]")
	}
	if closedI(0, 1).Less(closedI(1, 2)) {
		t.Fatal("[0,1] overlaps [1,2] at 1, should not be Less")
	}
	if closedI(0, 1).Less(Empty[Orderable[int]]()) {
		t.Fatal("nothing is Less than the empty interval")
	}
	if !closedOpenI(0, 1).LessOrEqual(closedI(1, 2)) {
		t.Fatal("[0,1) should be LessOrEqual to [1,2]: 1 is excluded from [0,1), so it is Less")
	}

	i2 := closedI(1, 2)
	i4 := New(closedI(0, 1), closedI(2, 3))
	if !i2.GreaterOrEqual(i4) {
		t.Fatal("[1,2] should be GreaterOrEqual to [0,1]|[2,3]: its lower value 1 is not below the union's lower value 0")
	}
	if i4.GreaterOrEqual(i2) {
		t.Fatal("[0,1]|[2,3] should not be GreaterOrEqual to [1,2]: its own lower value 0 is smaller")
	}
	if closedI(0, 2).GreaterOrEqual(openI(0, 1)) {
		t.Fatal("[0,2] should not be GreaterOrEqual to (0,1): they overlap, neither is Greater, and lower bounds differ in kind only at a tie")
	}
	if !closedI(2, 3).Greater(closedI(0, 1)) {
		t.Fatal("[2,3] should be Greater than [0,1]")
	}
}

func TestLen(t *testing.T) {
	if Empty[Orderable[int]]().Len() != 0 {
		t.Fatal("Empty().Len() should be 0")
	}
	if closedI(0, 1).Union(closedI(2, 3)).Len() != 2 {
		t.Fatal("two disjoint atomics should report Len()==2")
	}
}

func TestAtNegativeIndex(t *testing.T) {
	iv := closedI(0, 1).Union(closedI(2, 3))
	a, err := iv.At(-1)
	if err != nil {
		t.Fatalf("At(-1) failed: %v", err)
	}
	lv, _ := a.Lower.Value()
	uv, _ := a.Upper.Value()
	if lv != Orderable[int](2) || uv != Orderable[int](3) {
		t.Fatalf("At(-1) = %+v, want the [2,3] atomic", a)
	}
}

func TestAtOutOfRange(t *testing.T) {
	iv := closedI(0, 1)
	if _, err := iv.At(5); err == nil {
		t.Fatal("At(5) on a single-atomic interval should fail")
	} else if _, ok := err.(*IndexError); !ok {
		t.Fatalf("expected *IndexError, got %T", err)
	}
}

func TestSlice(t *testing.T) {
	iv := New(closedI(0, 1), closedI(2, 3), closedI(4, 5))
	got := iv.Slice(1, 3)
	want := New(closedI(2, 3), closedI(4, 5))
	if !got.Equal(want) {
		t.Fatalf("Slice(1,3) = %s, want %s", got, want)
	}
	if !iv.Slice(10, 20).IsEmpty() {
		t.Fatal("out-of-range slice should clamp to empty")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		iv   Interval[Orderable[int]]
		want string
	}{
		{Empty[Orderable[int]](), "()"},
		{closedI(0, 1), "[0,1]"},
		{singletonI(4), "[4]"},
		{New(closedI(0, 1), openI(3, 4)), "[0,1] | (3,4)"},
		{Open(NegInf[Orderable[int]](), fi(1)), "(-inf,1)"},
	}
	for _, tc := range tests {
		if got := tc.iv.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestHash(t *testing.T) {
	a := closedI(0, 1)
	b := closedI(0, 1)
	ha, err := Hash(a)
	if err != nil {
		t.Fatalf("Hash(a): %v", err)
	}
	hb, err := Hash(b)
	if err != nil {
		t.Fatalf("Hash(b): %v", err)
	}
	if ha != hb {
		t.Fatal("equal intervals should hash equal")
	}
	if _, err := Hash(Empty[Orderable[int]]()); err != nil {
		t.Fatalf("Hash(empty) should not fail: %v", err)
	}
}

func TestReplaceValuesOnSingleAtomic(t *testing.T) {
	i := openI(0, 1)
	left, right := ConstKind(Closed), ConstKind(Closed)
	got := i.Replace(&left, nil, nil, &right, true)
	want := closedI(0, 1)
	if !got.Equal(want) {
		t.Fatalf("Replace(left=CLOSED,right=CLOSED) = %s, want %s", got, want)
	}
}

func TestReplaceFunctionsIgnoreInfinity(t *testing.T) {
	i := Open(NegInf[Orderable[int]](), PosInf[Orderable[int]]())
	one := Func(func(Bound[Orderable[int]]) Bound[Orderable[int]] { return fi(1) })
	two := Func(func(Bound[Orderable[int]]) Bound[Orderable[int]] { return fi(2) })
	got := i.Replace(nil, &one, &two, nil, true)
	if !got.Equal(i) {
		t.Fatalf("Replace with ignoreInf=true on an infinite bound should be a no-op, got %s", got)
	}

	got2 := i.Replace(nil, &one, &two, nil, false)
	if got2.IsEmpty() {
		t.Fatal("Replace with ignoreInf=false should apply the function replacements")
	}
}

func TestReplaceOnEmpty(t *testing.T) {
	e := Empty[Orderable[int]]()
	lo, hi := Const(fi(1)), Const(fi(2))
	got := e.Replace(nil, &lo, &hi, nil, true)
	want := openI(1, 2)
	if !got.Equal(want) {
		t.Fatalf("empty().Replace(lower=1,upper=2) = %s, want %s", got, want)
	}
}

func TestReplaceMultiAtomicBothEdges(t *testing.T) {
	i := New(closedI(0, 1), openI(2, 3))
	left, right := ConstKind(Open), ConstKind(Open)
	lo, hi := Const(fi(-1)), Const(fi(4))
	got := i.Replace(&left, &lo, &hi, &right, true)
	want := New(openClosedI(-1, 1), openI(2, 4))
	if !got.Equal(want) {
		t.Fatalf("Replace on the union's two edges = %s, want %s", got, want)
	}
}

func TestReplaceLowerDropsFirstAtomAndCascades(t *testing.T) {
	i := New(closedI(0, 1), openI(2, 3))
	lo := Const(fi(2))
	got := i.Replace(nil, &lo, nil, nil, true)
	want := closedOpenI(2, 3)
	if !got.Equal(want) {
		t.Fatalf("Replace(lower=2) = %s, want %s (the dropped first atom's CLOSED left bracket carries over to the surviving atomic)", got, want)
	}
}

func TestReplaceUpperDropsLastAtomAndCascades(t *testing.T) {
	i := New(closedI(0, 1), openI(2, 3))
	hi := Const(fi(1))
	got := i.Replace(nil, nil, &hi, nil, true)
	want := closedOpenI(0, 1)
	if !got.Equal(want) {
		t.Fatalf("Replace(upper=1) = %s, want %s (the dropped last atom's OPEN right bracket carries over to the surviving atomic)", got, want)
	}
}

func TestReplaceLowerPastEveryAtomIsEmpty(t *testing.T) {
	i := New(closedI(0, 1), openI(2, 3))
	lo := Const(fi(5))
	if got := i.Replace(nil, &lo, nil, nil, true); !got.IsEmpty() {
		t.Fatalf("Replace(lower=5) should drop every atom and yield empty, got %s", got)
	}
}

func TestReplaceUpperPastEveryAtomIsEmpty(t *testing.T) {
	i := New(closedI(0, 1), openI(2, 3))
	hi := Const(fi(-5))
	if got := i.Replace(nil, nil, &hi, nil, true); !got.IsEmpty() {
		t.Fatalf("Replace(upper=-5) should drop every atom and yield empty, got %s", got)
	}
}

func TestReplaceAllFunctionsOnUnion(t *testing.T) {
	i := New(closedI(0, 1), openI(2, 3))
	left := FuncKind(func(k Kind) Kind { return k.flip() })
	right := FuncKind(func(k Kind) Kind { return k.flip() })
	lo := Func(func(b Bound[Orderable[int]]) Bound[Orderable[int]] {
		v, _ := b.Value()
		return Finite(Orderable[int](int(v) - 1))
	})
	hi := Func(func(b Bound[Orderable[int]]) Bound[Orderable[int]] {
		v, _ := b.Value()
		return Finite(Orderable[int](int(v) + 1))
	})
	got := i.Replace(&left, &lo, &hi, &right, true)
	want := New(openClosedI(-1, 1), openClosedI(2, 4))
	if !got.Equal(want) {
		t.Fatalf("Replace with flipping functions on both edges = %s, want %s", got, want)
	}
}

func TestApplyOnUnion(t *testing.T) {
	i := New(closedI(0, 1), closedI(2, 3))
	got := i.Apply(func(a Atomic[Orderable[int]]) ApplyResult[Orderable[int]] {
		lv, _ := a.Lower.Value()
		uv, _ := a.Upper.Value()
		return AsAtomic(a.Left.flip(), Finite(Orderable[int](int(lv)-1)), Finite(Orderable[int](int(uv)-1)), a.Right.flip())
	})
	want := New(openI(-1, 0), openI(1, 2))
	if !got.Equal(want) {
		t.Fatalf("Apply = %s, want %s", got, want)
	}
}

func TestApplyOnEmpty(t *testing.T) {
	called := false
	got := Empty[Orderable[int]]().Apply(func(a Atomic[Orderable[int]]) ApplyResult[Orderable[int]] {
		called = true
		return ApplyResult[Orderable[int]]{}
	})
	if called {
		t.Fatal("Apply should not invoke f on the empty interval")
	}
	if !got.IsEmpty() {
		t.Fatal("Apply on empty should return empty")
	}
}

func TestDiffAgainstGoCmp(t *testing.T) {
	a := New(closedI(0, 1), closedI(2, 3))
	b := New(closedI(0, 1), closedI(2, 3))
	opts := cmp.AllowUnexported(Interval[Orderable[int]]{}, atomic[Orderable[int]]{}, Bound[Orderable[int]]{})
	if diff := cmp.Diff(a, b, opts); diff != "" {
		t.Fatalf("equal intervals should have no cmp.Diff (-got +want):\n%s", diff)
	}
}
