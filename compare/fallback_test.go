package compare_test

import (
	"testing"

	"github.com/hasbyte1/go-toolkit/compare"
)

// version implements compare.Comparable for the capability path.
type version struct{ major, minor int }

func (v version) CompareTo(other any) int {
	o := other.(version)
	if r := compare.Compare(v.major, o.major); r != 0 {
		return r
	}
	return compare.Compare(v.minor, o.minor)
}

func TestFallbackIdenticalValues(t *testing.T) {
	if compare.Fallback(7, 7) != 0 {
		t.Fatal("identical values should rank equal")
	}
	if compare.Fallback("x", "x") != 0 {
		t.Fatal("identical strings should rank equal")
	}
}

func TestFallbackNilPolicy(t *testing.T) {
	if compare.Fallback(nil, nil) != 0 {
		t.Fatal("two nils should rank equal")
	}
	if compare.Fallback(nil, 1) >= 0 || compare.Fallback(1, nil) <= 0 {
		t.Fatal("nil should sort first by default")
	}
	if compare.Fallback(nil, 1, true) <= 0 || compare.Fallback(1, nil, true) >= 0 {
		t.Fatal("with nilGreater, nil should sort last")
	}
}

func TestFallbackOrderedKinds(t *testing.T) {
	if compare.Fallback(1, 2) >= 0 {
		t.Fatal("ints should compare numerically")
	}
	if compare.Fallback("a", "b") >= 0 {
		t.Fatal("strings should compare lexically")
	}
	if compare.Fallback(1.5, 0.5) <= 0 {
		t.Fatal("floats should compare numerically")
	}
}

func TestFallbackComparableCapability(t *testing.T) {
	if compare.Fallback(version{1, 2}, version{1, 10}) >= 0 {
		t.Fatal("CompareTo should decide when both values implement it")
	}
	if compare.Fallback(version{2, 0}, version{1, 9}) <= 0 {
		t.Fatal("CompareTo should decide when both values implement it")
	}
}

func TestFallbackDeepEquality(t *testing.T) {
	if compare.Fallback([]int{1, 2}, []int{1, 2}) != 0 {
		t.Fatal("deeply equal values should rank equal")
	}
	if compare.Fallback(map[string]int{"a": 1}, map[string]int{"a": 1}) != 0 {
		t.Fatal("deeply equal maps should rank equal")
	}
}

func TestFallbackDeterministicWithinRun(t *testing.T) {
	a, b := []int{1, 2}, []int{3, 4}
	first := compare.Fallback(a, b)
	if first == 0 {
		t.Fatal("distinct values should not rank equal")
	}
	for i := 0; i < 10; i++ {
		if compare.Fallback(a, b) != first {
			t.Fatal("the same pair should always yield the same result")
		}
	}
}

func TestFallbackAntisymmetricOnHashPath(t *testing.T) {
	a, b := []int{1, 2}, []string{"x"}
	if sign(compare.Fallback(a, b)) != -sign(compare.Fallback(b, a)) {
		t.Fatal("the hash path should stay antisymmetric")
	}
}
