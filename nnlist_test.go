package mtree

import (
	"math"
	"testing"
)

func TestNewNNListPreFillsSentinels(t *testing.T) {
	l := NewNNList[testVector](3)
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
	if l.MaxDistance() != math.Inf(1) {
		t.Fatalf("MaxDistance() = %v, want +Inf", l.MaxDistance())
	}
}

func TestNNListZeroCapacityNeverAccumulates(t *testing.T) {
	l := NewNNList[testVector](0)
	l.Insert(testVector{1}, 0.5)
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
	if got := l.Results(); len(got) != 0 {
		t.Fatalf("Results() = %v, want empty", got)
	}
}

func TestNNListInsertKeepsKBestSorted(t *testing.T) {
	l := NewNNList[testVector](3)
	dists := []float64{5, 1, 9, 2, 7, 0.5}
	for i, d := range dists {
		l.Insert(testVector{float64(i)}, d)
	}

	results := l.Results()
	if len(results) != 3 {
		t.Fatalf("Len() = %d, want 3", len(results))
	}
	want := []float64{0.5, 1, 2}
	for i, w := range want {
		if results[i].Distance != w {
			t.Errorf("results[%d].Distance = %v, want %v", i, results[i].Distance, w)
		}
	}
}

func TestNNListRejectsWorseThanCurrentMax(t *testing.T) {
	l := NewNNList[testVector](2)
	l.Insert(testVector{0}, 1)
	l.Insert(testVector{1}, 2)
	if l.MaxDistance() != 2 {
		t.Fatalf("MaxDistance() = %v, want 2", l.MaxDistance())
	}

	l.Insert(testVector{2}, 5)
	if l.MaxDistance() != 2 {
		t.Fatalf("MaxDistance() changed after inserting a worse candidate: got %v", l.MaxDistance())
	}
}

func TestNNListVirtualInsertTightensBoundButIsNeverMaterialized(t *testing.T) {
	l := NewNNList[testVector](2)
	l.Insert(testVector{0}, 10)
	l.InsertVirtual(3)

	if l.MaxDistance() != 10 {
		t.Fatalf("MaxDistance() = %v, want 10 (the real entry at 10 is still the k-th)", l.MaxDistance())
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (a virtual slot is never materialized)", l.Len())
	}
	for _, r := range l.Results() {
		if r.Distance == 3 {
			t.Fatalf("a virtual-only distance leaked into Results(): %v", l.Results())
		}
	}

	// Two real inserts that both beat the virtual bound evict it entirely,
	// matching the guarantee the search driver relies on: a virtual bound
	// only ever represents an upper bound on the distance of a real result
	// that is still to come, and here real results supersede it.
	l.Insert(testVector{1}, 1)
	l.Insert(testVector{2}, 2)

	results := l.Results()
	if len(results) != 2 {
		t.Fatalf("Len() = %d, want 2", len(results))
	}
	if results[0].Distance != 1 || results[1].Distance != 2 {
		t.Fatalf("unexpected final results: %v", results)
	}
}

func TestNNListTiesBreakByInsertionOrder(t *testing.T) {
	l := NewNNList[testVector](2)
	l.Insert(testVector{1}, 5)
	l.Insert(testVector{2}, 5)

	results := l.Results()
	if results[0].Object[0] != 1 || results[1].Object[0] != 2 {
		t.Fatalf("equal-distance entries not kept in insertion order: %v", results)
	}
}
