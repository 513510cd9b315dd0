package trie

import "testing"

func contains(vals []int, want int) bool {
	for _, v := range vals {
		if v == want {
			return true
		}
	}
	return false
}

// TestTreeNoFalseNegatives checks the one guarantee Get makes regardless of
// bucket splitting: every key actually added is found when queried by a
// value it is a prefix of. Get may also return extra false positives from
// an unsplit bucket; this test doesn't assert their absence.
func TestTreeNoFalseNegatives(t *testing.T) {
	tr := New[int]()
	tr.Add("cat", 1)
	tr.Add("car", 2)
	tr.Add("ca", 3)
	tr.Add("dog", 4)

	if got := tr.Get("cat"); !contains(got, 1) {
		t.Errorf("Get(\"cat\") = %v, missing 1", got)
	}
	if got := tr.Get("carpet"); !contains(got, 2) {
		t.Errorf("Get(\"carpet\") = %v, missing 2", got)
	}
	if got := tr.Get("dogmatic"); !contains(got, 4) {
		t.Errorf("Get(\"dogmatic\") = %v, missing 4", got)
	}
}

// TestTreeSplitsOnOverflow forces enough distinct-first-byte keys through
// one node to trigger splitNode, then checks the split preserved every
// entry.
func TestTreeSplitsOnOverflow(t *testing.T) {
	tr := New[string]()
	words := []string{"apple", "banana", "cherry", "date", "elder", "fig", "grape"}
	for _, w := range words {
		tr.Add(w, w)
	}
	for _, w := range words {
		if got := tr.Get(w); !containsString(got, w) {
			t.Errorf("Get(%q) = %v, missing %q", w, got, w)
		}
	}
}

func containsString(vals []string, want string) bool {
	for _, v := range vals {
		if v == want {
			return true
		}
	}
	return false
}

// TestTreeSplitDoesNotLeakUnrelatedFirstByte checks that after a split, a
// query with a distinct first byte no longer drags in every sibling's
// value, confirming splitNode actually partitioned the bucket instead of
// leaving everything reachable from the root.
func TestTreeSplitDoesNotLeakUnrelatedFirstByte(t *testing.T) {
	tr := New[string]()
	words := []string{"apple", "banana", "cherry", "date", "elder", "fig", "grape"}
	for _, w := range words {
		tr.Add(w, w)
	}
	got := tr.Get("zzz")
	if containsString(got, "apple") {
		t.Errorf("Get(\"zzz\") = %v, unexpectedly contains a split sibling's value", got)
	}
}
