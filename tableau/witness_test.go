package tableau

import "testing"

func TestFreshConstantSkipsNamesAlreadyInK(t *testing.T) {
	// n=0 would normally mint c1, but c1 is already in K, so fresh must
	// skip ahead to the next free name.
	got := freshConstant([]string{"c1"}, 0)
	if got != "c2" {
		t.Errorf("freshConstant = %q, want c2", got)
	}
}

func TestFreshConstantStartsAtNPlusOne(t *testing.T) {
	got := freshConstant(nil, 3)
	if got != "c4" {
		t.Errorf("freshConstant = %q, want c4", got)
	}
}

func TestWitnessIndexRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		want int
		ok   bool
	}{
		{"c1", 1, true},
		{"c42", 42, true},
		{"c", 0, false},
		{"p", 0, false},
		{"cx", 0, false},
	} {
		n, ok := witnessIndex(tt.name)
		if ok != tt.ok || (ok && n != tt.want) {
			t.Errorf("witnessIndex(%q) = (%d, %v), want (%d, %v)", tt.name, n, ok, tt.want, tt.ok)
		}
	}
}

func TestWitnessIndexOrdersAllocationInABranch(t *testing.T) {
	var k []string
	n := 0
	for i := 0; i < 3; i++ {
		c := freshConstant(k, n)
		k = append(k, c)
		n++
	}
	for i, name := range k {
		idx, ok := witnessIndex(name)
		if !ok || idx != i+1 {
			t.Errorf("witness %d = %q, want index %d", i, name, i+1)
		}
	}
}
