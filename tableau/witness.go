package tableau

import (
	"fmt"
	"strconv"
)

// freshConstant picks the next unused witness name c<n+1>, c<n+2>, ...
// for a branch that has already introduced n witnesses and holds names k
// in play. It never collides with a name already in k, matching the
// caller's obligation (§4.3) to append the chosen name to K itself.
func freshConstant(k []string, n int) string {
	inK := func(name string) bool {
		for _, e := range k {
			if e == name {
				return true
			}
		}
		return false
	}
	idx := n + 1
	name := fmt.Sprintf("c%d", idx)
	for inK(name) {
		idx++
		name = fmt.Sprintf("c%d", idx)
	}
	return name
}

// witnessIndex extracts the numeric suffix of a witness name "c<n>",
// used only by tests that want to assert on naming order.
func witnessIndex(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'c' {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
