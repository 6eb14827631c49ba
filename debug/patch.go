package debug

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
)

// WitnessResetPatch returns the RFC 7396 JSON merge patch describing which
// entries a witness reset evicted from a branch's expanded-formula set,
// mapping each formula's canonical string to itself before and after the
// reset. mergeop.jPatchOp.Patch applies patches of exactly this shape to
// rebuild a document from a diff; here the same library runs the other
// direction, producing the diff instead of applying it, to give
// TABLEAU_DEBUG_WITNESS tracing a structural before/after instead of two
// opaque maps.
func WitnessResetPatch(before, after map[string]string) ([]byte, error) {
	b, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	a, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(b, a)
}
