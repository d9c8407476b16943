package repair

import (
	"slices"

	"github.com/spacemeshos/synchealth/common/types"
)

// Diff returns identifiers present only in primary and only in peer. Identifiers
// present on both sides are excluded from both results. Duplicates in the inputs
// are collapsed, and the results are sorted.
func Diff(primary, peer []types.RecordID) (onlyInPrimary, onlyInPeer []types.RecordID) {
	inPrimary, inPeer := idSet(primary), idSet(peer)
	return missing(inPrimary, inPeer), missing(inPeer, inPrimary)
}

func idSet(ids []types.RecordID) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[string(id)] = struct{}{}
	}
	return set
}

// missing returns the sorted keys of a that are not in b.
func missing(a, b map[string]struct{}) []types.RecordID {
	var out []types.RecordID
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, types.RecordID(k))
		}
	}
	slices.SortFunc(out, types.RecordID.Compare)
	return out
}
