package synctrie

import (
	"context"
	"fmt"

	"github.com/spacemeshos/synchealth/common/types"
)

// CollectIdentifiers returns identifiers of all records in [start, stop). The window
// is traversed with r and every fully contained node is expanded into identifiers with f.
func CollectIdentifiers(ctx context.Context, r Retriever, f IDFetcher, start, stop []byte) ([]types.RecordID, error) {
	var ids []types.RecordID
	err := TraverseWindow(ctx, r, start, stop, func(ctx context.Context, child ChildRef) error {
		found, err := f.GetIdentifiersByPrefix(ctx, child.Prefix)
		if err != nil {
			return fmt.Errorf("get identifiers %s: %w", FormatPrefix(child.Prefix), err)
		}
		ids = append(ids, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
