package synctrie

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spacemeshos/synchealth/timeprefix"
)

// VisitFunc is invoked for every node that lies entirely within the traversed window.
type VisitFunc func(ctx context.Context, child ChildRef) error

// Traverse visits the children of node that fall within [start, stop), descending only
// into children that straddle one of the boundaries. Each node inside the window is
// visited exactly once, at the coarsest level that is fully contained in the window.
// Nodes are fetched one at a time; the first fetch or visit error aborts the traversal.
func Traverse(ctx context.Context, r Retriever, node *NodeMetadata, start, stop []byte, visit VisitFunc) error {
	for _, child := range node.Children {
		switch {
		case bytes.Equal(child.Prefix, start):
			// exact left boundary
			if err := visit(ctx, child); err != nil {
				return err
			}
		case bytes.Equal(child.Prefix, stop):
			// everything under the right boundary is at or after stop
		case bytes.HasPrefix(start, child.Prefix) || bytes.HasPrefix(stop, child.Prefix):
			md, err := r.GetMetadata(ctx, child.Prefix)
			if err != nil {
				return fmt.Errorf("get metadata %s: %w", FormatPrefix(child.Prefix), err)
			}
			if err := Traverse(ctx, r, md, start, stop, visit); err != nil {
				return err
			}
		case bytes.Compare(child.Prefix, start) > 0 && bytes.Compare(child.Prefix, stop) < 0:
			if err := visit(ctx, child); err != nil {
				return err
			}
		}
	}
	return nil
}

// TraverseWindow fetches the smallest subtree that contains both boundaries and
// traverses it.
func TraverseWindow(ctx context.Context, r Retriever, start, stop []byte, visit VisitFunc) error {
	if bytes.Compare(start, stop) >= 0 {
		return nil
	}
	common := timeprefix.CommonPrefix(start, stop)
	root, err := r.GetMetadata(ctx, common)
	if err != nil {
		return fmt.Errorf("get common prefix metadata %s: %w", FormatPrefix(common), err)
	}
	return Traverse(ctx, r, root, start, stop, visit)
}
