package walk

import (
	"errors"

	"github.com/zetsuboii/html-parser/pkg/types"
)

// initialStackCapacity is the pre-allocated capacity for the traversal stack.
// Typical documents nest 10-30 levels, so 64 avoids most reallocations.
const initialStackCapacity = 64

// ErrStopWalk is a sentinel error that can be returned from walk callbacks
// to stop the walk early without triggering an error condition.
var ErrStopWalk = errors.New("stop walk")

// ErrSkipChildren is a sentinel error that can be returned from walk
// callbacks to skip the current node's subtree and continue with its
// siblings.
var ErrSkipChildren = errors.New("skip children")

// VisitFunc is called once per node in preorder. depth is 0 for roots and
// grows by one per nesting level.
type VisitFunc func(n *types.Node, depth int) error

// stackEntry represents a position in the iterative DFS traversal.
type stackEntry struct {
	node  *types.Node
	depth int
}

// Walk traverses every node of the forest in source order, parents before
// children. If fn returns ErrStopWalk, the walk stops early and nil is
// returned. Any other error from fn is returned to the caller.
func Walk(f *types.Forest, fn VisitFunc) error {
	if f == nil || len(f.Roots) == 0 {
		return nil
	}
	stack := make([]stackEntry, 0, initialStackCapacity)
	for i := len(f.Roots) - 1; i >= 0; i-- {
		stack = append(stack, stackEntry{node: f.Roots[i]})
	}
	return drain(stack, fn)
}

// WalkNode is Walk restricted to a single subtree. depth is 0 for n itself.
func WalkNode(n *types.Node, fn VisitFunc) error {
	if n == nil {
		return nil
	}
	stack := make([]stackEntry, 0, initialStackCapacity)
	stack = append(stack, stackEntry{node: n})
	return drain(stack, fn)
}

// drain runs the iterative DFS until the stack empties or the callback
// terminates the walk.
func drain(stack []stackEntry, fn VisitFunc) error {
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(top.node, top.depth); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil // Normal early termination
			}
			if errors.Is(err, ErrSkipChildren) {
				continue
			}
			return err
		}

		// Push children in reverse so the first child pops first.
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, stackEntry{node: top.node.Children[i], depth: top.depth + 1})
		}
	}
	return nil
}
