// Package walk provides traversal helpers for parsed HTML forests.
//
// # Overview
//
// The package implements preorder traversal over the node graph produced by
// pkg/htmlparse, plus the lookups most callers end up writing on top of it:
//   - Iterative traversal with an explicit stack (no recursion)
//   - Selector-based element lookup (tag name plus required attributes)
//   - Zero-copy text extraction via spans
//   - Aggregate statistics for inspection and tooling
//
// Traversal order is source order: parents before children, siblings left to
// right. Nothing in this package mutates the forest.
//
// # Quick Start
//
//	f, err := htmlparse.Parse(src)
//	if err != nil {
//	    return err
//	}
//
//	err = walk.Walk(f, func(n *types.Node, depth int) error {
//	    if n.Kind == types.ElementNode {
//	        fmt.Printf("%*s<%s>\n", depth*2, "", f.Tag(n))
//	    }
//	    return nil
//	})
//
// Find the first link and read its target:
//
//	a, ok := walk.Find(f, walk.Selector{Tag: "a"})
//	if ok {
//	    href, _ := f.AttrValue(a, "href")
//	    fmt.Println(href)
//	}
//
// # Early Termination
//
// Callbacks control the walk through two sentinel errors. Returning
// ErrStopWalk ends the walk immediately and Walk returns nil; returning
// ErrSkipChildren skips the current node's subtree and continues with its
// siblings. Any other error aborts the walk and is returned to the caller.
package walk
