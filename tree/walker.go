package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a walker step is given a nil predicate or action.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is returned if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this:
//
//    w := NewWalker(node)
//    nodes, err := w.DescendentsWith(isParagraph).Filter(isVisible).Promise()()
//
// Every step operates on the selection produced by the previous step.
// The first error occuring stops all further steps; it is reported by
// the promise.
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection
	err       error      // first error encountered
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	return &Walker[T]{initial: initial, selection: []*Node[T]{initial}}
}

// Promise is the synchronization point at the end of a chain of walker
// steps. Calling the returned function yields the selection and the first
// error encountered.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	selection, err := w.selection, w.err
	return func() ([]*Node[T], error) {
		return selection, err
	}
}

// step maps every node of the current selection to zero or more nodes,
// building a new selection. Duplicates are dropped, order is preserved.
func (w *Walker[T]) step(name string, f func(*Node[T]) ([]*Node[T], error)) *Walker[T] {
	if w == nil {
		return nil
	}
	if w.err != nil {
		return w
	}
	seen := make(map[*Node[T]]struct{}, len(w.selection))
	next := make([]*Node[T], 0, len(w.selection))
	for _, n := range w.selection {
		matches, err := f(n)
		if err != nil {
			tracer().P("step", name).Debugf("walker step aborted: %v", err)
			w.err = err
			break
		}
		for _, m := range matches {
			if _, dup := seen[m]; !dup {
				seen[m] = struct{}{}
				next = append(next, m)
			}
		}
	}
	w.selection = next
	return w
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// PayloadIs wraps a simple predicate on payloads into a Predicate.
func PayloadIs[T comparable](f func(T) bool) Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		if f(test.Payload) {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// Parent replaces each selected node by its parent.
// The root node has no parent and drops out of the selection.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	return w.step("parent", func(n *Node[T]) ([]*Node[T], error) {
		if p := n.Parent(); p != nil {
			return []*Node[T]{p}, nil
		}
		return nil, nil
	})
}

// AncestorWith finds, for each selected node, the nearest ancestor matching
// the given predicate. The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w != nil && predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step("ancestor", func(n *Node[T]) ([]*Node[T], error) {
		for anc := n.Parent(); anc != nil; anc = anc.Parent() {
			match, err := predicate(anc, n)
			if err != nil {
				return nil, err
			}
			if match != nil {
				return []*Node[T]{match}, nil
			}
		}
		return nil, nil // no matching ancestor found, not an error
	})
}

// DescendentsWith finds descendents matching a predicate, in document order
// (pre-order, depth first). The search does not include the start node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w != nil && predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step("descendents", func(n *Node[T]) ([]*Node[T], error) {
		var matches []*Node[T]
		var visit func(*Node[T]) error
		visit = func(parent *Node[T]) error {
			for _, ch := range parent.Children() {
				match, err := predicate(ch, n)
				if err != nil {
					return err
				}
				if match != nil {
					matches = append(matches, match)
				}
				if err = visit(ch); err != nil {
					return err
				}
			}
			return nil
		}
		err := visit(n)
		return matches, err
	})
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w != nil && f == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step("filter", func(n *Node[T]) ([]*Node[T], error) {
		match, err := f(n, n)
		if err != nil || match == nil {
			return nil, err
		}
		return []*Node[T]{match}, nil
	})
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will be collected into the next selection, if
// no error occured.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses the sub-trees of all selected nodes, starting at (and
// including) the selected nodes. Parents are always processed before
// their children.
//
// If the action function returns an error for a node, the walk ends.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w != nil && action == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step("topdown", func(n *Node[T]) ([]*Node[T], error) {
		var results []*Node[T]
		var visit func(node, parent *Node[T], position int) error
		visit = func(node, parent *Node[T], position int) error {
			r, err := action(node, parent, position)
			if err != nil {
				return err
			}
			if r != nil {
				results = append(results, r)
			}
			for i, ch := range node.Children() {
				if err = visit(ch, node, i); err != nil {
					return err
				}
			}
			return nil
		}
		position := 0
		if p := n.Parent(); p != nil {
			position = p.IndexOfChild(n)
		}
		err := visit(n, n.Parent(), position)
		return results, err
	})
}
