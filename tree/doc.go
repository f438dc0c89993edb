/*
Package tree implements an all-purpose tree type.

Nodes carry a payload of a comparable type and are linked to their parent
and an ordered list of children. The children list of every node is guarded
by a mutex, so nodes may be built up from several goroutines.

Clients usually do not use tree.Node directly, but embed it into a node
type of their own and let the payload point back to the embedding node:

   type Element struct {
       tree.Node[*Element]
       …
   }

   e := &Element{}
   e.Payload = e

Walkers

Searching and traversing a tree is done with a Walker. A Walker starts at
an initial node and applies a chain of navigation and filter steps, each
step operating on the selection of the previous one:

   Parent()                     // parents of all selected nodes
   AncestorWith(predicate)      // nearest ancestor matching a predicate
   DescendentsWith(predicate)   // descendents matching a predicate, document order
   Filter(predicate)            // keep selected nodes matching a predicate
   TopDown(action)              // apply an action to all nodes, parents first

The chain is terminated by Promise(), which returns the resulting selection
and the first error encountered:

   nodes, err := tree.NewWalker(n).AncestorWith(pred).Promise()()

Walkers operate synchronously.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'widgets.tree'.
func tracer() tracing.Trace {
	return tracing.Select("widgets.tree")
}
