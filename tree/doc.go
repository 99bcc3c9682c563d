// Package tree models the search tree explored by iterative-deepening search
// over the integer state space generated by the actions "+1" and "*2".
//
// What:
//
//   - Node: one state reached by one specific action sequence from the root.
//     A node owns its children (append-only, insertion order) and keeps a
//     non-owning back reference to its parent, used only to rebuild paths.
//   - Expand: generates exactly two children, "+1" first and "*2" second.
//   - Path: walks parent links back to the root and reverses them.
//   - Highlight: membership set of nodes lying on at least one solution path,
//     consumed by renderers to mark solution branches.
//
// Invariants:
//
//   - Cost() == Depth() == number of parent links between the node and the root.
//   - State() is fully determined by the root state and the action sequence.
//   - Children() never changes order once a node has been expanded.
//
// Complexity:
//
//   - Expand: O(1)
//   - Path:   O(d) where d = Depth()
//   - Size, Walk: O(n) over the subtree
//
// A tree is built by exactly one search call and is never shared across
// goroutines; no locking is performed.
package tree
