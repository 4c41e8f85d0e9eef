// Package walk provides lazy, policy-driven traversal of arbitrary
// externally owned nested structures: trees, DAGs with shared
// substructure, and genuinely cyclic graphs.
//
// # Overview
//
// A structure participates by supplying a single capability, "give me your
// children" (see [github.com/matzehuels/arbor/pkg/node]). The engine never
// constructs, copies, or destroys a node during read traversal; it only
// expands children and compares identities. Four walk orders are provided:
//
//   - [Preorder]: depth-first, a node before its descendants
//   - [Postorder]: depth-first, a node after its descendants
//   - [TopDown]: breadth-first level order, parents before any child layer
//   - [BottomUp]: eager reverse-topological order, children before parents,
//     correct on DAGs with shared substructure
//
// Preorder, Postorder, and TopDown return [iter.Seq] generators: each
// element is computed on demand, and breaking out of the range suspends
// and abandons the walk with no cleanup required. BottomUp materializes
// its entire result before returning.
//
// # Path Policies
//
// A [Policy] selects the revisit semantics of one traversal call:
// [OncePerNode] (the default) visits each distinct node at most once and
// terminates on any finite graph; [AllPaths] enumerates every path;
// [OncePerEdge] re-visits values but expands each at most once; and
// [NoCycles] blocks only genuine cycles (self-ancestry) while still
// revisiting shared non-cyclic substructure. Policies never fail; at worst
// they prune further emission along a branch.
//
// # Projection
//
// Each step yields a [Shoot] whose populated fields are selected by a
// [Project] bitmask: the node itself, its [Trace] (structural address as
// 1-based child indices from the root), its level, or any combination.
// Traces are materialized only when requested.
//
// # Termination
//
// All frontiers are heap-allocated and all loops iterative, so traversal
// depth is bounded by memory, not the call stack; a chain tens of
// thousands of nodes deep walks without overflow. Cyclic structures under
// AllPaths, and BottomUp over a true cycle, are the caller's policy
// choice: AllPaths may never terminate, while BottomUp omits cycle
// members (a cycle never satisfies "all children emitted").
//
// # Concurrency
//
// Every call creates its own frontier and policy state and shares nothing,
// so concurrent traversals over the same or overlapping structures are
// safe for reads. The engine itself is single-threaded and acquires no
// external resources.
package walk
