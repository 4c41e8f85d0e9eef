// Package graph derives whole-structure views from capability-based
// traversal, currently the adjacency matrix of the reachable nodes.
package graph

import (
	"slices"

	"github.com/matzehuels/arbor/pkg/node"
	"github.com/matzehuels/arbor/pkg/walk"
)

// Adjacency is a square adjacency matrix over the distinct nodes
// reachable from a set of roots. Row and column i both refer to the i-th
// node in first-seen top-down order; entry (i, j) is 1 exactly when
// node j is literally among node i's expanded children. Self-loops and
// repeated edges collapse to a single 1-entry.
type Adjacency[T comparable] struct {
	nodes []T
	index map[any]int
	cells [][]int
	key   func(T) any
}

// Build runs a cycle-tolerant top-down traversal to fix a first-seen node
// ordering (duplicates collapsed) and fills the matrix from the children
// observed during that single traversal. Each node is expanded exactly
// once; membership tests never re-expand.
func Build[T comparable](roots []T, opts walk.Options[T]) *Adjacency[T] {
	key := func(n T) any { return node.Key(opts.Identity, n) }

	// Record each node's children as the walk expands them, so the
	// membership pass below sees exactly what the traversal saw.
	expand := opts.Expand
	if expand == nil {
		expand = func(T) []T { return nil }
	}
	observed := make(map[any][]T)
	opts.Expand = func(n T) []T {
		k := key(n)
		if kids, ok := observed[k]; ok {
			return kids
		}
		kids := expand(n)
		observed[k] = kids
		return kids
	}
	opts.Policy = walk.OncePerNode
	opts.Project = walk.ProjectNode

	a := &Adjacency[T]{index: make(map[any]int), key: key}
	for sh := range walk.TopDown(roots, opts) {
		k := key(sh.Node)
		if _, ok := a.index[k]; ok {
			continue
		}
		a.index[k] = len(a.nodes)
		a.nodes = append(a.nodes, sh.Node)
	}

	a.cells = make([][]int, len(a.nodes))
	for i := range a.cells {
		a.cells[i] = make([]int, len(a.nodes))
	}
	for i, n := range a.nodes {
		for _, c := range observed[key(n)] {
			if j, ok := a.index[key(c)]; ok {
				a.cells[i][j] = 1
			}
		}
	}
	return a
}

// Dim returns the matrix dimension: the count of distinct reachable nodes.
func (a *Adjacency[T]) Dim() int { return len(a.nodes) }

// Nodes returns the distinct nodes in first-seen order.
func (a *Adjacency[T]) Nodes() []T { return slices.Clone(a.nodes) }

// At returns entry (i, j): 1 when node j is among node i's children.
func (a *Adjacency[T]) At(i, j int) int { return a.cells[i][j] }

// Entries returns a copy of the full matrix.
func (a *Adjacency[T]) Entries() [][]int {
	out := make([][]int, len(a.cells))
	for i, row := range a.cells {
		out[i] = slices.Clone(row)
	}
	return out
}

// Index returns the row/column of n and true, or 0 and false when n was
// not reached by the traversal.
func (a *Adjacency[T]) Index(n T) (int, bool) {
	i, ok := a.index[a.key(n)]
	return i, ok
}

// OutDegree returns the number of distinct children of node i.
func (a *Adjacency[T]) OutDegree(i int) int {
	d := 0
	for _, v := range a.cells[i] {
		d += v
	}
	return d
}

// InDegree returns the number of distinct parents of node j.
func (a *Adjacency[T]) InDegree(j int) int {
	d := 0
	for _, row := range a.cells {
		d += row[j]
	}
	return d
}
