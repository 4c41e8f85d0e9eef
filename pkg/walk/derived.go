package walk

import (
	"iter"

	"github.com/matzehuels/arbor/pkg/node"
)

// Leaves returns the nodes whose expansion is empty, in preorder. The
// call's Project setting is ignored; the bare nodes are yielded.
func Leaves[T comparable](roots []T, opts Options[T]) iter.Seq[T] {
	return degreeFiltered(roots, opts, true)
}

// Branches returns the nodes with at least one child, in preorder.
func Branches[T comparable](roots []T, opts Options[T]) iter.Seq[T] {
	return degreeFiltered(roots, opts, false)
}

func degreeFiltered[T comparable](roots []T, opts Options[T], wantLeaf bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		expand := expandOr(opts.Expand)
		opts.Project = ProjectNode
		for sh := range Preorder(roots, opts) {
			if (len(expand(sh.Node)) == 0) == wantLeaf {
				if !yield(sh.Node) {
					return
				}
			}
		}
	}
}

// IsLeaf reports whether n has no children under expand.
func IsLeaf[T comparable](n T, expand node.ExpandFunc[T]) bool {
	return len(expandOr(expand)(n)) == 0
}

// IsBranch reports whether n has at least one child under expand.
func IsBranch[T comparable](n T, expand node.ExpandFunc[T]) bool {
	return !IsLeaf(n, expand)
}

// Traces returns the structural address of every preorder step.
func Traces[T comparable](roots []T, opts Options[T]) iter.Seq[Trace] {
	return func(yield func(Trace) bool) {
		opts.Project = ProjectTrace
		for sh := range Preorder(roots, opts) {
			if !yield(sh.Trace) {
				return
			}
		}
	}
}

// TracePairs returns every preorder step as its structural address paired
// with the node it reaches.
func TracePairs[T comparable](roots []T, opts Options[T]) iter.Seq2[Trace, T] {
	return func(yield func(Trace, T) bool) {
		opts.Project = ProjectNode | ProjectTrace
		for sh := range Preorder(roots, opts) {
			if !yield(sh.Trace, sh.Node) {
				return
			}
		}
	}
}
