package transform

import (
	"github.com/matzehuels/arbor/pkg/address"
	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/node"
	"github.com/matzehuels/arbor/pkg/walk"
)

// Uproot inverts the edges of the structure under root and returns a new
// structure rooted at a reconstruction of start. Conceptually it builds a
// reversed view rooted at start whose children are the parents of each
// node (computed on demand and cached per call), walks that view in
// postorder, and reconstructs every node through the Clone capability,
// rewiring children to the reversed topology. The original nodes are
// never modified.
//
// Requires Expand, Replace, and Clone; a missing capability fails with
// MISSING_CAPABILITY and a failing Clone propagates as CLONE_FAILED.
//
// Cost is dominated by the repeated parent computation, which rescans the
// structure per distinct node: potentially quadratic on large graphs.
// Cycles in the original reappear as cycles in the reversed view; edges
// into a not-yet-reconstructed ancestor are dropped with a warning.
func Uproot[T comparable](root, start T, caps node.Capability[T], opts Options) (T, error) {
	var zero T
	if err := requireMutable(caps, "uproot", root); err != nil {
		return zero, err
	}
	if caps.Clone == nil {
		return zero, errors.New(errors.ErrCodeMissingCapability,
			"uproot on %T requires a Clone capability", root)
	}
	logger := opts.logger()

	forward := walk.Options[T]{Expand: memoized(caps), Identity: caps.Identity}
	parents := make(map[any][]T)
	reversed := func(n T) []T {
		k := caps.Key(n)
		if ps, ok := parents[k]; ok {
			return ps
		}
		ps := address.Parents(root, n, forward)
		parents[k] = ps
		return ps
	}

	rebuilt := make(map[any]T)
	count := 0
	for sh := range walk.Postorder([]T{start}, walk.Options[T]{Expand: reversed, Identity: caps.Identity}) {
		n := sh.Node
		ps := reversed(n)
		kids := make([]T, 0, len(ps))
		for _, p := range ps {
			r, ok := rebuilt[caps.Key(p)]
			if !ok {
				// Back edge of a cycle in the reversed view.
				logger.Warn("uproot: dropping edge into unreconstructed ancestor",
					"node", n, "ancestor", p)
				continue
			}
			kids = append(kids, r)
		}
		clone, err := caps.Clone(n)
		if err != nil {
			return zero, errors.Wrap(errors.ErrCodeCloneFailed, err, "reconstructing %T", n)
		}
		nn, err := caps.Replace(clone, kids)
		if err != nil {
			return zero, errors.Wrap(errors.ErrCodeInvalidInput, err, "rewiring reconstruction of %T", n)
		}
		rebuilt[caps.Key(n)] = nn
		count++
	}
	logger.Debug("uproot complete", "nodes", count)

	out, ok := rebuilt[caps.Key(start)]
	if !ok {
		return zero, errors.New(errors.ErrCodeInvalidInput, "uproot start node was never reached")
	}
	return out, nil
}
