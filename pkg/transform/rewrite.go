package transform

import (
	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/node"
	"github.com/matzehuels/arbor/pkg/walk"
)

// Map applies fn to every node reachable from root, bottom-up, rewiring
// each branch's children to the mapped versions through Replace. With an
// identity-preserving fn (one that mutates and returns its argument) the
// structure is rewritten in place; otherwise a rebuilt structure is
// returned and interior originals are left linked to mapped children.
// Shared nodes are mapped once. Errors from fn propagate unchanged.
//
// Map is not cycle-safe: back edges keep their original target.
func Map[T comparable](root T, fn func(T) (T, error), caps node.Capability[T], opts Options) (T, error) {
	var zero T
	if err := requireMutable(caps, "map", root); err != nil {
		return zero, err
	}
	logger := opts.logger()
	expand := memoized(caps)

	mapped := make(map[any]T)
	count := 0
	for sh := range walk.Postorder([]T{root}, walk.Options[T]{Expand: expand, Identity: caps.Identity}) {
		n := sh.Node
		out, err := fn(n)
		if err != nil {
			return zero, err
		}
		if kids := expand(n); len(kids) > 0 {
			next := make([]T, len(kids))
			for i, c := range kids {
				if m, ok := mapped[caps.Key(c)]; ok {
					next[i] = m
				} else {
					next[i] = c
				}
			}
			if out, err = caps.Replace(out, next); err != nil {
				return zero, errors.Wrap(errors.ErrCodeInvalidInput, err, "rewiring mapped %T", n)
			}
		}
		mapped[caps.Key(n)] = out
		count++
	}
	logger.Debug("map complete", "nodes", count)
	return mapped[caps.Key(root)], nil
}

// Prune removes, in place, every descendant of root for which drop
// returns true, along with that descendant's subtree. The root itself is
// always retained; a root matching the predicate is kept with a warning.
// Replace is invoked only on branches whose child list actually changes.
func Prune[T comparable](root T, drop func(T) bool, caps node.Capability[T], opts Options) (T, error) {
	var zero T
	if err := requireMutable(caps, "prune", root); err != nil {
		return zero, err
	}
	logger := opts.logger()
	if drop(root) {
		logger.Warn("prune: root matches the predicate; retained", "root", root)
	}

	// Walk only the surviving region: dropped children are never entered.
	keep := func(_, child T) bool { return !drop(child) }
	expand := memoized(caps)
	removed := 0
	for sh := range walk.Postorder([]T{root}, walk.Options[T]{Expand: expand, Identity: caps.Identity, Connector: keep}) {
		n := sh.Node
		kids := expand(n)
		if len(kids) == 0 {
			continue
		}
		kept := make([]T, 0, len(kids))
		for _, c := range kids {
			if !drop(c) {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(kids) {
			continue
		}
		removed += len(kids) - len(kept)
		if _, err := caps.Replace(n, kept); err != nil {
			return zero, errors.Wrap(errors.ErrCodeInvalidInput, err, "pruning children of %T", n)
		}
	}
	logger.Debug("prune complete", "removed", removed)
	return root, nil
}
