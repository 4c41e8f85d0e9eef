// Package address reads and writes nodes of an external structure by
// structural address.
//
// A [walk.Trace] is a sequence of 1-based child indices from a root; this
// package resolves traces to nodes ([Pluck]), finds the traces of a node
// ([FindTrace], [FindTraces]), rewrites an addressed slot ([Graft]), and
// collects the distinct parents of a node ([Parents]).
//
// Read operations recover locally: Pluck returns a caller-supplied
// default on any addressing failure. Graft is a mutation, so an invalid
// trace there is a caller error and propagates as INVALID_TRACE rather
// than being swallowed.
package address

import (
	"slices"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/node"
	"github.com/matzehuels/arbor/pkg/walk"
)

// Pluck folds tr through successive indexed-child lookups from root and
// returns the node reached. Any failure (index out of range, indexing
// through a leaf) returns fallback; Pluck never fails.
func Pluck[T comparable](root T, tr walk.Trace, expand node.ExpandFunc[T], fallback T) T {
	if n, ok := walk.Resolve(root, tr, expand); ok {
		return n
	}
	return fallback
}

// Graft replaces the node addressed by tr with value and returns the
// root. The addressed node's parent is located, its child list is copied
// with the one indexed entry replaced, and the copy is written back
// through the Replace capability, so existing references into the
// structure observe the change.
//
// Graft requires a Replace that mutates in place and returns its
// receiver (see [node.ReplaceFunc]): the write lands on the parent
// already linked into the structure, and a Replace that rebuilds a fresh
// value instead would leave the structure unchanged.
//
// An empty trace addresses the root itself, so Graft returns value.
// Invalid traces are caller errors and propagate as INVALID_TRACE;
// missing Expand or Replace capabilities fail with MISSING_CAPABILITY.
func Graft[T comparable](root T, tr walk.Trace, value T, caps node.Capability[T]) (T, error) {
	var zero T
	if caps.Expand == nil {
		return zero, errors.New(errors.ErrCodeMissingCapability, "graft requires an Expand capability")
	}
	if caps.Replace == nil {
		return zero, errors.New(errors.ErrCodeMissingCapability,
			"graft on %T requires a Replace capability", root)
	}
	if tr.IsRoot() {
		return value, nil
	}
	parent, ok := walk.Resolve(root, tr.Parent(), caps.Expand)
	if !ok {
		return zero, errors.New(errors.ErrCodeInvalidTrace, "trace %q does not address a node", tr)
	}
	kids := caps.Expand(parent)
	idx := tr[len(tr)-1]
	if idx < 1 || idx > len(kids) {
		return zero, errors.New(errors.ErrCodeInvalidTrace,
			"index %d out of range for %d children at %q", idx, len(kids), tr.Parent())
	}
	next := slices.Clone(kids)
	next[idx-1] = value
	if _, err := caps.Replace(parent, next); err != nil {
		return zero, errors.Wrap(errors.ErrCodeInvalidInput, err, "replacing children at %q", tr.Parent())
	}
	return root, nil
}

// FindTrace returns the first trace at which target occurs under root,
// scanning in preorder under OncePerNode: shared nodes need not be
// explored twice to find one address. The second result reports whether
// a match exists.
func FindTrace[T comparable](root, target T, opts walk.Options[T]) (walk.Trace, bool) {
	want := node.Key(opts.Identity, target)
	opts.Policy = walk.OncePerNode
	for tr, n := range walk.TracePairs([]T{root}, opts) {
		if node.Key(opts.Identity, n) == want {
			return tr, true
		}
	}
	return nil, false
}

// FindTraces returns every trace at which target occurs under root. The
// scan runs under NoCycles: shared substructure is revisited, so every
// address of a shared node is reported, while genuine cycles still
// terminate.
func FindTraces[T comparable](root, target T, opts walk.Options[T]) []walk.Trace {
	want := node.Key(opts.Identity, target)
	opts.Policy = walk.NoCycles
	var out []walk.Trace
	for tr, n := range walk.TracePairs([]T{root}, opts) {
		if node.Key(opts.Identity, n) == want {
			out = append(out, tr)
		}
	}
	return out
}

// Parents returns the distinct nodes that have child among their expanded
// children under root. Every non-root trace of child is truncated by one
// index and resolved; duplicates collapse by identity. The root itself
// has no parents.
func Parents[T comparable](root, child T, opts walk.Options[T]) []T {
	seen := make(map[any]struct{})
	var out []T
	for _, tr := range FindTraces(root, child, opts) {
		if tr.IsRoot() {
			continue
		}
		p, ok := walk.Resolve(root, tr.Parent(), opts.Expand)
		if !ok {
			continue
		}
		k := node.Key(opts.Identity, p)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}
