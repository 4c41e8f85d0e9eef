// Package node defines the capability contract through which arbor reads
// and rewrites externally owned structures.
//
// # Overview
//
// Arbor traverses values it does not own and never constructs, copies, or
// destroys during read-only traversal. The only capability a structure must
// supply is "give me your children": an [ExpandFunc] producing the ordered
// child sequence of a value. Everything else is optional and is required
// only by the operations that need it:
//
//   - [ReplaceFunc]: rebuild a value with a new child list. Required by
//     mutating operations (graft, uproot, map, prune).
//   - [CloneFunc]: reconstruct a value before rewiring it. Required by
//     copy-before-mutate operations (uproot).
//   - [IdentityFunc]: map a value to its identity key. Defaults to the
//     value itself; override when equality is not Go equality.
//
// A [Capability] bundles these functions for operations that need more than
// expansion alone.
//
// # Dynamic Structures
//
// Heterogeneous any-typed structures can implement the optional [Expander],
// [Replacer], and [Cloner] interfaces instead of supplying function values.
// [Dynamic] derives a Capability from those interfaces, with explicit
// defaults: values that implement nothing are leaves, and mutating
// operations on values that lack the required interface fail loudly with a
// MISSING_CAPABILITY error identifying the offending value's type.
package node

import "github.com/matzehuels/arbor/pkg/errors"

// ExpandFunc returns the ordered children of a value. Order is
// semantically significant. A nil or empty result marks the value as a
// leaf; expansion results may differ across calls (no purity is assumed).
type ExpandFunc[T any] func(T) []T

// ReplaceFunc rebuilds a value with a new child list and returns the
// resulting value. Implementations backed by mutable nodes should mutate in
// place and return the same value, so that existing references into the
// structure observe the new children.
type ReplaceFunc[T any] func(n T, children []T) (T, error)

// CloneFunc reconstructs a value, reporting failure explicitly instead of
// falling back to a lossy generic copy.
type CloneFunc[T any] func(n T) (T, error)

// IdentityFunc maps a value to the key under which visited-set and
// ancestry bookkeeping identify it. The identity relation is assumed
// reflexive, symmetric, and transitive.
type IdentityFunc[T any] func(n T) any

// Capability bundles the functions through which an operation accesses an
// externally owned structure. Expand is required by every operation;
// Replace, Clone, and Identity are required only where documented.
type Capability[T comparable] struct {
	Expand   ExpandFunc[T]
	Replace  ReplaceFunc[T]
	Clone    CloneFunc[T]
	Identity IdentityFunc[T]
}

// Key returns the identity key for n, using the value itself when no
// Identity function is set.
func (c Capability[T]) Key(n T) any {
	return Key(c.Identity, n)
}

// Key returns the identity key for n under id, using the value itself when
// id is nil.
func Key[T comparable](id IdentityFunc[T], n T) any {
	if id == nil {
		return n
	}
	return id(n)
}

// Expander is implemented by any-typed values that expose their children
// directly. Values that do not implement it are leaves.
type Expander interface {
	// ChildNodes returns the ordered children. Leaves return an empty
	// (or nil) slice, never a sentinel.
	ChildNodes() []any
}

// Replacer is implemented by any-typed values that can rebuild themselves
// with a new child list. Required by mutating operations.
type Replacer interface {
	ReplaceChildNodes(children []any) (any, error)
}

// Cloner is implemented by any-typed values that can reconstruct
// themselves. Required by copy-before-mutate operations.
type Cloner interface {
	CloneNode() (any, error)
}

// Dynamic returns the Capability for heterogeneous any-typed structures
// whose values implement the optional [Expander], [Replacer], and [Cloner]
// interfaces. Missing interfaces surface as MISSING_CAPABILITY errors when
// (and only when) an operation actually needs them.
func Dynamic() Capability[any] {
	return Capability[any]{
		Expand: func(v any) []any {
			if e, ok := v.(Expander); ok {
				return e.ChildNodes()
			}
			return nil
		},
		Replace: func(v any, children []any) (any, error) {
			r, ok := v.(Replacer)
			if !ok {
				return nil, errors.New(errors.ErrCodeMissingCapability,
					"value of type %T does not implement node.Replacer", v)
			}
			return r.ReplaceChildNodes(children)
		},
		Clone: func(v any) (any, error) {
			c, ok := v.(Cloner)
			if !ok {
				return nil, errors.New(errors.ErrCodeMissingCapability,
					"value of type %T does not implement node.Cloner", v)
			}
			return c.CloneNode()
		},
	}
}
