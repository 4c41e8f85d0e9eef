package walk

import (
	"iter"

	"github.com/matzehuels/arbor/pkg/node"
)

// Options configures one traversal call. The zero value is usable: every
// node is a leaf, all edges connect, the policy is [OncePerNode], and the
// projection is [ProjectNode].
type Options[T comparable] struct {
	// Expand produces the ordered children of a node. nil means every
	// node is a leaf.
	Expand node.ExpandFunc[T]

	// Connector gates each (parent, child) edge before any policy check.
	// nil means always true.
	Connector func(parent, child T) bool

	// Policy selects revisit semantics. The zero value is OncePerNode.
	Policy Policy

	// Project selects which Shoot fields are populated. The zero value
	// is ProjectNode.
	Project Project

	// Identity maps a node to the key under which policies and derived
	// operations identify it. nil uses the value itself.
	Identity node.IdentityFunc[T]
}

// config is one call's normalized view of Options.
type config[T comparable] struct {
	expand    node.ExpandFunc[T]
	connector func(parent, child T) bool
	policy    policyState[T]
	project   Project
	key       func(T) any
	needTrace bool
}

func newConfig[T comparable](opts Options[T]) *config[T] {
	key := func(n T) any { return node.Key(opts.Identity, n) }
	connector := opts.Connector
	if connector == nil {
		connector = func(T, T) bool { return true }
	}
	project := opts.Project.normalize()
	return &config[T]{
		expand:    expandOr(opts.Expand),
		connector: connector,
		policy:    newPolicyState(opts.Policy, key),
		project:   project,
		key:       key,
		needTrace: project&ProjectTrace != 0,
	}
}

// expandOr substitutes the leaf-only default for a nil expansion.
func expandOr[T any](expand node.ExpandFunc[T]) node.ExpandFunc[T] {
	if expand == nil {
		return func(T) []T { return nil }
	}
	return expand
}

// shoot projects an item onto the fields the call requested.
func (cfg *config[T]) shoot(it item[T]) Shoot[T] {
	var sh Shoot[T]
	if cfg.project&ProjectNode != 0 {
		sh.Node = it.node
	}
	if cfg.project&ProjectTrace != 0 {
		sh.Trace = it.trace
	}
	if cfg.project&ProjectLevel != 0 {
		sh.Level = it.level
	}
	return sh
}

// schedule expands an item's children and returns the admitted ones as
// frontier entries, applying the connector before any policy check.
func (cfg *config[T]) schedule(parent item[T]) []item[T] {
	if !cfg.policy.expandable(parent.node) {
		return nil
	}
	kids := cfg.expand(parent.node)
	admitted := make([]item[T], 0, len(kids))
	for i, c := range kids {
		if !cfg.connector(parent.node, c) {
			continue
		}
		if !cfg.policy.admitEdge(parent.node, c) {
			continue
		}
		if !cfg.policy.admitNode(c) {
			continue
		}
		it := item[T]{node: c, level: parent.level + 1}
		if cfg.needTrace {
			it.trace = parent.trace.Child(i + 1)
		}
		admitted = append(admitted, it)
	}
	return admitted
}

// seed places the roots on the frontier. Multi-root calls behave as if a
// transient parent held the given roots: each root starts at level 0 with
// an empty trace, and no synthetic value ever appears in the output.
func (cfg *config[T]) seed(f frontier[T], roots []T) {
	for _, r := range roots {
		if cfg.policy.admitNode(r) {
			f.put(item[T]{node: r})
		}
	}
}

// Preorder returns a lazy depth-first walk emitting each node before its
// descendants. Children are visited left to right (first child first);
// this order is part of the contract.
func Preorder[T comparable](roots []T, opts Options[T]) iter.Seq[Shoot[T]] {
	return func(yield func(Shoot[T]) bool) {
		cfg := newConfig(opts)
		drive(cfg, &stack[T]{}, true, roots, yield)
	}
}

// TopDown returns a lazy breadth-first walk emitting level by level:
// parents are fully emitted before any node of the next layer.
func TopDown[T comparable](roots []T, opts Options[T]) iter.Seq[Shoot[T]] {
	return func(yield func(Shoot[T]) bool) {
		cfg := newConfig(opts)
		drive(cfg, &queue[T]{}, false, roots, yield)
	}
}

// drive is the shared engine behind Preorder and TopDown. The frontier
// discipline alone decides the order; lifo additionally reverses child
// pushes so the first child is taken first.
func drive[T comparable](cfg *config[T], f frontier[T], lifo bool, roots []T, yield func(Shoot[T]) bool) {
	cfg.seed(f, roots)
	for {
		it, ok := f.take()
		if !ok {
			return
		}
		cfg.policy.enter(it.level)
		// Re-check here: a node admitted at scheduling time may have
		// been visited since through another queued path.
		if !cfg.policy.admitNode(it.node) {
			continue
		}
		if !yield(cfg.shoot(it)) {
			return
		}
		admitted := cfg.schedule(it)
		cfg.policy.record(it.node, it.level)
		if lifo {
			for i := len(admitted) - 1; i >= 0; i-- {
				f.put(admitted[i])
			}
		} else {
			for _, c := range admitted {
				f.put(c)
			}
		}
	}
}

// Postorder returns a lazy depth-first walk emitting each node after all
// of its scheduled descendants. It runs on an explicit dual-state stack:
// an unseen take schedules the node's children and re-enters it as seen,
// a seen take emits it. Depth is therefore bounded by the heap, never the
// call stack.
func Postorder[T comparable](roots []T, opts Options[T]) iter.Seq[Shoot[T]] {
	return func(yield func(Shoot[T]) bool) {
		cfg := newConfig(opts)
		f := &stack[T]{}
		cfg.seed(f, roots)
		for {
			it, ok := f.take()
			if !ok {
				return
			}
			if it.seen {
				if !yield(cfg.shoot(it)) {
					return
				}
				continue
			}
			cfg.policy.enter(it.level)
			if !cfg.policy.admitNode(it.node) {
				continue
			}
			admitted := cfg.schedule(it)
			// Recording at the unseen→seen transition (rather than at
			// emission) is what lets OncePerNode and NoCycles terminate
			// on cycles: the back edge is pruned before it is taken.
			// Each recorded node is still emitted exactly once.
			cfg.policy.record(it.node, it.level)
			it.seen = true
			f.put(it)
			for i := len(admitted) - 1; i >= 0; i-- {
				f.put(admitted[i])
			}
		}
	}
}

// BottomUp eagerly computes a reverse-topological walk: a node is emitted
// only after every connector-approved child has been emitted. On DAGs
// with shared substructure this is a true dependency order, not merely
// the reverse of TopDown. The entire result is materialized before it is
// returned.
//
// BottomUp is not cycle-safe: members of a genuine cycle never satisfy
// "all children emitted" and are omitted from the result. Pre-filter
// cycles before using this order.
func BottomUp[T comparable](roots []T, opts Options[T]) []Shoot[T] {
	cfg := newConfig(opts)

	// Expansion may be impure and the children of a node are consulted
	// several times below, so each node is expanded at most once per call.
	memo := make(map[any][]T)
	expand := func(n T) []T {
		k := cfg.key(n)
		if kids, ok := memo[k]; ok {
			return kids
		}
		kids := cfg.expand(n)
		memo[k] = kids
		return kids
	}
	approved := func(n T) []T {
		kids := expand(n)
		out := make([]T, 0, len(kids))
		for _, c := range kids {
			if cfg.connector(n, c) {
				out = append(out, c)
			}
		}
		return out
	}

	// Seed the trace queue with every leaf address, found by a cycle-safe
	// preorder. NoCycles (rather than OncePerNode) matters on DAGs: a
	// shared leaf must contribute one address per path, or the branches
	// that lost the race would starve and their ancestors never emit.
	seed := opts
	seed.Expand = expand
	seed.Policy = NoCycles
	seed.Project = ProjectNode | ProjectTrace
	q := &traceQueue{}
	for ri, r := range roots {
		for sh := range Preorder([]T{r}, seed) {
			if len(approved(sh.Node)) == 0 {
				q.put(traceEntry{trace: sh.Trace, root: ri})
			}
		}
	}

	emitted := make(map[any]bool)
	allEmitted := func(kids []T) bool {
		for _, c := range kids {
			if !emitted[cfg.key(c)] {
				return false
			}
		}
		return true
	}

	var out []Shoot[T]
	for {
		e, ok := q.take()
		if !ok {
			break
		}
		n, resolved := Resolve(roots[e.root], e.trace, expand)
		if resolved {
			k := cfg.key(n)
			// Emit only once every approved child is in; otherwise defer.
			// The deferred address comes around again because children
			// keep requeuing their parents.
			if !emitted[k] && allEmitted(approved(n)) && cfg.policy.admitNode(n) {
				level := len(e.trace)
				out = append(out, cfg.shoot(item[T]{node: n, trace: e.trace, level: level}))
				cfg.policy.record(n, level)
				emitted[k] = true
			}
		}
		if len(e.trace) > 0 {
			q.put(traceEntry{trace: e.trace.Parent(), root: e.root})
		}
	}
	return out
}
