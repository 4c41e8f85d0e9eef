package walk

// Policy selects the node/edge revisit semantics of one traversal call.
// Policy state is created per call, owned exclusively by that call, and
// discarded when its iteration ends. Policies never fail; at worst they
// prune further emission along a branch.
type Policy int

const (
	// OncePerNode visits a node only if it has not been visited during
	// this call. It terminates on any finite graph, including cycles: a
	// cycle is entered once, then pruned. This is the default.
	OncePerNode Policy = iota

	// AllPaths always visits and always follows, enumerating every path.
	// On cyclic structures the walk never terminates on its own; use it
	// when multiplicity is wanted, or when the caller bounds exploration
	// by abandoning iteration.
	AllPaths

	// OncePerEdge always visits, but expands each node's children at most
	// once. It distinguishes revisiting a value from re-expanding it: a
	// shared node appears once per incoming path, its subtree only once.
	OncePerEdge

	// NoCycles blocks only genuine cycles (descent into a live ancestor)
	// while still revisiting shared non-cyclic substructure, unlike
	// OncePerNode. Ancestry is tracked by level: a node leaves the live
	// set once the walk's level returns to or below the level at which it
	// was entered.
	NoCycles
)

// policyState is the per-call mutable state behind a Policy.
//
// The engine consults it in a fixed order: enter fires at every frontier
// take, before any other check, with the taken item's level; admitNode
// gates emission (at frontier take and again before scheduling);
// admitEdge gates each (parent, child) edge after the connector;
// expandable short-circuits the expansion call itself; and record fires
// exactly once per admitted node, after its children are scheduled.
type policyState[T comparable] interface {
	enter(level int)
	admitNode(n T) bool
	admitEdge(parent, child T) bool
	expandable(n T) bool
	record(n T, level int)
}

func newPolicyState[T comparable](p Policy, key func(T) any) policyState[T] {
	switch p {
	case AllPaths:
		return allPaths[T]{}
	case OncePerEdge:
		return &oncePerEdge[T]{key: key, expanded: make(map[any]struct{})}
	case NoCycles:
		return &noCycles[T]{key: key, index: make(map[any]struct{})}
	default:
		return &oncePerNode[T]{key: key, seen: make(map[any]struct{})}
	}
}

type allPaths[T comparable] struct{}

func (allPaths[T]) enter(int)           {}
func (allPaths[T]) admitNode(T) bool    { return true }
func (allPaths[T]) admitEdge(T, T) bool { return true }
func (allPaths[T]) expandable(T) bool   { return true }
func (allPaths[T]) record(T, int)       {}

type oncePerNode[T comparable] struct {
	key  func(T) any
	seen map[any]struct{}
}

func (p *oncePerNode[T]) enter(int) {}
func (p *oncePerNode[T]) admitNode(n T) bool {
	_, ok := p.seen[p.key(n)]
	return !ok
}
func (p *oncePerNode[T]) admitEdge(T, T) bool { return true }
func (p *oncePerNode[T]) expandable(T) bool   { return true }
func (p *oncePerNode[T]) record(n T, _ int)   { p.seen[p.key(n)] = struct{}{} }

type oncePerEdge[T comparable] struct {
	key      func(T) any
	expanded map[any]struct{}
}

func (p *oncePerEdge[T]) enter(int)        {}
func (p *oncePerEdge[T]) admitNode(T) bool { return true }
func (p *oncePerEdge[T]) admitEdge(parent, _ T) bool {
	_, ok := p.expanded[p.key(parent)]
	return !ok
}
func (p *oncePerEdge[T]) expandable(n T) bool {
	_, ok := p.expanded[p.key(n)]
	return !ok
}
func (p *oncePerEdge[T]) record(n T, _ int) { p.expanded[p.key(n)] = struct{}{} }

type liveAncestor struct {
	key   any
	level int
}

type noCycles[T comparable] struct {
	key   func(T) any
	live  []liveAncestor
	index map[any]struct{}
}

// enter retires every ancestor entered at the given level or deeper: the
// walk has returned to that level, so their subtrees are finished. It
// must run at every frontier take, before the admit checks, or finished
// branches would keep blocking shared substructure elsewhere.
func (p *noCycles[T]) enter(level int) {
	for len(p.live) > 0 && p.live[len(p.live)-1].level >= level {
		delete(p.index, p.live[len(p.live)-1].key)
		p.live = p.live[:len(p.live)-1]
	}
}

func (p *noCycles[T]) admitNode(n T) bool {
	_, ok := p.index[p.key(n)]
	return !ok
}
func (p *noCycles[T]) admitEdge(T, T) bool { return true }
func (p *noCycles[T]) expandable(T) bool   { return true }

// record marks n as live. A node stays in the live set exactly while the
// walk is inside its subtree.
func (p *noCycles[T]) record(n T, level int) {
	p.enter(level)
	k := p.key(n)
	p.live = append(p.live, liveAncestor{key: k, level: level})
	p.index[k] = struct{}{}
}
