package walk

import (
	"strconv"
	"strings"

	"github.com/matzehuels/arbor/pkg/node"
)

// Trace is the structural address of a node: the ordered sequence of
// 1-based child indices leading from a root to the node. The root's trace
// is empty. Traces are treated as immutable; deriving methods return new
// values and never modify the receiver.
type Trace []int

// IsRoot reports whether the trace addresses the root itself.
func (t Trace) IsRoot() bool { return len(t) == 0 }

// Child returns the trace addressing the i-th child (1-based) of the node
// t addresses.
func (t Trace) Child(i int) Trace {
	out := make(Trace, len(t)+1)
	copy(out, t)
	out[len(t)] = i
	return out
}

// Parent returns the trace of the addressed node's parent, or nil when t
// addresses a root. The result shares backing storage with t.
func (t Trace) Parent() Trace {
	if len(t) == 0 {
		return nil
	}
	return t[:len(t)-1]
}

// String renders the trace as dot-separated indices ("2.1.3"); the root
// trace renders as the empty string.
func (t Trace) String() string {
	if len(t) == 0 {
		return ""
	}
	parts := make([]string, len(t))
	for i, idx := range t {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Resolve re-applies the indices of a trace through successive expansions
// from root, returning the node reached and true. It returns the zero
// value and false when an index is out of range or leads through a leaf.
//
// Provided no mutation occurs between trace capture and use, resolving a
// captured trace reproduces the node the walk reached at that step.
func Resolve[T comparable](root T, t Trace, expand node.ExpandFunc[T]) (T, bool) {
	expand = expandOr(expand)
	cur := root
	for _, idx := range t {
		kids := expand(cur)
		if idx < 1 || idx > len(kids) {
			var zero T
			return zero, false
		}
		cur = kids[idx-1]
	}
	return cur, true
}
