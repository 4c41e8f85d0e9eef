package walk

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tnode is the test structure: an ordinary externally owned tree/graph
// node the engine knows nothing about.
type tnode struct {
	name string
	kids []*tnode
}

func nt(name string, kids ...*tnode) *tnode {
	return &tnode{name: name, kids: kids}
}

func expand(n *tnode) []*tnode { return n.kids }

func preorderNames(roots []*tnode, opts Options[*tnode]) []string {
	var out []string
	for sh := range Preorder(roots, opts) {
		out = append(out, sh.Node.name)
	}
	return out
}

func postorderNames(roots []*tnode, opts Options[*tnode]) []string {
	var out []string
	for sh := range Postorder(roots, opts) {
		out = append(out, sh.Node.name)
	}
	return out
}

func topDownNames(roots []*tnode, opts Options[*tnode]) []string {
	var out []string
	for sh := range TopDown(roots, opts) {
		out = append(out, sh.Node.name)
	}
	return out
}

func bottomUpNames(roots []*tnode, opts Options[*tnode]) []string {
	var out []string
	for _, sh := range BottomUp(roots, opts) {
		out = append(out, sh.Node.name)
	}
	return out
}

// sampleTree builds a(b(d,e), c).
func sampleTree() *tnode {
	return nt("a", nt("b", nt("d"), nt("e")), nt("c"))
}

func TestPreorder_Order(t *testing.T) {
	got := preorderNames([]*tnode{sampleTree()}, Options[*tnode]{Expand: expand})
	want := []string{"a", "b", "d", "e", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Preorder mismatch (-want +got):\n%s", diff)
	}
}

func TestPostorder_Order(t *testing.T) {
	got := postorderNames([]*tnode{sampleTree()}, Options[*tnode]{Expand: expand})
	want := []string{"d", "e", "b", "c", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Postorder mismatch (-want +got):\n%s", diff)
	}
}

func TestTopDown_Order(t *testing.T) {
	got := topDownNames([]*tnode{sampleTree()}, Options[*tnode]{Expand: expand})
	want := []string{"a", "b", "c", "d", "e"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopDown mismatch (-want +got):\n%s", diff)
	}
}

func TestBottomUp_Order(t *testing.T) {
	got := bottomUpNames([]*tnode{sampleTree()}, Options[*tnode]{Expand: expand})
	want := []string{"d", "e", "c", "b", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BottomUp mismatch (-want +got):\n%s", diff)
	}
}

// sharedChild builds R → [A, B], A → [B]: B is a shared leaf.
func sharedChild() (r, a, b *tnode) {
	b = nt("B")
	a = nt("A", b)
	r = nt("R", a, b)
	return r, a, b
}

func TestPostorder_SharedChildEmittedOnce(t *testing.T) {
	r, _, _ := sharedChild()
	got := postorderNames([]*tnode{r}, Options[*tnode]{Expand: expand})
	want := []string{"B", "A", "R"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Postorder mismatch (-want +got):\n%s", diff)
	}
}

func TestBottomUp_SharedChildBeforeBothParents(t *testing.T) {
	r, _, _ := sharedChild()
	got := bottomUpNames([]*tnode{r}, Options[*tnode]{Expand: expand})
	want := []string{"B", "A", "R"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BottomUp mismatch (-want +got):\n%s", diff)
	}
}

// diamond builds R → [A, B], A → [C], B → [C]: C is shared through two
// interior paths.
func diamond() *tnode {
	c := nt("C")
	return nt("R", nt("A", c), nt("B", c))
}

func TestBottomUp_DiamondDependencyOrder(t *testing.T) {
	got := bottomUpNames([]*tnode{diamond()}, Options[*tnode]{Expand: expand})
	pos := make(map[string]int, len(got))
	for i, name := range got {
		pos[name] = i
	}
	for _, name := range []string{"C", "A", "B", "R"} {
		if _, ok := pos[name]; !ok {
			t.Fatalf("BottomUp missing %q, got %v", name, got)
		}
	}
	if pos["C"] > pos["A"] || pos["C"] > pos["B"] {
		t.Errorf("C emitted after a parent: %v", got)
	}
	if pos["A"] > pos["R"] || pos["B"] > pos["R"] {
		t.Errorf("R emitted before a child: %v", got)
	}
}

func TestOrders_SameLengthOnAcyclic(t *testing.T) {
	root := []*tnode{diamond()}
	opts := Options[*tnode]{Expand: expand}

	pre := len(preorderNames(root, opts))
	post := len(postorderNames(root, opts))
	top := len(topDownNames(root, opts))
	bottom := len(bottomUpNames(root, opts))

	if pre != 4 || post != pre || top != pre || bottom != pre {
		t.Errorf("lengths differ: pre=%d post=%d top=%d bottom=%d, want all 4",
			pre, post, top, bottom)
	}
}

func TestPreorder_Idempotent(t *testing.T) {
	seq := Preorder([]*tnode{sampleTree()}, Options[*tnode]{Expand: expand})

	var first, second []string
	for sh := range seq {
		first = append(first, sh.Node.name)
	}
	for sh := range seq {
		second = append(second, sh.Node.name)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestOncePerNode_CycleTerminates(t *testing.T) {
	a := nt("a")
	b := nt("b", a)
	a.kids = []*tnode{b}

	got := preorderNames([]*tnode{a}, Options[*tnode]{Expand: expand})
	want := []string{"a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Preorder mismatch (-want +got):\n%s", diff)
	}

	got = postorderNames([]*tnode{a}, Options[*tnode]{Expand: expand})
	want = []string{"b", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Postorder mismatch (-want +got):\n%s", diff)
	}
}

func TestOncePerNode_SelfLoopTerminates(t *testing.T) {
	a := nt("a")
	a.kids = []*tnode{a}

	for _, names := range [][]string{
		preorderNames([]*tnode{a}, Options[*tnode]{Expand: expand}),
		postorderNames([]*tnode{a}, Options[*tnode]{Expand: expand}),
		topDownNames([]*tnode{a}, Options[*tnode]{Expand: expand}),
	} {
		if diff := cmp.Diff([]string{"a"}, names); diff != "" {
			t.Errorf("self-loop mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestNoCycles_RevisitsSharedButBlocksCycles(t *testing.T) {
	// r → [a, b]; a → [s]; b → [s]; s → [r]. The s subtree is shared and
	// must be entered from both branches; the s → r edge closes a cycle
	// and must be blocked both times.
	r := nt("r")
	s := nt("s", r)
	r.kids = []*tnode{nt("a", s), nt("b", s)}

	got := preorderNames([]*tnode{r}, Options[*tnode]{Expand: expand, Policy: NoCycles})
	want := []string{"r", "a", "s", "b", "s"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NoCycles preorder mismatch (-want +got):\n%s", diff)
	}
}

func TestNoCycles_PostorderRevisitsShared(t *testing.T) {
	r := nt("r")
	s := nt("s", r)
	r.kids = []*tnode{nt("a", s), nt("b", s)}

	got := postorderNames([]*tnode{r}, Options[*tnode]{Expand: expand, Policy: NoCycles})
	want := []string{"s", "a", "s", "b", "r"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NoCycles postorder mismatch (-want +got):\n%s", diff)
	}
}

func TestNoCycles_TopDownRevisitsShared(t *testing.T) {
	r := nt("r")
	s := nt("s", r)
	r.kids = []*tnode{nt("a", s), nt("b", s)}

	got := topDownNames([]*tnode{r}, Options[*tnode]{Expand: expand, Policy: NoCycles})
	want := []string{"r", "a", "b", "s", "s"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NoCycles top-down mismatch (-want +got):\n%s", diff)
	}
}

func TestNoCycles_DuplicateSiblings(t *testing.T) {
	// r → [c, c]: the second occurrence is shared substructure, not a
	// cycle, so every order reports it.
	c := nt("c")
	r := nt("r", c, c)
	opts := Options[*tnode]{Expand: expand, Policy: NoCycles}

	if diff := cmp.Diff([]string{"r", "c", "c"}, preorderNames([]*tnode{r}, opts)); diff != "" {
		t.Errorf("NoCycles preorder mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "c", "r"}, postorderNames([]*tnode{r}, opts)); diff != "" {
		t.Errorf("NoCycles postorder mismatch (-want +got):\n%s", diff)
	}
}

func TestAllPaths_EnumeratesEveryPath(t *testing.T) {
	got := preorderNames([]*tnode{diamond()}, Options[*tnode]{Expand: expand, Policy: AllPaths})
	want := []string{"R", "A", "C", "B", "C"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllPaths preorder mismatch (-want +got):\n%s", diff)
	}
}

func TestAllPaths_CycleBoundedByCaller(t *testing.T) {
	a := nt("a")
	b := nt("b", a)
	a.kids = []*tnode{b}

	var got []string
	for sh := range Preorder([]*tnode{a}, Options[*tnode]{Expand: expand, Policy: AllPaths}) {
		got = append(got, sh.Node.name)
		if len(got) == 5 {
			break
		}
	}
	want := []string{"a", "b", "a", "b", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bounded AllPaths mismatch (-want +got):\n%s", diff)
	}
}

func TestOncePerEdge_RevisitsWithoutReexpanding(t *testing.T) {
	a := nt("a")
	b := nt("b", a)
	a.kids = []*tnode{b}

	got := preorderNames([]*tnode{a}, Options[*tnode]{Expand: expand, Policy: OncePerEdge})
	want := []string{"a", "b", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OncePerEdge preorder mismatch (-want +got):\n%s", diff)
	}
}

func TestPreorder_DeepChainNoOverflow(t *testing.T) {
	const depth = 20000
	root := nt("0")
	cur := root
	for i := 1; i <= depth; i++ {
		next := nt(fmt.Sprintf("%d", i))
		cur.kids = []*tnode{next}
		cur = next
	}

	count := 0
	for range Preorder([]*tnode{root}, Options[*tnode]{Expand: expand}) {
		count++
	}
	if count != depth+1 {
		t.Errorf("chain walk yielded %d elements, want %d", count, depth+1)
	}
}

func TestMultiRoot_SyntheticParentDropped(t *testing.T) {
	x := nt("x", nt("x1"))
	y := nt("y")

	var names []string
	var levels []int
	opts := Options[*tnode]{Expand: expand, Project: ProjectNode | ProjectLevel}
	for sh := range TopDown([]*tnode{x, y}, opts) {
		names = append(names, sh.Node.name)
		levels = append(levels, sh.Level)
	}

	if diff := cmp.Diff([]string{"x", "y", "x1"}, names); diff != "" {
		t.Errorf("multi-root order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 1}, levels); diff != "" {
		t.Errorf("multi-root levels mismatch (-want +got):\n%s", diff)
	}
}

func TestConnector_GatesEdges(t *testing.T) {
	got := preorderNames([]*tnode{sampleTree()}, Options[*tnode]{
		Expand:    expand,
		Connector: func(_, child *tnode) bool { return child.name != "b" },
	})
	want := []string{"a", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("connector mismatch (-want +got):\n%s", diff)
	}
}

func TestProjection_SubsetOnly(t *testing.T) {
	root := nt("a", nt("b"))

	// Default: node only.
	for sh := range Preorder([]*tnode{root}, Options[*tnode]{Expand: expand}) {
		if sh.Node == nil {
			t.Error("default projection left Node empty")
		}
		if sh.Trace != nil {
			t.Errorf("default projection populated Trace = %v", sh.Trace)
		}
	}

	// Trace and level, no node.
	var traces []string
	var levels []int
	opts := Options[*tnode]{Expand: expand, Project: ProjectTrace | ProjectLevel}
	for sh := range Preorder([]*tnode{root}, opts) {
		if sh.Node != nil {
			t.Errorf("projection populated Node = %v", sh.Node.name)
		}
		traces = append(traces, sh.Trace.String())
		levels = append(levels, sh.Level)
	}
	if diff := cmp.Diff([]string{"", "1"}, traces); diff != "" {
		t.Errorf("traces mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1}, levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestPreorder_LazyExpansion(t *testing.T) {
	const depth = 1000
	root := nt("0")
	cur := root
	for i := 1; i <= depth; i++ {
		next := nt(fmt.Sprintf("%d", i))
		cur.kids = []*tnode{next}
		cur = next
	}

	expansions := 0
	counting := func(n *tnode) []*tnode {
		expansions++
		return n.kids
	}

	taken := 0
	for range Preorder([]*tnode{root}, Options[*tnode]{Expand: counting}) {
		taken++
		if taken == 3 {
			break
		}
	}
	if expansions > 3 {
		t.Errorf("expanded %d nodes for 3 results, want at most 3", expansions)
	}
}

func TestNilExpand_EveryNodeALeaf(t *testing.T) {
	got := preorderNames([]*tnode{sampleTree()}, Options[*tnode]{})
	want := []string{"a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("nil expand mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentity_CustomKeyCollapsesDistinctValues(t *testing.T) {
	// Two distinct values with the same name collapse under a name-based
	// identity.
	twin := nt("twin")
	root := nt("root", nt("twin"), twin)

	got := preorderNames([]*tnode{root}, Options[*tnode]{
		Expand:   expand,
		Identity: func(n *tnode) any { return n.name },
	})
	want := []string{"root", "twin"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("identity mismatch (-want +got):\n%s", diff)
	}
}
