// Package pkg provides the core libraries for arbor, a generic traversal
// engine for externally owned nested structures.
//
// # Overview
//
// Arbor walks trees, DAGs with shared substructure, and cyclic graphs that
// it does not own: the structure participates through capabilities (see
// [node]) rather than by being converted into an internal representation.
// The pkg directory is organized into five areas:
//
//  1. [node] - The capability contract (expand, replace, clone, identity)
//  2. [walk] - Walk orders, path policies, traces, and projection
//  3. [address] - Trace-based reads, writes, and parent queries
//  4. [graph] - Derived whole-structure views (adjacency matrix)
//  5. [transform] - Structure rewrites (uproot, map, prune)
//
// [errors] carries the structured error codes shared by all of them.
//
// # Quick Start
//
// Walk a dependency structure you already have, without wrapping it:
//
//	import "github.com/matzehuels/arbor/pkg/walk"
//
//	opts := walk.Options[*Pkg]{
//	    Expand: func(p *Pkg) []*Pkg { return p.Deps },
//	}
//	for sh := range walk.Preorder([]*Pkg{root}, opts) {
//	    fmt.Println(sh.Node.Name)
//	}
//
// Build in dependency order instead:
//
//	for _, sh := range walk.BottomUp([]*Pkg{root}, opts) {
//	    build(sh.Node)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/walk/...     # Specific package
//	go test -run Example       # Examples only
//
// [node]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/node
// [walk]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/walk
// [address]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/address
// [graph]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/graph
// [transform]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/transform
// [errors]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/errors
package pkg
