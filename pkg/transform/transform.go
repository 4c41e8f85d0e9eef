package transform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/node"
)

// Options configures a transform call. The zero value is usable.
type Options struct {
	// Logger receives debug progress and degraded-path warnings.
	// nil discards all output.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// requireMutable checks the capabilities every transform needs.
func requireMutable[T comparable](caps node.Capability[T], op string, v T) error {
	if caps.Expand == nil {
		return errors.New(errors.ErrCodeMissingCapability, "%s requires an Expand capability", op)
	}
	if caps.Replace == nil {
		return errors.New(errors.ErrCodeMissingCapability,
			"%s on %T requires a Replace capability", op, v)
	}
	return nil
}

// memoized wraps the expansion so each node is expanded at most once per
// call. Transforms consult a node's children more than once, and
// expansion carries no purity assumption.
func memoized[T comparable](caps node.Capability[T]) node.ExpandFunc[T] {
	memo := make(map[any][]T)
	return func(n T) []T {
		k := caps.Key(n)
		if kids, ok := memo[k]; ok {
			return kids
		}
		kids := caps.Expand(n)
		memo[k] = kids
		return kids
	}
}
