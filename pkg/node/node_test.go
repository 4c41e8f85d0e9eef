package node

import (
	"testing"

	"github.com/matzehuels/arbor/pkg/errors"
)

// box is a heterogeneous container implementing all three optional
// interfaces.
type box struct {
	label string
	items []any
}

func (b *box) ChildNodes() []any { return b.items }

func (b *box) ReplaceChildNodes(items []any) (any, error) {
	b.items = items
	return b, nil
}

func (b *box) CloneNode() (any, error) {
	return &box{label: b.label}, nil
}

// opaque implements none of the optional interfaces.
type opaque struct{}

func TestDynamic_Expand(t *testing.T) {
	caps := Dynamic()

	b := &box{label: "b", items: []any{1, 2}}
	if got := caps.Expand(b); len(got) != 2 {
		t.Errorf("Expand(box) returned %d children, want 2", len(got))
	}
	if got := caps.Expand(opaque{}); got != nil {
		t.Errorf("Expand(opaque) = %v, want nil (leaf)", got)
	}
}

func TestDynamic_Replace(t *testing.T) {
	caps := Dynamic()

	b := &box{label: "b"}
	out, err := caps.Replace(b, []any{"x"})
	if err != nil {
		t.Fatalf("Replace(box) error: %v", err)
	}
	if out != any(b) {
		t.Error("Replace(box) did not return the mutated value")
	}
	if len(b.items) != 1 {
		t.Errorf("Replace(box) left %d items, want 1", len(b.items))
	}

	_, err = caps.Replace(opaque{}, nil)
	if !errors.Is(err, errors.ErrCodeMissingCapability) {
		t.Errorf("Replace(opaque) error = %v, want MISSING_CAPABILITY", err)
	}
}

func TestDynamic_Clone(t *testing.T) {
	caps := Dynamic()

	b := &box{label: "b", items: []any{1}}
	out, err := caps.Clone(b)
	if err != nil {
		t.Fatalf("Clone(box) error: %v", err)
	}
	clone, ok := out.(*box)
	if !ok || clone == b {
		t.Errorf("Clone(box) = %v, want a distinct *box", out)
	}
	if clone.label != "b" {
		t.Errorf("Clone(box).label = %q, want %q", clone.label, "b")
	}

	_, err = caps.Clone(opaque{})
	if !errors.Is(err, errors.ErrCodeMissingCapability) {
		t.Errorf("Clone(opaque) error = %v, want MISSING_CAPABILITY", err)
	}
}

func TestKey(t *testing.T) {
	if got := Key[int](nil, 7); got != 7 {
		t.Errorf("Key(nil, 7) = %v, want 7", got)
	}

	byParity := func(n int) any { return n % 2 }
	if got := Key(byParity, 7); got != 1 {
		t.Errorf("Key(byParity, 7) = %v, want 1", got)
	}

	caps := Capability[int]{Identity: byParity}
	if got := caps.Key(4); got != 0 {
		t.Errorf("caps.Key(4) = %v, want 0", got)
	}
}
