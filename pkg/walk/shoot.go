package walk

// Project is a bitmask selecting which fields of a [Shoot] a traversal
// populates. Combine flags with bitwise OR; the zero value means
// [ProjectNode].
type Project uint8

const (
	// ProjectNode populates Shoot.Node with the visited value.
	ProjectNode Project = 1 << iota
	// ProjectTrace populates Shoot.Trace with the structural address of
	// the step. Traces are only materialized when this flag is set.
	ProjectTrace
	// ProjectLevel populates Shoot.Level with the depth of the step.
	ProjectLevel
)

// normalize maps the zero value to the default projection.
func (p Project) normalize() Project {
	if p == 0 {
		return ProjectNode
	}
	return p
}

// Shoot is the bundle emitted for one traversal step. Only the fields
// selected by the call's [Project] mask are populated; the others keep
// their zero values.
type Shoot[T any] struct {
	Node  T     // the visited value (ProjectNode)
	Trace Trace // structural address from the root (ProjectTrace)
	Level int   // depth, root = 0 (ProjectLevel)
}
