package lexerrs

import "fmt"

// ContainerPolicyError indicates an attempt to place a child into a
// container whose nesting policy rejects it, such as a Session pushed into
// an annotation body. The grammar matcher never produces such trees; this
// error exists to catch hand-built ASTs that violate the policy.
type ContainerPolicyError struct {
	Container string // container kind ("general", "verbatim")
	Child     string // rejected child node type
}

func (e *ContainerPolicyError) Error() string {
	return fmt.Sprintf(
		"%s container cannot hold %s nodes",
		e.Container,
		e.Child,
	)
}
