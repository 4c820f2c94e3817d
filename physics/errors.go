package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every construction-time validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// InvariantError is the panic value raised when a link references a node
// outside the node slice during a step. Reaching it is a programming defect
type InvariantError struct {
	Link  int // Index of the offending link in the link slice, -1 when unknown
	Node  int // Offending node index
	Count int // Node slice length at the time of the check
}

func (e *InvariantError) Error() string {
	if e.Link < 0 {
		return fmt.Sprintf("link references node %d, node count %d", e.Node, e.Count)
	}
	return fmt.Sprintf("link %d references node %d, node count %d", e.Link, e.Node, e.Count)
}

// checkIndex panics with *InvariantError when idx is not a valid node index
func checkIndex(link, idx, count int) {
	if idx < 0 || idx >= count {
		panic(&InvariantError{Link: link, Node: idx, Count: count})
	}
}
