package model

import "math"

// NodeID is a dense identifier for a navigation graph node.
//
// Ids are assigned 0..N-1 in creation order and never reused within a graph,
// so they index flat scratch arrays directly.
type NodeID uint32

// InvalidNode marks an absent node (no predecessor, no best node).
const InvalidNode = NodeID(math.MaxUint32)

// Valid reports whether id refers to a node.
func (id NodeID) Valid() bool { return id != InvalidNode }

// Status is the terminal state of a path search.
type Status uint8

const (
	// StatusFound means the goal was reached and the path is exact.
	StatusFound Status = iota
	// StatusUnreachable means the open set emptied before reaching the goal.
	// The path leads to the node closest to the goal that was explored.
	StatusUnreachable
	// StatusBudgetExceeded means the iteration cap was hit.
	// The path leads to the best node explored so far.
	StatusBudgetExceeded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	case StatusBudgetExceeded:
		return "budget_exceeded"
	default:
		return "unknown"
	}
}

// Complete reports whether the path reaches the goal.
func (s Status) Complete() bool { return s == StatusFound }
