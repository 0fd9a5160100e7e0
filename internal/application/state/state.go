package state

// Phase represents the life cycle phase of a game session
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseActive
	PhaseOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseActive:
		return "Active"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transition can leave this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseOver
}

// CanTransition reports whether moving from p to next is a legal transition.
// Active -> Active is the self-loop taken on a non-fatal collision.
func (p Phase) CanTransition(next Phase) bool {
	switch p {
	case PhaseNotStarted:
		return next == PhaseActive
	case PhaseActive:
		return next == PhaseActive || next == PhaseOver
	default:
		return false
	}
}
