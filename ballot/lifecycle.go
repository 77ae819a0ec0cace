package ballot

// Lifecycle is the state of the vote of the current contract load.
type Lifecycle uint8

const (
	// Idle means no preference was set since the ballot was loaded or last rejected.
	Idle Lifecycle = iota
	// Drafting means preferences were edited and can be submitted.
	Drafting
	// Simulating means the vote is being tested against the contract.
	Simulating
	// Simulated means the contract accepted the vote in simulation.
	Simulated
	// Committing means the vote transaction is being broadcast.
	Committing
	// Submitted is terminal for the current load.
	Submitted
	// Rejected is passed through when a simulation is refused. The ballot returns to Drafting.
	Rejected
)

func (l Lifecycle) String() string {
	switch l {
	case Idle:
		return "idle"
	case Drafting:
		return "drafting"
	case Simulating:
		return "simulating"
	case Simulated:
		return "simulated"
	case Committing:
		return "committing"
	case Submitted:
		return "submitted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// InFlight reports whether a submission holds the ballot.
func (l Lifecycle) InFlight() bool {
	return l == Simulating || l == Simulated || l == Committing
}

var transitions = map[Lifecycle][]Lifecycle{
	Idle:       {Drafting},
	Drafting:   {Drafting, Simulating},
	Simulating: {Simulated, Rejected, Drafting},
	Simulated:  {Committing},
	Committing: {Submitted, Drafting},
	Rejected:   {Drafting},
}

func (l Lifecycle) canTransition(to Lifecycle) bool {
	for _, next := range transitions[l] {
		if next == to {
			return true
		}
	}
	return false
}
