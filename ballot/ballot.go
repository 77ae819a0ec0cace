// Package ballot holds the ranked preferences of the voter for a loaded contract and
// submits them through a simulate then commit pipeline.
package ballot

import (
	"fmt"
	"math"
	"sync"

	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/contract"
)

// Ballot is the candidate list of a contract together with the voter's preferences.
// The preference vector has exactly one entry per candidate for the lifetime of the ballot.
type Ballot struct {
	year     string
	location string

	mu         sync.Mutex
	candidates []types.Candidate
	prefs      types.Preferences
	state      Lifecycle
	receipt    *contract.Receipt
}

// MaxCandidates is the largest ballot a one byte rank per candidate can express.
const MaxCandidates = math.MaxUint8

// New returns an unedited ballot over candidates.
func New(year, location string, candidates []types.Candidate) (*Ballot, error) {
	if len(candidates) > MaxCandidates {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyCandidates, len(candidates), MaxCandidates)
	}
	return &Ballot{
		year:       year,
		location:   location,
		candidates: append([]types.Candidate{}, candidates...),
		prefs:      types.NewPreferences(len(candidates)),
	}, nil
}

// Year is the election year reported by the contract.
func (b *Ballot) Year() string { return b.year }

// Location is the election location reported by the contract.
func (b *Ballot) Location() string { return b.location }

// Candidates returns a copy of the candidate list.
func (b *Ballot) Candidates() []types.Candidate {
	return append([]types.Candidate{}, b.candidates...)
}

// Preferences returns a copy of the current preference vector.
func (b *Ballot) Preferences() types.Preferences {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.prefs.Clone()
}

// State returns the lifecycle state of the vote.
func (b *Ballot) State() Lifecycle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Voted reports whether preferences were edited and not yet submitted.
func (b *Ballot) Voted() bool {
	state := b.State()
	return state == Drafting || state.InFlight()
}

// Submitted reports whether the vote was accepted for broadcast during this load.
func (b *Ballot) Submitted() bool {
	return b.State() == Submitted
}

// Receipt returns the receipt of the submitted vote, nil before submission.
func (b *Ballot) Receipt() *contract.Receipt {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.receipt
}

// SetPreference assigns rank to the candidate at index. Ranks are not checked for
// uniqueness or completeness here; the contract does that during submission.
func (b *Ballot) SetPreference(index int, rank uint8) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(b.prefs) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(b.prefs))
	}
	if int(rank) > len(b.prefs) {
		return fmt.Errorf("%w: %d exceeds %d candidates", ErrRankOutOfRange, rank, len(b.prefs))
	}
	b.prefs[index] = rank
	b.transition(Drafting)
	return nil
}

// SetOrder replaces all preferences from an ordering of candidate names, most preferred first.
// The candidate at position p (1-based) gets PointsForPosition(n, p); unlisted candidates are unranked.
func (b *Ballot) SetOrder(names ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.editable(); err != nil {
		return err
	}
	if len(names) > len(b.candidates) {
		return fmt.Errorf("%w: %d names for %d candidates", ErrRankOutOfRange, len(names), len(b.candidates))
	}
	byName := make(map[string]int, len(b.candidates))
	for _, c := range b.candidates {
		byName[c.Name] = c.Index
	}
	prefs := types.NewPreferences(len(b.candidates))
	for i, name := range names {
		index, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCandidate, name)
		}
		prefs[index] = PointsForPosition(len(b.candidates), i+1)
	}
	b.prefs = prefs
	b.transition(Drafting)
	return nil
}

// PointsForPosition returns the rank value of the candidate shown at position p (1-based)
// on a ballot of n candidates.
// It is zero when p is not on the ballot or n exceeds MaxCandidates.
func PointsForPosition(n, p int) uint8 {
	if p < 1 || p > n || n > MaxCandidates {
		return 0
	}
	return uint8(n - p + 1)
}

func (b *Ballot) editable() error {
	switch {
	case b.state == Submitted:
		return ErrAlreadySubmitted
	case b.state.InFlight():
		return ErrBusy
	}
	return nil
}

// begin moves a drafted ballot into simulation and returns the payload to submit.
func (b *Ballot) begin() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case b.state == Submitted:
		return nil, ErrAlreadySubmitted
	case b.state.InFlight():
		return nil, ErrBusy
	case b.state != Drafting:
		return nil, ErrNothingToSubmit
	}
	b.transition(Simulating)
	return b.prefs.Encode(), nil
}

// move applies a lifecycle transition. It panics on an illegal transition.
func (b *Ballot) move(to Lifecycle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transition(to)
}

func (b *Ballot) transition(to Lifecycle) {
	if !b.state.canTransition(to) {
		panic(fmt.Sprintf("illegal vote transition %s -> %s", b.state, to))
	}
	transitionCount.WithLabelValues(b.state.String(), to.String()).Inc()
	b.state = to
}

// submitted clears the preferences and records the receipt.
func (b *Ballot) submitted(receipt *contract.Receipt) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transition(Submitted)
	b.prefs.Reset()
	b.receipt = receipt
}
