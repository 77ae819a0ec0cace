package types

import "fmt"

// Candidate is an entry of the ballot. Index is its position in the contract's candidate list.
type Candidate struct {
	Name  string
	Index int
}

func (c Candidate) String() string {
	return fmt.Sprintf("%d:%s", c.Index, c.Name)
}

// VoteResult is the tally of a single candidate as reported by the contract.
type VoteResult struct {
	Candidate string `json:"candidate"`
	Points    uint64 `json:"points"`
}

// Preferences holds one rank per candidate position. Zero means unranked.
type Preferences []uint8

// NewPreferences returns an all-zero assignment for n candidates.
func NewPreferences(n int) Preferences {
	return make(Preferences, n)
}

// Encode returns the vote payload: one byte per candidate position.
func (p Preferences) Encode() []byte {
	return append([]byte{}, p...)
}

// Clone returns a copy of p.
func (p Preferences) Clone() Preferences {
	return append(Preferences{}, p...)
}

// IsZero reports whether no candidate is ranked.
func (p Preferences) IsZero() bool {
	for _, r := range p {
		if r != 0 {
			return false
		}
	}
	return true
}

// Reset sets every rank to zero.
func (p Preferences) Reset() {
	clear(p)
}
