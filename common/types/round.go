package types

import "strconv"

// RoundID is the index of a consensus round.
type RoundID uint64

func (r RoundID) String() string {
	return strconv.FormatUint(uint64(r), 10)
}
