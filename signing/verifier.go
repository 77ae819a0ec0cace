package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

// EdVerifier checks signatures produced by EdSigner.
type EdVerifier struct{}

// NewEdVerifier returns a verifier of domain tagged signatures.
func NewEdVerifier() *EdVerifier {
	return &EdVerifier{}
}

// Verify verifies that sig was made by the key of id over the domain tag followed by m.
func (ev *EdVerifier) Verify(d Domain, id types.AccountID, m []byte, sig types.EdSignature) bool {
	return ed25519.Verify(id[:], tagged(d, m), sig[:])
}
