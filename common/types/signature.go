package types

import "encoding/hex"

// EdSignatureSize is the size of an ed25519 signature.
const EdSignatureSize = 64

// EdSignature is an ed25519 signature.
type EdSignature [EdSignatureSize]byte

// Bytes returns the signature as a byte slice.
func (s EdSignature) Bytes() []byte { return s[:] }

// String returns the hex encoding of the signature.
func (s EdSignature) String() string {
	return hex.EncodeToString(s[:])
}
