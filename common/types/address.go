package types

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// AccountIDLength is the length of an account id (an ed25519 public key) in bytes.
	AccountIDLength = 32
	// AccountIDHexLength is the length of the hex representation of an account id.
	AccountIDHexLength = 2 * AccountIDLength
)

var (
	// ErrWrongAccountIDLength is returned when the hex string has the wrong length.
	ErrWrongAccountIDLength = errors.New("wrong account id length")
	// ErrDecodeHex is returned when an account id is not valid hex.
	ErrDecodeHex = errors.New("error decoding hex")
)

// AccountID identifies an account on the ledger. Wallets and contracts share the same id space.
type AccountID [AccountIDLength]byte

// EmptyAccountID is the zero account id.
var EmptyAccountID = AccountID{}

// ParseAccountID parses a 64 character hex string into an AccountID.
func ParseAccountID(src string) (AccountID, error) {
	var id AccountID
	if len(src) != AccountIDHexLength {
		return id, fmt.Errorf("expected %d hex characters, got %d: %w", AccountIDHexLength, len(src), ErrWrongAccountIDLength)
	}
	if _, err := hex.Decode(id[:], []byte(src)); err != nil {
		return id, fmt.Errorf("%w: %w", ErrDecodeHex, err)
	}
	return id, nil
}

// BytesToAccountID copies b into an AccountID. Extra bytes on the left are dropped.
func BytesToAccountID(b []byte) AccountID {
	var id AccountID
	if len(b) > AccountIDLength {
		b = b[len(b)-AccountIDLength:]
	}
	copy(id[AccountIDLength-len(b):], b)
	return id
}

// Bytes returns the id as a byte slice.
func (id AccountID) Bytes() []byte { return id[:] }

// IsEmpty reports whether the id is all zeroes.
func (id AccountID) IsEmpty() bool { return id == EmptyAccountID }

// String returns the hex encoding of the id.
func (id AccountID) String() string {
	return hex.EncodeToString(id[:])
}

// ShortString returns the first 5 characters of the hex encoding.
func (id AccountID) ShortString() string {
	return id.String()[:5]
}

// MarshalText implements encoding.TextMarshaler.
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AccountID) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// TransactionID is the id the node assigns to an accepted transaction.
type TransactionID [32]byte

// String returns the hex encoding of the id.
func (id TransactionID) String() string {
	return hex.EncodeToString(id[:])
}

// ShortString returns the first 5 characters of the hex encoding.
func (id TransactionID) ShortString() string {
	return id.String()[:5]
}

// MarshalText implements encoding.TextMarshaler.
func (id TransactionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TransactionID) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(len(id)) {
		return fmt.Errorf("transaction id: %w", ErrWrongAccountIDLength)
	}
	if _, err := hex.Decode(id[:], text); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeHex, err)
	}
	return nil
}
