package signing

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

// Domain is the tag byte that is signed together with a message.
type Domain byte

// TRANSFER tags transfers, including contract invocations.
const TRANSFER Domain = 1

// String returns the string representation of a domain.
func (d Domain) String() string {
	switch d {
	case TRANSFER:
		return "TRANSFER"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrInvalidSecret is returned when a secret is not a hex encoded ed25519 private key.
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrKeyMismatch is returned when the public half of a private key does not match its seed.
	ErrKeyMismatch = errors.New("private and public do not match")
)

type edSignerOption struct {
	priv PrivateKey
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// FromHex loads the private key from its 128 character hex encoding.
func FromHex(secret string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option FromHex: private key already set")
		}
		priv, err := decodeSecret([]byte(strings.TrimSpace(secret)))
		if err != nil {
			return err
		}
		opt.priv = priv
		return nil
	}
}

// WithKeyFromRand sets the private key used by EdSigner using predictable randomness source.
func WithKeyFromRand(rand io.Reader) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		_, priv, err := ed25519.GenerateKey(rand)
		if err != nil {
			return fmt.Errorf("could not generate key pair: %w", err)
		}

		opt.priv = priv
		return nil
	}
}

func decodeSecret(data []byte) (PrivateKey, error) {
	if len(data) != PrivateKeyHexSize {
		return nil, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidSecret, PrivateKeyHexSize, len(data))
	}
	dst := make([]byte, PrivateKeySize)
	if _, err := hex.Decode(dst, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	priv := PrivateKey(dst)
	if err := checkKey(priv); err != nil {
		return nil, err
	}
	return priv, nil
}

func checkKey(priv PrivateKey) error {
	if len(priv) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: invalid key length %d", ErrInvalidSecret, len(priv))
	}
	keyPair := ed25519.NewKeyFromSeed(priv[:32])
	if !bytes.Equal(keyPair[32:], priv.Public().(ed25519.PublicKey)) {
		return ErrKeyMismatch
	}
	return nil
}

// EdSigner represents an ED25519 signer.
type EdSigner struct {
	priv PrivateKey
}

// NewEdSigner returns an ed signer. Without a key option a fresh key is generated.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.priv == nil {
		_, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("could not generate key pair: %w", err)
		}
		cfg.priv = priv
	}
	return &EdSigner{priv: cfg.priv}, nil
}

// Sign signs the domain tag followed by m.
func (es *EdSigner) Sign(d Domain, m []byte) types.EdSignature {
	return *(*[types.EdSignatureSize]byte)(ed25519.Sign(es.priv, tagged(d, m)))
}

func tagged(d Domain, m []byte) []byte {
	msg := make([]byte, 0, 1+len(m))
	msg = append(msg, byte(d))
	return append(msg, m...)
}

// PublicKey returns the public key of the signer.
func (es *EdSigner) PublicKey() *PublicKey {
	return NewPublicKey(es.priv.Public().(ed25519.PublicKey))
}

// AccountID returns the ledger identity of the signer.
func (es *EdSigner) AccountID() types.AccountID {
	return es.PublicKey().AccountID()
}

// PrivateKey returns private key.
func (es *EdSigner) PrivateKey() PrivateKey {
	return es.priv
}

// Matches implements the gomock.Matcher interface for testing.
func (es *EdSigner) Matches(x any) bool {
	if other, ok := x.(*EdSigner); ok {
		return bytes.Equal(es.priv, other.priv)
	}
	return false
}

func (es *EdSigner) String() string {
	return es.PublicKey().ShortString()
}
