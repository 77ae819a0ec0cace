// Package receipts persists the receipts of submitted votes so that a voter is not
// charged twice for the same ballot across runs.
package receipts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/log"
)

const (
	dirName        = "receipts"
	lockName       = ".lock"
	lockRetryDelay = 50 * time.Millisecond
)

var (
	// ErrAlreadyVoted is returned when a receipt exists for the voter and contract.
	ErrAlreadyVoted = errors.New("already voted")
	// ErrNotFound is returned when no receipt exists.
	ErrNotFound = errors.New("receipt not found")
	// ErrLocked is returned when another process holds the receipts lock.
	ErrLocked = errors.New("receipts are locked by another process")
)

// Receipt records a vote that the node accepted for broadcast.
type Receipt struct {
	Contract    types.AccountID     `json:"contract"`
	Voter       types.AccountID     `json:"voter"`
	TxID        types.TransactionID `json:"tx_id"`
	Preferences []int               `json:"preferences"`
	Time        time.Time           `json:"time"`
}

// New builds a receipt of a vote with the given preferences.
func New(contract, voter types.AccountID, tx types.TransactionID, prefs types.Preferences, at time.Time) Receipt {
	ranks := make([]int, len(prefs))
	for i, r := range prefs {
		ranks[i] = int(r)
	}
	return Receipt{Contract: contract, Voter: voter, TxID: tx, Preferences: ranks, Time: at.UTC()}
}

type Opt func(*Store)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store keeps one receipt file per contract and voter under <data-dir>/receipts.
type Store struct {
	dir    string
	logger *zap.Logger
}

func NewStore(dataDir string, opts ...Opt) *Store {
	s := &Store{
		dir:    filepath.Join(dataDir, dirName),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lock takes the exclusive lock of the receipts directory, retrying until ctx is done.
// The returned func releases it.
func (s *Store) Lock(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create receipts directory: %w", err)
	}
	fl := flock.New(filepath.Join(s.dir, lockName))
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	switch {
	case locked:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), err == nil:
		return nil, fmt.Errorf("%w (locking file %s)", ErrLocked, fl.Path())
	default:
		return nil, fmt.Errorf("flock %s: %w", fl.Path(), err)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Error("failed to unlock receipts",
				zap.String("path", fl.Path()),
				zap.Error(err),
			)
		}
	}, nil
}

// Path returns the file of the receipt of voter on contract.
func (s *Store) Path(contract, voter types.AccountID) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", contract, voter))
}

// Get reads the receipt of voter on contract.
func (s *Store) Get(contract, voter types.AccountID) (*Receipt, error) {
	data, err := os.ReadFile(s.Path(contract, voter))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("read receipt: %w", err)
	}
	var r Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode receipt %s: %w", filepath.Base(s.Path(contract, voter)), err)
	}
	return &r, nil
}

// Check returns ErrAlreadyVoted when a receipt of voter on contract exists.
func (s *Store) Check(contract, voter types.AccountID) error {
	r, err := s.Get(contract, voter)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		return err
	}
	return fmt.Errorf("%w: transaction %s at %s", ErrAlreadyVoted, r.TxID.ShortString(), r.Time.Format(time.RFC3339))
}

// Put writes r atomically, replacing an existing receipt.
func (s *Store) Put(r Receipt) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create receipts directory: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode receipt: %w", err)
	}
	path := s.Path(r.Contract, r.Voter)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}
	s.logger.Info("receipt saved",
		zap.String("path", path),
		log.ZShortStringer("tx", r.TxID),
	)
	return nil
}
