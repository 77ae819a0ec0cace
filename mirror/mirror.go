// Package mirror keeps a local copy of ledger accounts that is updated by
// partial deltas pushed from the node.
package mirror

import (
	"sync"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

// Merge returns current with only the fields present in delta overwritten.
// A delta never erases fields absent from it.
func Merge(current types.Account, delta types.AccountDelta) types.Account {
	return current.Apply(delta)
}

// Mirror is a goroutine-safe cell holding the last known state of one account.
type Mirror struct {
	mu      sync.RWMutex
	account types.Account
	updates uint64
}

// New creates a mirror from a snapshot fetched from the node.
func New(snapshot types.Account) *Mirror {
	return &Mirror{account: snapshot}
}

// ID returns the id of the mirrored account.
func (m *Mirror) ID() types.AccountID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.account.PublicKey
}

// Get returns a copy of the mirrored account.
func (m *Mirror) Get() types.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.account
}

// Apply merges delta into the mirrored account and returns the result.
func (m *Mirror) Apply(delta types.AccountDelta) types.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !delta.IsEmpty() {
		m.account = Merge(m.account, delta)
		m.updates++
	}
	return m.account
}

// Updates returns how many non-empty deltas were merged.
func (m *Mirror) Updates() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.updates
}
