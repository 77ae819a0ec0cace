package session

import (
	"context"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/ballot"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/mirror"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

// Subscriptions are the push channels owned by a handle.
type Subscriptions struct {
	Account   client.Subscription
	Contract  client.Subscription
	Consensus client.Subscription
}

func (s Subscriptions) all() []client.Subscription {
	var out []client.Subscription
	for _, sub := range []client.Subscription{s.Account, s.Contract, s.Consensus} {
		if sub != nil {
			out = append(out, sub)
		}
	}
	return out
}

// Handle is the state of a connected session. A handle is never modified once installed;
// connecting, loading and resetting replace it.
type Handle struct {
	SessionID     string
	Host          string
	Signer        *signing.EdSigner
	Client        Client
	Account       *mirror.Mirror
	Subscriptions Subscriptions
	// Contract is nil until a contract is loaded.
	Contract *Loaded
}

// Loaded is a contract bound to a session.
type Loaded struct {
	Address  types.AccountID
	Binding  Contract
	Account  *mirror.Mirror
	Ballot   *ballot.Ballot
	Pipeline *ballot.Pipeline

	generation uint64
	// ctx scopes refreshes of this contract and is cancelled on teardown.
	ctx    context.Context
	cancel context.CancelFunc
}

func (h *Handle) withContract(loaded *Loaded, subs Subscriptions) *Handle {
	next := *h
	next.Contract = loaded
	next.Subscriptions = Subscriptions{
		Account:   h.Subscriptions.Account,
		Contract:  subs.Contract,
		Consensus: subs.Consensus,
	}
	return &next
}

func (h *Handle) withoutContract() *Handle {
	return h.withContract(nil, Subscriptions{})
}
