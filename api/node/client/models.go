package client

import (
	"encoding/hex"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

// HexBytes is a byte string that is hex encoded on the wire.
type HexBytes []byte

// MarshalText implements encoding.TextMarshaler.
func (b HexBytes) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(dst, b)
	return dst, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *HexBytes) UnmarshalText(text []byte) error {
	dst := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(dst, text); err != nil {
		return err
	}
	*b = dst
	return nil
}

// QueryRequest asks the node to simulate a contract function without broadcasting it.
type QueryRequest struct {
	Sender     types.AccountID `json:"sender"`
	Function   string          `json:"function"`
	Amount     uint64          `json:"amount"`
	GasLimit   uint64          `json:"gas_limit"`
	GasDeposit uint64          `json:"gas_deposit"`
	Params     HexBytes        `json:"params"`
}

// QueryResponse is the outcome of a simulation.
// A non-nil Result is an application level rejection returned by the contract.
type QueryResponse struct {
	Result *string  `json:"result"`
	Logs   []string `json:"logs"`
}

// Transaction is a signed transaction ready to be broadcast.
type Transaction struct {
	Sender    types.AccountID `json:"sender"`
	Tag       uint8           `json:"tag"`
	Payload   HexBytes        `json:"payload"`
	Signature HexBytes        `json:"signature"`
}

// TxReceipt is returned once the node accepted a transaction for broadcast.
type TxReceipt struct {
	ID        types.TransactionID   `json:"tx_id"`
	ParentIDs []types.TransactionID `json:"parent_ids"`
	Critical  bool                  `json:"is_critical"`
}

// EventKind is the discriminator of a pushed event.
type EventKind string

const (
	BalanceUpdated    EventKind = "balance_updated"
	GasBalanceUpdated EventKind = "gas_balance_updated"
	StakeUpdated      EventKind = "stake_updated"
	RewardUpdated     EventKind = "reward_updated"
	NonceUpdated      EventKind = "nonce_updated"
	NumPagesUpdated   EventKind = "num_pages_updated"

	RoundEnded  EventKind = "round_end"
	RoundPruned EventKind = "prune"
)

// AccountEvent is a partial update of an account.
type AccountEvent struct {
	Kind      EventKind
	AccountID types.AccountID
	Delta     types.AccountDelta
}

// AccountHandlers maps event kinds to handlers. Kinds without a handler are dropped.
type AccountHandlers map[EventKind]func(AccountEvent)

// RoundEvent is pushed when a consensus round is finalized.
type RoundEvent struct {
	OldRound    types.RoundID
	NewRound    types.RoundID
	NumApplied  uint64
	NumRejected uint64
	NumIgnored  uint64
}

// PruneEvent is pushed when the node prunes an old round.
type PruneEvent struct {
	CurrentRound types.RoundID
	PrunedRound  types.RoundID
}

// ConsensusHandlers receive consensus notifications. Nil handlers are skipped.
type ConsensusHandlers struct {
	OnRoundEnded  func(RoundEvent)
	OnRoundPruned func(PruneEvent)
}

type accountMessage struct {
	Mod       string          `json:"mod"`
	Event     EventKind       `json:"event"`
	AccountID types.AccountID `json:"account_id"`
	types.AccountDelta
}

type consensusMessage struct {
	Mod          string    `json:"mod"`
	Event        EventKind `json:"event"`
	OldRound     uint64    `json:"old_round"`
	NewRound     uint64    `json:"new_round"`
	NumApplied   uint64    `json:"num_applied_tx"`
	NumRejected  uint64    `json:"num_rejected_tx"`
	NumIgnored   uint64    `json:"num_ignored_tx"`
	CurrentRound uint64    `json:"current_round_id"`
	PrunedRound  uint64    `json:"pruned_round_id"`
}
