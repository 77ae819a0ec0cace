package types

// Account is the mirrored state of a ledger account.
// The same shape is used for the voter wallet and for the ballot contract account.
type Account struct {
	PublicKey  AccountID `json:"public_key"`
	Balance    uint64    `json:"balance"`
	GasBalance uint64    `json:"gas_balance"`
	Stake      uint64    `json:"stake"`
	Reward     uint64    `json:"reward"`
	Nonce      uint64    `json:"nonce"`
	IsContract bool      `json:"is_contract"`
	NumPages   uint64    `json:"num_pages"`
}

// AccountDelta is a partial account update. Nil fields are absent from the update.
type AccountDelta struct {
	Balance    *uint64 `json:"balance,omitempty"`
	GasBalance *uint64 `json:"gas_balance,omitempty"`
	Stake      *uint64 `json:"stake,omitempty"`
	Reward     *uint64 `json:"reward,omitempty"`
	Nonce      *uint64 `json:"nonce,omitempty"`
	NumPages   *uint64 `json:"num_pages,omitempty"`
}

// IsEmpty reports whether the delta carries no fields.
func (d AccountDelta) IsEmpty() bool {
	return d.Balance == nil && d.GasBalance == nil && d.Stake == nil &&
		d.Reward == nil && d.Nonce == nil && d.NumPages == nil
}

// Apply returns a copy of a with every field present in d overwritten.
func (a Account) Apply(d AccountDelta) Account {
	if d.Balance != nil {
		a.Balance = *d.Balance
	}
	if d.GasBalance != nil {
		a.GasBalance = *d.GasBalance
	}
	if d.Stake != nil {
		a.Stake = *d.Stake
	}
	if d.Reward != nil {
		a.Reward = *d.Reward
	}
	if d.Nonce != nil {
		a.Nonce = *d.Nonce
	}
	if d.NumPages != nil {
		a.NumPages = *d.NumPages
	}
	return a
}
