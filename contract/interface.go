package contract

import (
	"context"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

//go:generate mockgen -typed -package=contract -destination=./mocks.go -source=./interface.go

// Node is the part of the node API a contract handle needs.
type Node interface {
	GetAccount(ctx context.Context, id types.AccountID) (*types.Account, error)
	ContractCode(ctx context.Context, id types.AccountID) ([]byte, error)
	Query(ctx context.Context, contract types.AccountID, req client.QueryRequest) (*client.QueryResponse, error)
	SendTransaction(ctx context.Context, tx client.Transaction) (*client.TxReceipt, error)
}

// Signer signs transactions on behalf of the voter.
type Signer interface {
	AccountID() types.AccountID
	Sign(d signing.Domain, m []byte) types.EdSignature
}
