package session

import (
	"context"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/contract"
)

//go:generate mockgen -typed -package=session -destination=./mocks.go -source=./interface.go

// Client is the node API used by a session.
type Client interface {
	GetAccount(ctx context.Context, id types.AccountID) (*types.Account, error)
	ContractCode(ctx context.Context, id types.AccountID) ([]byte, error)
	Query(ctx context.Context, contract types.AccountID, req client.QueryRequest) (*client.QueryResponse, error)
	SendTransaction(ctx context.Context, tx client.Transaction) (*client.TxReceipt, error)
	PollAccounts(ctx context.Context, id types.AccountID, handlers client.AccountHandlers) (client.Subscription, error)
	PollConsensus(ctx context.Context, handlers client.ConsensusHandlers) (client.Subscription, error)
}

// Contract is a bound contract.
type Contract interface {
	Init(ctx context.Context) (*types.Account, error)
	Refresh(ctx context.Context) (*types.Account, error)
	Query(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Response, error)
	Test(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Response, error)
	Call(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Receipt, error)
}
