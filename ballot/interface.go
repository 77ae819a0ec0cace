package ballot

import (
	"context"

	"github.com/ballotpaper/go-ballotpaper/contract"
)

//go:generate mockgen -typed -package=ballot -destination=./mocks.go -source=./interface.go

type contractAPI interface {
	Test(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Response, error)
	Call(ctx context.Context, signer contract.Signer, inv contract.Invocation) (*contract.Receipt, error)
}
