// Package contract binds a deployed contract on the ledger: it checks the account really is a
// contract, simulates function calls against the latest state and broadcasts signed calls.
package contract

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/log"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

// DefaultCacheSize is the number of getter responses kept between consensus rounds.
const DefaultCacheSize = 64

var (
	// ErrNotContract is returned when the address has no contract code deployed.
	ErrNotContract = errors.New("account is not a contract")
	// ErrQueryRejected is returned when a getter is rejected by the contract.
	ErrQueryRejected = errors.New("query rejected")
	// ErrBadSignature is returned when the signer's signature does not verify for its account.
	ErrBadSignature = errors.New("signature does not match sender")
)

// Response is the outcome of a simulated call.
type Response struct {
	// Result is set when the contract rejected the call.
	Result *string
	Logs   []string
}

// Rejected reports whether the contract refused the call.
func (r *Response) Rejected() bool {
	return r.Result != nil
}

// Reason is the rejection message, empty when the call was accepted.
func (r *Response) Reason() string {
	if r.Result == nil {
		return ""
	}
	return *r.Result
}

// Receipt is returned when a call was accepted for broadcast.
type Receipt struct {
	ID       types.TransactionID
	Critical bool
}

type Opt func(*Contract)

func WithLogger(logger *zap.Logger) Opt {
	return func(c *Contract) {
		c.logger = logger
	}
}

// WithCacheSize sets the number of cached getter responses. Zero disables the cache.
func WithCacheSize(size int) Opt {
	return func(c *Contract) {
		c.cacheSize = size
	}
}

// Contract is a handle of a deployed contract.
type Contract struct {
	node      Node
	address   types.AccountID
	logger    *zap.Logger
	cacheSize int

	cache    *lru.Cache[string, *Response]
	verifier *signing.EdVerifier
}

// New returns a handle of the contract at address. No request is made until Init.
func New(node Node, address types.AccountID, opts ...Opt) *Contract {
	c := &Contract{
		node:      node,
		address:   address,
		logger:    zap.NewNop(),
		cacheSize: DefaultCacheSize,
		verifier:  signing.NewEdVerifier(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheSize > 0 {
		cache, err := lru.New[string, *Response](c.cacheSize)
		if err != nil {
			c.logger.Panic("failed to create query cache", zap.Error(err))
		}
		c.cache = cache
	}
	c.logger = c.logger.With(log.ZShortStringer("contract", address))
	return c
}

// Address returns the contract account id.
func (c *Contract) Address() types.AccountID {
	return c.address
}

// Init fetches the contract account and checks that code is deployed at the address.
func (c *Contract) Init(ctx context.Context) (*types.Account, error) {
	account, err := c.Refresh(ctx)
	switch {
	case errors.Is(err, client.ErrNotFound):
		return nil, fmt.Errorf("%w: %s", ErrNotContract, c.address)
	case err != nil:
		return nil, err
	}
	code, err := c.node.ContractCode(ctx, c.address)
	switch {
	case errors.Is(err, client.ErrNotFound):
		return nil, fmt.Errorf("%w: %s", ErrNotContract, c.address)
	case err != nil:
		return nil, err
	case len(code) == 0:
		return nil, fmt.Errorf("%w: %s has no code", ErrNotContract, c.address)
	}
	c.logger.Debug("contract code fetched", zap.Int("size", len(code)))
	return account, nil
}

// Refresh fetches the contract account and drops cached getter responses.
func (c *Contract) Refresh(ctx context.Context) (*types.Account, error) {
	account, err := c.node.GetAccount(ctx, c.address)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Purge()
	}
	return account, nil
}

// Test simulates inv as signer against the latest state. Nothing is broadcast.
func (c *Contract) Test(ctx context.Context, signer Signer, inv Invocation) (*Response, error) {
	resp, err := c.node.Query(ctx, c.address, client.QueryRequest{
		Sender:     signer.AccountID(),
		Function:   inv.Function,
		Amount:     inv.Amount,
		GasLimit:   inv.GasLimit,
		GasDeposit: inv.GasDeposit,
		Params:     EncodeParams(inv.Params...),
	})
	if err != nil {
		queryCount.WithLabelValues(inv.Function, outcomeFailed).Inc()
		return nil, err
	}
	out := &Response{Result: resp.Result, Logs: resp.Logs}
	if out.Rejected() {
		queryCount.WithLabelValues(inv.Function, outcomeRejected).Inc()
		c.logger.Debug("simulation rejected",
			zap.String("function", inv.Function),
			zap.String("reason", out.Reason()),
		)
	} else {
		queryCount.WithLabelValues(inv.Function, outcomeOK).Inc()
	}
	return out, nil
}

// Query runs a read-only getter. Accepted responses are cached until the next Refresh
// and a rejection is returned as ErrQueryRejected.
func (c *Contract) Query(ctx context.Context, signer Signer, inv Invocation) (*Response, error) {
	key := cacheKey(signer.AccountID(), inv)
	if c.cache != nil {
		if resp, ok := c.cache.Get(key); ok {
			cacheHits.WithLabelValues(inv.Function).Inc()
			return resp, nil
		}
	}
	resp, err := c.Test(ctx, signer, inv)
	if err != nil {
		return nil, err
	}
	if resp.Rejected() {
		return nil, fmt.Errorf("%w: %s: %s", ErrQueryRejected, inv.Function, resp.Reason())
	}
	if c.cache != nil {
		c.cache.Add(key, resp)
	}
	return resp, nil
}

// Call signs inv as a transfer to the contract and broadcasts it. Signatures that do not
// verify for the signer's account are never broadcast.
// A returned receipt means the node accepted the transaction, not that it was applied.
func (c *Contract) Call(ctx context.Context, signer Signer, inv Invocation) (*Receipt, error) {
	payload := EncodePayload(c.address, inv)
	sender := signer.AccountID()
	sig := signer.Sign(signing.TRANSFER, payload)
	if !c.verifier.Verify(signing.TRANSFER, sender, payload, sig) {
		callCount.WithLabelValues(inv.Function, outcomeFailed).Inc()
		return nil, fmt.Errorf("%w: %s", ErrBadSignature, sender.ShortString())
	}
	receipt, err := c.node.SendTransaction(ctx, client.Transaction{
		Sender:    sender,
		Tag:       uint8(signing.TRANSFER),
		Payload:   payload,
		Signature: sig.Bytes(),
	})
	if err != nil {
		callCount.WithLabelValues(inv.Function, outcomeFailed).Inc()
		return nil, err
	}
	callCount.WithLabelValues(inv.Function, outcomeOK).Inc()
	c.logger.Info("contract call broadcast",
		zap.String("function", inv.Function),
		log.ZShortStringer("tx", receipt.ID),
	)
	return &Receipt{ID: receipt.ID, Critical: receipt.Critical}, nil
}

func cacheKey(sender types.AccountID, inv Invocation) string {
	var b strings.Builder
	b.WriteString(sender.String())
	b.WriteByte('|')
	b.WriteString(inv.Function)
	for _, v := range []uint64{inv.Amount, inv.GasLimit, inv.GasDeposit} {
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(v, 10))
	}
	b.WriteByte('|')
	b.WriteString(hex.EncodeToString(EncodeParams(inv.Params...)))
	return b.String()
}
