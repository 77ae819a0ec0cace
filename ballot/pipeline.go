package ballot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/contract"
	"github.com/ballotpaper/go-ballotpaper/log"
)

const (
	// SendVoteFunction is the contract function that records a vote.
	SendVoteFunction = "send_vote"
	// DefaultGasLimit is the gas limit attached to a vote.
	DefaultGasLimit = 250000
	// DefaultMinBalance is the smallest wallet balance that may submit a vote.
	DefaultMinBalance = 2
)

type PipelineOpt func(*Pipeline)

func WithLogger(logger *zap.Logger) PipelineOpt {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithGas sets the gas limit and gas deposit attached to the vote.
func WithGas(limit, deposit uint64) PipelineOpt {
	return func(p *Pipeline) {
		p.gasLimit = limit
		p.gasDeposit = deposit
	}
}

// Pipeline submits a ballot: it simulates the vote first and only broadcasts it
// when the contract accepted the simulation.
type Pipeline struct {
	contract   contractAPI
	signer     contract.Signer
	gasLimit   uint64
	gasDeposit uint64
	logger     *zap.Logger
}

// NewPipeline returns a pipeline that votes on c as signer.
func NewPipeline(c contractAPI, signer contract.Signer, opts ...PipelineOpt) *Pipeline {
	p := &Pipeline{
		contract: c,
		signer:   signer,
		gasLimit: DefaultGasLimit,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GasLimit is the gas limit attached to votes.
func (p *Pipeline) GasLimit() uint64 {
	return p.gasLimit
}

// SendVote submits the preferences of b.
//
// A refusal by the contract returns a *RejectedError and leaves the preferences untouched.
// Failures to simulate or to broadcast return ErrSimulationFailed or ErrSubmissionFailure and
// also leave the ballot editable. On success the preferences are cleared and the ballot is
// Submitted.
func (p *Pipeline) SendVote(ctx context.Context, b *Ballot) (*contract.Receipt, error) {
	payload, err := b.begin()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	logger := p.logger.With(log.ZContext(ctx), log.ZShortStringer("voter", p.signer.AccountID()))
	inv := contract.Invocation{
		Function:   SendVoteFunction,
		GasLimit:   p.gasLimit,
		GasDeposit: p.gasDeposit,
		Params:     []contract.Param{contract.Bytes(payload)},
	}

	resp, err := p.contract.Test(ctx, p.signer, inv)
	if err != nil {
		b.move(Drafting)
		submitDuration.WithLabelValues("simulation_failed").Observe(time.Since(start).Seconds())
		logger.Warn("vote simulation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
	}
	if resp.Rejected() {
		b.move(Rejected)
		b.move(Drafting)
		submitDuration.WithLabelValues("rejected").Observe(time.Since(start).Seconds())
		logger.Info("vote rejected in simulation", zap.String("reason", resp.Reason()))
		return nil, &RejectedError{Message: resp.Reason()}
	}
	b.move(Simulated)

	b.move(Committing)
	receipt, err := p.contract.Call(ctx, p.signer, inv)
	if err != nil {
		b.move(Drafting)
		submitDuration.WithLabelValues("submission_failed").Observe(time.Since(start).Seconds())
		logger.Warn("vote broadcast failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailure, err)
	}
	b.submitted(receipt)
	submitDuration.WithLabelValues("submitted").Observe(time.Since(start).Seconds())
	logger.Info("vote submitted", log.ZShortStringer("tx", receipt.ID))
	return receipt, nil
}

// CheckFunds verifies that the voter can pay for a vote: the wallet holds at least minBalance
// and together with the contract gas balance covers gasLimit.
func CheckFunds(account, contractAccount types.Account, minBalance, gasLimit uint64) error {
	if account.Balance < minBalance {
		return fmt.Errorf("%w: balance %d below %d", ErrInsufficientBalance, account.Balance, minBalance)
	}
	if contractAccount.GasBalance < gasLimit && account.Balance < gasLimit-contractAccount.GasBalance {
		return fmt.Errorf("%w: balance %d and contract gas %d do not cover gas limit %d",
			ErrInsufficientBalance, account.Balance, contractAccount.GasBalance, gasLimit)
	}
	return nil
}

// IsRejection reports whether err is a contract refusal and returns its message.
func IsRejection(err error) (string, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message, true
	}
	return "", false
}
