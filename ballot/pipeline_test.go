package ballot

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/seehuhn/mt19937"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/contract"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

type testPipeline struct {
	*Pipeline
	contract *MockcontractAPI
	signer   *signing.EdSigner
}

func newTestPipeline(t *testing.T) *testPipeline {
	t.Helper()
	rng := rand.New(mt19937.New())
	rng.Seed(1001)
	signer, err := signing.NewEdSigner(signing.WithKeyFromRand(rng))
	require.NoError(t, err)
	c := NewMockcontractAPI(gomock.NewController(t))
	return &testPipeline{
		Pipeline: NewPipeline(c, signer, WithLogger(zaptest.NewLogger(t))),
		contract: c,
		signer:   signer,
	}
}

func ptr[T any](v T) *T { return &v }

func voteFor(prefs ...byte) contract.Invocation {
	return contract.Invocation{
		Function: SendVoteFunction,
		GasLimit: DefaultGasLimit,
		Params:   []contract.Param{contract.Bytes(prefs)},
	}
}

func fill(t *testing.T, b *Ballot, prefs ...uint8) {
	t.Helper()
	for i, r := range prefs {
		require.NoError(t, b.SetPreference(i, r))
	}
}

func TestSendVoteRejected(t *testing.T) {
	p := newTestPipeline(t)
	b := newBallot(t, "2019", "Singapore", candidates("A", "B"))
	fill(t, b, 1, 1)

	p.contract.EXPECT().Test(gomock.Any(), p.signer, voteFor(1, 1)).
		Return(&contract.Response{Result: ptr("This vote contains recurring vote number")}, nil)

	_, err := p.SendVote(context.Background(), b)
	require.ErrorIs(t, err, ErrSimulationRejected)
	msg, ok := IsRejection(err)
	require.True(t, ok)
	require.Equal(t, "This vote contains recurring vote number", msg)

	require.False(t, b.Submitted())
	require.True(t, b.Voted())
	require.Equal(t, Drafting, b.State())
	require.Equal(t, types.Preferences{1, 1}, b.Preferences())
	require.Nil(t, b.Receipt())

	// the voter corrects the ballot and retries
	require.NoError(t, b.SetPreference(1, 2))
	p.contract.EXPECT().Test(gomock.Any(), p.signer, voteFor(1, 2)).Return(&contract.Response{}, nil)
	p.contract.EXPECT().Call(gomock.Any(), p.signer, voteFor(1, 2)).Return(&contract.Receipt{}, nil)
	_, err = p.SendVote(context.Background(), b)
	require.NoError(t, err)
	require.True(t, b.Submitted())
}

func TestSendVoteSubmitted(t *testing.T) {
	p := newTestPipeline(t)
	b := newBallot(t, "2019", "Singapore", candidates("A", "B", "C"))
	fill(t, b, 3, 1, 2)

	receipt := &contract.Receipt{ID: types.TransactionID{1}}
	gomock.InOrder(
		p.contract.EXPECT().Test(gomock.Any(), p.signer, voteFor(3, 1, 2)).
			DoAndReturn(func(context.Context, contract.Signer, contract.Invocation) (*contract.Response, error) {
				require.Equal(t, Simulating, b.State())
				return &contract.Response{Logs: []string{}}, nil
			}),
		p.contract.EXPECT().Call(gomock.Any(), p.signer, voteFor(3, 1, 2)).
			DoAndReturn(func(context.Context, contract.Signer, contract.Invocation) (*contract.Receipt, error) {
				require.Equal(t, Committing, b.State())
				return receipt, nil
			}),
	)

	got, err := p.SendVote(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, receipt, got)
	require.Equal(t, types.Preferences{0, 0, 0}, b.Preferences())
	require.False(t, b.Voted())
	require.True(t, b.Submitted())
	require.Equal(t, receipt, b.Receipt())

	_, err = p.SendVote(context.Background(), b)
	require.ErrorIs(t, err, ErrAlreadySubmitted)
	require.ErrorIs(t, b.SetPreference(0, 1), ErrAlreadySubmitted)
	require.ErrorIs(t, b.SetOrder("A"), ErrAlreadySubmitted)
}

func TestSendVoteSubmissionFailure(t *testing.T) {
	p := newTestPipeline(t)
	b := newBallot(t, "", "", candidates("A", "B"))
	fill(t, b, 2, 1)

	failure := errors.New("connection reset")
	p.contract.EXPECT().Test(gomock.Any(), p.signer, voteFor(2, 1)).Return(&contract.Response{}, nil)
	p.contract.EXPECT().Call(gomock.Any(), p.signer, voteFor(2, 1)).Return(nil, failure)

	_, err := p.SendVote(context.Background(), b)
	require.ErrorIs(t, err, ErrSubmissionFailure)
	require.ErrorIs(t, err, failure)
	require.Equal(t, Drafting, b.State())
	require.False(t, b.Submitted())
	require.Equal(t, types.Preferences{2, 1}, b.Preferences())
}

func TestSendVoteSimulationFailure(t *testing.T) {
	p := newTestPipeline(t)
	b := newBallot(t, "", "", candidates("A", "B"))
	fill(t, b, 2, 1)

	failure := errors.New("timeout")
	p.contract.EXPECT().Test(gomock.Any(), p.signer, voteFor(2, 1)).Return(nil, failure)

	_, err := p.SendVote(context.Background(), b)
	require.ErrorIs(t, err, ErrSimulationFailed)
	require.NotErrorIs(t, err, ErrSimulationRejected)
	require.Equal(t, Drafting, b.State())
	require.Equal(t, types.Preferences{2, 1}, b.Preferences())
}

func TestSendVoteNothingToSubmit(t *testing.T) {
	p := newTestPipeline(t)
	b := newBallot(t, "", "", candidates("A", "B"))
	_, err := p.SendVote(context.Background(), b)
	require.ErrorIs(t, err, ErrNothingToSubmit)
}

func TestSendVoteBusy(t *testing.T) {
	p := newTestPipeline(t)
	b := newBallot(t, "", "", candidates("A", "B"))
	fill(t, b, 1, 2)

	p.contract.EXPECT().Test(gomock.Any(), p.signer, voteFor(1, 2)).
		DoAndReturn(func(ctx context.Context, _ contract.Signer, _ contract.Invocation) (*contract.Response, error) {
			require.ErrorIs(t, b.SetPreference(0, 2), ErrBusy)
			_, err := p.SendVote(ctx, b)
			require.ErrorIs(t, err, ErrBusy)
			return &contract.Response{Result: ptr("no")}, nil
		})

	_, err := p.SendVote(context.Background(), b)
	require.ErrorIs(t, err, ErrSimulationRejected)
	require.Equal(t, types.Preferences{1, 2}, b.Preferences())
}

func TestWithGas(t *testing.T) {
	p := NewPipeline(nil, nil, WithGas(1000, 5))
	require.EqualValues(t, 1000, p.GasLimit())
	require.EqualValues(t, 5, p.gasDeposit)
}

func TestCheckFunds(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		balance uint64
		gas     uint64
		err     bool
	}{
		{desc: "enough balance", balance: 250000},
		{desc: "gas covers the rest", balance: 2, gas: 249998},
		{desc: "below min balance", balance: 1, gas: 1_000_000, err: true},
		{desc: "short of gas limit", balance: 2, gas: 249997, err: true},
		{desc: "large gas balance", balance: 2, gas: ^uint64(0)},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			err := CheckFunds(
				types.Account{Balance: tc.balance},
				types.Account{GasBalance: tc.gas},
				DefaultMinBalance,
				DefaultGasLimit,
			)
			if tc.err {
				require.ErrorIs(t, err, ErrInsufficientBalance)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
