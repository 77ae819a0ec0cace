// Package session connects a voter to a node, loads a ballot contract and keeps the local
// mirror of the voter account, the contract account and the tally up to date.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/ballot"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/contract"
	"github.com/ballotpaper/go-ballotpaper/log"
	"github.com/ballotpaper/go-ballotpaper/mirror"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

const (
	getVoteYear    = "get_vote_year"
	getLocation    = "get_location"
	getCandidates  = "get_candidates"
	getVoteResults = "get_vote_results"

	closeReason = "connection closing normally"
)

var (
	// ErrConnection is returned when a session could not be established. The session is reset.
	ErrConnection = errors.New("connection failed")
	// ErrContractLoad is returned when a contract could not be loaded. No contract is left loaded.
	ErrContractLoad = errors.New("contract load failed")
	// ErrNotConnected is returned by operations that need a connected session.
	ErrNotConnected = errors.New("not connected")
	// ErrNoContract is returned by operations that need a loaded contract.
	ErrNoContract = errors.New("no contract loaded")
)

// Dialer creates a node client for host.
type Dialer func(host string) (Client, error)

// Binder binds the contract at address using c.
type Binder func(c Client, address types.AccountID) Contract

type Opt func(*Session)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClientConfig configures the default dialer.
func WithClientConfig(cfg client.Config) Opt {
	return func(s *Session) {
		s.clientCfg = cfg
	}
}

func WithDialer(dial Dialer) Opt {
	return func(s *Session) {
		s.dial = dial
	}
}

func WithBinder(bind Binder) Opt {
	return func(s *Session) {
		s.bind = bind
	}
}

// WithResultsListener registers f to receive the tally every time it is replaced.
func WithResultsListener(f func([]types.VoteResult)) Opt {
	return func(s *Session) {
		s.listeners = append(s.listeners, f)
	}
}

// Session owns at most one connection to a node and at most one loaded contract.
type Session struct {
	cfg       Config
	clientCfg client.Config
	logger    *zap.Logger
	dial      Dialer
	bind      Binder
	listeners []func([]types.VoteResult)

	// opMu serializes Connect, Load and Reset.
	opMu sync.Mutex
	// handlerMu serializes push handlers.
	handlerMu sync.Mutex

	mu         sync.Mutex
	handle     *Handle
	results    []types.VoteResult
	generation uint64
}

// New returns a disconnected session.
func New(cfg Config, opts ...Opt) *Session {
	s := &Session{
		cfg:       cfg,
		clientCfg: client.DefaultConfig(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dial == nil {
		s.dial = func(host string) (Client, error) {
			return client.New(host, s.clientCfg, client.WithLogger(s.logger.Named("client")))
		}
	}
	if s.bind == nil {
		s.bind = func(c Client, address types.AccountID) Contract {
			return contract.New(c, address,
				contract.WithLogger(s.logger.Named("contract")),
				contract.WithCacheSize(s.cfg.QueryCacheSize),
			)
		}
	}
	return s
}

// Connect resets the session, derives the voter identity from secret, fetches the voter account
// and subscribes to its updates. Any failure leaves the session disconnected.
func (s *Session) Connect(ctx context.Context, host, secret string) (*types.Account, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.reset()

	if _, ok := log.ExtractSessionID(ctx); !ok {
		ctx = log.WithNewSessionID(ctx)
	}
	logger := s.logger.With(log.ZContext(ctx), zap.String("host", host))

	h, err := s.connect(ctx, host, secret, logger)
	if err != nil {
		logger.Warn("failed to connect", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	s.mu.Lock()
	s.handle = h
	s.generation++
	s.mu.Unlock()
	activeSessions.Inc()

	account := h.Account.Get()
	logger.Info("connected",
		log.ZShortStringer("account", account.PublicKey),
		zap.Uint64("balance", account.Balance),
	)
	return &account, nil
}

func (s *Session) connect(ctx context.Context, host, secret string, logger *zap.Logger) (*Handle, error) {
	signer, err := signing.NewEdSigner(signing.FromHex(secret))
	if err != nil {
		return nil, err
	}
	c, err := s.dial(host)
	if err != nil {
		return nil, err
	}
	id := signer.AccountID()
	snapshot, err := c.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	account := mirror.New(*snapshot)
	sub, err := c.PollAccounts(ctx, id, s.accountHandlers("account", id, account, logger))
	if err != nil {
		return nil, err
	}
	sessionID, _ := log.ExtractSessionID(ctx)
	return &Handle{
		SessionID:     sessionID,
		Host:          host,
		Signer:        signer,
		Client:        c,
		Account:       account,
		Subscriptions: Subscriptions{Account: sub},
	}, nil
}

// Load binds the contract at address, subscribes to its gas balance and to consensus rounds,
// and reads the ballot and the current tally. A previously loaded contract is torn down first.
func (s *Session) Load(ctx context.Context, address types.AccountID) (*ballot.Ballot, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	h := s.Handle()
	if h == nil {
		return nil, ErrNotConnected
	}
	if h.Contract != nil {
		s.closeSubscriptions(h.Subscriptions.Contract, h.Subscriptions.Consensus)
		h.Contract.cancel()
		h = h.withoutContract()
	}
	s.mu.Lock()
	s.handle = h
	s.results = nil
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	logger := s.logger.With(log.ZContext(ctx), log.ZShortStringer("contract", address))
	loaded, subs, results, err := s.load(ctx, h, address, gen, logger)
	if err != nil {
		logger.Warn("failed to load contract", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrContractLoad, err)
	}

	// listeners must see the initial tally before any refresh of this contract
	s.handlerMu.Lock()
	s.mu.Lock()
	if s.handle != h || s.generation != gen {
		s.mu.Unlock()
		s.handlerMu.Unlock()
		s.closeSubscriptions(subs.Contract, subs.Consensus)
		loaded.cancel()
		return nil, fmt.Errorf("%w: session changed while loading", ErrContractLoad)
	}
	s.handle = h.withContract(loaded, subs)
	s.results = results
	s.mu.Unlock()
	s.notify(results)
	s.handlerMu.Unlock()

	logger.Info("contract loaded",
		zap.String("year", loaded.Ballot.Year()),
		zap.String("location", loaded.Ballot.Location()),
		zap.Int("candidates", len(loaded.Ballot.Candidates())),
	)
	return loaded.Ballot, nil
}

func (s *Session) load(
	ctx context.Context,
	h *Handle,
	address types.AccountID,
	gen uint64,
	logger *zap.Logger,
) (*Loaded, Subscriptions, []types.VoteResult, error) {
	var subs Subscriptions
	binding := s.bind(h.Client, address)
	snapshot, err := binding.Init(ctx)
	if err != nil {
		return nil, subs, nil, err
	}
	account := mirror.New(*snapshot)

	subs.Contract, err = h.Client.PollAccounts(ctx, address, s.accountHandlers("contract", address, account, logger))
	if err != nil {
		return nil, subs, nil, err
	}
	subs.Consensus, err = h.Client.PollConsensus(ctx, client.ConsensusHandlers{
		OnRoundEnded:  func(ev client.RoundEvent) { s.onRoundEnded(gen, ev) },
		OnRoundPruned: func(ev client.PruneEvent) { s.onRoundPruned(ev) },
	})
	if err != nil {
		s.closeSubscriptions(subs.Contract)
		return nil, Subscriptions{}, nil, err
	}

	var (
		year, location string
		candidates     []types.Candidate
		results        []types.VoteResult
	)
	query := func(ctx context.Context, function string) (*contract.Response, error) {
		return binding.Query(ctx, h.Signer, contract.Invocation{Function: function})
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		resp, err := query(egCtx, getVoteYear)
		if err != nil {
			return err
		}
		year, err = contract.DecodeText(resp)
		return err
	})
	eg.Go(func() error {
		resp, err := query(egCtx, getLocation)
		if err != nil {
			return err
		}
		location, err = contract.DecodeText(resp)
		return err
	})
	eg.Go(func() error {
		resp, err := query(egCtx, getCandidates)
		if err != nil {
			return err
		}
		candidates, err = contract.DecodeCandidates(resp)
		return err
	})
	eg.Go(func() error {
		resp, err := query(egCtx, getVoteResults)
		if err != nil {
			return err
		}
		results, err = contract.DecodeResults(resp)
		return err
	})
	if err := eg.Wait(); err != nil {
		s.closeSubscriptions(subs.Contract, subs.Consensus)
		return nil, Subscriptions{}, nil, err
	}

	b, err := ballot.New(year, location, candidates)
	if err != nil {
		s.closeSubscriptions(subs.Contract, subs.Consensus)
		return nil, Subscriptions{}, nil, err
	}
	scope, cancel := context.WithCancel(context.WithoutCancel(ctx))
	return &Loaded{
		Address: address,
		Binding: binding,
		Account: account,
		Ballot:  b,
		Pipeline: ballot.NewPipeline(binding, h.Signer,
			ballot.WithLogger(s.logger.Named("ballot")),
			ballot.WithGas(s.cfg.GasLimit, s.cfg.GasDeposit),
		),
		generation: gen,
		ctx:        scope,
		cancel:     cancel,
	}, subs, results, nil
}

// Reset closes every subscription with a normal closure and then forgets the session.
// It is safe to call on a disconnected session.
func (s *Session) Reset() {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	h := s.Handle()
	if h == nil {
		return
	}
	s.closeSubscriptions(h.Subscriptions.all()...)
	if h.Contract != nil {
		h.Contract.cancel()
	}

	s.mu.Lock()
	s.handle = nil
	s.results = nil
	s.generation++
	s.mu.Unlock()
	activeSessions.Dec()
	s.logger.Debug("session reset", zap.String("host", h.Host))
}

func (s *Session) closeSubscriptions(subs ...client.Subscription) {
	var eg errgroup.Group
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		eg.Go(func() error {
			return sub.Close(client.CloseNormalClosure, closeReason)
		})
	}
	if err := eg.Wait(); err != nil {
		s.logger.Debug("failed to close subscription cleanly", zap.Error(err))
	}
}

// SetPreference ranks the candidate at index on the loaded ballot.
func (s *Session) SetPreference(index int, rank uint8) error {
	loaded, err := s.loaded()
	if err != nil {
		return err
	}
	return loaded.Ballot.SetPreference(index, rank)
}

// SendVote checks that the voter can afford the vote and submits the loaded ballot.
func (s *Session) SendVote(ctx context.Context) (*contract.Receipt, error) {
	s.mu.Lock()
	h := s.handle
	s.mu.Unlock()
	if h == nil {
		return nil, ErrNotConnected
	}
	if h.Contract == nil {
		return nil, ErrNoContract
	}
	b := h.Contract.Ballot
	switch {
	case b.Submitted():
		return nil, ballot.ErrAlreadySubmitted
	case b.State().InFlight():
		return nil, ballot.ErrBusy
	case !b.Voted():
		return nil, ballot.ErrNothingToSubmit
	}
	err := ballot.CheckFunds(h.Account.Get(), h.Contract.Account.Get(), s.cfg.MinBalance, s.cfg.GasLimit)
	if err != nil {
		return nil, err
	}
	return h.Contract.Pipeline.SendVote(log.WithSessionID(ctx, h.SessionID), b)
}

// Handle returns the current handle, nil when disconnected.
func (s *Session) Handle() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

// Connected reports whether the session holds a connection.
func (s *Session) Connected() bool {
	return s.Handle() != nil
}

// Account returns the mirrored voter account.
func (s *Session) Account() (types.Account, error) {
	h := s.Handle()
	if h == nil {
		return types.Account{}, ErrNotConnected
	}
	return h.Account.Get(), nil
}

// ContractAccount returns the mirrored contract account.
func (s *Session) ContractAccount() (types.Account, error) {
	loaded, err := s.loaded()
	if err != nil {
		return types.Account{}, err
	}
	return loaded.Account.Get(), nil
}

// Ballot returns the ballot of the loaded contract.
func (s *Session) Ballot() (*ballot.Ballot, error) {
	loaded, err := s.loaded()
	if err != nil {
		return nil, err
	}
	return loaded.Ballot, nil
}

// Results returns a copy of the latest tally.
func (s *Session) Results() []types.VoteResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.VoteResult(nil), s.results...)
}

func (s *Session) loaded() (*Loaded, error) {
	h := s.Handle()
	switch {
	case h == nil:
		return nil, ErrNotConnected
	case h.Contract == nil:
		return nil, ErrNoContract
	}
	return h.Contract, nil
}

func (s *Session) notify(results []types.VoteResult) {
	for _, f := range s.listeners {
		f(append([]types.VoteResult(nil), results...))
	}
}
