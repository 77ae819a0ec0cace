package session

import (
	"go.uber.org/zap"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/contract"
	"github.com/ballotpaper/go-ballotpaper/mirror"
)

// accountHandlers merges every account delta pushed for id into m.
func (s *Session) accountHandlers(source string, id types.AccountID, m *mirror.Mirror, logger *zap.Logger) client.AccountHandlers {
	merge := func(ev client.AccountEvent) {
		s.handlerMu.Lock()
		defer s.handlerMu.Unlock()
		if !ev.AccountID.IsEmpty() && ev.AccountID != id {
			return
		}
		eventCount.WithLabelValues(source, string(ev.Kind)).Inc()
		account := m.Apply(ev.Delta)
		logger.Debug("account updated",
			zap.String("source", source),
			zap.String("event", string(ev.Kind)),
			zap.Uint64("balance", account.Balance),
			zap.Uint64("gas_balance", account.GasBalance),
		)
	}
	return client.AccountHandlers{
		client.BalanceUpdated:    merge,
		client.GasBalanceUpdated: merge,
		client.StakeUpdated:      merge,
		client.RewardUpdated:     merge,
		client.NonceUpdated:      merge,
		client.NumPagesUpdated:   merge,
	}
}

// onRoundEnded refreshes the contract and replaces the tally. Rounds that arrive while no
// contract of generation gen is loaded are ignored.
func (s *Session) onRoundEnded(gen uint64, ev client.RoundEvent) {
	s.handlerMu.Lock()
	defer s.handlerMu.Unlock()
	eventCount.WithLabelValues("consensus", string(client.RoundEnded)).Inc()

	h, loaded := s.current(gen)
	if loaded == nil {
		refreshCount.WithLabelValues("skipped").Inc()
		return
	}
	logger := s.logger.With(
		zap.String("sessionId", h.SessionID),
		zap.Stringer("round", ev.NewRound),
	)
	if _, err := loaded.Binding.Refresh(loaded.ctx); err != nil {
		refreshCount.WithLabelValues("failed").Inc()
		logger.Warn("failed to refresh contract", zap.Error(err))
		return
	}
	resp, err := loaded.Binding.Query(loaded.ctx, h.Signer, contract.Invocation{Function: getVoteResults})
	if err != nil {
		refreshCount.WithLabelValues("failed").Inc()
		logger.Warn("failed to query results", zap.Error(err))
		return
	}
	results, err := contract.DecodeResults(resp)
	if err != nil {
		refreshCount.WithLabelValues("failed").Inc()
		logger.Warn("failed to decode results", zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.handle == nil || s.handle.Contract != loaded {
		s.mu.Unlock()
		refreshCount.WithLabelValues("stale").Inc()
		return
	}
	s.results = results
	s.mu.Unlock()

	refreshCount.WithLabelValues("ok").Inc()
	logger.Debug("results refreshed", zap.Int("candidates", len(results)))
	s.notify(results)
}

func (s *Session) onRoundPruned(ev client.PruneEvent) {
	eventCount.WithLabelValues("consensus", string(client.RoundPruned)).Inc()
	s.logger.Debug("round pruned",
		zap.Stringer("current", ev.CurrentRound),
		zap.Stringer("pruned", ev.PrunedRound),
	)
}

// current returns the handle and its loaded contract when the contract of generation gen is
// still installed.
func (s *Session) current(gen uint64) (*Handle, *Loaded) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.handle
	if h == nil || h.Contract == nil || h.Contract.generation != gen {
		return h, nil
	}
	return h, h.Contract
}
