package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

type closeFrame struct {
	code   int
	reason string
}

// pushServer writes messages to every subscriber and reports the close frame it receives.
func pushServer(t *testing.T, path string, messages []string, closed chan<- closeFrame) http.Handler {
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for _, msg := range messages {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				var ce *websocket.CloseError
				if errors.As(err, &ce) {
					closed <- closeFrame{code: ce.Code, reason: ce.Text}
				}
				return
			}
		}
	})
	return mux
}

func TestPollAccounts(t *testing.T) {
	t.Parallel()
	id := types.AccountID{1}
	closed := make(chan closeFrame, 1)
	c := newTestClient(t, pushServer(t, "/poll/accounts", []string{
		`{"mod": "accounts", "event": "balance_updated", "account_id": "` + id.String() + `", "balance": 5}`,
		`not json`,
		`[{"mod": "accounts", "event": "stake_updated", "stake": 3},` +
			`{"mod": "accounts", "event": "gas_balance_updated", "gas_balance": 100}]`,
	}, closed))

	events := make(chan AccountEvent, 10)
	record := func(ev AccountEvent) { events <- ev }
	sub, err := c.PollAccounts(context.Background(), id, AccountHandlers{
		BalanceUpdated:    record,
		GasBalanceUpdated: record,
	})
	require.NoError(t, err)

	balance := <-events
	require.Equal(t, BalanceUpdated, balance.Kind)
	require.Equal(t, id, balance.AccountID)
	require.NotNil(t, balance.Delta.Balance)
	require.EqualValues(t, 5, *balance.Delta.Balance)

	// stake_updated has no handler and is dropped
	gas := <-events
	require.Equal(t, GasBalanceUpdated, gas.Kind)
	require.EqualValues(t, 100, *gas.Delta.GasBalance)
	require.Nil(t, gas.Delta.Balance)

	require.NoError(t, sub.Close(CloseNormalClosure, "connection closing normally"))
	select {
	case frame := <-closed:
		require.Equal(t, closeFrame{code: websocket.CloseNormalClosure, reason: "connection closing normally"}, frame)
	case <-time.After(5 * time.Second):
		require.Fail(t, "server did not receive close frame")
	}
	require.NoError(t, sub.Close(CloseNormalClosure, "again"))
}

func TestPollConsensus(t *testing.T) {
	t.Parallel()
	closed := make(chan closeFrame, 1)
	c := newTestClient(t, pushServer(t, "/poll/consensus", []string{
		`{"mod": "consensus", "event": "round_end", "old_round": 4, "new_round": 5, "num_applied_tx": 2}`,
		`{"mod": "consensus", "event": "prune", "current_round_id": 5, "pruned_round_id": 1}`,
		`{"mod": "consensus", "event": "something_else"}`,
		`{"mod": "consensus", "event": "round_end", "old_round": 5, "new_round": 6}`,
	}, closed))

	rounds := make(chan RoundEvent, 10)
	prunes := make(chan PruneEvent, 10)
	sub, err := c.PollConsensus(context.Background(), ConsensusHandlers{
		OnRoundEnded:  func(ev RoundEvent) { rounds <- ev },
		OnRoundPruned: func(ev PruneEvent) { prunes <- ev },
	})
	require.NoError(t, err)
	t.Cleanup(func() { sub.Close(CloseNormalClosure, "") })

	require.Equal(t, RoundEvent{OldRound: 4, NewRound: 5, NumApplied: 2}, <-rounds)
	require.Equal(t, PruneEvent{CurrentRound: 5, PrunedRound: 1}, <-prunes)
	require.Equal(t, RoundEvent{OldRound: 5, NewRound: 6}, <-rounds)
}

func TestPollDialFailure(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.NotFoundHandler())
	_, err := c.PollConsensus(context.Background(), ConsensusHandlers{})
	require.Error(t, err)
}

func TestWsURL(t *testing.T) {
	t.Parallel()
	c, err := New("https://testnet.perlin.net", DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, "wss://testnet.perlin.net/poll/consensus", c.wsURL("/poll/consensus", nil))
}
