package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryMax = 2
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.RequestTimeout = 5 * time.Second
	cfg.HandshakeTimeout = 5 * time.Second
	cfg.RequestsPerSecond = 0
	return cfg
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	return newTestClientWithConfig(t, testConfig(), handler)
}

func newTestClientWithConfig(t *testing.T, cfg Config, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, cfg, WithLogger(zaptest.NewLogger(t)), withCustomHttpClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestParseHost(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		host string
		want string
		err  bool
	}{
		{host: "localhost:9000", want: "http://localhost:9000"},
		{host: " https://testnet.perlin.net ", want: "https://testnet.perlin.net"},
		{host: "", err: true},
		{host: "ftp://example.com", err: true},
		{host: "http://", err: true},
	} {
		t.Run(tc.host, func(t *testing.T) {
			t.Parallel()
			u, err := ParseHost(tc.host)
			if tc.err {
				require.ErrorIs(t, err, ErrInvalidHost)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, u.String())
		})
	}
}

func TestGetAccount(t *testing.T) {
	t.Parallel()
	id := types.AccountID{1, 2, 3}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != id.String() {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"balance": 10, "gas_balance": 250000, "stake": 1, "nonce": 7, "is_contract": false}`))
	})
	c := newTestClient(t, mux)

	t.Run("found", func(t *testing.T) {
		account, err := c.GetAccount(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, types.Account{
			PublicKey:  id,
			Balance:    10,
			GasBalance: 250000,
			Stake:      1,
			Nonce:      7,
		}, *account)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := c.GetAccount(context.Background(), types.AccountID{9})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRetriesReadRequests(t *testing.T) {
	t.Parallel()
	var attempts atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ContractCode(context.Background(), types.AccountID{1})
	require.Error(t, err)
	require.EqualValues(t, 3, attempts.Load())
}

func TestDoesNotRetryTransactions(t *testing.T) {
	t.Parallel()
	var attempts atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.SendTransaction(context.Background(), Transaction{Tag: 1})
	require.Error(t, err)
	require.EqualValues(t, 1, attempts.Load())
}

func TestRequestRateLimit(t *testing.T) {
	t.Parallel()
	var attempts atomic.Int32
	cfg := testConfig()
	cfg.RequestsPerSecond = 0.01
	cfg.RequestBurst = 1
	c := newTestClientWithConfig(t, cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte("00"))
	}))

	_, err := c.ContractCode(context.Background(), types.AccountID{1})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = c.ContractCode(ctx, types.AccountID{1})
	require.ErrorContains(t, err, "waiting for request slot")
	require.EqualValues(t, 1, attempts.Load())
}

func TestSendTransaction(t *testing.T) {
	t.Parallel()
	sender := types.AccountID{4}
	var received Transaction
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tx/send", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		id := types.TransactionID{0xaa}
		w.Write([]byte(`{"tx_id": "` + id.String() + `", "parent_ids": [], "is_critical": false}`))
	}))

	tx := Transaction{Sender: sender, Tag: 1, Payload: HexBytes{1, 2}, Signature: HexBytes{3}}
	receipt, err := c.SendTransaction(context.Background(), tx)
	require.NoError(t, err)
	require.Equal(t, types.TransactionID{0xaa}, receipt.ID)
	require.Equal(t, tx, received)
}

func TestContractCode(t *testing.T) {
	t.Parallel()
	code := []byte{0x00, 0x61, 0x73, 0x6d}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(code)
	}))

	got, err := c.ContractCode(context.Background(), types.AccountID{1})
	require.NoError(t, err)
	require.Equal(t, code, got)
}

func TestQuery(t *testing.T) {
	t.Parallel()
	contract := types.AccountID{7}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/contract/"+contract.String()+"/test", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req QueryRequest
		require.NoError(t, json.Unmarshal(body, &req))
		switch req.Function {
		case "get_candidates":
			w.Write([]byte(`{"result": null, "logs": ["Alice\nBob"]}`))
		case "send_vote":
			w.Write([]byte(`{"result": "This address has already voted.", "logs": []}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))

	resp, err := c.Query(context.Background(), contract, QueryRequest{Function: "get_candidates"})
	require.NoError(t, err)
	require.Nil(t, resp.Result)
	require.Equal(t, []string{"Alice\nBob"}, resp.Logs)

	resp, err = c.Query(context.Background(), contract, QueryRequest{Function: "send_vote", Params: HexBytes{1}})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	require.Equal(t, "This address has already voted.", *resp.Result)

	_, err = c.Query(context.Background(), contract, QueryRequest{Function: "unknown"})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestHexBytes(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(HexBytes{0xde, 0xad})
	require.NoError(t, err)
	require.Equal(t, `"dead"`, string(data))

	var b HexBytes
	require.Error(t, json.Unmarshal([]byte(`"zz"`), &b))
}
