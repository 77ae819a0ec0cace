package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/seehuhn/mt19937"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/ballotpaper/go-ballotpaper/api/node/client"
	"github.com/ballotpaper/go-ballotpaper/ballot"
	"github.com/ballotpaper/go-ballotpaper/cmd"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/config"
	"github.com/ballotpaper/go-ballotpaper/contract"
	"github.com/ballotpaper/go-ballotpaper/receipts"
	"github.com/ballotpaper/go-ballotpaper/signing"
)

// fakeNode serves the subset of the node API used by the client.
type fakeNode struct {
	voter    types.AccountID
	contract types.AccountID

	mu   sync.Mutex
	sent []client.Transaction
}

func (n *fakeNode) transactions() []client.Transaction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]client.Transaction(nil), n.sent...)
}

func (n *fakeNode) handler(t *testing.T) http.Handler {
	writeJSON := func(w http.ResponseWriter, v any) {
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}
	upgrader := websocket.Upgrader{}
	poll := func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case n.voter.String():
			writeJSON(w, map[string]any{"balance": 1000, "nonce": 4})
		case n.contract.String():
			writeJSON(w, map[string]any{"gas_balance": 300000, "is_contract": true})
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("GET /contract/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != n.contract.String() {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("\x00asm"))
	})
	mux.HandleFunc("POST /contract/{id}/test", func(w http.ResponseWriter, r *http.Request) {
		var req client.QueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		resp := client.QueryResponse{Logs: []string{}}
		switch req.Function {
		case "get_vote_year":
			resp.Logs = []string{"2019"}
		case "get_location":
			resp.Logs = []string{"Singapore"}
		case "get_candidates":
			resp.Logs = []string{"Alice\nBob\nCarol"}
		case "get_vote_results":
			resp.Logs = []string{`[{"candidate":"Alice","points":7},{"candidate":"Bob","points":2}]`}
		case "send_vote":
			if reason := checkVote(req.Params); reason != "" {
				resp.Result = &reason
			}
		default:
			http.Error(w, "unknown function", http.StatusBadRequest)
			return
		}
		writeJSON(w, resp)
	})
	mux.HandleFunc("POST /tx/send", func(w http.ResponseWriter, r *http.Request) {
		var tx client.Transaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tx))
		n.mu.Lock()
		n.sent = append(n.sent, tx)
		n.mu.Unlock()
		writeJSON(w, client.TxReceipt{ID: types.TransactionID{0xab}, ParentIDs: []types.TransactionID{}})
	})
	mux.HandleFunc("/poll/accounts", poll)
	mux.HandleFunc("/poll/consensus", poll)
	return mux
}

// checkVote mirrors the contract: every candidate gets a distinct rank in 1..N.
func checkVote(params []byte) string {
	if len(params) < 4 {
		return "invalid parameters"
	}
	prefs := params[4 : 4+binary.LittleEndian.Uint32(params)]
	seen := map[byte]bool{}
	for _, p := range prefs {
		if p == 0 || int(p) > len(prefs) || seen[p] {
			return "This vote contains recurring vote number"
		}
		seen[p] = true
	}
	return ""
}

type testEnv struct {
	node    *fakeNode
	server  *httptest.Server
	secret  string
	dataDir string
	fs      afero.Fs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	rng := rand.New(mt19937.New())
	rng.Seed(1001)
	signer, err := signing.NewEdSigner(signing.WithKeyFromRand(rng))
	require.NoError(t, err)
	node := &fakeNode{voter: signer.AccountID(), contract: types.AccountID{0xba, 0x11, 0x07}}
	srv := httptest.NewServer(node.handler(t))
	t.Cleanup(srv.Close)
	return &testEnv{
		node:    node,
		server:  srv,
		secret:  hex.EncodeToString(signer.PrivateKey()),
		dataDir: t.TempDir(),
		fs:      afero.NewMemMapFs(),
	}
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := newCommand(e.fs)
	out := &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(out)
	c.SetArgs(append(args,
		"--host", e.server.URL,
		"--secret", e.secret,
		"--contract", e.node.contract.String(),
		"--data-dir", e.dataDir,
		"--log-level", "warn",
	))
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAccountCommand(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "account")
	require.NoError(t, err)
	require.Contains(t, out, env.node.voter.String())
	require.Regexp(t, `balance:\s+1000`, out)
	require.Regexp(t, `nonce:\s+4`, out)
}

func TestShowCommand(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "show")
	require.NoError(t, err)
	require.Contains(t, out, "Singapore 2019")
	require.Contains(t, out, "1. Alice")
	require.Contains(t, out, "3. Carol")
	require.Regexp(t, `gas balance:\s+300000`, out)
	require.Regexp(t, `Alice\s+7`, out)
}

func TestVoteCommand(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "vote", "Alice", "Carol", "Bob")
	require.NoError(t, err)
	require.Contains(t, out, "vote submitted in transaction "+types.TransactionID{0xab}.String())

	sent := env.node.transactions()
	require.Len(t, sent, 1)
	require.Equal(t, env.node.voter, sent[0].Sender)
	require.EqualValues(t, signing.TRANSFER, sent[0].Tag)
	want := contract.EncodePayload(env.node.contract, contract.Invocation{
		Function: ballot.SendVoteFunction,
		GasLimit: ballot.DefaultGasLimit,
		Params:   []contract.Param{contract.Bytes([]byte{3, 1, 2})},
	})
	require.Equal(t, want, []byte(sent[0].Payload))

	receipt, err := receipts.NewStore(env.dataDir).Get(env.node.contract, env.node.voter)
	require.NoError(t, err)
	require.Equal(t, types.TransactionID{0xab}, receipt.TxID)
	require.Equal(t, []int{3, 1, 2}, receipt.Preferences)

	// a second vote is refused locally
	_, err = env.run(t, "vote", "Bob", "Alice", "Carol")
	require.ErrorIs(t, err, receipts.ErrAlreadyVoted)
	require.Len(t, env.node.transactions(), 1)

	_, err = env.run(t, "vote", "--force", "--ranks", "1,2,3")
	require.NoError(t, err)
	require.Len(t, env.node.transactions(), 2)
}

func TestVoteRejected(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "vote", "--ranks", "1,1,3")
	require.ErrorIs(t, err, ballot.ErrSimulationRejected)
	require.Contains(t, out, "vote rejected: This vote contains recurring vote number")
	require.Empty(t, env.node.transactions())

	_, err = receipts.NewStore(env.dataDir).Get(env.node.contract, env.node.voter)
	require.ErrorIs(t, err, receipts.ErrNotFound)
}

func TestVoteArguments(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "vote")
	require.Error(t, err)
	_, err = env.run(t, "vote", "Alice", "--ranks", "1,2,3")
	require.Error(t, err)
	_, err = env.run(t, "vote", "--ranks", "1,2")
	require.Error(t, err)
	_, err = env.run(t, "vote", "Dave")
	require.ErrorIs(t, err, ballot.ErrUnknownCandidate)
	require.Empty(t, env.node.transactions())
}

func TestConfigFileAndFlags(t *testing.T) {
	env := newTestEnv(t)
	content := `
host = "http://127.0.0.1:1"
secret = "` + env.secret + `"

[contract-session]
gas-limit = 1000
`
	require.NoError(t, afero.WriteFile(env.fs, "/ballot.toml", []byte(content), 0o600))

	// the host flag overrides the unreachable host in the file
	out, err := env.run(t, "account", "--config", "/ballot.toml")
	require.NoError(t, err)
	require.Contains(t, out, env.node.voter.String())

	require.NoError(t, afero.WriteFile(env.fs, "/unknown.toml", []byte("colour = \"red\"\n"), 0o600))
	_, err = env.run(t, "account", "--config", "/unknown.toml")
	require.ErrorContains(t, err, "unmarshal config")
}

func TestLoadConfigPreset(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ballot.toml", []byte("preset = \"standalone\"\n[logging]\nlevel = \"error\"\n"), 0o600))

	conf := config.DefaultConfig()
	require.NoError(t, loadConfig(fs, &conf, "", "/ballot.toml"))
	require.Equal(t, "standalone", conf.Preset)
	require.Equal(t, filepath.Join(os.TempDir(), "ballotpaper"), conf.DataDir)
	require.Equal(t, "error", conf.Logging.Level)

	conf = config.DefaultConfig()
	require.Error(t, loadConfig(fs, &conf, "nonexistent", ""))
}

func TestVersion(t *testing.T) {
	cmd.Version = "v1.2.3"
	t.Cleanup(func() { cmd.Version = "" })

	c := newCommand(afero.NewMemMapFs())
	out := &bytes.Buffer{}
	c.SetOut(out)
	c.SetArgs([]string{"version"})
	require.NoError(t, c.Execute())
	require.Equal(t, "v1.2.3\n", out.String())
}
