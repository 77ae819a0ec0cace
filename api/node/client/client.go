// Package client talks to a ledger node: account snapshots, contract
// simulation, transaction broadcast and push subscriptions.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

var (
	ErrInvalidHost    = errors.New("invalid host")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)

// A wrapper around zap.Logger to make it compatible with
// retryablehttp.LeveledLogger interface.
type retryableHttpLogger struct {
	inner *zap.Logger
}

func (r retryableHttpLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHttpLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHttpLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHttpLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

// Client is an HTTP and websocket client of a single node.
type Client struct {
	baseURL *url.URL
	// client is used for read-only requests and retries them.
	client *retryablehttp.Client
	// sendClient broadcasts transactions and never retries.
	sendClient *retryablehttp.Client
	dialer     *websocket.Dialer
	limiter    *rate.Limiter
	logger     *zap.Logger
}

type Opt func(*Client)

func WithLogger(logger *zap.Logger) Opt {
	return func(c *Client) {
		c.logger = logger
		for _, rc := range []*retryablehttp.Client{c.client, c.sendClient} {
			rc.Logger = &retryableHttpLogger{inner: logger}
			rc.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
				logger.Debug(
					"response received",
					zap.Stringer("url", resp.Request.URL),
					zap.Int("status", resp.StatusCode),
				)
			}
		}
	}
}

func withCustomHttpClient(client *http.Client) Opt {
	return func(c *Client) {
		c.client.HTTPClient = client
		c.sendClient.HTTPClient = client
	}
}

// ParseHost normalizes a host string into a base URL. A missing scheme defaults to http.
func ParseHost(host string) (*url.URL, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidHost)
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHost, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidHost, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidHost, host)
	}
	return u, nil
}

// New returns a client of the node at host. No request is made.
func New(host string, cfg Config, opts ...Opt) (*Client, error) {
	baseURL, err := ParseHost(host)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	c := &Client{
		baseURL: baseURL,
		client: &retryablehttp.Client{
			HTTPClient:   httpClient,
			RetryMax:     cfg.RetryMax,
			RetryWaitMin: cfg.RetryWaitMin,
			RetryWaitMax: cfg.RetryWaitMax,
			Backoff:      retryablehttp.LinearJitterBackoff,
			CheckRetry:   retryablehttp.DefaultRetryPolicy,
		},
		sendClient: &retryablehttp.Client{
			HTTPClient: httpClient,
			RetryMax:   0,
			Backoff:    retryablehttp.DefaultBackoff,
			CheckRetry: retryablehttp.DefaultRetryPolicy,
		},
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.HandshakeTimeout,
		},
		limiter: rate.NewLimiter(cfg.limit(), max(cfg.RequestBurst, 1)),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Debug(
		"created node client",
		zap.Stringer("url", baseURL),
		zap.Int("max retries", c.client.RetryMax),
		zap.Duration("min retry wait", c.client.RetryWaitMin),
		zap.Duration("max retry wait", c.client.RetryWaitMax),
		zap.Float64("requests per second", float64(c.limiter.Limit())),
	)
	return c, nil
}

// GetAccount fetches the current snapshot of an account.
func (c *Client) GetAccount(ctx context.Context, id types.AccountID) (*types.Account, error) {
	var account types.Account
	if err := c.req(ctx, http.MethodGet, "/accounts/"+id.String(), nil, &account, c.client); err != nil {
		return nil, fmt.Errorf("getting account %s: %w", id.ShortString(), err)
	}
	account.PublicKey = id
	return &account, nil
}

// ContractCode fetches the code of a deployed contract.
func (c *Client) ContractCode(ctx context.Context, id types.AccountID) ([]byte, error) {
	var code []byte
	if err := c.req(ctx, http.MethodGet, "/contract/"+id.String(), nil, &code, c.client); err != nil {
		return nil, fmt.Errorf("getting contract %s: %w", id.ShortString(), err)
	}
	return code, nil
}

// Query simulates a contract function against the latest state. Nothing is broadcast.
func (c *Client) Query(ctx context.Context, contract types.AccountID, req QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	path := "/contract/" + contract.String() + "/test"
	if err := c.req(ctx, http.MethodPost, path, &req, &resp, c.client); err != nil {
		return nil, fmt.Errorf("querying %s on %s: %w", req.Function, contract.ShortString(), err)
	}
	return &resp, nil
}

// SendTransaction broadcasts a signed transaction. A nil error means the node accepted it,
// not that it was finalized.
func (c *Client) SendTransaction(ctx context.Context, tx Transaction) (*TxReceipt, error) {
	var receipt TxReceipt
	if err := c.req(ctx, http.MethodPost, "/tx/send", &tx, &receipt, c.sendClient); err != nil {
		return nil, fmt.Errorf("sending transaction: %w", err)
	}
	return &receipt, nil
}

func (c *Client) req(
	ctx context.Context,
	method, path string,
	reqBody, resBody any,
	client *retryablehttp.Client,
) error {
	var body any
	if reqBody != nil {
		jsonReqBody, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		body = jsonReqBody
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for request slot: %w", err)
	}
	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body (%w)", err)
	}

	if res.StatusCode != http.StatusOK {
		c.logger.Debug("node request failed", zap.String("status", res.Status), zap.String("body", string(data)))
	}

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return fmt.Errorf("%w: response status code: %s, body: %s", ErrInvalidRequest, res.Status, string(data))
	case http.StatusNotFound:
		return fmt.Errorf("%w: response status code: %s", ErrNotFound, res.Status)
	default:
		return fmt.Errorf("unrecognized error: status code: %s, body: %s", res.Status, string(data))
	}

	switch dst := resBody.(type) {
	case nil:
	case *[]byte:
		*dst = data
	default:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(resBody); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}
