package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

const (
	// CloseNormalClosure is the close code sent when a subscription is closed on purpose.
	CloseNormalClosure = websocket.CloseNormalClosure

	closeTimeout = time.Second
)

// Subscription is an open push channel from the node.
type Subscription interface {
	// Close sends a close frame with code and reason and releases the connection.
	// It is safe to call more than once.
	Close(code int, reason string) error
}

// PollAccounts subscribes to updates of the account id. Each event is passed to the handler
// registered for its kind; unknown kinds are dropped.
func (c *Client) PollAccounts(ctx context.Context, id types.AccountID, handlers AccountHandlers) (Subscription, error) {
	query := url.Values{}
	query.Set("id", id.String())
	logger := c.logger.With(zap.String("poll", "accounts"), zap.Stringer("account", id))
	return c.poll(ctx, "/poll/accounts", query, logger, func(raw json.RawMessage) {
		var msg accountMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Debug("malformed account event", zap.Error(err))
			return
		}
		handler, ok := handlers[msg.Event]
		if !ok || handler == nil {
			logger.Debug("ignoring account event", zap.String("event", string(msg.Event)))
			return
		}
		handler(AccountEvent{Kind: msg.Event, AccountID: msg.AccountID, Delta: msg.AccountDelta})
	})
}

// PollConsensus subscribes to consensus round notifications.
func (c *Client) PollConsensus(ctx context.Context, handlers ConsensusHandlers) (Subscription, error) {
	logger := c.logger.With(zap.String("poll", "consensus"))
	return c.poll(ctx, "/poll/consensus", nil, logger, func(raw json.RawMessage) {
		var msg consensusMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Debug("malformed consensus event", zap.Error(err))
			return
		}
		switch {
		case msg.Event == RoundEnded && handlers.OnRoundEnded != nil:
			handlers.OnRoundEnded(RoundEvent{
				OldRound:    types.RoundID(msg.OldRound),
				NewRound:    types.RoundID(msg.NewRound),
				NumApplied:  msg.NumApplied,
				NumRejected: msg.NumRejected,
				NumIgnored:  msg.NumIgnored,
			})
		case msg.Event == RoundPruned && handlers.OnRoundPruned != nil:
			handlers.OnRoundPruned(PruneEvent{
				CurrentRound: types.RoundID(msg.CurrentRound),
				PrunedRound:  types.RoundID(msg.PrunedRound),
			})
		default:
			logger.Debug("ignoring consensus event", zap.String("event", string(msg.Event)))
		}
	})
}

func (c *Client) wsURL(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) poll(
	ctx context.Context,
	path string,
	query url.Values,
	logger *zap.Logger,
	dispatch func(json.RawMessage),
) (Subscription, error) {
	conn, resp, err := c.dialer.DialContext(ctx, c.wsURL(path, query), nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", path, err)
	}
	sub := &subscription{
		conn:   conn,
		logger: logger,
		done:   make(chan struct{}),
	}
	go sub.run(dispatch)
	logger.Debug("subscribed")
	return sub, nil
}

type subscription struct {
	conn   *websocket.Conn
	logger *zap.Logger

	once     sync.Once
	closeErr error
	done     chan struct{}
}

func (s *subscription) run(dispatch func(json.RawMessage)) {
	defer close(s.done)
	for {
		_, data, err := s.conn.ReadMessage()
		switch {
		case err == nil:
		case websocket.IsCloseError(err, websocket.CloseNormalClosure), errors.Is(err, net.ErrClosed):
			s.logger.Debug("subscription closed")
			return
		default:
			s.logger.Warn("subscription terminated", zap.Error(err))
			return
		}
		items, err := splitItems(data)
		if err != nil {
			s.logger.Debug("malformed message", zap.Error(err))
			continue
		}
		for _, item := range items {
			dispatch(item)
		}
	}
}

// Close implements Subscription.
func (s *subscription) Close(code int, reason string) error {
	s.once.Do(func() {
		select {
		case <-s.done:
			// the reader is gone, the peer will not read a close frame
		default:
			msg := websocket.FormatCloseMessage(code, reason)
			err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
			if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				s.closeErr = fmt.Errorf("sending close frame: %w", err)
			}
		}
		if err := s.conn.Close(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
	})
	return s.closeErr
}

// splitItems accepts either a single JSON object or an array of objects.
func splitItems(data []byte) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	if !json.Valid(data) {
		return nil, errors.New("invalid json")
	}
	return []json.RawMessage{data}, nil
}
