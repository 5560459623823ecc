package datapoint

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/logging"
	"github.com/flixhummel/mcduterm/internal/protocol"
)

const (
	// DefaultTimeout is the default per-request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultDialTimeout is the default WebSocket dial timeout
	DefaultDialTimeout = 10 * time.Second

	// DefaultCacheDuration is how long datapoint metadata stays cached.
	// Metadata changes only when the remote object tree is re-provisioned,
	// so a short cache removes a round trip from every line-key press.
	DefaultCacheDuration = 30 * time.Second

	// ConnectAttempts is how many dials Connect makes before giving up on
	// a transient failure.
	ConnectAttempts = 3

	// DefaultRetryDelay separates dial attempts.
	DefaultRetryDelay = 2 * time.Second
)

// Client is a Store backed by a WebSocket connection to a bridge process.
// Requests carry sequence numbers; a single reader goroutine routes replies
// to waiting callers and forwards unsolicited updates to OnUpdate.
type Client struct {
	// URL is the bridge WebSocket endpoint (e.g. "ws://192.168.1.50:8473/ws")
	URL string

	// Timeout is the per-request timeout
	Timeout time.Duration

	// CacheDuration is how long metadata is cached (0 = no cache)
	CacheDuration time.Duration

	// RetryDelay separates Connect dial attempts
	RetryDelay time.Duration

	// OnUpdate, if set, is called for every unsolicited value update
	// pushed by the bridge. Called from the reader goroutine.
	OnUpdate func(addr string, v Value)

	conn *websocket.Conn

	mu      sync.Mutex
	seq     uint64
	pending map[uint64]chan *protocol.Message
	closed  bool

	cacheMu   sync.RWMutex
	metaCache map[string]cachedMeta
}

type cachedMeta struct {
	meta    Metadata
	fetched time.Time
}

// NewClient creates a client for the given bridge endpoint. Call Connect
// before using the Store methods.
func NewClient(url string) *Client {
	return &Client{
		URL:           url,
		Timeout:       DefaultTimeout,
		CacheDuration: DefaultCacheDuration,
		RetryDelay:    DefaultRetryDelay,
		pending:       make(map[uint64]chan *protocol.Message),
		metaCache:     make(map[string]cachedMeta),
	}
}

// Connect dials the bridge and starts the reader goroutine. Transient dial
// failures (refused, timed out) are retried before giving up; the bridge
// process often comes up a moment after the terminal.
func (c *Client) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: DefaultDialTimeout}

	var err error
	for attempt := 1; attempt <= ConnectAttempts; attempt++ {
		var conn *websocket.Conn
		conn, _, err = dialer.DialContext(ctx, c.URL, nil)
		if err == nil {
			c.conn = conn
			logging.LogConnection(conn.RemoteAddr().String(), "bridge_connected")
			go c.readLoop()
			return nil
		}
		err = ClassifyNetworkError(err, "")
		if !IsRetryable(err) || attempt == ConnectAttempts {
			break
		}
		logging.Warn("Bridge dial failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		select {
		case <-time.After(c.RetryDelay):
		case <-ctx.Done():
			return ClassifyNetworkError(ctx.Err(), "")
		}
	}
	return err
}

// Close tears down the connection and fails all in-flight requests.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) readLoop() {
	for {
		var msg protocol.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			c.failPending(err)
			logging.Info("Bridge connection closed", zap.Error(err))
			return
		}

		switch msg.Op {
		case protocol.OpReply, protocol.OpError:
			c.mu.Lock()
			ch, ok := c.pending[msg.Seq]
			if ok {
				delete(c.pending, msg.Seq)
			}
			c.mu.Unlock()
			if ok {
				ch <- &msg
			} else {
				logging.Debug("Reply for unknown sequence",
					zap.Uint64("seq", msg.Seq),
				)
			}
		case protocol.OpUpdate:
			if c.OnUpdate == nil {
				continue
			}
			v, err := DecodeValue(msg.Value)
			if err != nil {
				logging.Warn("Malformed update frame",
					zap.String("addr", msg.Addr),
					zap.Error(err),
				)
				continue
			}
			c.OnUpdate(msg.Addr, v)
		default:
			logging.Debug("Unexpected bridge op",
				zap.String("op", string(msg.Op)),
			)
		}
	}
}

func (c *Client) failPending(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for seq, ch := range c.pending {
		delete(c.pending, seq)
		close(ch)
	}
	_ = err
}

// request sends one message and waits for its reply or error frame.
func (c *Client) request(ctx context.Context, msg protocol.Message) (*protocol.Message, error) {
	if c.conn == nil {
		return nil, NewProtocolError("client not connected", nil)
	}

	ch := make(chan *protocol.Message, 1)
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, NewProtocolError("client closed", nil)
	}
	c.seq++
	msg.Seq = c.seq
	c.pending[msg.Seq] = ch
	err := c.conn.WriteJSON(&msg)
	c.mu.Unlock()
	if err != nil {
		c.mu.Lock()
		delete(c.pending, msg.Seq)
		c.mu.Unlock()
		return nil, ClassifyNetworkError(err, msg.Addr)
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply, ok := <-ch:
		if !ok {
			return nil, NewProtocolError("connection lost", nil)
		}
		if reply.Op == protocol.OpError {
			if reply.NotFound {
				return nil, NewNotFoundError(msg.Addr)
			}
			if reply.NotWritable {
				return nil, NewNotWritableError(msg.Addr)
			}
			return nil, NewRejectedError(msg.Addr, reply.Error)
		}
		return reply, nil
	case <-timer.C:
		c.mu.Lock()
		delete(c.pending, msg.Seq)
		c.mu.Unlock()
		return nil, &RemoteError{
			Type:      ErrTypeTimeout,
			Addr:      msg.Addr,
			Message:   fmt.Sprintf("no reply within %s", timeout),
			Retryable: true,
		}
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, msg.Seq)
		c.mu.Unlock()
		return nil, ClassifyNetworkError(ctx.Err(), msg.Addr)
	}
}

// Get reads the current value of the addressed datapoint.
func (c *Client) Get(ctx context.Context, addr string) (Value, error) {
	reply, err := c.request(ctx, protocol.Message{Op: protocol.OpGet, Addr: addr})
	if err != nil {
		logging.LogRemoteAccess("get", addr, err)
		return Value{}, err
	}
	v, err := DecodeValue(reply.Value)
	if err != nil {
		return Value{}, NewProtocolError("malformed get reply", err)
	}
	return v, nil
}

// Set writes a new value.
func (c *Client) Set(ctx context.Context, addr string, v Value) error {
	_, err := c.request(ctx, protocol.Message{
		Op:    protocol.OpSet,
		Addr:  addr,
		Value: EncodeValue(v),
	})
	if IsNotWritable(err) {
		// The cached metadata claimed this was writable; it is stale.
		c.InvalidateMetadata(addr)
	}
	logging.LogRemoteAccess("set", addr, err)
	return err
}

// Toggle inverts a boolean datapoint on the bridge side.
func (c *Client) Toggle(ctx context.Context, addr string) error {
	_, err := c.request(ctx, protocol.Message{Op: protocol.OpToggle, Addr: addr})
	logging.LogRemoteAccess("toggle", addr, err)
	return err
}

// Metadata returns the declared shape of the datapoint, served from the
// cache when fresh.
func (c *Client) Metadata(ctx context.Context, addr string) (Metadata, error) {
	if c.CacheDuration > 0 {
		c.cacheMu.RLock()
		cached, ok := c.metaCache[addr]
		c.cacheMu.RUnlock()
		if ok && time.Since(cached.fetched) < c.CacheDuration {
			return cached.meta, nil
		}
	}

	reply, err := c.request(ctx, protocol.Message{Op: protocol.OpMeta, Addr: addr})
	if err != nil {
		logging.LogRemoteAccess("meta", addr, err)
		return Metadata{}, err
	}
	meta, err := DecodeMeta(reply.Meta)
	if err != nil {
		return Metadata{}, NewProtocolError("malformed meta reply", err)
	}

	if c.CacheDuration > 0 {
		c.cacheMu.Lock()
		c.metaCache[addr] = cachedMeta{meta: meta, fetched: time.Now()}
		c.cacheMu.Unlock()
	}
	return meta, nil
}

// InvalidateMetadata drops the cached metadata for addr, or the whole cache
// when addr is empty.
func (c *Client) InvalidateMetadata(addr string) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	if addr == "" {
		c.metaCache = make(map[string]cachedMeta)
		return
	}
	delete(c.metaCache, addr)
}
