package server

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/logging"
	"github.com/flixhummel/mcduterm/internal/protocol"
)

// session is one connected terminal. Reads happen on the run goroutine;
// writes are serialized by writeMu because updates are pushed from the
// store's mutating goroutine.
type session struct {
	conn  *websocket.Conn
	store datapoint.Store

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, store datapoint.Store) *session {
	return &session{conn: conn, store: store}
}

// run reads and answers requests until the connection drops.
func (s *session) run() {
	defer s.close()
	remoteAddr := s.conn.RemoteAddr().String()

	for {
		var msg protocol.Message
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warn("Session read failed",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		s.handle(&msg)
	}
}

// handle answers one request. Unknown operations and store failures produce
// an error reply carrying the request's sequence number; the session itself
// survives.
func (s *session) handle(msg *protocol.Message) {
	ctx := context.Background()

	switch msg.Op {
	case protocol.OpGet:
		v, err := s.store.Get(ctx, msg.Addr)
		if err != nil {
			s.replyError(msg, err)
			return
		}
		s.send(&protocol.Message{
			Op:    protocol.OpReply,
			Seq:   msg.Seq,
			Addr:  msg.Addr,
			Value: datapoint.EncodeValue(v),
		})

	case protocol.OpSet:
		v, err := datapoint.DecodeValue(msg.Value)
		if err != nil {
			s.replyError(msg, err)
			return
		}
		if err := s.store.Set(ctx, msg.Addr, v); err != nil {
			s.replyError(msg, err)
			return
		}
		s.send(&protocol.Message{
			Op:   protocol.OpReply,
			Seq:  msg.Seq,
			Addr: msg.Addr,
		})

	case protocol.OpToggle:
		if err := s.store.Toggle(ctx, msg.Addr); err != nil {
			s.replyError(msg, err)
			return
		}
		v, err := s.store.Get(ctx, msg.Addr)
		if err != nil {
			s.replyError(msg, err)
			return
		}
		s.send(&protocol.Message{
			Op:    protocol.OpReply,
			Seq:   msg.Seq,
			Addr:  msg.Addr,
			Value: datapoint.EncodeValue(v),
		})

	case protocol.OpMeta:
		meta, err := s.store.Metadata(ctx, msg.Addr)
		if err != nil {
			s.replyError(msg, err)
			return
		}
		s.send(&protocol.Message{
			Op:   protocol.OpReply,
			Seq:  msg.Seq,
			Addr: msg.Addr,
			Meta: datapoint.EncodeMeta(meta),
		})

	default:
		s.send(&protocol.Message{
			Op:    protocol.OpError,
			Seq:   msg.Seq,
			Addr:  msg.Addr,
			Error: "unknown operation",
		})
	}
}

// replyError converts a store failure into an error frame.
func (s *session) replyError(req *protocol.Message, err error) {
	logging.LogRemoteAccess(string(req.Op), req.Addr, err)
	s.send(&protocol.Message{
		Op:          protocol.OpError,
		Seq:         req.Seq,
		Addr:        req.Addr,
		Error:       err.Error(),
		NotFound:    datapoint.IsNotFound(err),
		NotWritable: datapoint.IsNotWritable(err),
	})
}

// pushUpdate sends an unsolicited value update. Safe to call from any
// goroutine.
func (s *session) pushUpdate(addr string, v datapoint.Value) {
	s.send(&protocol.Message{
		Op:    protocol.OpUpdate,
		Addr:  addr,
		Value: datapoint.EncodeValue(v),
	})
}

func (s *session) send(msg *protocol.Message) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		logging.Debug("Session write failed", zap.Error(err))
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}
