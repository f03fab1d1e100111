// Package server exposes one heads-up room over a WebSocket endpoint. All
// room access funnels through a single mutex, so the engine itself never
// sees concurrent actions.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/headsup/internal/protocol"
	"github.com/lox/headsup/internal/room"
)

// Server owns the room and the set of live connections.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock
	httpSrv  *http.Server

	mu    sync.Mutex
	room  *room.Room
	conns map[*Connection]bool
}

// NewServer creates a server for one room.
func NewServer(addr string, rm *room.Room, logger *log.Logger, clock quartz.Clock) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// For development, allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
		clock:  clock,
		room:   rm,
		conns:  make(map[*Connection]bool),
	}
}

// Start listens and serves until the listener closes.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpSrv = &http.Server{Addr: s.addr, Handler: mux}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}

	s.logger.Info("Starting WebSocket server", "addr", ln.Addr().String())
	if err := s.httpSrv.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP listener and closes every connection.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpSrv != nil {
		err = s.httpSrv.Shutdown(ctx)
	}

	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()
	return err
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s, s.logger, s.clock)

	s.mu.Lock()
	s.conns[client] = true
	total := len(s.conns)
	s.mu.Unlock()

	s.logger.Info("Client connected", "total", total)
	client.Start()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

// handleMessage dispatches one decoded client message. Called from the
// connection's read pump.
func (s *Server) handleMessage(c *Connection, data []byte) {
	in, err := protocol.Decode(data)
	if err != nil {
		s.logger.Debug("Dropping malformed message", "error", err)
		_ = c.Send(protocol.Error{
			Type:    protocol.TypeError,
			Code:    "bad_message",
			Message: err.Error(),
		})
		return
	}

	switch in.Type {
	case protocol.TypeHello:
		s.handleHello(c, in.Hello)
	case protocol.TypeAction:
		s.handleAction(c, in.Action)
	}
}

// handleHello seats or reseats the client. An empty token gets a fresh one;
// a returning token reclaims its old seat, so reconnects keep their chips.
func (s *Server) handleHello(c *Connection, msg *protocol.Hello) {
	token := msg.Token
	if token == "" {
		token = uuid.NewString()
	}

	s.mu.Lock()
	seat := s.room.Claim(token)
	s.room.SetConnected(seat, true)
	s.mu.Unlock()

	c.setIdentity(token, seat)
	s.logger.Info("Client greeted", "seat", seat, "observer", seat == room.NoSeat)

	_ = c.Send(protocol.NewWelcome(token, seat))
	s.broadcastViews()
}

// handleAction applies one player action. The rejection, if any, goes only
// to the actor; fresh views go to everyone either way.
func (s *Server) handleAction(c *Connection, msg *protocol.Action) {
	if !c.Greeted() {
		_ = c.Send(protocol.Error{
			Type:    protocol.TypeError,
			Code:    "bad_message",
			Message: "hello required before actions",
		})
		return
	}

	seat := c.Seat()
	s.mu.Lock()
	applyErr := s.room.Apply(seat, msg.RoomAction())
	s.mu.Unlock()

	if applyErr != nil {
		s.logger.Debug("Action rejected", "seat", seat, "action", msg.Action, "code", applyErr.Kind)
		_ = c.Send(protocol.NewError(applyErr))
	} else {
		s.logger.Info("Action applied", "seat", seat, "action", msg.Action, "amount", msg.Amount)
	}

	s.broadcastViews()
}

// dropConnection removes a closed connection and marks its seat
// disconnected unless another connection still holds the same seat.
func (s *Server) dropConnection(c *Connection) {
	s.mu.Lock()
	if _, ok := s.conns[c]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.conns, c)

	seat := c.Seat()
	if seat != room.NoSeat && !s.seatHeldLocked(seat) {
		s.room.SetConnected(seat, false)
	}
	total := len(s.conns)
	s.mu.Unlock()

	s.logger.Info("Client disconnected", "seat", seat, "total", total)
	s.broadcastViews()
}

// seatHeldLocked reports whether any live connection holds the seat. Caller
// holds s.mu.
func (s *Server) seatHeldLocked(seat room.Seat) bool {
	for conn := range s.conns {
		if conn.Seat() == seat {
			return true
		}
	}
	return false
}

// broadcastViews sends every connection its own projection of the room.
func (s *Server) broadcastViews() {
	s.mu.Lock()
	type delivery struct {
		conn *Connection
		view room.View
	}
	out := make([]delivery, 0, len(s.conns))
	for conn := range s.conns {
		if !conn.Greeted() {
			continue
		}
		out = append(out, delivery{conn, s.room.Project(conn.Seat())})
	}
	s.mu.Unlock()

	for _, d := range out {
		if err := d.conn.Send(protocol.NewView(d.view)); err != nil {
			s.logger.Debug("Failed to send view", "error", err)
		}
	}
}
