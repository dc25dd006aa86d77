// Package debugserver is an optional, off-by-default event stream of
// non-local-exit and call-trace events for external tooling, making the
// exception contract and function calls observable from outside the
// process.
//
// Broadcasts to a set of live client connections under a mutex, the same
// shape a websocket-broadcast server or a breakpoint debugger's call-stack
// bookkeeping would take, but narrowed to a single outbound event channel
// and the two event kinds this core actually emits: exceptions and calls.
package debugserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// EventKind discriminates the two observable moments this core exposes.
type EventKind string

const (
	EventCall      EventKind = "call"
	EventException EventKind = "exception"
)

// Event is the JSON envelope broadcast to every connected client.
type Event struct {
	Session string    `json:"session"`
	Kind    EventKind `json:"kind"`
	Name    string    `json:"name,omitempty"`
	Message string    `json:"message,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server fans a stream of Events out to every connected websocket client.
// It is nil-safe to use from interpreter hot paths: a nil *Server's
// EmitCall/EmitException are no-ops, so instrumentation call sites don't
// need a "debugging enabled" branch of their own.
type Server struct {
	session string

	mu      sync.RWMutex
	clients map[string]*client

	events chan Event
}

type client struct {
	conn *websocket.Conn
	send chan Event
}

// New creates a debug server tagged with a fresh session id, matching the
// teacher's per-connection bookkeeping keyed by string IDs.
func New() *Server {
	return &Server{
		session: uuid.NewString(),
		clients: make(map[string]*client),
		events:  make(chan Event, 256),
	}
}

// Session returns this server's session id, surfaced in every event
// envelope and in the process's startup log line.
func (s *Server) Session() string { return s.session }

// EmitCall records a function/method invocation.
func (s *Server) EmitCall(name string) {
	if s == nil {
		return
	}
	s.publish(Event{Session: s.session, Kind: EventCall, Name: name})
}

// EmitException records a raised, not-yet-handled exception: a non-local
// exit observed from outside the propagating Go panic.
func (s *Server) EmitException(kind, message string) {
	if s == nil {
		return
	}
	s.publish(Event{Session: s.session, Kind: EventException, Name: kind, Message: message})
}

func (s *Server) publish(ev Event) {
	select {
	case s.events <- ev:
	default:
		// Slow consumer: drop rather than block the interpreter on a
		// debugging sink.
	}
}

// ServeHTTP upgrades the request to a websocket and registers the
// resulting connection as a broadcast target (teacher's WebSocketAccept,
// collapsed into the handshake itself instead of a separate polling call).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn, send: make(chan Event, 64)}
	id := uuid.NewString()

	s.mu.Lock()
	s.clients[id] = c
	s.mu.Unlock()

	go s.writeLoop(id, c)
}

func (s *Server) writeLoop(id string, c *client) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, id)
		s.mu.Unlock()
		c.conn.Close()
	}()
	for ev := range c.send {
		if err := c.conn.WriteJSON(ev); err != nil {
			return
		}
	}
}

// Run starts the broadcaster loop, fanning events out to every connected
// client, until ctx is cancelled. It returns nil on clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				s.closeAll()
				return nil
			case ev := <-s.events:
				s.broadcast(ev)
			}
		}
	})
	return g.Wait()
}

func (s *Server) broadcast(ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		select {
		case c.send <- ev:
		default:
		}
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.clients {
		close(c.send)
		delete(s.clients, id)
	}
}

// MarshalEvent is a convenience used by tests to render an event the same
// way it would be sent on the wire.
func MarshalEvent(ev Event) (string, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
