package query

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/dropzone/internal/dimension"
	"github.com/frudas24/dropzone/internal/frame"
	"github.com/frudas24/dropzone/internal/geom"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SnapshotSaver persists a snapshot after the orchestrator replaces the frame.
type SnapshotSaver func(dimension.Snapshot) error

// Server handles websocket containment queries.
type Server struct {
	mu           sync.Mutex
	upgrader     websocket.Upgrader
	frame        *frame.Frame
	padding      geom.Position
	saveSnapshot SnapshotSaver
	conn         *websocket.Conn
	connID       string
}

// NewServer creates a query server. padding is used for queries that do not
// carry their own; saveSnapshot may be nil.
func NewServer(f *frame.Frame, padding geom.Position, saveSnapshot SnapshotSaver) *Server {
	return &Server{
		frame:        f,
		padding:      padding,
		saveSnapshot: saveSnapshot,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and answers queries until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id, err := s.acceptConn(conn)
	if err != nil {
		s.rejectConn(conn, err.Error())
		return
	}
	defer s.cleanupConn(conn)
	log.Printf("query: orchestrator %s connected", id)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("query: orchestrator %s disconnected", id)
			return
		}
		reply := s.Handle(msg)
		if debugEnabled() {
			log.Printf("query: %s %s id=%q -> %s within=%v %s", id, msg.T, msg.ID, reply.T, reply.Within, reply.Error)
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// Handle answers msg, turning failures into an error reply.
func (s *Server) Handle(msg Message) Reply {
	reply, err := s.Dispatch(msg)
	if err != nil {
		return Reply{T: ReplyError, Seq: msg.Seq, ID: msg.ID, Error: err.Error()}
	}
	return reply
}

// Dispatch answers a single query.
func (s *Server) Dispatch(msg Message) (Reply, error) {
	var (
		reply Reply
		err   error
	)
	switch msg.T {
	case TypeSnapshot:
		reply, err = s.handleSnapshot(msg)
	case TypeScroll:
		reply, err = s.handleScroll(msg)
	case TypeVisible:
		reply, err = s.handleVisible(msg)
	case TypePoint:
		reply, err = s.handlePoint(msg)
	case TypeDraggable:
		reply, err = s.handleDraggable(msg)
	default:
		return Reply{}, fmt.Errorf("%w: %q", ErrUnknownType, msg.T)
	}
	if err != nil {
		return Reply{}, err
	}
	reply.Seq = msg.Seq
	return reply, nil
}

// ErrUnknownType is returned for unrecognized message types.
var ErrUnknownType = errors.New("unknown message type")

// ErrBadRequest is returned when a message is missing a required field.
var ErrBadRequest = errors.New("bad request")

// handleSnapshot replaces the frame and persists it.
func (s *Server) handleSnapshot(msg Message) (Reply, error) {
	if msg.Snapshot == nil {
		return Reply{}, fmt.Errorf("%w: snapshot is required", ErrBadRequest)
	}
	snap := s.frame.Set(*msg.Snapshot)
	if s.saveSnapshot != nil {
		if err := s.saveSnapshot(snap); err != nil {
			return Reply{}, fmt.Errorf("save snapshot: %w", err)
		}
	}
	return Reply{T: ReplyOK, Count: len(snap.Droppables)}, nil
}

// handleScroll updates one container's current scroll.
func (s *Server) handleScroll(msg Message) (Reply, error) {
	if msg.Scroll == nil {
		return Reply{}, fmt.Errorf("%w: scroll is required", ErrBadRequest)
	}
	if err := s.frame.UpdateScroll(msg.ID, *msg.Scroll); err != nil {
		return Reply{}, fmt.Errorf("%w: %q", err, msg.ID)
	}
	return Reply{T: ReplyOK, ID: msg.ID}, nil
}

// handleVisible returns the visible bounds of a droppable.
func (s *Server) handleVisible(msg Message) (Reply, error) {
	box, err := s.frame.VisibleBounds(msg.ID, s.paddingFor(msg))
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %q", err, msg.ID)
	}
	return Reply{T: ReplyBounds, ID: msg.ID, Within: !box.Inverted(), Bounds: &box}, nil
}

// handlePoint tests a point against one droppable, or finds the droppable under it.
func (s *Server) handlePoint(msg Message) (Reply, error) {
	if msg.Point == nil {
		return Reply{}, fmt.Errorf("%w: point is required", ErrBadRequest)
	}
	padding := s.paddingFor(msg)
	if msg.ID == "" {
		id, ok := s.frame.DroppableOver(*msg.Point, padding)
		return Reply{T: ReplyVerdict, ID: id, Within: ok}, nil
	}
	in, err := s.frame.PointIn(msg.ID, *msg.Point, padding)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %q", err, msg.ID)
	}
	return Reply{T: ReplyVerdict, ID: msg.ID, Within: in}, nil
}

// handleDraggable tests whether a draggable is fully inside a droppable.
func (s *Server) handleDraggable(msg Message) (Reply, error) {
	id := msg.ID
	if id == "" && msg.Draggable != nil {
		id = msg.Draggable.DroppableID
	}
	in, err := s.frame.DraggableWithin(id, msg.Draggable, s.paddingFor(msg))
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %q", err, id)
	}
	return Reply{T: ReplyVerdict, ID: id, Within: in}, nil
}

// paddingFor returns the message padding or the server default.
func (s *Server) paddingFor(msg Message) geom.Position {
	if msg.Padding != nil {
		return *msg.Padding
	}
	return s.padding
}

// acceptConn ensures only one orchestrator is connected at a time.
func (s *Server) acceptConn(conn *websocket.Conn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return "", fmt.Errorf("orchestrator %s already connected", s.connID)
	}
	s.conn = conn
	s.connID = uuid.NewString()
	return s.connID, nil
}

// rejectConn sends a policy violation close and closes the socket.
func (s *Server) rejectConn(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(1*time.Second))
	_ = conn.Close()
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		s.connID = ""
	}
	s.mu.Unlock()
	_ = conn.Close()
}
