// Package ws exposes the assistant over a WebSocket endpoint. Each
// connection is one chat session; closing the socket ends the session.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"sahayak/app/pkg/types"
)

const ChannelID = "ws"

const (
	readTimeout    = 60 * time.Second
	writeTimeout   = 10 * time.Second
	pingInterval   = 30 * time.Second
	maxMessageSize = 1 << 16
	sendBuffer     = 32
)

type client struct {
	sessionID string
	conn      *websocket.Conn
	send      chan []byte
}

// Server is the WebSocket channel. It upgrades connections on /ws,
// decodes inbound chat frames and forwards them to the gateway handler.
type Server struct {
	port     int
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	handler  func(types.Message)
	clients  map[string]*client
	sessions types.SessionEnder
	echo     *echo.Echo
}

func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[string]*client),
	}
}

// SetSessionEnder wires the hook invoked when a connection closes, so
// per-session interview state does not outlive the socket.
func (s *Server) SetSessionEnder(ender types.SessionEnder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = ender
}

func (s *Server) ID() string { return ChannelID }

func (s *Server) Start(ctx context.Context, handler func(types.Message)) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ws", s.handleWebSocket)
	e.Static("/", "web/static")

	s.mu.Lock()
	s.handler = handler
	s.echo = e
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf(":%d", s.port))
	}()
	log.Printf("[WS] Listening on :%d", s.port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WS] Shutdown error: %v", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("websocket server: %w", err)
		}
		return nil
	}
}

// Send delivers a reply to the connection owning the message's session.
func (s *Server) Send(_ context.Context, msg types.Message) error {
	key := msg.SessionID
	if key == "" {
		key = msg.UserID
	}

	s.mu.RLock()
	c, exists := s.clients[key]
	s.mu.RUnlock()
	if !exists {
		return fmt.Errorf("no active connection for session: %s", key)
	}

	frame, err := encodeReply(msg)
	if err != nil {
		return fmt.Errorf("encode reply: %w", err)
	}
	return c.enqueue(frame)
}

// NotifyTyping pushes a typing indicator frame to the session's socket.
func (s *Server) NotifyTyping(_ context.Context, msg types.Message, active bool) error {
	key := msg.SessionID
	if key == "" {
		key = msg.UserID
	}

	s.mu.RLock()
	c, exists := s.clients[key]
	s.mu.RUnlock()
	if !exists {
		return nil
	}
	return c.enqueue(typingFrame(active))
}

func (s *Server) handleWebSocket(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed: %v", err)
		return err
	}

	sessionID := "sess_" + uuid.New().String()[:8]
	cl := &client{
		sessionID: sessionID,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}

	s.mu.Lock()
	s.clients[sessionID] = cl
	s.mu.Unlock()
	log.Printf("[WS] Client connected: %s", sessionID)

	conn.SetReadLimit(maxMessageSize)
	go s.writePump(cl)
	go s.readPump(cl)
	return nil
}

func (s *Server) readPump(cl *client) {
	defer s.disconnect(cl)

	cl.conn.SetReadDeadline(time.Now().Add(readTimeout))
	cl.conn.SetPongHandler(func(string) error {
		cl.conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Read error on %s: %v", cl.sessionID, err)
			}
			return
		}

		msg, err := decodeInbound(data, cl.sessionID)
		if err != nil {
			cl.enqueue(errorFrame(err.Error()))
			continue
		}

		s.mu.RLock()
		handler := s.handler
		s.mu.RUnlock()
		if handler != nil {
			handler(msg)
		}
	}
}

func (s *Server) writePump(cl *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Printf("[WS] Write failed on %s: %v", cl.sessionID, err)
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) disconnect(cl *client) {
	s.mu.Lock()
	if current, exists := s.clients[cl.sessionID]; exists && current == cl {
		delete(s.clients, cl.sessionID)
		close(cl.send)
	}
	ender := s.sessions
	s.mu.Unlock()

	cl.conn.Close()
	if ender != nil {
		ender.EndSession(cl.sessionID)
	}
	log.Printf("[WS] Client disconnected: %s", cl.sessionID)
}

func (c *client) enqueue(frame []byte) error {
	select {
	case c.send <- frame:
		return nil
	default:
		return fmt.Errorf("send buffer full for session: %s", c.sessionID)
	}
}

// decodeInbound parses a chat frame. Only the message text is required
// structurally; language defaults to english and interview mode to off.
func decodeInbound(data []byte, sessionID string) (types.Message, error) {
	if !gjson.ValidBytes(data) {
		return types.Message{}, fmt.Errorf("invalid message frame")
	}

	parsed := gjson.ParseBytes(data)
	return types.Message{
		ID:            "msg-" + uuid.New().String()[:8],
		Content:       parsed.Get("message").String(),
		Role:          types.MessageRoleUser,
		ChannelID:     ChannelID,
		UserID:        sessionID,
		SessionID:     sessionID,
		RequestID:     parsed.Get("requestId").String(),
		Language:      types.NormalizeLanguage(parsed.Get("language").String()),
		InterviewMode: parsed.Get("interviewMode").Bool(),
	}, nil
}

type outboundReply struct {
	Text   string       `json:"text"`
	Tasks  []types.Task `json:"tasks"`
	Sender string       `json:"sender"`
}

func encodeReply(msg types.Message) ([]byte, error) {
	reply := outboundReply{
		Text:   msg.Content,
		Tasks:  msg.Tasks,
		Sender: types.MessageRoleAssistant,
	}
	if reply.Tasks == nil {
		reply.Tasks = []types.Task{}
	}
	return json.Marshal(reply)
}

func typingFrame(active bool) []byte {
	frame, _ := sjson.SetBytes([]byte(`{"type":"typing"}`), "active", active)
	return frame
}

func errorFrame(reason string) []byte {
	frame, _ := sjson.SetBytes([]byte(`{"type":"error"}`), "message", reason)
	return frame
}
