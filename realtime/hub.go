package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	logPrefix = "realtime"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 64 << 10
	sendBufferSize = 64
)

// server to client events
const (
	EventNewMessage      = "newMessage"
	EventTypingStatus    = "typingStatus"
	EventNewReaction     = "newReaction"
	EventReactionRemoved = "reactionRemoved"
	EventMessageDeleted  = "messageDeleted"
	EventUserOnline      = "userOnline"
	EventUserOffline     = "userOffline"
	EventError           = "error"
)

// client to server events
const (
	EventJoinChat  = "joinChat"
	EventLeaveChat = "leaveChat"
)

var (
	ErrNotChatMember = errors.New("user is not a member of this chat")
)

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type inboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type chatPayload struct {
	ChatID   string `json:"chatId"`
	IsTyping bool   `json:"isTyping"`
}

// RoomName is the room every participant of a chat joins
func RoomName(chatID primitive.ObjectID) string {
	return "chat_" + chatID.Hex()
}

// ChatHandler answers membership questions and persists typing state
type ChatHandler interface {
	IsParticipant(chatID, userID primitive.ObjectID) (bool, error)
	UpdateTypingStatus(chatID, userID primitive.ObjectID, typing bool) error
}

// PresenceStore records whether a user has a live connection
type PresenceStore interface {
	SetUserOnline(id primitive.ObjectID, online bool) error
}

type Client struct {
	UserID primitive.ObjectID

	hub   *Hub
	conn  *websocket.Conn
	send  chan Event
	done  chan struct{}
	once  sync.Once
	rooms map[string]struct{}
}

type Hub struct {
	mu       sync.RWMutex
	clients  map[primitive.ObjectID]map[*Client]struct{}
	rooms    map[string]map[*Client]struct{}
	chats    ChatHandler
	presence PresenceStore
}

func NewHub(chats ChatHandler, presence PresenceStore) *Hub {
	return &Hub{
		clients:  map[primitive.ObjectID]map[*Client]struct{}{},
		rooms:    map[string]map[*Client]struct{}{},
		chats:    chats,
		presence: presence,
	}
}

// SetChatHandler wires the chat service after construction
func (h *Hub) SetChatHandler(chats ChatHandler) {
	h.chats = chats
}

// Register adds a connection of a user and starts its write loop. The first
// connection of a user marks them online.
func (h *Hub) Register(userID primitive.ObjectID, conn *websocket.Conn) *Client {
	c := &Client{
		UserID: userID,
		hub:    h,
		conn:   conn,
		send:   make(chan Event, sendBufferSize),
		done:   make(chan struct{}),
		rooms:  map[string]struct{}{},
	}

	h.mu.Lock()
	first := len(h.clients[userID]) == 0
	if h.clients[userID] == nil {
		h.clients[userID] = map[*Client]struct{}{}
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()

	go c.writeLoop()

	if first {
		h.setPresence(userID, true)
	}
	return c
}

// Unregister drops a connection and leaves all its rooms
func (h *Hub) Unregister(c *Client) {
	c.once.Do(func() { close(c.done) })

	h.mu.Lock()
	for room := range c.rooms {
		h.leaveLocked(c, room)
	}
	last := false
	if set, ok := h.clients[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
			last = true
		}
	}
	h.mu.Unlock()

	_ = c.conn.Close()

	if last {
		h.setPresence(c.UserID, false)
	}
}

func (h *Hub) setPresence(userID primitive.ObjectID, online bool) {
	if h.presence != nil {
		if err := h.presence.SetUserOnline(userID, online); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Warn("fail to update presence")
		}
	}

	event := EventUserOffline
	if online {
		event = EventUserOnline
	}
	h.BroadcastAll(Event{Event: event, Data: map[string]string{"userId": userID.Hex()}})
}

// Join adds a client to the room of a chat it is a participant of
func (h *Hub) Join(c *Client, chatID primitive.ObjectID) error {
	if h.chats != nil {
		ok, err := h.chats.IsParticipant(chatID, c.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotChatMember
		}
	}

	room := RoomName(chatID)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = map[*Client]struct{}{}
	}
	h.rooms[room][c] = struct{}{}
	c.rooms[room] = struct{}{}
	return nil
}

func (h *Hub) Leave(c *Client, chatID primitive.ObjectID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(c, RoomName(chatID))
}

// EvictFromRoom removes every connection of a user from a room, for a
// participant that left or was removed from the chat
func (h *Hub) EvictFromRoom(room string, userID primitive.ObjectID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients[userID] {
		h.leaveLocked(c, room)
	}
}

// CloseRoom removes every connection from a room of a deleted chat
func (h *Hub) CloseRoom(room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[room] {
		h.leaveLocked(c, room)
	}
}

func (h *Hub) leaveLocked(c *Client, room string) {
	if set, ok := h.rooms[room]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

// deliver queues an event without blocking. A full buffer drops the event.
func deliver(c *Client, ev Event) {
	select {
	case c.send <- ev:
	default:
		log.WithField("prefix", logPrefix).WithField("user_id", c.UserID.Hex()).Debug("send buffer full, event dropped")
	}
}

func (h *Hub) BroadcastToRoom(room string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[room] {
		deliver(c, ev)
	}
}

func (h *Hub) BroadcastToUsers(userIDs []primitive.ObjectID, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, id := range userIDs {
		for c := range h.clients[id] {
			deliver(c, ev)
		}
	}
}

func (h *Hub) BroadcastAll(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, set := range h.clients {
		for c := range set {
			deliver(c, ev)
		}
	}
}

func (h *Hub) inRoom(c *Client, room string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.rooms[room][c]
	return ok
}

// IsOnline reports whether a user has at least one live connection
func (h *Hub) IsOnline(userID primitive.ObjectID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID]) > 0
}

// Serve reads client events until the connection closes, then unregisters
// the client
func (h *Hub) Serve(c *Client) {
	defer h.Unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var in inboundEvent
		if err := c.conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("prefix", logPrefix).WithError(err).Debug("connection closed")
			}
			return
		}
		h.handle(c, in)
	}
}

func (h *Hub) handle(c *Client, in inboundEvent) {
	var payload chatPayload
	if err := json.Unmarshal(in.Data, &payload); err != nil {
		deliver(c, Event{Event: EventError, Data: "malformed payload"})
		return
	}

	chatID, err := primitive.ObjectIDFromHex(payload.ChatID)
	if err != nil {
		deliver(c, Event{Event: EventError, Data: "invalid chat id"})
		return
	}

	switch in.Event {
	case EventJoinChat:
		if err := h.Join(c, chatID); err != nil {
			deliver(c, Event{Event: EventError, Data: err.Error()})
		}
	case EventLeaveChat:
		h.Leave(c, chatID)
	case EventTypingStatus:
		if !h.inRoom(c, RoomName(chatID)) || h.chats == nil {
			return
		}
		if err := h.chats.UpdateTypingStatus(chatID, c.UserID, payload.IsTyping); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Warn("fail to update typing status")
		}
	default:
		deliver(c, Event{Event: EventError, Data: "unknown event"})
	}
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case ev := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
