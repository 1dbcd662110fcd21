package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeChats struct {
	sync.Mutex
	members map[primitive.ObjectID][]primitive.ObjectID
	typing  []bool
}

func (f *fakeChats) IsParticipant(chatID, userID primitive.ObjectID) (bool, error) {
	f.Lock()
	defer f.Unlock()
	for _, m := range f.members[chatID] {
		if m == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeChats) UpdateTypingStatus(_, _ primitive.ObjectID, typing bool) error {
	f.Lock()
	defer f.Unlock()
	f.typing = append(f.typing, typing)
	return nil
}

type fakePresence struct {
	sync.Mutex
	online map[primitive.ObjectID]bool
}

func (f *fakePresence) SetUserOnline(id primitive.ObjectID, online bool) error {
	f.Lock()
	defer f.Unlock()
	f.online[id] = online
	return nil
}

func (f *fakePresence) isOnline(id primitive.ObjectID) bool {
	f.Lock()
	defer f.Unlock()
	return f.online[id]
}

type HubTestSuite struct {
	suite.Suite
	hub      *Hub
	chats    *fakeChats
	presence *fakePresence
	server   *httptest.Server
	chatID   primitive.ObjectID
	alice    primitive.ObjectID
	bob      primitive.ObjectID
}

func (s *HubTestSuite) SetupTest() {
	s.chatID = primitive.NewObjectID()
	s.alice = primitive.NewObjectID()
	s.bob = primitive.NewObjectID()

	s.chats = &fakeChats{members: map[primitive.ObjectID][]primitive.ObjectID{
		s.chatID: {s.alice},
	}}
	s.presence = &fakePresence{online: map[primitive.ObjectID]bool{}}
	s.hub = NewHub(s.chats, s.presence)

	upgrader := websocket.Upgrader{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("user"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.hub.Serve(s.hub.Register(userID, conn))
	}))
}

func (s *HubTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *HubTestSuite) dial(userID primitive.ObjectID) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/?user=" + userID.Hex()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *HubTestSuite) readEvent(conn *websocket.Conn, name string) map[string]interface{} {
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var ev map[string]interface{}
		s.Require().NoError(conn.ReadJSON(&ev))
		if ev["event"] == name {
			return ev
		}
	}
}

func (s *HubTestSuite) TestPresence() {
	conn := s.dial(s.alice)
	s.readEvent(conn, EventUserOnline)
	s.True(s.presence.isOnline(s.alice))
	s.True(s.hub.IsOnline(s.alice))

	conn.Close()
	s.Eventually(func() bool {
		return !s.hub.IsOnline(s.alice) && !s.presence.isOnline(s.alice)
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *HubTestSuite) TestJoinAndBroadcastToRoom() {
	conn := s.dial(s.alice)
	defer conn.Close()
	s.readEvent(conn, EventUserOnline)

	s.NoError(conn.WriteJSON(map[string]interface{}{
		"event": EventJoinChat,
		"data":  map[string]string{"chatId": s.chatID.Hex()},
	}))
	s.Eventually(func() bool {
		s.hub.mu.RLock()
		defer s.hub.mu.RUnlock()
		return len(s.hub.rooms[RoomName(s.chatID)]) == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.hub.BroadcastToRoom(RoomName(s.chatID), Event{Event: EventNewMessage, Data: map[string]string{"text": "hi"}})
	ev := s.readEvent(conn, EventNewMessage)
	s.Equal("hi", ev["data"].(map[string]interface{})["text"])
}

func (s *HubTestSuite) TestJoinRejectsNonMember() {
	conn := s.dial(s.bob)
	defer conn.Close()
	s.readEvent(conn, EventUserOnline)

	s.NoError(conn.WriteJSON(map[string]interface{}{
		"event": EventJoinChat,
		"data":  map[string]string{"chatId": s.chatID.Hex()},
	}))
	ev := s.readEvent(conn, EventError)
	s.Equal(ErrNotChatMember.Error(), ev["data"])
}

func (s *HubTestSuite) TestTypingRequiresJoinedRoom() {
	conn := s.dial(s.alice)
	defer conn.Close()
	s.readEvent(conn, EventUserOnline)

	typing := map[string]interface{}{
		"event": EventTypingStatus,
		"data":  map[string]interface{}{"chatId": s.chatID.Hex(), "isTyping": true},
	}
	s.NoError(conn.WriteJSON(typing))
	s.NoError(conn.WriteJSON(map[string]interface{}{
		"event": EventJoinChat,
		"data":  map[string]string{"chatId": s.chatID.Hex()},
	}))
	s.NoError(conn.WriteJSON(typing))

	s.Eventually(func() bool {
		s.chats.Lock()
		defer s.chats.Unlock()
		return len(s.chats.typing) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *HubTestSuite) join(conn *websocket.Conn, members int) {
	s.NoError(conn.WriteJSON(map[string]interface{}{
		"event": EventJoinChat,
		"data":  map[string]string{"chatId": s.chatID.Hex()},
	}))
	s.Eventually(func() bool {
		s.hub.mu.RLock()
		defer s.hub.mu.RUnlock()
		return len(s.hub.rooms[RoomName(s.chatID)]) == members
	}, 2*time.Second, 10*time.Millisecond)
}

// TestEvictFromRoom stops room events for a removed participant while the
// others keep receiving them
func (s *HubTestSuite) TestEvictFromRoom() {
	s.chats.members[s.chatID] = []primitive.ObjectID{s.alice, s.bob}

	alice := s.dial(s.alice)
	defer alice.Close()
	s.readEvent(alice, EventUserOnline)
	bob := s.dial(s.bob)
	defer bob.Close()
	s.readEvent(bob, EventUserOnline)

	s.join(alice, 1)
	s.join(bob, 2)

	s.hub.EvictFromRoom(RoomName(s.chatID), s.bob)

	s.hub.mu.RLock()
	s.Len(s.hub.rooms[RoomName(s.chatID)], 1)
	s.hub.mu.RUnlock()

	s.hub.BroadcastToRoom(RoomName(s.chatID), Event{Event: EventNewMessage, Data: "after"})
	s.Equal("after", s.readEvent(alice, EventNewMessage)["data"])

	_ = bob.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	for {
		var ev map[string]interface{}
		if err := bob.ReadJSON(&ev); err != nil {
			break
		}
		s.NotEqual(EventNewMessage, ev["event"])
	}
}

func (s *HubTestSuite) TestCloseRoom() {
	conn := s.dial(s.alice)
	defer conn.Close()
	s.readEvent(conn, EventUserOnline)
	s.join(conn, 1)

	s.hub.CloseRoom(RoomName(s.chatID))

	s.hub.mu.RLock()
	defer s.hub.mu.RUnlock()
	s.Empty(s.hub.rooms[RoomName(s.chatID)])
	for c := range s.hub.clients[s.alice] {
		s.Empty(c.rooms)
	}
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func TestRoomName(t *testing.T) {
	id, _ := primitive.ObjectIDFromHex("5f1b0c3e9d1e8a6b2c4d5e6f")
	assert.Equal(t, "chat_5f1b0c3e9d1e8a6b2c4d5e6f", RoomName(id))
}
