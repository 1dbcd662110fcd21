package chat_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/chat"
	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/mocks"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/realtime"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
)

const (
	pngDataURI  = "data:image/png;base64,iVBORw0KGgo="
	htmlDataURI = "data:text/html;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg=="
)

type ChatTestSuite struct {
	suite.Suite
	ctl          *gomock.Controller
	store        *mocks.MockMongoStore
	achievements *mocks.MockAchievementChecker
	notifier     *mocks.MockNotifier
	objects      *mocks.MockObjectStore
	broadcaster  *mocks.MockBroadcaster
	service      *chat.Service

	alice primitive.ObjectID
	bob   primitive.ObjectID
	carol primitive.ObjectID
}

func (s *ChatTestSuite) SetupTest() {
	s.ctl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctl)
	s.achievements = mocks.NewMockAchievementChecker(s.ctl)
	s.notifier = mocks.NewMockNotifier(s.ctl)
	s.objects = mocks.NewMockObjectStore(s.ctl)
	s.broadcaster = mocks.NewMockBroadcaster(s.ctl)

	s.service = chat.NewService(s.store, s.achievements, s.notifier, s.objects)
	s.service.SetBroadcaster(s.broadcaster)

	s.alice = primitive.NewObjectID()
	s.bob = primitive.NewObjectID()
	s.carol = primitive.NewObjectID()
}

func (s *ChatTestSuite) TearDownTest() {
	s.ctl.Finish()
}

func (s *ChatTestSuite) directChat() *schema.Chat {
	return &schema.Chat{
		ID:           primitive.NewObjectID(),
		Participants: []primitive.ObjectID{s.alice, s.bob},
	}
}

func (s *ChatTestSuite) groupChat() *schema.Chat {
	return &schema.Chat{
		ID:           primitive.NewObjectID(),
		Participants: []primitive.ObjectID{s.alice, s.bob, s.carol},
		Admins:       []primitive.ObjectID{s.alice},
		IsGroupChat:  true,
		GroupName:    "Neighbours",
	}
}

// TestCreateDirectChatReusesExisting returns the chat two users already share
func (s *ChatTestSuite) TestCreateDirectChatReusesExisting() {
	existing := s.directChat()

	s.store.EXPECT().FindDirectChat(s.alice, s.bob).Return(existing, nil).Times(1)
	s.store.EXPECT().CreateChat(gomock.Any()).Times(0)

	c, err := s.service.CreateChat(s.alice, chat.Draft{Participants: []primitive.ObjectID{s.bob, s.bob}})
	s.NoError(err)
	s.Equal(existing, c)
}

func (s *ChatTestSuite) TestCreateDirectChat() {
	id := primitive.NewObjectID()

	s.store.EXPECT().FindDirectChat(s.alice, s.bob).Return(nil, store.ErrChatNotFound).Times(1)
	s.store.EXPECT().CreateChat(gomock.Any()).DoAndReturn(func(c *schema.Chat) error {
		s.False(c.IsGroupChat)
		s.Empty(c.Admins)
		s.Equal([]primitive.ObjectID{s.alice, s.bob}, c.Participants)
		c.ID = id
		return nil
	}).Times(1)
	s.store.EXPECT().GetChat(id).Return(&schema.Chat{ID: id}, nil).Times(1)

	c, err := s.service.CreateChat(s.alice, chat.Draft{Participants: []primitive.ObjectID{s.bob}})
	s.NoError(err)
	s.Equal(id, c.ID)
}

// TestCreateGroupChat makes the creator the admin and names the group
func (s *ChatTestSuite) TestCreateGroupChat() {
	id := primitive.NewObjectID()

	s.store.EXPECT().GetUser(s.alice).Return(&schema.User{Language: "en"}, nil).Times(1)
	s.store.EXPECT().CreateChat(gomock.Any()).DoAndReturn(func(c *schema.Chat) error {
		s.True(c.IsGroupChat)
		s.Equal([]primitive.ObjectID{s.alice}, c.Admins)
		s.NotEmpty(c.GroupName)
		c.ID = id
		return nil
	}).Times(1)
	s.store.EXPECT().GetChat(id).Return(&schema.Chat{ID: id}, nil).Times(1)

	_, err := s.service.CreateChat(s.alice, chat.Draft{Participants: []primitive.ObjectID{s.bob, s.carol}})
	s.NoError(err)
}

func (s *ChatTestSuite) TestGetUserChatsWithMessages() {
	last := primitive.NewObjectID()
	active := schema.Chat{ID: primitive.NewObjectID(), LastMessageID: &last}

	s.store.EXPECT().ListUserChats(s.alice).Return([]schema.Chat{*s.directChat(), active}, nil).Times(1)

	chats, err := s.service.GetUserChatsWithMessages(s.alice)
	s.NoError(err)
	s.Equal([]schema.Chat{active}, chats)
}

func (s *ChatTestSuite) TestCreateChatAlone() {
	_, err := s.service.CreateChat(s.alice, chat.Draft{Participants: []primitive.ObjectID{s.alice}})
	s.ErrorIs(err, chat.ErrTooFewParticipants)
}

func (s *ChatTestSuite) TestSendMessage() {
	c := s.groupChat()
	c.MutedUsers = []primitive.ObjectID{s.carol}

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(m *schema.Message) error {
		s.Equal(schema.MessageText, m.Type)
		s.Equal(s.alice, m.SenderID)
		m.ID = primitive.NewObjectID()
		return nil
	}).Times(1)
	s.store.EXPECT().RecordChatMessage(c.ID, gomock.Any(), []primitive.ObjectID{s.bob, s.carol}).Return(nil).Times(1)
	s.broadcaster.EXPECT().BroadcastToRoom(realtime.RoomName(c.ID), gomock.Any()).Do(func(_ string, ev realtime.Event) {
		s.Equal(realtime.EventNewMessage, ev.Event)
	}).Times(1)
	s.store.EXPECT().GetUser(gomock.Any()).Return(&schema.User{Name: "Alice", Language: "en"}, nil).AnyTimes()
	s.notifier.EXPECT().AddNotification(gomock.Any()).DoAndReturn(func(d notification.Draft) (*schema.Notification, error) {
		s.Equal([]primitive.ObjectID{s.bob}, d.UserIDs)
		s.Equal(schema.NotificationChatMessage, d.Type)
		s.Equal(c.ID.Hex(), d.Action.ID)
		return &schema.Notification{}, nil
	}).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(s.alice, schema.AchievementMessagesSent).Return(&achievement.CheckResult{}, nil).Times(1)

	msg, err := s.service.SendMessage(c.ID, s.alice, chat.MessageDraft{Text: "hello"})
	s.NoError(err)
	s.Equal("hello", msg.Text)
	s.Empty(msg.MediaURLs)
}

func (s *ChatTestSuite) TestSendMessageNotParticipant() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().CreateMessage(gomock.Any()).Times(0)

	_, err := s.service.SendMessage(c.ID, s.carol, chat.MessageDraft{Text: "hi"})
	s.ErrorIs(err, chat.ErrNotParticipant)
}

func (s *ChatTestSuite) TestSendEmptyMessage() {
	_, err := s.service.SendMessage(primitive.NewObjectID(), s.alice, chat.MessageDraft{})
	s.ErrorIs(err, chat.ErrEmptyMessage)

	_, err = s.service.SendMessage(primitive.NewObjectID(), s.alice, chat.MessageDraft{Type: "sticker", Text: "x"})
	s.ErrorIs(err, chat.ErrInvalidMessageType)
}

func (s *ChatTestSuite) TestSendMessageUploadFailure() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).Return("", errors.New("s3 down")).Times(1)
	s.store.EXPECT().CreateMessage(gomock.Any()).Times(0)

	_, err := s.service.SendMessage(c.ID, s.alice, chat.MessageDraft{
		Type:  schema.MessageImage,
		Media: []string{pngDataURI},
	})
	s.EqualError(err, "s3 down")
}

// TestSendMessageRejectsMedia refuses attachments before anything is stored
func (s *ChatTestSuite) TestSendMessageRejectsMedia() {
	c := s.directChat()
	foreign := "https://cdn/chats/" + primitive.NewObjectID().Hex() + "/attachments/a.png"

	tests := []struct {
		name  string
		media string
		err   error
	}{
		{"html", htmlDataURI, objectstore.ErrUnsupportedType},
		{"html declared as png", "data:image/png;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==", objectstore.ErrUnsupportedType},
		{"other chat's file", foreign, objectstore.ErrForeignObject},
	}

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(len(tests))
	s.objects.EXPECT().Owns(chat.AttachmentsPrefix(c.ID), foreign).Return(false).Times(1)
	s.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.store.EXPECT().CreateMessage(gomock.Any()).Times(0)

	for _, tt := range tests {
		_, err := s.service.SendMessage(c.ID, s.alice, chat.MessageDraft{
			Type:  schema.MessageImage,
			Media: []string{pngDataURI, tt.media},
		})
		s.ErrorIs(err, tt.err, tt.name)
	}
}

// TestSendMessageKeepsUploadedAttachment passes through a url from the
// attachment endpoint of the same chat
func (s *ChatTestSuite) TestSendMessageKeepsUploadedAttachment() {
	c := s.directChat()
	url := "https://cdn/chats/" + c.ID.Hex() + "/attachments/a.pdf"

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.objects.EXPECT().Owns(chat.AttachmentsPrefix(c.ID), url).Return(true).Times(1)
	s.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.store.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(m *schema.Message) error {
		s.Equal([]string{url}, m.MediaURLs)
		m.ID = primitive.NewObjectID()
		return nil
	}).Times(1)
	s.store.EXPECT().RecordChatMessage(c.ID, gomock.Any(), []primitive.ObjectID{s.bob}).Return(nil).Times(1)
	s.broadcaster.EXPECT().BroadcastToRoom(realtime.RoomName(c.ID), gomock.Any()).Times(1)
	s.store.EXPECT().GetUser(gomock.Any()).Return(&schema.User{Name: "Alice", Language: "en"}, nil).AnyTimes()
	s.notifier.EXPECT().AddNotification(gomock.Any()).Return(&schema.Notification{}, nil).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(s.alice, schema.AchievementMessagesSent).Return(&achievement.CheckResult{}, nil).Times(1)

	msg, err := s.service.SendMessage(c.ID, s.alice, chat.MessageDraft{
		Type:  schema.MessageFile,
		Media: []string{url},
	})
	s.NoError(err)
	s.Equal([]string{url}, msg.MediaURLs)
}

// TestSendMessageUnknownSender names the sender generically in the push
func (s *ChatTestSuite) TestSendMessageUnknownSender() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().CreateMessage(gomock.Any()).Return(nil).Times(1)
	s.store.EXPECT().RecordChatMessage(c.ID, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.broadcaster.EXPECT().BroadcastToRoom(gomock.Any(), gomock.Any()).Times(1)
	s.store.EXPECT().GetUser(s.bob).Return(&schema.User{Language: "en"}, nil).Times(1)
	s.store.EXPECT().GetUser(s.alice).Return(nil, store.ErrUserNotFound).Times(1)
	s.notifier.EXPECT().AddNotification(gomock.Any()).DoAndReturn(func(d notification.Draft) (*schema.Notification, error) {
		s.Equal("Someone", d.Title)
		return &schema.Notification{}, nil
	}).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(gomock.Any(), gomock.Any()).Return(&achievement.CheckResult{}, nil).Times(1)

	_, err := s.service.SendMessage(c.ID, s.alice, chat.MessageDraft{Text: "hi"})
	s.NoError(err)
}

// TestGetChatMessagesFirstPage attaches reactions and clears the unread count
func (s *ChatTestSuite) TestGetChatMessagesFirstPage() {
	c := s.directChat()
	m1 := schema.Message{ID: primitive.NewObjectID(), ChatID: c.ID}
	m2 := schema.Message{ID: primitive.NewObjectID(), ChatID: c.ID}

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().ListMessages(c.ID, int64(1), int64(50)).Return([]schema.Message{m1, m2}, int64(2), nil).Times(1)
	s.store.EXPECT().ListReactions([]primitive.ObjectID{m1.ID, m2.ID}).Return([]schema.Reaction{
		{MessageID: m2.ID, Emoji: "👍"},
	}, nil).Times(1)
	s.store.EXPECT().ResetUnreadCount(c.ID, s.bob).Return(nil).Times(1)

	page, err := s.service.GetChatMessages(c.ID, s.bob, 0, 0)
	s.NoError(err)
	s.Equal(int64(2), page.Total)
	s.Equal(int64(1), page.Page)
	s.Len(page.Messages, 2)
	s.Empty(page.Messages[0].Reactions)
	s.Len(page.Messages[1].Reactions, 1)
}

func (s *ChatTestSuite) TestGetChatMessagesLaterPage() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().ListMessages(c.ID, int64(3), int64(100)).Return(nil, int64(0), nil).Times(1)
	s.store.EXPECT().ResetUnreadCount(gomock.Any(), gomock.Any()).Times(0)

	page, err := s.service.GetChatMessages(c.ID, s.bob, 3, 500)
	s.NoError(err)
	s.Equal(int64(100), page.Limit)
	s.Empty(page.Messages)
}

func (s *ChatTestSuite) TestDeleteMessage() {
	msg := &schema.Message{
		ID:        primitive.NewObjectID(),
		ChatID:    primitive.NewObjectID(),
		SenderID:  s.alice,
		MediaURLs: []string{"https://cdn/a.png"},
	}

	s.store.EXPECT().GetMessage(msg.ID).Return(msg, nil).Times(1)
	s.objects.EXPECT().DeleteURL(gomock.Any(), chat.AttachmentsPrefix(msg.ChatID), "https://cdn/a.png").Return(nil).Times(1)
	s.store.EXPECT().SoftDeleteMessage(msg.ID).Return(nil).Times(1)
	s.broadcaster.EXPECT().BroadcastToRoom(realtime.RoomName(msg.ChatID), gomock.Any()).Times(1)

	s.NoError(s.service.DeleteMessage(msg.ID, s.alice))
}

func (s *ChatTestSuite) TestDeleteMessageOfOthers() {
	msg := &schema.Message{ID: primitive.NewObjectID(), SenderID: s.alice}

	s.store.EXPECT().GetMessage(msg.ID).Return(msg, nil).Times(1)
	s.store.EXPECT().SoftDeleteMessage(gomock.Any()).Times(0)

	s.ErrorIs(s.service.DeleteMessage(msg.ID, s.bob), chat.ErrNotSender)
}

// TestAddReaction credits the message sender, not the reacting user
func (s *ChatTestSuite) TestAddReaction() {
	c := s.directChat()
	msg := &schema.Message{ID: primitive.NewObjectID(), ChatID: c.ID, SenderID: s.alice}

	s.store.EXPECT().GetMessage(msg.ID).Return(msg, nil).Times(1)
	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().UpsertReaction(gomock.Any()).Return(nil).Times(1)
	s.broadcaster.EXPECT().BroadcastToRoom(realtime.RoomName(c.ID), gomock.Any()).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(s.alice, schema.AchievementReactionsReceived).Return(nil, errors.New("ignored")).Times(1)

	r, err := s.service.AddReaction(msg.ID, s.bob, "❤️")
	s.NoError(err)
	s.Equal(s.bob, r.UserID)
	s.Equal(c.ID, r.ChatID)
}

func (s *ChatTestSuite) TestAddOwnReaction() {
	c := s.directChat()
	msg := &schema.Message{ID: primitive.NewObjectID(), ChatID: c.ID, SenderID: s.alice}

	s.store.EXPECT().GetMessage(msg.ID).Return(msg, nil).Times(1)
	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().UpsertReaction(gomock.Any()).Return(nil).Times(1)
	s.broadcaster.EXPECT().BroadcastToRoom(gomock.Any(), gomock.Any()).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.AddReaction(msg.ID, s.alice, "👍")
	s.NoError(err)
}

func (s *ChatTestSuite) TestAddEmptyReaction() {
	_, err := s.service.AddReaction(primitive.NewObjectID(), s.alice, "")
	s.ErrorIs(err, chat.ErrEmptyReaction)
}

func (s *ChatTestSuite) TestAddParticipantsByNonAdmin() {
	c := s.groupChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().AddChatParticipants(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.AddParticipants(c.ID, s.bob, []primitive.ObjectID{primitive.NewObjectID()})
	s.ErrorIs(err, chat.ErrNotAdmin)
}

func (s *ChatTestSuite) TestAddParticipantsToDirectChat() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)

	_, err := s.service.AddParticipants(c.ID, s.alice, []primitive.ObjectID{s.carol})
	s.ErrorIs(err, chat.ErrNotGroupChat)
}

// TestLeaveGroup lets a member remove themselves without being admin
func (s *ChatTestSuite) TestLeaveGroup() {
	c := s.groupChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(2)
	s.store.EXPECT().RemoveChatParticipant(c.ID, s.bob).Return(nil).Times(1)
	s.broadcaster.EXPECT().EvictFromRoom(realtime.RoomName(c.ID), s.bob).Times(1)

	_, err := s.service.RemoveParticipant(c.ID, s.bob, s.bob)
	s.NoError(err)
}

func (s *ChatTestSuite) TestDeleteChatClosesRoom() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.objects.EXPECT().DeletePrefix(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.store.EXPECT().DeleteChat(c.ID).Return(nil).Times(1)
	s.broadcaster.EXPECT().CloseRoom(realtime.RoomName(c.ID)).Times(1)

	s.NoError(s.service.DeleteChat(c.ID, s.alice))
}

func (s *ChatTestSuite) TestDeleteChatFailureKeepsRoom() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.objects.EXPECT().DeletePrefix(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.store.EXPECT().DeleteChat(c.ID).Return(errors.New("mongo down")).Times(1)
	s.broadcaster.EXPECT().CloseRoom(gomock.Any()).Times(0)

	s.Error(s.service.DeleteChat(c.ID, s.alice))
}

// TestUpdateGroupChatRejectsAvatar refuses avatars that are not an image
// upload of the allowed size or the current avatar
func (s *ChatTestSuite) TestUpdateGroupChatRejectsAvatar() {
	c := s.groupChat()
	c.GroupAvatar = "https://cdn/chats/" + c.ID.Hex() + "/avatar/a.png"
	oversize := "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, consts.MaxAvatarSize+1))

	tests := []struct {
		name   string
		avatar string
		err    error
	}{
		{"foreign url", "https://evil.example/a.png", objectstore.ErrForeignObject},
		{"html", htmlDataURI, objectstore.ErrUnsupportedType},
		{"oversize", oversize, objectstore.ErrTooLarge},
	}

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(len(tests))
	s.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.objects.EXPECT().DeleteURL(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.store.EXPECT().UpdateGroupChat(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, tt := range tests {
		avatar := tt.avatar
		_, err := s.service.UpdateGroupChat(c.ID, s.alice, nil, &avatar)
		s.ErrorIs(err, tt.err, tt.name)
	}
}

func (s *ChatTestSuite) TestUpdateGroupChatAvatar() {
	c := s.groupChat()
	c.GroupAvatar = "https://cdn/chats/" + c.ID.Hex() + "/avatar/old.png"
	url := "https://cdn/chats/" + c.ID.Hex() + "/avatar/new.png"

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(2)
	s.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).Return(url, nil).Times(1)
	s.objects.EXPECT().DeleteURL(gomock.Any(), gomock.Any(), c.GroupAvatar).Return(nil).Times(1)
	s.store.EXPECT().UpdateGroupChat(c.ID, gomock.Any(), gomock.Any()).DoAndReturn(func(_ primitive.ObjectID, name, avatar *string) error {
		s.Nil(name)
		s.Equal(url, *avatar)
		return nil
	}).Times(1)

	avatar := pngDataURI
	_, err := s.service.UpdateGroupChat(c.ID, s.alice, nil, &avatar)
	s.NoError(err)
}

func (s *ChatTestSuite) TestRemoveOtherByNonAdmin() {
	c := s.groupChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)

	_, err := s.service.RemoveParticipant(c.ID, s.bob, s.carol)
	s.ErrorIs(err, chat.ErrNotAdmin)
}

func (s *ChatTestSuite) TestUpdateTypingStatus() {
	c := s.directChat()

	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().SetTypingStatus(c.ID, s.bob, true).Return(nil).Times(1)
	s.broadcaster.EXPECT().BroadcastToRoom(realtime.RoomName(c.ID), gomock.Any()).Do(func(_ string, ev realtime.Event) {
		s.Equal(realtime.EventTypingStatus, ev.Event)
	}).Times(1)

	s.NoError(s.service.UpdateTypingStatus(c.ID, s.bob, true))
}

func (s *ChatTestSuite) TestIsParticipantOfMissingChat() {
	id := primitive.NewObjectID()

	s.store.EXPECT().GetChat(id).Return(nil, store.ErrChatNotFound).Times(1)

	ok, err := s.service.IsParticipant(id, s.alice)
	s.NoError(err)
	s.False(ok)
}

func (s *ChatTestSuite) TestMarkMessageAsRead() {
	c := s.directChat()
	msg := &schema.Message{ID: primitive.NewObjectID(), ChatID: c.ID, SenderID: s.alice}

	s.store.EXPECT().GetMessage(msg.ID).Return(msg, nil).Times(1)
	s.store.EXPECT().GetChat(c.ID).Return(c, nil).Times(1)
	s.store.EXPECT().MarkMessageRead(msg.ID, s.bob).Return(nil).Times(1)
	s.store.EXPECT().ResetUnreadCount(c.ID, s.bob).Return(nil).Times(1)

	s.NoError(s.service.MarkMessageAsRead(msg.ID, s.bob))
}

func TestChatTestSuite(t *testing.T) {
	suite.Run(t, new(ChatTestSuite))
}
