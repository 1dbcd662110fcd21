package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/realtime"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
	"github.com/frilo-app/frilo-api/utils"
)

const (
	logPrefix     = "chat"
	uploadTimeout = time.Minute

	previewLength = 100
)

var (
	ErrNotFound           = store.ErrChatNotFound
	ErrMessageNotFound    = store.ErrMessageNotFound
	ErrReactionNotFound   = store.ErrReactionNotFound
	ErrNotParticipant     = errors.New("user is not a participant of this chat")
	ErrNotSender          = errors.New("only the sender can delete this message")
	ErrNotAdmin           = errors.New("only group admins can change this chat")
	ErrNotGroupChat       = errors.New("chat is not a group chat")
	ErrTooFewParticipants = errors.New("a chat needs at least two participants")
	ErrEmptyMessage       = errors.New("message has no text or media")
	ErrInvalidMessageType = errors.New("invalid message type")
	ErrEmptyReaction      = errors.New("reaction emoji is empty")
)

type Store interface {
	CreateChat(c *schema.Chat) error
	GetChat(id primitive.ObjectID) (*schema.Chat, error)
	FindDirectChat(a, b primitive.ObjectID) (*schema.Chat, error)
	ListUserChats(userID primitive.ObjectID) ([]schema.Chat, error)
	RecordChatMessage(chatID, messageID primitive.ObjectID, recipients []primitive.ObjectID) error
	ResetUnreadCount(chatID, userID primitive.ObjectID) error
	SetTypingStatus(chatID, userID primitive.ObjectID, typing bool) error
	SetChatMuted(chatID, userID primitive.ObjectID, muted bool) error
	AddChatParticipants(chatID primitive.ObjectID, userIDs []primitive.ObjectID) error
	RemoveChatParticipant(chatID, userID primitive.ObjectID) error
	UpdateGroupChat(chatID primitive.ObjectID, name, avatar *string) error
	DeleteChat(chatID primitive.ObjectID) error

	CreateMessage(msg *schema.Message) error
	GetMessage(id primitive.ObjectID) (*schema.Message, error)
	ListMessages(chatID primitive.ObjectID, page, limit int64) ([]schema.Message, int64, error)
	SoftDeleteMessage(id primitive.ObjectID) error
	MarkMessageRead(id, userID primitive.ObjectID) error

	UpsertReaction(r *schema.Reaction) error
	DeleteReaction(messageID, userID primitive.ObjectID) error
	ListReactions(messageIDs []primitive.ObjectID) ([]schema.Reaction, error)

	GetUser(id primitive.ObjectID) (*schema.User, error)
}

// Broadcaster pushes events to the members of a websocket room
type Broadcaster interface {
	BroadcastToRoom(room string, ev realtime.Event)
	EvictFromRoom(room string, userID primitive.ObjectID)
	CloseRoom(room string)
}

type AchievementChecker interface {
	CheckAchievementsByType(userID primitive.ObjectID, t schema.AchievementType) (*achievement.CheckResult, error)
}

type Notifier interface {
	AddNotification(draft notification.Draft) (*schema.Notification, error)
}

// Draft describes a new chat. The creator is always added.
type Draft struct {
	Participants []primitive.ObjectID
	IsGroupChat  bool
	GroupName    string
	HelpPointID  *primitive.ObjectID
}

// MessageDraft is an outgoing message. Media entries are data uris or urls
// returned by the attachment upload.
type MessageDraft struct {
	Type             schema.MessageType
	Text             string
	Media            []string
	AudioMetering    []float64
	ReplyToMessageID *primitive.ObjectID
}

// MessageView is a message together with its reactions
type MessageView struct {
	schema.Message `bson:",inline"`
	Reactions      []schema.Reaction `json:"reactions"`
}

type MessagePage struct {
	Messages []MessageView
	Total    int64
	Page     int64
	Limit    int64
}

type typingPayload struct {
	ChatID   string `json:"chatId"`
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

type reactionRemovedPayload struct {
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId"`
	UserID    string `json:"userId"`
}

type messageDeletedPayload struct {
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId"`
}

type Service struct {
	store        Store
	broadcaster  Broadcaster
	achievements AchievementChecker
	notifier     Notifier
	objects      objectstore.ObjectStore
}

// NewService returns the chat service. The broadcaster may be set later with
// SetBroadcaster since the hub and the service refer to each other.
func NewService(store Store, achievements AchievementChecker, notifier Notifier, objects objectstore.ObjectStore) *Service {
	return &Service{
		store:        store,
		achievements: achievements,
		notifier:     notifier,
		objects:      objects,
	}
}

func (s *Service) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

var (
	// AttachmentRule limits the files sent in messages
	AttachmentRule = objectstore.Rule{
		Types:    consts.AttachmentTypes,
		MaxBytes: consts.MaxAttachmentSize,
	}

	// AvatarRule limits group avatars
	AvatarRule = objectstore.Rule{
		Types:    consts.AvatarTypes,
		MaxBytes: consts.MaxAvatarSize,
	}
)

func storagePrefix(chatID primitive.ObjectID) string {
	return fmt.Sprintf("%s/%s", consts.ChatsEntity, chatID.Hex())
}

// AttachmentsPrefix is where the files of a chat's messages are stored
func AttachmentsPrefix(chatID primitive.ObjectID) string {
	return storagePrefix(chatID) + "/messages"
}

func avatarPrefix(chatID primitive.ObjectID) string {
	return storagePrefix(chatID) + "/avatar"
}

func (s *Service) broadcast(chatID primitive.ObjectID, event string, data interface{}) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToRoom(realtime.RoomName(chatID), realtime.Event{Event: event, Data: data})
}

func (s *Service) checkAchievements(userID primitive.ObjectID, t schema.AchievementType) {
	if s.achievements == nil {
		return
	}
	if _, err := s.achievements.CheckAchievementsByType(userID, t); err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"user_id": userID.Hex(),
			"type":    t,
		}).WithError(err).Warn("fail to check achievements")
	}
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// CreateChat opens a chat for the creator and the given participants. A
// direct chat between two users is reused when it already exists.
func (s *Service) CreateChat(userID primitive.ObjectID, draft Draft) (*schema.Chat, error) {
	participants := uniqueIDs(append([]primitive.ObjectID{userID}, draft.Participants...))
	if len(participants) < 2 {
		return nil, ErrTooFewParticipants
	}

	isGroup := draft.IsGroupChat || len(participants) > 2
	if !isGroup {
		existing, err := s.store.FindDirectChat(participants[0], participants[1])
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, store.ErrChatNotFound) {
			return nil, err
		}
	}

	c := &schema.Chat{
		Participants: participants,
		IsGroupChat:  isGroup,
		Admins:       []primitive.ObjectID{},
		HelpPointID:  draft.HelpPointID,
	}
	if isGroup {
		c.Admins = []primitive.ObjectID{userID}
		c.GroupName = draft.GroupName
		if c.GroupName == "" {
			_, lang := s.userName(userID)
			c.GroupName = utils.Translate(lang, "chat.group.default_name", nil)
		}
	}

	if err := s.store.CreateChat(c); err != nil {
		return nil, err
	}
	return s.store.GetChat(c.ID)
}

func (s *Service) GetUserChats(userID primitive.ObjectID) ([]schema.Chat, error) {
	return s.store.ListUserChats(userID)
}

// GetUserChatsWithMessages leaves out chats nobody has written in yet
func (s *Service) GetUserChatsWithMessages(userID primitive.ObjectID) ([]schema.Chat, error) {
	chats, err := s.store.ListUserChats(userID)
	if err != nil {
		return nil, err
	}

	active := make([]schema.Chat, 0, len(chats))
	for _, c := range chats {
		if c.LastMessageID != nil {
			active = append(active, c)
		}
	}
	return active, nil
}

// GetChat returns a chat the user takes part in
func (s *Service) GetChat(chatID, userID primitive.ObjectID) (*schema.Chat, error) {
	c, err := s.store.GetChat(chatID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return c, nil
}

func (s *Service) getAdministered(chatID, userID primitive.ObjectID) (*schema.Chat, error) {
	c, err := s.GetChat(chatID, userID)
	if err != nil {
		return nil, err
	}
	if !c.IsGroupChat {
		return nil, ErrNotGroupChat
	}
	if !c.IsAdmin(userID) {
		return nil, ErrNotAdmin
	}
	return c, nil
}

// IsParticipant reports chat membership. A missing chat has no members.
func (s *Service) IsParticipant(chatID, userID primitive.ObjectID) (bool, error) {
	c, err := s.store.GetChat(chatID)
	if errors.Is(err, store.ErrChatNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return c.HasParticipant(userID), nil
}

// GetChatMessages returns one page of a chat's messages, newest first.
// Reading the first page clears the caller's unread counter.
func (s *Service) GetChatMessages(chatID, userID primitive.ObjectID, page, limit int64) (*MessagePage, error) {
	if _, err := s.GetChat(chatID, userID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = consts.MessagePageSize
	}
	if limit > consts.MaxMessagePageSize {
		limit = consts.MaxMessagePageSize
	}

	messages, total, err := s.store.ListMessages(chatID, page, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	byMessage := make(map[primitive.ObjectID][]schema.Reaction)
	if len(ids) > 0 {
		reactions, err := s.store.ListReactions(ids)
		if err != nil {
			return nil, err
		}
		for _, r := range reactions {
			byMessage[r.MessageID] = append(byMessage[r.MessageID], r)
		}
	}

	views := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		reactions := byMessage[m.ID]
		if reactions == nil {
			reactions = []schema.Reaction{}
		}
		views = append(views, MessageView{Message: m, Reactions: reactions})
	}

	if page == 1 {
		if err := s.store.ResetUnreadCount(chatID, userID); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Debug("fail to reset unread count")
		}
	}

	return &MessagePage{
		Messages: views,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// SendMessage stores a message from a participant, updates the chat and
// fans the message out to the room and to the recipients' devices
func (s *Service) SendMessage(chatID, senderID primitive.ObjectID, draft MessageDraft) (*schema.Message, error) {
	if draft.Type == "" {
		draft.Type = schema.MessageText
	}
	if !draft.Type.Valid() {
		return nil, ErrInvalidMessageType
	}
	if draft.Text == "" && len(draft.Media) == 0 {
		return nil, ErrEmptyMessage
	}

	c, err := s.GetChat(chatID, senderID)
	if err != nil {
		return nil, err
	}

	media := []string{}
	if len(draft.Media) > 0 {
		// plain urls must come from this chat's attachment upload
		batch, err := objectstore.NewBatch(AttachmentRule, draft.Media, func(url string) bool {
			return s.objects.Owns(AttachmentsPrefix(chatID), url)
		})
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		media, err = batch.Upload(ctx, s.objects, AttachmentsPrefix(chatID))
		cancel()
		if err != nil {
			return nil, err
		}
	}

	msg := &schema.Message{
		ChatID:           chatID,
		SenderID:         senderID,
		Type:             draft.Type,
		Text:             draft.Text,
		MediaURLs:        media,
		AudioMetering:    draft.AudioMetering,
		ReplyToMessageID: draft.ReplyToMessageID,
		ReadBy:           []primitive.ObjectID{},
	}
	if err := s.store.CreateMessage(msg); err != nil {
		return nil, err
	}

	recipients := make([]primitive.ObjectID, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p != senderID {
			recipients = append(recipients, p)
		}
	}

	if err := s.store.RecordChatMessage(chatID, msg.ID, recipients); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("chat_id", chatID.Hex()).Error("fail to record message on chat")
	}

	s.broadcast(chatID, realtime.EventNewMessage, msg)
	s.notifyRecipients(c, msg, recipients)
	s.checkAchievements(senderID, schema.AchievementMessagesSent)

	return msg, nil
}

func (s *Service) userName(userID primitive.ObjectID) (string, string) {
	u, err := s.store.GetUser(userID)
	if err != nil {
		return "", ""
	}
	return u.Name, u.Language
}

func preview(lang string, msg *schema.Message) string {
	if msg.Type != schema.MessageText || msg.Text == "" {
		return utils.Translate(lang, "chat.media."+string(msg.Type), nil)
	}
	if utf8.RuneCountInString(msg.Text) <= previewLength {
		return msg.Text
	}
	return string([]rune(msg.Text)[:previewLength]) + "…"
}

// notifyRecipients sends one notification per recipient language, skipping
// users that muted the chat
func (s *Service) notifyRecipients(c *schema.Chat, msg *schema.Message, recipients []primitive.ObjectID) {
	if s.notifier == nil {
		return
	}

	byLanguage := make(map[string][]primitive.ObjectID)
	for _, r := range recipients {
		if c.IsMutedBy(r) {
			continue
		}
		_, lang := s.userName(r)
		byLanguage[lang] = append(byLanguage[lang], r)
	}

	senderName, _ := s.userName(msg.SenderID)

	for lang, userIDs := range byLanguage {
		name := senderName
		if name == "" {
			name = utils.Translate(lang, "chat.someone", nil)
		}
		if c.IsGroupChat && c.GroupName != "" {
			name = fmt.Sprintf("%s @ %s", name, c.GroupName)
		}

		data := map[string]interface{}{
			"Name":    name,
			"Preview": preview(lang, msg),
		}
		if _, err := s.notifier.AddNotification(notification.Draft{
			UserIDs: userIDs,
			Title:   utils.Translate(lang, "notification.chat_message.heading", data),
			Message: utils.Translate(lang, "notification.chat_message.content", data),
			Type:    schema.NotificationChatMessage,
			Action: &schema.NotificationAction{
				Type: schema.ActionChat,
				ID:   c.ID.Hex(),
			},
		}); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Warn("fail to send chat notification")
		}
	}
}

// UploadAttachment stores a file a participant is about to send and returns
// its url for the message media
func (s *Service) UploadAttachment(chatID, userID primitive.ObjectID, contentType string, body io.Reader) (string, error) {
	if _, err := s.GetChat(chatID, userID); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	return s.objects.Upload(ctx, objectstore.NewKey(AttachmentsPrefix(chatID), contentType), contentType, body)
}

// DeleteMessage soft deletes a message of the caller and removes its files
func (s *Service) DeleteMessage(messageID, userID primitive.ObjectID) error {
	msg, err := s.store.GetMessage(messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != userID {
		return ErrNotSender
	}

	if len(msg.MediaURLs) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		for _, url := range msg.MediaURLs {
			if err := s.objects.DeleteURL(ctx, AttachmentsPrefix(msg.ChatID), url); err != nil {
				log.WithField("prefix", logPrefix).WithError(err).WithField("url", url).Warn("fail to delete attachment")
			}
		}
		cancel()
	}

	if err := s.store.SoftDeleteMessage(messageID); err != nil {
		return err
	}

	s.broadcast(msg.ChatID, realtime.EventMessageDeleted, messageDeletedPayload{
		ChatID:    msg.ChatID.Hex(),
		MessageID: messageID.Hex(),
	})
	return nil
}

// MarkMessageAsRead records that the user read a message and clears their
// unread counter on the chat
func (s *Service) MarkMessageAsRead(messageID, userID primitive.ObjectID) error {
	msg, err := s.store.GetMessage(messageID)
	if err != nil {
		return err
	}
	if _, err := s.GetChat(msg.ChatID, userID); err != nil {
		return err
	}

	if err := s.store.MarkMessageRead(messageID, userID); err != nil {
		return err
	}
	return s.store.ResetUnreadCount(msg.ChatID, userID)
}

func (s *Service) UpdateTypingStatus(chatID, userID primitive.ObjectID, typing bool) error {
	if _, err := s.GetChat(chatID, userID); err != nil {
		return err
	}
	if err := s.store.SetTypingStatus(chatID, userID, typing); err != nil {
		return err
	}

	s.broadcast(chatID, realtime.EventTypingStatus, typingPayload{
		ChatID:   chatID.Hex(),
		UserID:   userID.Hex(),
		IsTyping: typing,
	})
	return nil
}

// MuteChat stops or resumes notifications of a chat for the user
func (s *Service) MuteChat(chatID, userID primitive.ObjectID, muted bool) (*schema.Chat, error) {
	if _, err := s.GetChat(chatID, userID); err != nil {
		return nil, err
	}
	if err := s.store.SetChatMuted(chatID, userID, muted); err != nil {
		return nil, err
	}
	return s.store.GetChat(chatID)
}

func (s *Service) AddParticipants(chatID, callerID primitive.ObjectID, userIDs []primitive.ObjectID) (*schema.Chat, error) {
	if _, err := s.getAdministered(chatID, callerID); err != nil {
		return nil, err
	}

	userIDs = uniqueIDs(userIDs)
	if len(userIDs) > 0 {
		if err := s.store.AddChatParticipants(chatID, userIDs); err != nil {
			return nil, err
		}
	}
	return s.store.GetChat(chatID)
}

// RemoveParticipant lets an admin remove a member, or a member leave
func (s *Service) RemoveParticipant(chatID, callerID, userID primitive.ObjectID) (*schema.Chat, error) {
	c, err := s.GetChat(chatID, callerID)
	if err != nil {
		return nil, err
	}
	if !c.IsGroupChat {
		return nil, ErrNotGroupChat
	}
	if callerID != userID && !c.IsAdmin(callerID) {
		return nil, ErrNotAdmin
	}
	if !c.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}

	if err := s.store.RemoveChatParticipant(chatID, userID); err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.EvictFromRoom(realtime.RoomName(chatID), userID)
	}
	return s.store.GetChat(chatID)
}

// UpdateGroupChat renames a group or changes its avatar. The avatar may be
// a data uri, which is stored first.
func (s *Service) UpdateGroupChat(chatID, callerID primitive.ObjectID, name, avatar *string) (*schema.Chat, error) {
	c, err := s.getAdministered(chatID, callerID)
	if err != nil {
		return nil, err
	}

	if avatar != nil && *avatar != "" && !objectstore.IsDataURI(*avatar) && *avatar != c.GroupAvatar {
		return nil, objectstore.ErrForeignObject
	}

	if avatar != nil && objectstore.IsDataURI(*avatar) {
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()

		url, err := objectstore.UploadDataURI(ctx, s.objects, avatarPrefix(chatID), AvatarRule, *avatar)
		if err != nil {
			return nil, err
		}
		if c.GroupAvatar != "" {
			if err := s.objects.DeleteURL(ctx, avatarPrefix(chatID), c.GroupAvatar); err != nil {
				log.WithField("prefix", logPrefix).WithError(err).Warn("fail to delete previous group avatar")
			}
		}
		avatar = &url
	}

	if err := s.store.UpdateGroupChat(chatID, name, avatar); err != nil {
		return nil, err
	}
	return s.store.GetChat(chatID)
}

// DeleteChat removes a chat with its messages, reactions and files
func (s *Service) DeleteChat(chatID, userID primitive.ObjectID) error {
	if _, err := s.GetChat(chatID, userID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()
	if err := s.objects.DeletePrefix(ctx, storagePrefix(chatID)); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("chat_id", chatID.Hex()).Warn("fail to delete chat files")
	}

	if err := s.store.DeleteChat(chatID); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.CloseRoom(realtime.RoomName(chatID))
	}
	return nil
}

// AddReaction sets the user's reaction on a message, replacing an earlier one
func (s *Service) AddReaction(messageID, userID primitive.ObjectID, emoji string) (*schema.Reaction, error) {
	if emoji == "" {
		return nil, ErrEmptyReaction
	}

	msg, err := s.store.GetMessage(messageID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetChat(msg.ChatID, userID); err != nil {
		return nil, err
	}

	r := &schema.Reaction{
		MessageID: messageID,
		ChatID:    msg.ChatID,
		UserID:    userID,
		Emoji:     emoji,
	}
	if err := s.store.UpsertReaction(r); err != nil {
		return nil, err
	}

	s.broadcast(msg.ChatID, realtime.EventNewReaction, r)
	if msg.SenderID != userID {
		s.checkAchievements(msg.SenderID, schema.AchievementReactionsReceived)
	}
	return r, nil
}

func (s *Service) RemoveReaction(messageID, userID primitive.ObjectID) error {
	msg, err := s.store.GetMessage(messageID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteReaction(messageID, userID); err != nil {
		return err
	}

	s.broadcast(msg.ChatID, realtime.EventReactionRemoved, reactionRemovedPayload{
		ChatID:    msg.ChatID.Hex(),
		MessageID: messageID.Hex(),
		UserID:    userID.Hex(),
	})
	return nil
}
