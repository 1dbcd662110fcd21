package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/chat"
	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/schema"
)

// optionalID parses an optional hex id, aborting the request when it is set
// but malformed
func optionalID(c *gin.Context, hex string) (*primitive.ObjectID, bool) {
	if hex == "" {
		return nil, true
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
		return nil, false
	}
	return &id, true
}

func (s *Server) createChat(c *gin.Context) {
	var params struct {
		Participants []string `json:"participants" binding:"required,min=1,dive,len=24,hexadecimal"`
		IsGroupChat  bool     `json:"isGroupChat"`
		GroupName    string   `json:"groupName" binding:"max=100"`
		HelpPointID  string   `json:"helpPointId" binding:"omitempty,len=24,hexadecimal"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	participants, err := parseIDs(params.Participants)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
		return
	}
	helpPointID, ok := optionalID(c, params.HelpPointID)
	if !ok {
		return
	}

	created, err := s.chats.CreateChat(requester(c), chat.Draft{
		Participants: participants,
		IsGroupChat:  params.IsGroupChat,
		GroupName:    params.GroupName,
		HelpPointID:  helpPointID,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseCreated(c, created)
}

func (s *Server) listChats(c *gin.Context) {
	chats, err := s.chats.GetUserChats(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, chats)
}

func (s *Server) listChatsWithMessages(c *gin.Context) {
	chats, err := s.chats.GetUserChatsWithMessages(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, chats)
}

func (s *Server) chatDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	found, err := s.chats.GetChat(id, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, found)
}

func (s *Server) deleteChat(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if shouldInterupt(s.chats.DeleteChat(id, requester(c)), c) {
		return
	}

	responseMessage(c, "chat deleted")
}

// listMessages returns one page of messages, newest first
func (s *Server) listMessages(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		Page  int64 `form:"page" binding:"omitempty,min=1"`
		Limit int64 `form:"limit" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithBindError(c, err)
		return
	}

	page, err := s.chats.GetChatMessages(id, requester(c), params.Page, params.Limit)
	if shouldInterupt(err, c) {
		return
	}

	responsePage(c, page.Messages, page.Total, page.Page, page.Limit)
}

func (s *Server) sendMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		Type             schema.MessageType `json:"type" binding:"omitempty,oneof=text image audio video file"`
		Text             string             `json:"text" binding:"max=10000"`
		Media            []string           `json:"media" binding:"max=10"`
		MediaURLs        []string           `json:"mediaUrls" binding:"max=10"`
		AudioMetering    []float64          `json:"audioMetering"`
		ReplyToMessageID string             `json:"replyToMessageId" binding:"omitempty,len=24,hexadecimal"`
	}
	if err := bindJSON(c, &params, consts.MaxInlineBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	replyTo, ok := optionalID(c, params.ReplyToMessageID)
	if !ok {
		return
	}

	msg, err := s.chats.SendMessage(id, requester(c), chat.MessageDraft{
		Type:             params.Type,
		Text:             params.Text,
		Media:            append(params.Media, params.MediaURLs...),
		AudioMetering:    params.AudioMetering,
		ReplyToMessageID: replyTo,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseCreated(c, msg)
}

// uploadAttachment stores a multipart file for a later message
func (s *Server) uploadAttachment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	f, contentType, ok := readUpload(c, "file", chat.AttachmentRule)
	if !ok {
		return
	}
	defer f.Close()

	url, err := s.chats.UploadAttachment(id, requester(c), contentType, f)
	if shouldInterupt(err, c) {
		return
	}

	responseCreated(c, gin.H{
		"url":         url,
		"contentType": contentType,
	})
}

func (s *Server) updateTypingStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		IsTyping bool `json:"isTyping"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	if shouldInterupt(s.chats.UpdateTypingStatus(id, requester(c), params.IsTyping), c) {
		return
	}

	responseOK(c, gin.H{"isTyping": params.IsTyping})
}

func (s *Server) muteChat(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		Muted bool `json:"muted"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	updated, err := s.chats.MuteChat(id, requester(c), params.Muted)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, updated)
}

func (s *Server) addChatParticipants(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		UserIDs []string `json:"userIds" binding:"required,min=1,dive,len=24,hexadecimal"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	userIDs, err := parseIDs(params.UserIDs)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
		return
	}

	updated, err := s.chats.AddParticipants(id, requester(c), userIDs)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, updated)
}

func (s *Server) removeChatParticipant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	updated, err := s.chats.RemoveParticipant(id, requester(c), userID)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, updated)
}

// updateGroupChat renames a group or changes its avatar, given as a data uri
// or an uploaded url
func (s *Server) updateGroupChat(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		GroupName   *string `json:"groupName" binding:"omitempty,min=1,max=100"`
		GroupAvatar *string `json:"groupAvatar"`
	}
	if err := bindJSON(c, &params, consts.MaxInlineBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	updated, err := s.chats.UpdateGroupChat(id, requester(c), params.GroupName, params.GroupAvatar)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, updated)
}

func (s *Server) deleteMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if shouldInterupt(s.chats.DeleteMessage(id, requester(c)), c) {
		return
	}

	responseMessage(c, "message deleted")
}

func (s *Server) markMessageRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if shouldInterupt(s.chats.MarkMessageAsRead(id, requester(c)), c) {
		return
	}

	responseMessage(c, "message marked as read")
}

func (s *Server) addReaction(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		Emoji string `json:"emoji" binding:"required,max=32"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	reaction, err := s.chats.AddReaction(id, requester(c), params.Emoji)
	if shouldInterupt(err, c) {
		return
	}

	responseCreated(c, reaction)
}

func (s *Server) removeReaction(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if shouldInterupt(s.chats.RemoveReaction(id, requester(c)), c) {
		return
	}

	responseMessage(c, "reaction removed")
}
