package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// websocket upgrades an authenticated request and serves the connection
// until it closes
func (s *Server) websocket(c *gin.Context) {
	token, err := socketTokenExtractor.ExtractToken(c.Request)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAuthorizationFormat, err)
		return
	}

	userID, err := s.auth.Tokens().Parse(token)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
		return
	}
	c.Set(requesterKey, userID.Hex())

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already answered the client
		log.WithError(err).Warn("fail to upgrade websocket")
		return
	}

	client := s.hub.Register(userID, conn)
	s.hub.Serve(client)
}
