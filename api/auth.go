package api

import (
	"errors"
	"net/http"
	"time"

	jwtrequest "github.com/dgrijalva/jwt-go/request"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/frilo-app/frilo-api/auth"
	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
)

// cookieExtractor reads the access token cookie set at login
type cookieExtractor string

func (e cookieExtractor) ExtractToken(req *http.Request) (string, error) {
	cookie, err := req.Cookie(string(e))
	if err != nil || cookie.Value == "" {
		return "", jwtrequest.ErrNoTokenInRequest
	}
	return cookie.Value, nil
}

var tokenExtractor = &jwtrequest.MultiExtractor{
	jwtrequest.AuthorizationHeaderExtractor,
	cookieExtractor(tokenCookie),
}

// socketTokenExtractor also accepts the token query argument, since browsers
// cannot set headers on websocket upgrades
var socketTokenExtractor = &jwtrequest.MultiExtractor{
	jwtrequest.AuthorizationHeaderExtractor,
	cookieExtractor(tokenCookie),
	jwtrequest.ArgumentExtractor{"token"},
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := tokenExtractor.ExtractToken(c.Request)
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
		c.Set(requesterIDKey, userID)
		c.Next()
	}
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *schema.User `json:"user"`
}

// respondSession returns the token in the body and as an http only cookie
func respondSession(c *gin.Context, session *auth.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, session.Token, maxAge, "/", "", viper.GetBool("server.secure_cookie"), true)

	responseOK(c, sessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      session.User,
	})
}

type phoneRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type phoneCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
}

func (s *Server) sendOTP(c *gin.Context) {
	var req phoneRequest
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	if shouldInterupt(s.auth.SendOTP(c, req.PhoneNumber), c) {
		return
	}

	responseMessage(c, "verification code sent")
}

func (s *Server) verifyOTP(c *gin.Context) {
	var req phoneCodeRequest
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	if shouldInterupt(s.auth.VerifyOTP(c, req.PhoneNumber, req.Code), c) {
		return
	}

	responseMessage(c, "phone number verified")
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		PhoneNumber   string `json:"phoneNumber" binding:"required"`
		Email         string `json:"email" binding:"omitempty,email"`
		Password      string `json:"password" binding:"omitempty,min=6"`
		Name          string `json:"name" binding:"max=100"`
		Bio           string `json:"bio" binding:"max=500"`
		Language      string `json:"language"`
		AgreedToTerms bool   `json:"agreedToTerms"`
	}
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	session, err := s.auth.Register(c, auth.Registration{
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		Bio:           req.Bio,
		Language:      req.Language,
		AgreedToTerms: req.AgreedToTerms,
	})
	if shouldInterupt(err, c) {
		return
	}

	respondSession(c, session)
}

func (s *Server) phoneLogin(c *gin.Context) {
	var req phoneRequest
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	if shouldInterupt(s.auth.LoginWithPhone(c, req.PhoneNumber), c) {
		return
	}

	responseMessage(c, "verification code sent")
}

func (s *Server) verifiedPhoneLogin(c *gin.Context) {
	var req phoneCodeRequest
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	session, err := s.auth.LoginVerifiedPhone(c, req.PhoneNumber, req.Code)
	if shouldInterupt(err, c) {
		return
	}

	respondSession(c, session)
}

func (s *Server) emailLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	session, err := s.auth.LoginWithEmail(req.Email, req.Password)
	if shouldInterupt(err, c) {
		return
	}

	respondSession(c, session)
}

func (s *Server) googleLogin(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	session, err := s.auth.LoginWithGoogle(c, req.IDToken)
	if shouldInterupt(err, c) {
		return
	}

	respondSession(c, session)
}

// forgotPassword answers the same way whether or not the email is known
func (s *Server) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	err := s.auth.RequestPasswordReset(c, req.Email)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		abortWithError(c, err)
		return
	}

	responseMessage(c, "if the email is registered a reset link was sent")
}

func (s *Server) resetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	if shouldInterupt(s.auth.ResetPassword(c, req.Token, req.Password), c) {
		return
	}

	responseMessage(c, "password updated")
}

func (s *Server) checkExistence(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phoneNumber"`
		Email       string `json:"email" binding:"omitempty,email"`
	}
	if err := bindJSON(c, &req, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	exists, err := s.auth.CheckExistence(req.PhoneNumber, req.Email)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"exists": exists})
}

func (s *Server) refreshToken(c *gin.Context) {
	token, err := tokenExtractor.ExtractToken(c.Request)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAuthorizationFormat, err)
		return
	}

	session, err := s.auth.Refresh(token)
	if shouldInterupt(err, c) {
		return
	}

	respondSession(c, session)
}

func (s *Server) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, "", -1, "/", "", viper.GetBool("server.secure_cookie"), true)
	responseMessage(c, "logged out")
}
