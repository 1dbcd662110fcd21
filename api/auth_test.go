package api

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/auth"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
)

func TestEmailLoginSetsCookie(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	hashed, err := auth.HashPassword("hunter22")
	assert.NoError(t, err)
	u := &schema.User{ID: primitive.NewObjectID(), Email: "amy@frilo.app", Password: hashed}

	ts.store.EXPECT().GetUserByEmail("amy@frilo.app").Return(u, nil).Times(1)

	w := ts.do(t, "POST", "/auth/email/login", primitive.NilObjectID, map[string]string{
		"email":    "amy@frilo.app",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	data := decodeBody(t, w)["data"].(map[string]interface{})
	token := data["token"].(string)
	assert.NotEmpty(t, token)
	assert.NotContains(t, data["user"], "password")

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == tokenCookie {
			cookie = c
		}
	}
	if assert.NotNil(t, cookie, "missing session cookie") {
		assert.Equal(t, token, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	}

	id, err := ts.tokens.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestEmailLoginWrongPassword(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	hashed, err := auth.HashPassword("hunter22")
	assert.NoError(t, err)

	ts.store.EXPECT().GetUserByEmail("amy@frilo.app").Return(&schema.User{Password: hashed}, nil).Times(1)

	w := ts.do(t, "POST", "/auth/email/login", primitive.NilObjectID, map[string]string{
		"email":    "amy@frilo.app",
		"password": "wrong",
	})
	assertErrorCode(t, w, http.StatusUnauthorized, 1106)
}

// TestForgotPasswordUnknownEmail answers like a known email
func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	ts.store.EXPECT().GetUserByEmail("ghost@frilo.app").Return(nil, store.ErrUserNotFound).Times(1)

	w := ts.do(t, "POST", "/auth/forgot-password", primitive.NilObjectID, map[string]string{"email": "ghost@frilo.app"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, true, decodeBody(t, w)["isSuccess"])
}

func TestRegisterUnverifiedPhone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	w := ts.do(t, "POST", "/auth/register", primitive.NilObjectID, map[string]interface{}{
		"phoneNumber":   "+972500000000",
		"agreedToTerms": true,
	})
	assertErrorCode(t, w, http.StatusUnauthorized, 1104)
}

func TestCheckExistence(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	ts.store.EXPECT().GetUserByPhone("+972500000001").Return(&schema.User{}, nil).Times(1)

	w := ts.do(t, "POST", "/auth/check-existence", primitive.NilObjectID, map[string]string{"phoneNumber": "+972500000001"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["exists"])
}

func TestRefreshToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	userID := primitive.NewObjectID()

	ts.store.EXPECT().GetUser(userID).Return(&schema.User{ID: userID}, nil).Times(1)

	w := ts.do(t, "POST", "/auth/refresh-token", userID, nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.NotEmpty(t, decodeBody(t, w)["data"].(map[string]interface{})["token"])
}
