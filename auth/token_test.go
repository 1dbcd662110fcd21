package auth

import (
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIssueAndParse(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	userID := primitive.NewObjectID()

	token, exp, err := tokens.Issue(userID)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	parsed, err := tokens.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseRejectsOtherSecret(t *testing.T) {
	token, _, err := NewTokens("secret", time.Hour).Issue(primitive.NewObjectID())
	assert.NoError(t, err)

	_, err = NewTokens("another", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, _, err := NewTokens("secret", -time.Minute).Issue(primitive.NewObjectID())
	assert.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsNonObjectIDSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "someone",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "battery staple"))
}

func TestProfileFromClaims(t *testing.T) {
	p := profileFromClaims("123", map[string]interface{}{
		"email":   "dana@example.com",
		"name":    "Dana",
		"picture": "https://example.com/p.png",
	})
	assert.Equal(t, &GoogleProfile{
		Subject: "123",
		Email:   "dana@example.com",
		Name:    "Dana",
		Picture: "https://example.com/p.png",
	}, p)
}
