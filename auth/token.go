package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Tokens issues and verifies HS256 access tokens whose subject is the user id
type Tokens struct {
	secret []byte
	expire time.Duration
}

func NewTokens(secret string, expire time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		expire: expire,
	}
}

func (t *Tokens) Issue(userID primitive.ObjectID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.expire)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   userID.Hex(),
		ExpiresAt: exp.Unix(),
		IssuedAt:  now.Unix(),
		Id:        uuid.New().String(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse returns the user id of a valid token
func (t *Tokens) Parse(tokenString string) (primitive.ObjectID, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}

	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return id, nil
}
