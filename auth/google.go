package auth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

var (
	ErrGoogleAuthFailed = errors.New("google authentication failed")
)

type GoogleProfile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier checks a google sign-in id token
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleProfile, error)
}

type idTokenVerifier struct {
	audiences []string
}

// NewGoogleVerifier accepts tokens issued for any of the given client ids
func NewGoogleVerifier(clientIDs []string) GoogleVerifier {
	return &idTokenVerifier{audiences: clientIDs}
}

func (v *idTokenVerifier) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	for _, audience := range v.audiences {
		payload, err := idtoken.Validate(ctx, idToken, audience)
		if err != nil {
			continue
		}
		return profileFromClaims(payload.Subject, payload.Claims), nil
	}
	return nil, ErrGoogleAuthFailed
}

func profileFromClaims(subject string, claims map[string]interface{}) *GoogleProfile {
	p := &GoogleProfile{Subject: subject}
	if v, ok := claims["email"].(string); ok {
		p.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		p.Name = v
	}
	if v, ok := claims["picture"].(string); ok {
		p.Picture = v
	}
	return p
}
