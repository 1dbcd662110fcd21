package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/cache"
	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
)

const logPrefix = "auth"

var (
	ErrUserNotFound        = store.ErrUserNotFound
	ErrUserExists          = store.ErrUserExists
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTermsNotAccepted    = errors.New("user must agree to terms")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrMissingContactField = errors.New("a phone number or an email is required")
)

// Store is the user persistence used for authentication
type Store interface {
	CreateUser(u *schema.User) error
	GetUser(id primitive.ObjectID) (*schema.User, error)
	GetUserByPhone(phone string) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	GetUserByGoogleID(googleID string) (*schema.User, error)
	UpdateUser(id primitive.ObjectID, patch schema.UserPatch) (*schema.User, error)
	LinkGoogleAccount(id primitive.ObjectID, googleID string) error
}

// AchievementInitializer starts the achievement progress of new users
type AchievementInitializer interface {
	InitializeUserAchievements(userID primitive.ObjectID)
}

// Session is the result of a successful login
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *schema.User
}

// Registration is a new phone account. The phone must have been verified
// with a one time code shortly before.
type Registration struct {
	PhoneNumber   string
	Email         string
	Password      string
	Name          string
	Bio           string
	Language      string
	AgreedToTerms bool
}

type Service struct {
	store        Store
	tokens       *Tokens
	otp          *OTP
	google       GoogleVerifier
	mailer       Mailer
	cache        cache.Store
	achievements AchievementInitializer
}

func NewService(store Store, tokens *Tokens, otp *OTP, google GoogleVerifier, mailer Mailer, c cache.Store, achievements AchievementInitializer) *Service {
	return &Service{
		store:        store,
		tokens:       tokens,
		otp:          otp,
		google:       google,
		mailer:       mailer,
		cache:        c,
		achievements: achievements,
	}
}

func (s *Service) Tokens() *Tokens {
	return s.tokens
}

func (s *Service) session(u *schema.User) (*Session, error) {
	token, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: exp, User: u}, nil
}

func (s *Service) welcome(u *schema.User) {
	if s.achievements != nil {
		s.achievements.InitializeUserAchievements(u.ID)
	}
}

func (s *Service) SendOTP(ctx context.Context, phone string) error {
	return s.otp.Send(ctx, phone)
}

func (s *Service) VerifyOTP(ctx context.Context, phone, code string) error {
	return s.otp.Verify(ctx, phone, code)
}

// Register creates a phone account, or logs into the existing one of the
// same phone number
func (s *Service) Register(ctx context.Context, r Registration) (*Session, error) {
	if !r.AgreedToTerms {
		return nil, ErrTermsNotAccepted
	}
	if r.PhoneNumber == "" {
		return nil, ErrMissingContactField
	}
	if !s.otp.IsVerified(ctx, r.PhoneNumber) {
		return nil, ErrPhoneNotVerified
	}

	existing, err := s.store.GetUserByPhone(r.PhoneNumber)
	if err == nil {
		s.otp.ClearVerified(ctx, r.PhoneNumber)
		return s.session(existing)
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	u := &schema.User{
		PhoneNumber:     r.PhoneNumber,
		Email:           strings.ToLower(strings.TrimSpace(r.Email)),
		Name:            r.Name,
		Bio:             r.Bio,
		Language:        r.Language,
		IsPhoneVerified: true,
		AgreedToTerms:   true,
	}
	if r.Password != "" {
		if u.Password, err = HashPassword(r.Password); err != nil {
			return nil, err
		}
	}

	if err := s.store.CreateUser(u); err != nil {
		return nil, err
	}
	s.otp.ClearVerified(ctx, r.PhoneNumber)
	s.welcome(u)

	return s.session(u)
}

func (s *Service) verifiedPhoneUser(phone string) (*schema.User, error) {
	u, err := s.store.GetUserByPhone(phone)
	if err != nil {
		return nil, err
	}
	if !u.IsPhoneVerified {
		return nil, ErrPhoneNotVerified
	}
	return u, nil
}

// LoginWithPhone sends a login code to a known, verified phone
func (s *Service) LoginWithPhone(ctx context.Context, phone string) error {
	if _, err := s.verifiedPhoneUser(phone); err != nil {
		return err
	}
	return s.otp.Send(ctx, phone)
}

// LoginVerifiedPhone exchanges a login code for a session
func (s *Service) LoginVerifiedPhone(ctx context.Context, phone, code string) (*Session, error) {
	u, err := s.verifiedPhoneUser(phone)
	if err != nil {
		return nil, err
	}
	if err := s.otp.Verify(ctx, phone, code); err != nil {
		return nil, err
	}
	s.otp.ClearVerified(ctx, phone)
	return s.session(u)
}

func (s *Service) LoginWithEmail(email, password string) (*Session, error) {
	u, err := s.store.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.Password == "" || !CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.session(u)
}

// LoginWithGoogle signs a user in with a google id token. Accounts are
// matched by google id, then by email, and created when neither exists.
func (s *Service) LoginWithGoogle(ctx context.Context, idToken string) (*Session, error) {
	profile, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, ErrGoogleAuthFailed
	}

	u, err := s.store.GetUserByGoogleID(profile.Subject)
	if err == nil {
		return s.session(u)
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	if profile.Email != "" {
		u, err = s.store.GetUserByEmail(strings.ToLower(profile.Email))
		if err == nil {
			if err := s.store.LinkGoogleAccount(u.ID, profile.Subject); err != nil {
				return nil, err
			}
			u.GoogleID = profile.Subject
			return s.session(u)
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
	}

	u = &schema.User{
		GoogleID:        profile.Subject,
		Email:           strings.ToLower(profile.Email),
		Name:            profile.Name,
		AvatarURL:       profile.Picture,
		IsEmailVerified: profile.Email != "",
	}
	if err := s.store.CreateUser(u); err != nil {
		return nil, err
	}
	s.welcome(u)

	return s.session(u)
}

// RequestPasswordReset stores a reset token for the account of the email
// and mails it to the user
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.store.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}

	token := uuid.New().String()
	if err := s.cache.Set(ctx, "reset:"+token, u.ID.Hex(), consts.ResetTokenTTL); err != nil {
		return err
	}
	return s.mailer.SendPasswordReset(ctx, u.Email, token)
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	hex, err := s.cache.Get(ctx, "reset:"+token)
	if errors.Is(err, cache.ErrNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.store.UpdateUser(id, schema.UserPatch{Password: &hashed}); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, "reset:"+token); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("fail to delete used reset token")
	}
	return nil
}

// CheckExistence reports whether an account uses the phone or the email
func (s *Service) CheckExistence(phone, email string) (bool, error) {
	if phone == "" && email == "" {
		return false, ErrMissingContactField
	}

	lookups := []func() (*schema.User, error){}
	if phone != "" {
		lookups = append(lookups, func() (*schema.User, error) { return s.store.GetUserByPhone(phone) })
	}
	if email != "" {
		lookups = append(lookups, func() (*schema.User, error) {
			return s.store.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
		})
	}

	for _, lookup := range lookups {
		_, err := lookup()
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return false, err
		}
	}
	return false, nil
}

// Refresh issues a new token for the owner of a still valid token
func (s *Service) Refresh(token string) (*Session, error) {
	id, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	u, err := s.store.GetUser(id)
	if err != nil {
		return nil, err
	}
	return s.session(u)
}
