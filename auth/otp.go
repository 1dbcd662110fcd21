package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/frilo-app/frilo-api/cache"
	"github.com/frilo-app/frilo-api/consts"
)

var (
	ErrOTPExpired       = errors.New("verification code expired")
	ErrOTPInvalid       = errors.New("verification code is wrong")
	ErrOTPBlocked       = errors.New("too many wrong verification codes, try again later")
	ErrOTPRateLimited   = errors.New("verification code requested too often")
	ErrPhoneNotVerified = errors.New("phone number must be verified first")
)

// at most otpSendBurst codes per phone in every otpSendWindow
const (
	otpSendWindow = 90 * time.Second
	otpSendBurst  = 3
)

func otpKey(phone string) string      { return "otp:code:" + phone }
func attemptsKey(phone string) string { return "otp:attempts:" + phone }
func blockKey(phone string) string    { return "otp:block:" + phone }
func verifiedKey(phone string) string { return "otp:verified:" + phone }
func sendKey(phone string) string     { return "otp:sent:" + phone }

// OTP sends and checks one time codes for phone numbers. Codes, attempt
// and send counters and verified markers live in the cache with an expiry,
// so limits hold across instances.
type OTP struct {
	cache cache.Store
	sms   SMSSender
}

func NewOTP(c cache.Store, sms SMSSender) *OTP {
	return &OTP{
		cache: c,
		sms:   sms,
	}
}

func generateCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

func (o *OTP) isBlocked(ctx context.Context, phone string) (bool, error) {
	_, err := o.cache.Get(ctx, blockKey(phone))
	if errors.Is(err, cache.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Send generates a new code for the phone and delivers it
func (o *OTP) Send(ctx context.Context, phone string) error {
	blocked, err := o.isBlocked(ctx, phone)
	if err != nil {
		return err
	}
	if blocked {
		return ErrOTPBlocked
	}

	sent, err := o.cache.Incr(ctx, sendKey(phone), otpSendWindow)
	if err != nil {
		return err
	}
	if sent > otpSendBurst {
		return ErrOTPRateLimited
	}

	code, err := generateCode(consts.OTPLength)
	if err != nil {
		return err
	}

	if err := o.cache.Set(ctx, otpKey(phone), code, consts.OTPTTL); err != nil {
		return err
	}

	text := fmt.Sprintf("Your Frilo verification code is: %s. Valid for %d minutes.", code, int(consts.OTPTTL.Minutes()))
	if err := o.sms.SendSMS(ctx, phone, text); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("fail to send verification code")
		return err
	}
	return nil
}

// Verify checks a code. A correct code marks the phone as verified, and
// too many wrong codes block the phone for a while.
func (o *OTP) Verify(ctx context.Context, phone, code string) error {
	blocked, err := o.isBlocked(ctx, phone)
	if err != nil {
		return err
	}
	if blocked {
		return ErrOTPBlocked
	}

	expected, err := o.cache.Get(ctx, otpKey(phone))
	if errors.Is(err, cache.ErrNotFound) {
		return ErrOTPExpired
	}
	if err != nil {
		return err
	}

	if expected != code {
		attempts, err := o.cache.Incr(ctx, attemptsKey(phone), consts.OTPTTL)
		if err != nil {
			return err
		}
		if attempts >= consts.OTPMaxAttempts {
			if err := o.cache.Set(ctx, blockKey(phone), "1", consts.OTPBlockTTL); err != nil {
				return err
			}
			_ = o.cache.Delete(ctx, otpKey(phone))
			_ = o.cache.Delete(ctx, attemptsKey(phone))
			return ErrOTPBlocked
		}
		return ErrOTPInvalid
	}

	_ = o.cache.Delete(ctx, otpKey(phone))
	_ = o.cache.Delete(ctx, attemptsKey(phone))
	return o.cache.Set(ctx, verifiedKey(phone), "1", consts.VerifiedTTL)
}

func (o *OTP) IsVerified(ctx context.Context, phone string) bool {
	_, err := o.cache.Get(ctx, verifiedKey(phone))
	return err == nil
}

func (o *OTP) ClearVerified(ctx context.Context, phone string) {
	if err := o.cache.Delete(ctx, verifiedKey(phone)); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Debug("fail to clear verified phone")
	}
}
