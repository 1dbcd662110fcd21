package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"

	"github.com/frilo-app/frilo-api/cache"
	"github.com/frilo-app/frilo-api/consts"
)

type recordingSender struct {
	sync.Mutex
	sent map[string]int
}

func (r *recordingSender) SendSMS(ctx context.Context, phone, text string) error {
	r.Lock()
	defer r.Unlock()
	r.sent[phone]++
	return nil
}

type OTPTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	cache cache.Store
	sms   *recordingSender
	otp   *OTP
	ctx   context.Context
	phone string
}

func (s *OTPTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.cache = cache.NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: s.mr.Addr()}))
	s.sms = &recordingSender{sent: map[string]int{}}
	s.otp = NewOTP(s.cache, s.sms)
	s.ctx = context.Background()
	s.phone = "+972501234567"
}

func (s *OTPTestSuite) storedCode() string {
	code, err := s.mr.Get("frilo:" + otpKey(s.phone))
	s.Require().NoError(err)
	return code
}

func (s *OTPTestSuite) TestSendStoresCode() {
	s.NoError(s.otp.Send(s.ctx, s.phone))

	s.Len(s.storedCode(), consts.OTPLength)
	s.Equal(1, s.sms.sent[s.phone])
	s.True(s.mr.TTL("frilo:"+otpKey(s.phone)) > 0)
}

func (s *OTPTestSuite) TestCorrectCodeMarksVerified() {
	s.NoError(s.otp.Send(s.ctx, s.phone))
	s.False(s.otp.IsVerified(s.ctx, s.phone))

	s.NoError(s.otp.Verify(s.ctx, s.phone, s.storedCode()))
	s.True(s.otp.IsVerified(s.ctx, s.phone))
	s.False(s.mr.Exists("frilo:" + otpKey(s.phone)))

	s.otp.ClearVerified(s.ctx, s.phone)
	s.False(s.otp.IsVerified(s.ctx, s.phone))
}

func (s *OTPTestSuite) TestWrongCode() {
	s.NoError(s.otp.Send(s.ctx, s.phone))

	s.ErrorIs(s.otp.Verify(s.ctx, s.phone, "not-a-code"), ErrOTPInvalid)
	s.False(s.otp.IsVerified(s.ctx, s.phone))
}

func (s *OTPTestSuite) TestExpiredCode() {
	s.NoError(s.otp.Send(s.ctx, s.phone))
	code := s.storedCode()

	s.mr.FastForward(consts.OTPTTL + time.Second)

	s.ErrorIs(s.otp.Verify(s.ctx, s.phone, code), ErrOTPExpired)
}

func (s *OTPTestSuite) TestWrongAttemptsBlock() {
	s.NoError(s.otp.Send(s.ctx, s.phone))
	code := s.storedCode()

	for i := 1; i < consts.OTPMaxAttempts; i++ {
		s.ErrorIs(s.otp.Verify(s.ctx, s.phone, "000000x"), ErrOTPInvalid)
	}
	s.ErrorIs(s.otp.Verify(s.ctx, s.phone, "000000x"), ErrOTPBlocked)

	s.ErrorIs(s.otp.Verify(s.ctx, s.phone, code), ErrOTPBlocked)
	s.ErrorIs(s.otp.Send(s.ctx, s.phone), ErrOTPBlocked)

	s.mr.FastForward(consts.OTPBlockTTL + time.Second)
	s.NoError(s.otp.Send(s.ctx, s.phone))
}

func (s *OTPTestSuite) TestSendIsRateLimited() {
	var err error
	for i := 0; i <= otpSendBurst; i++ {
		err = s.otp.Send(s.ctx, s.phone)
	}
	s.ErrorIs(err, ErrOTPRateLimited)
	s.Equal(otpSendBurst, s.sms.sent[s.phone])

	s.NoError(s.otp.Send(s.ctx, "+972500000000"))

	s.mr.FastForward(otpSendWindow + time.Second)
	s.NoError(s.otp.Send(s.ctx, s.phone))
}

// TestSendLimitIsShared counts sends made through any instance
func (s *OTPTestSuite) TestSendLimitIsShared() {
	other := NewOTP(cache.NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: s.mr.Addr()})), s.sms)

	for i := 0; i < otpSendBurst; i++ {
		s.NoError(other.Send(s.ctx, s.phone))
	}
	s.ErrorIs(s.otp.Send(s.ctx, s.phone), ErrOTPRateLimited)
	s.True(s.mr.TTL("frilo:"+sendKey(s.phone)) > 0)
}

func TestOTPTestSuite(t *testing.T) {
	suite.Run(t, new(OTPTestSuite))
}
