package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math"
	"math/big"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/cache"
	"flicks-backend/internal/config"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	otpNamespace      = "otp"
	verifiedNamespace = "otp_verified"
)

// OTPService issues and checks phone verification codes. Codes and the
// verified flag only live in the cache, each with its own expiry.
type OTPService interface {
	Request(ctx context.Context, phone string) (*models.PhoneOTP, error)
	Verify(ctx context.Context, otpID uint, code string) (*models.PhoneOTP, error)
	Find(ctx context.Context, otpID uint) (*models.PhoneOTP, error)
	IsVerified(ctx context.Context, phone string) (bool, error)
	// ClearVerified drops the verified flag once it has been used.
	ClearVerified(ctx context.Context, phone string) error
}

type otpService struct {
	repo   repository.OTPRepository
	cache  *cache.Cache
	sms    SMSSender
	config config.OTPConfig
	logger *logrus.Logger
}

func NewOTPService(repo repository.OTPRepository, c *cache.Cache, sms SMSSender, cfg config.OTPConfig, logger *logrus.Logger) OTPService {
	return &otpService{
		repo:   repo,
		cache:  c,
		sms:    sms,
		config: cfg,
		logger: logger,
	}
}

func (s *otpService) Request(ctx context.Context, phone string) (*models.PhoneOTP, error) {
	record, err := s.repo.FindOrCreateByPhone(ctx, phone)
	if err != nil {
		return nil, internal("failed to load otp record", err)
	}

	code, err := randomCode(s.config.Length)
	if err != nil {
		return nil, apperrors.Internal("failed to generate otp", err)
	}

	stored, err := s.cache.SetNX(ctx, otpNamespace, phone, code, s.config.TTL)
	if err != nil {
		return nil, apperrors.Internal("failed to store otp", err)
	}
	if !stored {
		return nil, s.throttled(ctx, phone)
	}

	if err := s.sms.SendOTP(ctx, phone, code); err != nil {
		s.logger.WithError(err).WithField("phone", phone).Warn("Failed to deliver OTP sms")
	}

	s.logger.WithFields(logrus.Fields{
		"otp_id": record.ID,
		"phone":  phone,
	}).Info("OTP issued")
	return record, nil
}

// throttled reports how long the pending code still blocks a new one.
func (s *otpService) throttled(ctx context.Context, phone string) error {
	remaining, err := s.cache.GetTTL(ctx, otpNamespace, phone)
	if err != nil || remaining <= 0 {
		remaining = s.config.TTL
	}
	minutes := int(math.Ceil(remaining.Minutes()))
	if minutes <= 1 {
		return apperrors.ErrOTPThrottled
	}
	return apperrors.Throttled(fmt.Sprintf("Try getting otp after %d min", minutes))
}

func (s *otpService) Find(ctx context.Context, otpID uint) (*models.PhoneOTP, error) {
	record, err := s.repo.FindActiveByID(ctx, otpID)
	if err != nil {
		return nil, internal("failed to load otp record", err)
	}
	if record == nil {
		return nil, apperrors.ErrOTPRecordNotFound
	}
	return record, nil
}

func (s *otpService) Verify(ctx context.Context, otpID uint, code string) (*models.PhoneOTP, error) {
	record, err := s.Find(ctx, otpID)
	if err != nil {
		return nil, err
	}

	pending, err := s.cache.Get(ctx, otpNamespace, record.Phone)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, apperrors.ErrOTPNotFound
		}
		return nil, apperrors.Internal("failed to read otp", err)
	}

	if subtle.ConstantTimeCompare([]byte(pending), []byte(code)) != 1 {
		return nil, apperrors.ErrOTPMismatch
	}

	if err := s.cache.Set(ctx, verifiedNamespace, record.Phone, "1", s.config.VerifyTTL); err != nil {
		return nil, apperrors.Internal("failed to mark phone verified", err)
	}
	if err := s.cache.Delete(ctx, otpNamespace, record.Phone); err != nil {
		s.logger.WithError(err).WithField("phone", record.Phone).Warn("Failed to drop used OTP")
	}

	s.logger.WithField("otp_id", record.ID).Info("Phone verified")
	return record, nil
}

func (s *otpService) IsVerified(ctx context.Context, phone string) (bool, error) {
	ok, err := s.cache.Exists(ctx, verifiedNamespace, phone)
	if err != nil {
		return false, apperrors.Internal("failed to read verification", err)
	}
	return ok, nil
}

func (s *otpService) ClearVerified(ctx context.Context, phone string) error {
	if err := s.cache.Delete(ctx, verifiedNamespace, phone); err != nil {
		return apperrors.Internal("failed to clear verification", err)
	}
	return nil
}

// randomCode returns a zero-padded numeric code of the given length.
func randomCode(digits int) (string, error) {
	if digits < 1 {
		digits = 5
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
