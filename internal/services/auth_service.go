package services

import (
	"context"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	SendRegistrationOTP(ctx context.Context, phone string) (*models.PhoneOTP, error)
	VerifyOTP(ctx context.Context, otpID uint, code string) (*models.PhoneOTP, error)
	Register(ctx context.Context, phone, username, password string) (*TokenPair, error)
	// Login accepts either the username (case-sensitive) or the phone as identifier.
	Login(ctx context.Context, identifier, password string) (*TokenPair, error)
	CheckUsernameAvailable(ctx context.Context, username string) (bool, error)
	ForgotPasswordRequest(ctx context.Context, phone string) (*models.PhoneOTP, error)
	ForgotPasswordConfirm(ctx context.Context, otpID uint, newPassword string) error
	ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Authenticate resolves an access token to its active user.
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	otp    OTPService
	tokens TokenIssuer
	hasher PasswordHasher
	tx     Transactor
	logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, otp OTPService, tokens TokenIssuer, hasher PasswordHasher, tx Transactor, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		otp:    otp,
		tokens: tokens,
		hasher: hasher,
		tx:     tx,
		logger: logger,
	}
}

func (s *authService) SendRegistrationOTP(ctx context.Context, phone string) (*models.PhoneOTP, error) {
	taken, err := s.users.ExistsByPhone(ctx, phone, false)
	if err != nil {
		return nil, internal("failed to check phone", err)
	}
	if taken {
		return nil, apperrors.ErrPhoneTaken
	}
	return s.otp.Request(ctx, phone)
}

func (s *authService) VerifyOTP(ctx context.Context, otpID uint, code string) (*models.PhoneOTP, error) {
	return s.otp.Verify(ctx, otpID, code)
}

func (s *authService) Register(ctx context.Context, phone, username, password string) (*TokenPair, error) {
	verified, err := s.otp.IsVerified(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, apperrors.ErrPhoneNotVerified
	}

	phoneTaken, err := s.users.ExistsByPhone(ctx, phone, false)
	if err != nil {
		return nil, internal("failed to check phone", err)
	}
	if phoneTaken {
		return nil, apperrors.ErrPhoneTaken
	}
	nameTaken, err := s.users.ExistsByUsername(ctx, username, false)
	if err != nil {
		return nil, internal("failed to check username", err)
	}
	if nameTaken {
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		Username:     username,
		Phone:        phone,
		PasswordHash: hash,
		IsActive:     true,
	}
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		_, err := s.users.FindOrCreateProfile(ctx, user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.KindConflict, "User with that phone number or username already existed", err)
		}
		return nil, internal("failed to create user", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")
	return s.issue(user.ID)
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*TokenPair, error) {
	user, err := s.users.FindActiveByLogin(ctx, identifier)
	if err != nil {
		return nil, internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, apperrors.ErrBadCredentials
	}
	return s.issue(user.ID)
}

func (s *authService) CheckUsernameAvailable(ctx context.Context, username string) (bool, error) {
	taken, err := s.users.UsernameTaken(ctx, username, 0)
	if err != nil {
		return false, internal("failed to check username", err)
	}
	return !taken, nil
}

func (s *authService) ForgotPasswordRequest(ctx context.Context, phone string) (*models.PhoneOTP, error) {
	user, err := s.users.FindActiveByPhone(ctx, phone)
	if err != nil {
		return nil, internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.otp.Request(ctx, phone)
}

func (s *authService) ForgotPasswordConfirm(ctx context.Context, otpID uint, newPassword string) error {
	record, err := s.otp.Find(ctx, otpID)
	if err != nil {
		return err
	}

	verified, err := s.otp.IsVerified(ctx, record.Phone)
	if err != nil {
		return err
	}
	if !verified {
		return apperrors.ErrVerifyPhoneFirst
	}

	user, err := s.users.FindActiveByPhone(ctx, record.Phone)
	if err != nil {
		return internal("failed to load user", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.setPassword(ctx, user.ID, newPassword); err != nil {
		return err
	}
	if err := s.otp.ClearVerified(ctx, record.Phone); err != nil {
		s.logger.WithError(err).WithField("phone", record.Phone).Warn("Failed to clear phone verification")
	}

	s.logger.WithField("user_id", user.ID).Info("Password reset")
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	if !s.hasher.Compare(user.PasswordHash, oldPassword) {
		return apperrors.ErrWrongPassword
	}
	return s.setPassword(ctx, user.ID, newPassword)
}

func (s *authService) setPassword(ctx context.Context, userID uint, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return internal("failed to update password", err)
	}
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken, RefreshToken)
	if err != nil {
		return nil, err
	}
	user, err := s.activeUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issue(user.ID)
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	claims, err := s.tokens.Parse(accessToken, AccessToken)
	if err != nil {
		return nil, err
	}
	return s.activeUser(ctx, claims.UserID)
}

func (s *authService) activeUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindActiveByID(ctx, id)
	if err != nil {
		return nil, internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}

func (s *authService) issue(userID uint) (*TokenPair, error) {
	pair, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to issue tokens", err)
	}
	return pair, nil
}
