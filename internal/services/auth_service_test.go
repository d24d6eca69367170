package services_test

import (
	"context"
	"testing"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/mocks"
	"flicks-backend/internal/models"
	"flicks-backend/internal/repository"
	"flicks-backend/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc    services.AuthService
	users  *mocks.MockUserRepository
	otp    *mocks.MockOTPService
	tokens *mocks.MockTokenIssuer
	hasher *mocks.MockPasswordHasher
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		users:  mocks.NewMockUserRepository(ctrl),
		otp:    mocks.NewMockOTPService(ctrl),
		tokens: mocks.NewMockTokenIssuer(ctrl),
		hasher: mocks.NewMockPasswordHasher(ctrl),
	}
	f.svc = services.NewAuthService(f.users, f.otp, f.tokens, f.hasher, fakeTx{}, quietLogger())
	return f
}

var pair = &services.TokenPair{Access: "access", Refresh: "refresh"}

func TestAuthService_SendRegistrationOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - new phone gets a code", func(t *testing.T) {
		f := newAuthFixture(t)
		record := &models.PhoneOTP{ID: 3, Phone: testPhone}
		f.users.EXPECT().ExistsByPhone(gomock.Any(), testPhone, false).Return(false, nil)
		f.otp.EXPECT().Request(gomock.Any(), testPhone).Return(record, nil)

		got, err := f.svc.SendRegistrationOTP(ctx, testPhone)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("sad path - phone already owned", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().ExistsByPhone(gomock.Any(), testPhone, false).Return(true, nil)

		_, err := f.svc.SendRegistrationOTP(ctx, testPhone)
		assert.ErrorIs(t, err, apperrors.ErrPhoneTaken)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - verified phone registers", func(t *testing.T) {
		f := newAuthFixture(t)
		g := f.users.EXPECT()
		f.otp.EXPECT().IsVerified(gomock.Any(), testPhone).Return(true, nil)
		g.ExistsByPhone(gomock.Any(), testPhone, false).Return(false, nil)
		g.ExistsByUsername(gomock.Any(), "alice", false).Return(false, nil)
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		g.Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "hashed", u.PasswordHash)
			assert.True(t, u.IsActive)
			u.ID = 42
			return nil
		})
		g.FindOrCreateProfile(gomock.Any(), uint(42)).Return(&models.Profile{UserID: 42}, nil)
		f.tokens.EXPECT().Issue(uint(42)).Return(pair, nil)

		got, err := f.svc.Register(ctx, testPhone, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, pair, got)
	})

	t.Run("sad path - phone not verified", func(t *testing.T) {
		f := newAuthFixture(t)
		f.otp.EXPECT().IsVerified(gomock.Any(), testPhone).Return(false, nil)

		_, err := f.svc.Register(ctx, testPhone, "alice", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrPhoneNotVerified)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("sad path - username taken", func(t *testing.T) {
		f := newAuthFixture(t)
		f.otp.EXPECT().IsVerified(gomock.Any(), testPhone).Return(true, nil)
		f.users.EXPECT().ExistsByPhone(gomock.Any(), testPhone, false).Return(false, nil)
		f.users.EXPECT().ExistsByUsername(gomock.Any(), "alice", false).Return(true, nil)

		_, err := f.svc.Register(ctx, testPhone, "alice", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})

	t.Run("sad path - unique constraint race", func(t *testing.T) {
		f := newAuthFixture(t)
		f.otp.EXPECT().IsVerified(gomock.Any(), testPhone).Return(true, nil)
		f.users.EXPECT().ExistsByPhone(gomock.Any(), testPhone, false).Return(false, nil)
		f.users.EXPECT().ExistsByUsername(gomock.Any(), "alice", false).Return(false, nil)
		f.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Wrap(repository.ErrDuplicate, "userRepo.Create"))

		_, err := f.svc.Register(ctx, testPhone, "alice", "secret123")
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})
}

func TestAuthService_RegisterSamePhoneTwice(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	otp := newOTPFixture(t)
	record := &models.PhoneOTP{ID: 7, Phone: testPhone, IsActive: true}
	otp.expectRecord(record)
	code := otp.captureCode()

	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	hasher := mocks.NewMockPasswordHasher(ctrl)
	svc := services.NewAuthService(users, otp.svc, tokens, hasher, fakeTx{}, quietLogger())

	_, err := otp.svc.Request(ctx, testPhone)
	require.NoError(t, err)
	_, err = otp.svc.Verify(ctx, record.ID, *code)
	require.NoError(t, err)

	gomock.InOrder(
		users.EXPECT().ExistsByPhone(gomock.Any(), testPhone, false).Return(false, nil),
		users.EXPECT().ExistsByPhone(gomock.Any(), testPhone, false).Return(true, nil),
	)
	users.EXPECT().ExistsByUsername(gomock.Any(), "alice", false).Return(false, nil)
	hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = 42
		return nil
	})
	users.EXPECT().FindOrCreateProfile(gomock.Any(), uint(42)).Return(&models.Profile{UserID: 42}, nil)
	tokens.EXPECT().Issue(uint(42)).Return(pair, nil)

	_, err = svc.Register(ctx, testPhone, "alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, testPhone, "alice2", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPhoneTaken)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 5, Username: "alice", PasswordHash: "hashed"}

	t.Run("happy path - login by username", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindActiveByLogin(gomock.Any(), "alice").Return(user, nil)
		f.hasher.EXPECT().Compare("hashed", "secret123").Return(true)
		f.tokens.EXPECT().Issue(uint(5)).Return(pair, nil)

		got, err := f.svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, pair, got)
	})

	t.Run("sad path - unknown identifier", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindActiveByLogin(gomock.Any(), "nobody").Return(nil, nil)

		_, err := f.svc.Login(ctx, "nobody", "secret123")
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("sad path - wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindActiveByLogin(gomock.Any(), "alice").Return(user, nil)
		f.hasher.EXPECT().Compare("hashed", "nope").Return(false)

		_, err := f.svc.Login(ctx, "alice", "nope")
		assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
	})
}

func TestAuthService_CheckUsernameAvailable(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().UsernameTaken(gomock.Any(), "Alice", uint(0)).Return(true, nil)
	f.users.EXPECT().UsernameTaken(gomock.Any(), "bob", uint(0)).Return(false, nil)

	available, err := f.svc.CheckUsernameAvailable(context.Background(), "Alice")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.svc.CheckUsernameAvailable(context.Background(), "bob")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	record := &models.PhoneOTP{ID: 9, Phone: testPhone}
	user := &models.User{ID: 5, Phone: testPhone}

	t.Run("sad path - request for unknown phone", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().FindActiveByPhone(gomock.Any(), testPhone).Return(nil, nil)

		_, err := f.svc.ForgotPasswordRequest(ctx, testPhone)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("sad path - confirm without verification", func(t *testing.T) {
		f := newAuthFixture(t)
		f.otp.EXPECT().Find(gomock.Any(), uint(9)).Return(record, nil)
		f.otp.EXPECT().IsVerified(gomock.Any(), testPhone).Return(false, nil)

		err := f.svc.ForgotPasswordConfirm(ctx, 9, "newpass123")
		assert.ErrorIs(t, err, apperrors.ErrVerifyPhoneFirst)
	})

	t.Run("happy path - confirm sets the new password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.otp.EXPECT().Find(gomock.Any(), uint(9)).Return(record, nil)
		f.otp.EXPECT().IsVerified(gomock.Any(), testPhone).Return(true, nil)
		f.users.EXPECT().FindActiveByPhone(gomock.Any(), testPhone).Return(user, nil)
		f.hasher.EXPECT().Hash("newpass123").Return("newhash", nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), uint(5), "newhash").Return(nil)
		f.otp.EXPECT().ClearVerified(gomock.Any(), testPhone).Return(nil)

		assert.NoError(t, f.svc.ForgotPasswordConfirm(ctx, 9, "newpass123"))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	user := &models.User{ID: 5, PasswordHash: "hashed"}

	t.Run("sad path - wrong old password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.hasher.EXPECT().Compare("hashed", "bad").Return(false)

		err := f.svc.ChangePassword(context.Background(), user, "bad", "newpass123")
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
		assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	})

	t.Run("happy path - password replaced", func(t *testing.T) {
		f := newAuthFixture(t)
		f.hasher.EXPECT().Compare("hashed", "old").Return(true)
		f.hasher.EXPECT().Hash("newpass123").Return("newhash", nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), uint(5), "newhash").Return(nil)

		assert.NoError(t, f.svc.ChangePassword(context.Background(), user, "old", "newpass123"))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("sad path - user gone", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("r", services.RefreshToken).Return(&services.Claims{UserID: 5}, nil)
		f.users.EXPECT().FindActiveByID(gomock.Any(), uint(5)).Return(nil, nil)

		_, err := f.svc.Refresh(context.Background(), "r")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("happy path - new pair", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("r", services.RefreshToken).Return(&services.Claims{UserID: 5}, nil)
		f.users.EXPECT().FindActiveByID(gomock.Any(), uint(5)).Return(&models.User{ID: 5}, nil)
		f.tokens.EXPECT().Issue(uint(5)).Return(pair, nil)

		got, err := f.svc.Refresh(context.Background(), "r")
		require.NoError(t, err)
		assert.Equal(t, pair, got)
	})
}
