package repository

import (
	"context"

	"flicks-backend/internal/database"
	"flicks-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// OTPRepository persists PhoneOTP records. Codes are never stored here.
type OTPRepository interface {
	FindOrCreateByPhone(ctx context.Context, phone string) (*models.PhoneOTP, error)
	FindActiveByID(ctx context.Context, id uint) (*models.PhoneOTP, error)
}

type otpRepository struct {
	base
}

func NewOTPRepository(db *database.Database) OTPRepository {
	return &otpRepository{base: newBase(db)}
}

func (r *otpRepository) FindOrCreateByPhone(ctx context.Context, phone string) (*models.PhoneOTP, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var otp models.PhoneOTP
	err := r.db.WithContext(ctx).
		Where(models.PhoneOTP{Phone: phone}).
		FirstOrCreate(&otp).Error
	if err != nil {
		return nil, wrap(err, "otpRepo.FindOrCreateByPhone")
	}
	return &otp, nil
}

func (r *otpRepository) FindActiveByID(ctx context.Context, id uint) (*models.PhoneOTP, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var otp models.PhoneOTP
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&otp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap(err, "otpRepo.FindActiveByID")
	}
	return &otp, nil
}
