package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// VerificationUseCase issues and checks single-use phone verification codes
type VerificationUseCase struct {
	core *core
}

type SendCodeInput struct {
	Phone    string         `json:"phone" validate:"required"`
	UserType types.UserRole `json:"userType" validate:"required"`
}

// SendCodeResult is returned to the caller. Code is set only when code exposure is enabled.
type SendCodeResult struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Code      string    `json:"code,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type VerifyCodeInput struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

type VerifyCodeResult struct {
	Success  bool           `json:"success"`
	Verified bool           `json:"verified"`
	UserType types.UserRole `json:"userType"`
}

// SendCode issues a new code for the phone, replacing any code still pending
func (uc *VerificationUseCase) SendCode(ctx context.Context, input SendCodeInput) (*SendCodeResult, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, goerr.Wrap(ErrMissingField, "phone is required", goerr.V(FieldKey, "phone"))
	}
	if input.UserType == "" {
		return nil, goerr.Wrap(ErrMissingField, "userType is required", goerr.V(FieldKey, "userType"))
	}
	role, err := types.ParseUserRole(input.UserType.String())
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidField, "invalid userType", goerr.V(FieldKey, "userType"), goerr.V(ValueKey, input.UserType))
	}

	code, err := model.NewVerificationCode()
	if err != nil {
		return nil, err
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timestamp()
	v := &model.Verification{
		Phone:     phone,
		Code:      code,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(c.verificationTTL),
	}
	if err := c.repo.Verification().Put(ctx, v); err != nil {
		return nil, goerr.Wrap(err, "failed to store verification code", goerr.V(model.PhoneKey, phone))
	}

	logging.From(ctx).Info("verification code issued", "verification", v)

	result := &SendCodeResult{
		Success:   true,
		Message:   "Verification code sent",
		ExpiresAt: v.ExpiresAt,
	}
	if c.exposeCode {
		result.Code = code
	}
	return result, nil
}

// VerifyCode consumes the pending code for the phone. An expired code is deleted on
// detection; a mismatched code stays pending until it expires or is replaced.
func (uc *VerificationUseCase) VerifyCode(ctx context.Context, input VerifyCodeInput) (*VerifyCodeResult, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, goerr.Wrap(ErrMissingField, "phone is required", goerr.V(FieldKey, "phone"))
	}
	if input.Code == "" {
		return nil, goerr.Wrap(ErrMissingField, "code is required", goerr.V(FieldKey, "code"))
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.repo.Verification().Get(ctx, phone)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrCodeNotFound, "verification failed", goerr.V(model.PhoneKey, phone))
		}
		return nil, goerr.Wrap(err, "failed to get verification", goerr.V(model.PhoneKey, phone))
	}

	now := c.timestamp()
	if v.IsExpired(now) {
		if err := c.repo.Verification().Delete(ctx, phone); err != nil {
			return nil, goerr.Wrap(err, "failed to delete expired verification", goerr.V(model.PhoneKey, phone))
		}
		return nil, goerr.Wrap(ErrCodeExpired, "verification failed",
			goerr.V(model.PhoneKey, phone), goerr.V("expires_at", v.ExpiresAt))
	}

	if subtle.ConstantTimeCompare([]byte(v.Code), []byte(strings.TrimSpace(input.Code))) != 1 {
		return nil, goerr.Wrap(ErrCodeMismatch, "verification failed", goerr.V(model.PhoneKey, phone))
	}

	if err := c.repo.Verification().Delete(ctx, phone); err != nil {
		return nil, goerr.Wrap(err, "failed to consume verification", goerr.V(model.PhoneKey, phone))
	}
	if err := c.repo.Verification().PutVerified(ctx, &model.VerifiedPhone{
		Phone:      phone,
		Role:       v.Role,
		VerifiedAt: now,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to record verified phone", goerr.V(model.PhoneKey, phone))
	}

	return &VerifyCodeResult{Success: true, Verified: true, UserType: v.Role}, nil
}

// SweepExpired deletes every verification code that expired before now
func (uc *VerificationUseCase) SweepExpired(ctx context.Context) (int, error) {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := c.repo.Verification().DeleteExpired(ctx, c.timestamp())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to delete expired verifications")
	}
	return n, nil
}
