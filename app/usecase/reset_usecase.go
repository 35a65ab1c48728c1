package usecase

import (
	"context"
	"log/slog"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// ResetUsecase implements the password-reset flow: issue a
// time-bounded single-use token, then redeem it for a new password.
type ResetUsecase struct {
	identityRepo port.IdentityRepository
	hasher       port.PasswordHasher
	logger       *slog.Logger
}

// NewResetUsecase creates a reset usecase.
func NewResetUsecase(identityRepo port.IdentityRepository, hasher port.PasswordHasher, logger *slog.Logger) *ResetUsecase {
	return &ResetUsecase{
		identityRepo: identityRepo,
		hasher:       hasher,
		logger:       logger.With("component", "reset_usecase"),
	}
}

// RequestReset mints a reset token for the username and returns the
// contact email it should be delivered to. Delivery itself happens
// out of band; the token is never part of any response body.
func (uc *ResetUsecase) RequestReset(ctx context.Context, username string) (string, error) {
	token, err := domain.NewID()
	if err != nil {
		return "", err
	}

	email, err := uc.identityRepo.RequestReset(ctx, username, token)
	if err != nil {
		return "", err
	}

	uc.logger.Info("reset token issued", "username", username)
	return email, nil
}

// Redeem consumes a reset token and sets the new password. The token
// is cleared whether or not it was still valid, so a second attempt
// with the same token always fails.
func (uc *ResetUsecase) Redeem(ctx context.Context, resetToken, newPassword string) error {
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := uc.identityRepo.RedeemReset(ctx, resetToken, hash); err != nil {
		return err
	}

	uc.logger.Info("reset token redeemed")
	return nil
}
