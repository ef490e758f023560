// Package usecases implements the admin surface: login and gateway settings.
package usecases

import (
	"context"
	"crypto/subtle"

	"paygate/internal/shared/config"
	apperrors "paygate/internal/shared/errors"
	"paygate/internal/shared/logger"
)

// TokenIssuer signs admin bearer tokens.
type TokenIssuer interface {
	Generate(username string) (token string, expiresIn int64, err error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

type LoginCommand struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type LoginUseCase struct {
	cfg      config.AdminConfig
	issuer   TokenIssuer
	verifier PasswordVerifier
	logger   logger.Interface
}

func NewLoginUseCase(cfg config.AdminConfig, issuer TokenIssuer, verifier PasswordVerifier, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{cfg: cfg, issuer: issuer, verifier: verifier, logger: log}
}

// Execute verifies the admin credentials and issues a bearer token. Every
// failure mode gets the same response message.
func (uc *LoginUseCase) Execute(_ context.Context, cmd LoginCommand) (*LoginResult, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(cmd.Username), []byte(uc.cfg.Username)) == 1
	passwordErr := uc.verifier.Verify(cmd.Password, uc.cfg.PasswordHash)

	if !usernameMatch || passwordErr != nil {
		uc.logger.Warnw("admin login rejected", "username", cmd.Username)
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	token, expiresIn, err := uc.issuer.Generate(cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to issue admin token", "error", err)
		return nil, apperrors.NewInternalError("Failed to issue token")
	}

	uc.logger.Infow("admin logged in", "username", cmd.Username)
	return &LoginResult{Token: token, ExpiresIn: expiresIn}, nil
}
