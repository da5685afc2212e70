// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/constants"
	"github.com/ptd0409/portfolio/internal/platform/sec"
	"github.com/ptd0409/portfolio/internal/platform/validate"
)

// TokenProvider signs access tokens. [*sec.TokenService] satisfies it.
type TokenProvider interface {
	GenerateAccessToken(username string, role sec.UserRole, timeToLive time.Duration) (string, error)
}

type Service struct {
	admin    Admin
	tokens   TokenProvider
	throttle Throttle
	logger   *slog.Logger
}

func NewService(admin Admin, tokens TokenProvider, throttle Throttle, logger *slog.Logger) *Service {
	return &Service{
		admin:    admin,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger,
	}
}

/*
Login checks the admin credentials and issues an access token.

Description: A locked-out client is rejected before the password is checked.
A wrong username or password counts as one failure for client; a success
clears the counter.

Parameters:
  - ctx: context.Context
  - input: LoginInput
  - client: string (the caller's IP address)

Returns:
  - *Token: Bearer token valid for the configured TTL
  - error: VALIDATION_ERROR, UNAUTHORIZED or RATE_LIMITED
*/
func (service *Service) Login(ctx context.Context, input LoginInput, client string) (*Token, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	// ── 1. Lockout ────────────────────────────────────────────────────────
	if err := service.throttle.Check(ctx, client); err != nil {
		if apperr.IsAppError(err) {
			service.logger.WarnContext(ctx, "login_locked_out", slog.String("client", client))
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	// ── 2. Credentials ────────────────────────────────────────────────────
	usernameMatches := subtle.ConstantTimeCompare([]byte(input.Username), []byte(service.admin.Username)) == 1
	passwordMatches := sec.CheckPasswordHash(input.Password, service.admin.PasswordHash)

	if !usernameMatches || !passwordMatches {
		if err := service.throttle.Fail(ctx, client); err != nil {
			service.logger.ErrorContext(ctx, "login_throttle_failed", slog.Any("error", err))
		}
		service.logger.WarnContext(ctx, "login_failed", slog.String("client", client))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. Token ──────────────────────────────────────────────────────────
	if err := service.throttle.Reset(ctx, client); err != nil {
		service.logger.ErrorContext(ctx, "login_throttle_failed", slog.Any("error", err))
	}

	accessToken, err := service.tokens.GenerateAccessToken(service.admin.Username, sec.RoleAdmin, service.admin.TokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth: sign access token: %w", err))
	}

	service.logger.InfoContext(ctx, "login_succeeded", slog.String("username", service.admin.Username))
	return &Token{
		AccessToken: accessToken,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   int(service.admin.TokenTTL.Seconds()),
	}, nil
}
