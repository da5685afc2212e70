// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth issues admin access tokens.

There is a single administrator configured through the environment
(ADMIN_USERNAME, ADMIN_PASSWORD_HASH); no accounts are stored in Postgres.
Failed logins are counted per client IP and lock the address out once the
configured number of attempts is reached.
*/
package auth

import "time"

// LoginInput is the payload of POST /auth/login.
type LoginInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// Token is the successful login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Admin is the configured administrator identity.
type Admin struct {
	Username     string
	PasswordHash string
	TokenTTL     time.Duration
}
