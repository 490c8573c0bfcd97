package util

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/jmoiron/sqlx"
)

const maxTokenAttempts = 5

var ErrTokenExhausted = errors.New("could not mint a unique token")

// generateRandomToken : hex token of exactly length characters
func generateRandomToken(length int) (string, error) {
	byteLength := (length + 1) / 2
	bytes := make([]byte, byteLength)

	_, err := rand.Read(bytes)
	if err != nil {
		return "", LogError("[util] token generation failed", err)
	}

	return hex.EncodeToString(bytes)[:length], nil
}

// GenerateUniqueToken mints a token that no signing session uses yet
func GenerateUniqueToken(ctx context.Context, exec sqlx.QueryerContext, length int) (string, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := generateRandomToken(length)
		if err != nil {
			return "", err
		}

		var exists bool
		err = sqlx.GetContext(ctx, exec, &exists, `
			SELECT EXISTS (SELECT 1 FROM signing_sessions WHERE token = $1)
		`, token)
		if err != nil {
			return "", LogError("[util] token lookup failed", err)
		}

		if !exists {
			return token, nil
		}
	}
	return "", ErrTokenExhausted
}
