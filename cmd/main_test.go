package main

import (
	"testing"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/config"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueOperatorToken(t *testing.T) {
	jwtService := security.NewJWTService(&config.JWTConfig{SecretKey: "test-secret"})

	token, err := issueOperatorToken(jwtService, "ops@vierradev.com", time.Hour)
	require.NoError(t, err)

	claims, err := jwtService.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@vierradev.com", claims.Operator())
	assert.Equal(t, "ops@vierradev.com", claims.Subject)
}

func TestIssueOperatorToken_Rejected(t *testing.T) {
	_, err := issueOperatorToken(security.NewJWTService(&config.JWTConfig{}), "ops@vierradev.com", time.Hour)
	assert.Error(t, err)

	_, err = issueOperatorToken(security.NewJWTService(&config.JWTConfig{SecretKey: "s"}), "ops@vierradev.com", 0)
	assert.Error(t, err)
}
