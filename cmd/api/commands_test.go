package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/maid-cafe-service/internal/auth"
)

func TestTokenCommandMintsVerifiableToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "password")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"token", "--env-file", "does-not-exist.env"})
	require.NoError(t, cmd.Execute())

	session, err := auth.NewTokenManager("cli-secret", time.Hour).Decode(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Subject)
	assert.Contains(t, stderr.String(), "expires at")
}

func TestServeRequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--env-file", "does-not-exist.env"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_DSN")
}
