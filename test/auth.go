package test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "integration-test-secret"

func newToken(t *testing.T, userID, tokenID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   userID,
		Issuer:    "coachshot",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func doRequest(
	ctx context.Context,
	t *testing.T,
	method, url, token, contentType string,
	body []byte,
) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return response{
		status: resp.StatusCode,
		header: resp.Header,
		body:   respBytes,
	}
}
