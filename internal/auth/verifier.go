package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenRevoked    = errors.New("token revoked")
)

type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Verifier validates bearer tokens issued by the identity provider. Tokens are
// HMAC signed; the subject claim is the user id.
type Verifier struct {
	secret     []byte
	issuer     string
	revocation revocationChecker
	now        func() time.Time
}

func NewVerifier(secret, issuer string, revocation revocationChecker) *Verifier {
	return &Verifier{
		secret:     []byte(secret),
		issuer:     issuer,
		revocation: revocation,
		now:        time.Now,
	}
}

func (v *Verifier) Verify(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrUnauthenticated
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return "", fmt.Errorf("%w: unexpected issuer [%s]", ErrInvalidToken, claims.Issuer)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: subject missing", ErrInvalidToken)
	}

	if v.revocation != nil && claims.ID != "" {
		revoked, err := v.revocation.IsRevoked(ctx, claims.ID)
		if err != nil {
			return "", fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			return "", ErrTokenRevoked
		}
	}

	return claims.Subject, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
