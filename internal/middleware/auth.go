package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type AuthMiddlewareHandler struct {
	verifier     tokenVerifier
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(verifier tokenVerifier) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier: verifier,
		allowedPaths: map[string]bool{
			"/":        true,
			"/health":  true,
			"/version": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := auth.BearerToken(r)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.verifier.Verify(ctx, token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrTokenRevoked) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				} else {
					log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
				}
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(ctx, userID)))
		})
	}
}
