package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/coachshot/internal/auth"
)

func (s *IntegrationTestSuite) TestOpenEndpoints() {
	ctx := context.Background()

	resp := doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/version", "", "", nil)
	s.Equal(http.StatusOK, resp.status)
	s.Equal("test-version-info", string(resp.body))

	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/health", "", "", nil)
	s.Equal(http.StatusOK, resp.status)
}

func (s *IntegrationTestSuite) TestAuth_MissingAndInvalidToken() {
	ctx := context.Background()

	resp := doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts", "", "", nil)
	s.Equal(http.StatusUnauthorized, resp.status)

	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts", "garbage", "", nil)
	s.Equal(http.StatusUnauthorized, resp.status)
}

func (s *IntegrationTestSuite) TestAuth_RevokedToken() {
	ctx := context.Background()
	token := newToken(s.T(), "user-revoked", "token-to-revoke")

	resp := doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts", token, "", nil)
	s.Require().Equal(http.StatusOK, resp.status)

	revocations := auth.NewRevocationList(s.redis.Client)
	s.Require().NoError(revocations.Revoke(ctx, "token-to-revoke", time.Hour))

	resp = doRequest(ctx, s.T(), http.MethodGet, s.endpoint+"/workouts", token, "", nil)
	s.Equal(http.StatusUnauthorized, resp.status)
}
