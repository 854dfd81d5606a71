package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/telemetry/metrics"
	"github.com/2beens/coachshot/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests per user (or per client IP when no user is known)
// within the given router name.
func RateLimit(
	rateLimiter RequestRateLimiter,
	metricsManager *metrics.Manager,
	routerName string,
	allowedPerMin int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := routerName + ":" + rateLimitSubject(r)
			res, err := rateLimiter.Allow(r.Context(), key, redis_rate.PerMinute(allowedPerMin))
			if err != nil {
				log.Errorf("rate limit [%s]: %s", key, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			http.Error(
				w,
				fmt.Sprintf("Rate limit exceeded. Retry after %.0f seconds.", math.Ceil(res.RetryAfter.Seconds())),
				http.StatusTooManyRequests,
			)
		})
	}
}

func rateLimitSubject(r *http.Request) string {
	if userID, ok := auth.UserIDFromContext(r.Context()); ok {
		return "user:" + userID
	}
	ip, err := pkg.ReadUserIP(r)
	if err != nil || ip == "" {
		return "ip:unknown"
	}
	return "ip:" + ip
}
