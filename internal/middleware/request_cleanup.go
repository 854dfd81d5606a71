package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// MaxBodyDrain is how much of an unread request body is consumed after the
// handler returns. Bigger leftovers close the connection instead.
const MaxBodyDrain = 256 << 10

// DrainAndCloseRequest consumes what the handler left of the request body, up
// to maxDrain bytes, and closes it.
func DrainAndCloseRequest(maxDrain int64) func(next http.Handler) http.Handler {
	if maxDrain <= 0 {
		maxDrain = MaxBodyDrain
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}

			drained, err := io.Copy(io.Discard, io.LimitReader(r.Body, maxDrain))
			if err != nil {
				log.Debugf("request cleanup: drain body of %s %s: %s", r.Method, r.URL.Path, err)
			} else if drained == maxDrain {
				log.Tracef("request cleanup: %s %s left more than %d bytes unread", r.Method, r.URL.Path, maxDrain)
			}
			if err := r.Body.Close(); err != nil {
				log.Debugf("request cleanup: close body of %s %s: %s", r.Method, r.URL.Path, err)
			}
		})
	}
}
