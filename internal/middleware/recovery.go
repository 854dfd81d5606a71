package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/coachshot/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a panicking handler into a 500. http.ErrAbortHandler is
// passed on so the server can drop the connection.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(recovered)
				}

				route := "unknown"
				if current := mux.CurrentRoute(req); current != nil && current.GetName() != "" {
					route = current.GetName()
				}
				log.WithFields(log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"route":  route,
				}).Errorf("handler panic: %v\n%s", recovered, debug.Stack())

				span := trace.SpanFromContext(req.Context())
				span.SetStatus(codes.Error, fmt.Sprintf("panic: %v", recovered))

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
