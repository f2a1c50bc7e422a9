package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
)

// Recovery turns a handler panic into a 500 {"error": msg} response.
// http.ErrAbortHandler is re-panicked so the server can drop the connection.
func Recovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				msg := fmt.Sprint(rec)
				if err, ok := rec.(error); ok {
					msg = err.Error()
				}
				logger.Error("panic recovered",
					logging.String("request_id", chimw.GetReqID(r.Context())),
					logging.String("path", r.URL.Path),
					logging.String("panic", msg),
					logging.String("stack", string(debug.Stack())))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
			}()
			next.ServeHTTP(w, r)
		})
	}
}

//Personal.AI order the ending
