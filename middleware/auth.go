package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"contentdesk/internal/access/gate"
	"contentdesk/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// Auth returns middleware that only lets authenticated sessions through.
// A request must carry a valid signed session token AND the gate's
// process-wide session flag must still be set, so a logout invalidates
// every outstanding token at once.
func Auth(g *gate.AccessGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// For WebSockets, tokens are passed in the query string
			// because the browser's WebSocket API doesn't support custom headers.
			tokenString := r.URL.Query().Get("token")

			// Fallback to Header for regular API calls
			if tokenString == "" {
				authHeader := r.Header.Get("Authorization")
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}

			if tokenString == "" {
				http.Error(w, "Unauthorized: No token provided", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				secret := os.Getenv("SESSION_SECRET")
				if secret == "" {
					logger.Sugar.Error("FATAL: SESSION_SECRET environment variable not set.")
					return nil, fmt.Errorf("server is not configured to validate session tokens")
				}
				return []byte(secret), nil
			})

			if err != nil || !token.Valid {
				logger.Sugar.Infof("Invalid session token: %v", err)
				http.Error(w, "Unauthorized: Invalid or expired token", http.StatusUnauthorized)
				return
			}

			if !g.IsAuthenticated() {
				http.Error(w, "Unauthorized: Session has ended", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
