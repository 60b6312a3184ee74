// Copyright (c) 2026 Bookvault. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/minhngoc/bookvault/internal/platform/ctxutil"
	"github.com/minhngoc/bookvault/internal/platform/sec"
)

// # Authentication

// TokenVerifier validates a bearer token string and returns the caller's claims.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the Authorization bearer token.
//
// A request without a token passes through as anonymous; a request with an
// invalid token is rejected immediately. Enforcement for protected routes
// is handled separately by [RequireAuth].
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Anonymous requests proceed without identity
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. A present header must be well-formed
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Malformed authorization header")
				return
			}

			// 3. Verify signature, issuer, and expiry
			claims, err := verifier.VerifyToken(token)
			if err != nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}

			// 4. Attach the verified identity to the request context
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests.
//
// It must be mounted after [Authenticate] in the chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		next.ServeHTTP(writer, request)
	})
}
