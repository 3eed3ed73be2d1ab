package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/auratyme/dayplan/pkg/problem"
	"github.com/google/uuid"
)

// ErrUnauthenticated is returned by an Authenticator when the request
// carries no usable identity.
var ErrUnauthenticated = errors.New("unauthenticated request")

type contextKey string

const userIDContextKey contextKey = "dayplan.user_id"

// Authenticator resolves the caller's identity from an incoming request.
// Token verification itself is out of scope: this seam exists so a real verifier can
// be dropped in without the router or handlers changing.
type Authenticator interface {
	Authenticate(r *http.Request) (userID uuid.UUID, err error)
}

// TrustedHeaderAuthenticator reads a pre-verified identity from a header,
// the same seam a fronting reverse proxy or gateway fills after doing its
// own JWT verification upstream.
type TrustedHeaderAuthenticator struct {
	HeaderName string
}

// NewTrustedHeaderAuthenticator builds an Authenticator reading from the
// given header, defaulting to "X-User-Id".
func NewTrustedHeaderAuthenticator(headerName string) *TrustedHeaderAuthenticator {
	if headerName == "" {
		headerName = "X-User-Id"
	}
	return &TrustedHeaderAuthenticator{HeaderName: headerName}
}

func (a *TrustedHeaderAuthenticator) Authenticate(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(a.HeaderName)
	if raw == "" {
		return uuid.UUID{}, ErrUnauthenticated
	}
	return uuid.Parse(raw)
}

// Authenticate wraps a handler, rejecting requests the Authenticator
// cannot resolve and attaching the resolved user ID to the request context.
func Authenticate(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := auth.Authenticate(r)
			if err != nil {
				problem.New(http.StatusUnauthorized, "unauthenticated", "Unauthenticated", "Missing or invalid identity").Write(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the identity Authenticate attached to the
// request context, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(uuid.UUID)
	return userID, ok
}
