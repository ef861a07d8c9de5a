// Package auth extracts the caller's bearer credential from the transport.
// It never validates the credential itself; that is the identity provider's
// job. It only decides whether a request carried one at all.
package auth

import (
	"net/http"
	"strings"

	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

const scheme = "Bearer"

// TokenFromHeader extracts the bearer credential from an Authorization
// header value. The scheme is matched case-insensitively. A missing header,
// a non-bearer scheme, or a blank token all fail as Unauthenticated.
func TokenFromHeader(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", svcerrors.Unauthenticated("missing authorization header")
	}
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return "", svcerrors.Unauthenticated("authorization header is not a bearer credential")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", svcerrors.Unauthenticated("bearer token is empty")
	}
	return token, nil
}

// TokenFromRequest extracts the bearer credential from an incoming request.
func TokenFromRequest(r *http.Request) (string, error) {
	return TokenFromHeader(r.Header.Get("Authorization"))
}
