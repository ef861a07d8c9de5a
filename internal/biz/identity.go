package biz

import "context"

// Principal is a verified user identity as reported by the identity
// provider. DisplayName comes from signup metadata and may be empty.
type Principal struct {
	ID          string
	Email       string
	DisplayName string
}

// IdentityVerifier exchanges a bearer credential for a verified principal.
// The provider does the actual validation; this process never inspects the
// token itself. Implementations fail Unauthenticated when the provider
// rejects the credential and UpstreamUnavailable when it cannot answer;
// callers must never confuse the two.
type IdentityVerifier interface {
	Verify(ctx context.Context, bearerToken string) (*Principal, error)
}
