package data

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/paras-gg/belajarbareng-fin/internal/biz"
	"github.com/paras-gg/belajarbareng-fin/internal/conf"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

const maxUpstreamBody = 1 << 20

// identityClient verifies bearer credentials against the hosted identity
// provider's user-info endpoint. The provider does the validation; this
// client only interprets its answer.
type identityClient struct {
	baseURL string
	anonKey string
	httpc   *http.Client
	log     *log.Helper
}

// NewIdentityClient creates the identity verifier.
func NewIdentityClient(c *conf.Bootstrap, logger log.Logger) biz.IdentityVerifier {
	return &identityClient{
		baseURL: strings.TrimRight(c.Client.Identity.BaseURL, "/"),
		anonKey: c.Client.Identity.AnonKey,
		httpc:   &http.Client{Timeout: c.Client.Identity.HTTPTimeout()},
		log:     log.NewHelper(logger),
	}
}

// identityUser is the slice of the provider's user payload this service
// reads. Display names live in signup metadata under either key.
type identityUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
		Name     string `json:"name"`
	} `json:"user_metadata"`
}

// Verify asks the provider who the token belongs to. A 4xx answer means the
// credential is bad; a 5xx answer, transport failure, or deadline means we
// cannot know right now. The two must never be conflated, and neither
// carries provider detail back to the caller. No retries: identity failures
// are terminal for the request.
func (c *identityClient) Verify(ctx context.Context, bearerToken string) (*biz.Principal, error) {
	if strings.TrimSpace(bearerToken) == "" {
		return nil, svcerrors.Unauthenticated("missing bearer token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		c.log.Errorf("building identity request: %v", err)
		return nil, svcerrors.IdentityUnavailable("identity service unavailable")
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Errorf("identity request failed: %v", err)
		return nil, svcerrors.IdentityUnavailable("identity service unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		c.log.Errorf("reading identity response: %v", err)
		return nil, svcerrors.IdentityUnavailable("identity service unavailable")
	}

	switch {
	case resp.StatusCode >= 500:
		c.log.Errorf("identity service answered %d: %s", resp.StatusCode, body)
		return nil, svcerrors.IdentityUnavailable("identity service unavailable").
			WithMetadata(map[string]string{"status": strconv.Itoa(resp.StatusCode)})
	case resp.StatusCode >= 400:
		c.log.Warnf("identity service rejected token: status=%d", resp.StatusCode)
		return nil, svcerrors.Unauthenticated("authentication required")
	}

	var user identityUser
	if err := json.Unmarshal(body, &user); err != nil {
		c.log.Errorf("decoding identity response: %v", err)
		return nil, svcerrors.IdentityUnavailable("identity service unavailable")
	}
	if user.ID == "" {
		c.log.Warnf("identity response carried no user id")
		return nil, svcerrors.Unauthenticated("authentication required")
	}

	displayName := user.UserMetadata.FullName
	if displayName == "" {
		displayName = user.UserMetadata.Name
	}
	return &biz.Principal{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: displayName,
	}, nil
}
