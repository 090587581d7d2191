package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"travel_console/pkg/logx"
)

// ErrNotRenewable is returned by authenticators holding a fixed token.
var ErrNotRenewable = errors.New("token cannot be renewed")

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

// AuthBearerRoundTripper attaches a bearer token to outgoing requests.
//
// A 401 response makes the authenticator refresh its token for subsequent
// requests; the rejected request itself is not replayed and the 401 is
// returned to the caller as is.
type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+rt.authenticator.BearerToken())

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		rt.renew(req)
	}

	return resp, nil
}

func (rt AuthBearerRoundTripper) renew(req *http.Request) {
	ctx := req.Context()
	log := logger(ctx).With(logx.Stringer(logx.FieldURL, req.URL))

	err := rt.authenticator.Authenticate(ctx)

	switch {
	case errors.Is(err, ErrNotRenewable):
		log.Error("bearer token rejected and cannot be renewed, check the configured token")
	case err != nil:
		log.Warn("bearer token rejected, renewal failed", logx.Error(err))
	default:
		log.Info("bearer token rejected, renewed for next requests")
	}
}
