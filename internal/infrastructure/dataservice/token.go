package dataservice

import (
	"context"
	"fmt"

	"travel_console/pkg/httpx"
)

// StaticToken authenticates every request with a preconfigured token. It
// cannot obtain a new one, so a rejection is only reported.
type StaticToken string

func (t StaticToken) Authenticate(context.Context) error {
	return fmt.Errorf("static token: %w", httpx.ErrNotRenewable)
}

func (t StaticToken) BearerToken() string {
	return string(t)
}
