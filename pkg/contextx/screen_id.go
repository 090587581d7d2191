package contextx

import "context"

// ScreenID identifies one console screen. Lookups issued from the same
// screen share endpoint discovery state.
type ScreenID string

type contextKeyScreenID struct{}

func (s ScreenID) String() string {
	return string(s)
}

func WithScreenID(ctx context.Context, screenID ScreenID) context.Context {
	return context.WithValue(ctx, contextKeyScreenID{}, screenID)
}

func ScreenIDFromContext(ctx context.Context) (ScreenID, error) {
	return valueFrom[ScreenID](ctx, contextKeyScreenID{}, "screen id")
}
