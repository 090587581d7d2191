package contextx

import (
	"context"
	"fmt"
)

// valueFrom reads a typed value stored under key; name is used in the error.
func valueFrom[T any](ctx context.Context, key any, name string) (T, error) {
	v, ok := ctx.Value(key).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, ErrNoValue)
	}

	return v, nil
}
