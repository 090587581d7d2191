package dataservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/value"
	"travel_console/internal/infrastructure/dataservice"
)

type listerFunc func(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error)

func (f listerFunc) ListHotels(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error) {
	return f(ctx, organizationID)
}

func TestDirectory(t *testing.T) {
	rq := require.New(t)

	calls := map[value.ID]int{}
	directory := dataservice.NewDirectory(listerFunc(func(_ context.Context, organizationID value.ID) ([]entity.Hotel, error) {
		calls[organizationID]++
		return []entity.Hotel{{ID: "1", OrganizationID: organizationID}}, nil
	}), time.Minute)

	hotels, err := directory.Hotels(context.Background(), "3")
	rq.NoError(err)
	rq.Equal(value.ID("3"), hotels[0].OrganizationID)

	_, err = directory.Hotels(context.Background(), "3")
	rq.NoError(err)
	rq.Equal(1, calls["3"])

	_, err = directory.Hotels(context.Background(), "")
	rq.NoError(err)
	rq.ElementsMatch([]value.ID{"3", ""}, directory.Scopes())

	_, err = directory.Refresh(context.Background(), "3")
	rq.NoError(err)
	rq.Equal(2, calls["3"])

	directory.Forget("3")
	rq.Equal([]value.ID{""}, directory.Scopes())
}

func TestDirectoryError(t *testing.T) {
	rq := require.New(t)

	listErr := errors.New("unavailable")
	directory := dataservice.NewDirectory(listerFunc(func(context.Context, value.ID) ([]entity.Hotel, error) {
		return nil, listErr
	}), time.Minute)

	_, err := directory.Hotels(context.Background(), "")
	rq.ErrorIs(err, listErr)
	rq.Empty(directory.Scopes())
}
