package dataservice

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/value"
)

type hotelLister interface {
	ListHotels(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error)
}

// Directory keeps recently listed hotels per organization scope. It backs
// organization inference for availability lookups; the empty scope holds
// all hotels visible to the console.
type Directory struct {
	lister hotelLister
	hotels *cache.Cache
}

func NewDirectory(lister hotelLister, ttl time.Duration) *Directory {
	return &Directory{
		lister: lister,
		hotels: cache.New(ttl, 2*ttl), //nolint:mnd // cleanup every other TTL
	}
}

// Hotels returns the cached hotels of the scope, listing them on a miss.
func (d *Directory) Hotels(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error) {
	if v, ok := d.hotels.Get(organizationID.String()); ok {
		if hotels, ok := v.([]entity.Hotel); ok {
			return hotels, nil
		}
	}

	return d.Refresh(ctx, organizationID)
}

// Refresh lists the scope again and replaces the cached hotels.
func (d *Directory) Refresh(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error) {
	hotels, err := d.lister.ListHotels(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("lister.ListHotels: %w", err)
	}

	d.hotels.Set(organizationID.String(), hotels, cache.DefaultExpiration)

	return hotels, nil
}

// Scopes lists the organization scopes currently cached.
func (d *Directory) Scopes() []value.ID {
	items := d.hotels.Items()
	scopes := make([]value.ID, 0, len(items))

	for key := range items {
		scopes = append(scopes, value.ID(key))
	}

	return scopes
}

// Forget drops the cached hotels of the scope. Saving prices calls it,
// since listed hotels carry their prices.
func (d *Directory) Forget(organizationID value.ID) {
	d.hotels.Delete(organizationID.String())
}
