package availability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"travel_console/internal/domain/entity"
)

var ErrInvalidCandidate = errors.New("invalid availability candidate")

const (
	candidateQuery = "query"
	candidatePath  = "path"
)

// DefaultCandidates lists the routes known to serve availability across
// data service deployments.
func DefaultCandidates() []entity.EndpointDescriptor {
	return []entity.EndpointDescriptor{
		{Path: "/hotel-availability/", UseHotelIDParam: true},
		{Path: "/hotels/availability/", UseHotelIDParam: true},
		{Path: "/hotels/" + HotelIDPlaceholder + "/availability/"},
		{Path: "/hotel/" + HotelIDPlaceholder + "/availability/"},
	}
}

// ParseCandidates reads a comma separated list of "query:<path>" and
// "path:<path with {hotel_id}>" entries. An empty string yields the
// default list.
func ParseCandidates(s string) ([]entity.EndpointDescriptor, error) {
	entries := lo.Compact(lo.Map(strings.Split(s, ","), func(entry string, _ int) string {
		return strings.TrimSpace(entry)
	}))

	if len(entries) == 0 {
		return DefaultCandidates(), nil
	}

	candidates := make([]entity.EndpointDescriptor, 0, len(entries))

	for _, entry := range entries {
		kind, path, ok := strings.Cut(entry, ":")
		if !ok || !strings.HasPrefix(path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCandidate, entry)
		}

		switch kind {
		case candidateQuery:
			candidates = append(candidates, entity.EndpointDescriptor{Path: path, UseHotelIDParam: true})
		case candidatePath:
			if !strings.Contains(path, HotelIDPlaceholder) {
				return nil, fmt.Errorf("%w: %q has no %s", ErrInvalidCandidate, entry, HotelIDPlaceholder)
			}

			candidates = append(candidates, entity.EndpointDescriptor{Path: path})
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidCandidate, entry)
		}
	}

	return orderCandidates(candidates), nil
}

// orderCandidates puts query-parameter routes before path routes, keeping
// the relative order within each group.
func orderCandidates(candidates []entity.EndpointDescriptor) []entity.EndpointDescriptor {
	query, path := lo.FilterReject(candidates, func(d entity.EndpointDescriptor, _ int) bool {
		return d.UseHotelIDParam
	})

	return append(query, path...)
}
