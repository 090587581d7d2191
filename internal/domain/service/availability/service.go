package availability

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"travel_console/internal/domain/entity"
	"travel_console/pkg/contextx"
	"travel_console/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	HotelIDPlaceholder = "{hotel_id}"

	// WarningOrganizationContext is attached to a result when the cached
	// route rejected the parameters and discovery had to run again.
	WarningOrganizationContext = "availability parameters were rejected, the organization may be missing or invalid"
)

//go:generate moq -out transport_mock.gen.go . Transport

// Transport performs one availability request against the data service.
// A failed request should carry its HTTP status through a StatusCode()
// method so it can be told apart from network failures.
type Transport interface {
	GetAvailability(ctx context.Context, path string, params url.Values) (entity.Availability, error)
}

// Service finds out which route of the data service serves availability
// and remembers it. One Service belongs to one lookup context; the cached
// route is shared by all calls made through it.
type Service struct {
	transport  Transport
	candidates []entity.EndpointDescriptor
	metrics    *Metrics

	mu     sync.Mutex
	cached *entity.EndpointDescriptor
}

type Option func(*Service)

func WithCandidates(candidates []entity.EndpointDescriptor) Option {
	return func(s *Service) {
		s.candidates = orderCandidates(candidates)
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}

func NewService(transport Transport, opts ...Option) *Service {
	s := &Service{
		transport:  transport,
		candidates: DefaultCandidates(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Cached returns the remembered route, if any.
func (s *Service) Cached() (entity.EndpointDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil {
		return entity.EndpointDescriptor{}, false
	}

	return *s.cached, true
}

// Reset forgets the remembered route.
func (s *Service) Reset() {
	s.store(nil)
}

func (s *Service) store(descriptor *entity.EndpointDescriptor) {
	s.mu.Lock()
	s.cached = descriptor
	s.mu.Unlock()
}

// FetchAvailability returns availability of one hotel for a date range.
// Failures are reported through the result's Reason and never retried.
func (s *Service) FetchAvailability(ctx context.Context, query entity.AvailabilityQuery) entity.AvailabilityResult {
	result := s.fetch(ctx, query)

	s.metrics.observeLookup(result.Reason)

	log := logger(ctx).With(slog.String(logx.FieldHotelID, query.HotelID.String()))
	if result.OK() {
		log.Debug("availability fetched", slog.String(logx.FieldCandidate, result.Endpoint.Path))
	} else {
		log.Warn("availability lookup failed",
			slog.String(logx.FieldOutcome, result.Reason.String()),
			logx.Error(result.Err),
		)
	}

	return result
}

func (s *Service) fetch(ctx context.Context, query entity.AvailabilityQuery) entity.AvailabilityResult {
	var warning string

	if cached, ok := s.Cached(); ok {
		payload, err := s.probe(ctx, cached, query)

		switch classify(err) {
		case outcomeSuccess:
			return succeeded(query, cached, payload)
		case outcomeInvalidParameters:
			s.Reset()

			warning = WarningOrganizationContext

			logger(ctx).Warn(warning,
				slog.String(logx.FieldCandidate, cached.Path),
				slog.String(logx.FieldOrganization, query.OrganizationID.String()),
			)
		case outcomeRouteMissing:
			s.Reset()
		case outcomeTransient:
			return failed(query, entity.ReasonTransient, err)
		}
	}

	result := s.discover(ctx, query)
	result.Warning = warning

	return result
}

func (s *Service) discover(ctx context.Context, query entity.AvailabilityQuery) entity.AvailabilityResult {
	for _, candidate := range s.candidates {
		payload, err := s.probe(ctx, candidate, query)

		switch classify(err) {
		case outcomeSuccess:
			s.store(&candidate)
			return succeeded(query, candidate, payload)
		case outcomeInvalidParameters:
			return failed(query, entity.ReasonInvalidParameters, err)
		case outcomeRouteMissing:
			continue
		case outcomeTransient:
			return failed(query, entity.ReasonTransient, err)
		}
	}

	return failed(query, entity.ReasonFeatureUnavailable, nil)
}

func (s *Service) probe(
	ctx context.Context,
	descriptor entity.EndpointDescriptor,
	query entity.AvailabilityQuery,
) (entity.Availability, error) {
	path, params := requestFor(descriptor, query)

	payload, err := s.transport.GetAvailability(ctx, path, params)

	outcome := classify(err)
	s.metrics.observeProbe(outcome)

	logger(ctx).Debug("availability probe",
		slog.String(logx.FieldCandidate, path),
		slog.String(logx.FieldOutcome, outcome.String()),
	)

	return payload, err
}

func requestFor(descriptor entity.EndpointDescriptor, query entity.AvailabilityQuery) (string, url.Values) {
	params := url.Values{}

	if !query.Range.From.IsNull() {
		params.Set("date_from", query.Range.From.String())
	}

	if !query.Range.To.IsNull() {
		params.Set("date_to", query.Range.To.String())
	}

	if !query.OrganizationID.IsZero() {
		params.Set("organization", query.OrganizationID.String())
	}

	path := descriptor.Path

	if descriptor.UseHotelIDParam {
		params.Set("hotel_id", query.HotelID.String())
	} else {
		path = strings.ReplaceAll(path, HotelIDPlaceholder, url.PathEscape(query.HotelID.String()))
	}

	return path, params
}

func succeeded(
	query entity.AvailabilityQuery,
	descriptor entity.EndpointDescriptor,
	payload entity.Availability,
) entity.AvailabilityResult {
	return entity.AvailabilityResult{
		HotelID:  query.HotelID,
		Payload:  payload,
		Endpoint: &descriptor,
		Reason:   entity.ReasonNone,
	}
}

func failed(query entity.AvailabilityQuery, reason entity.FailureReason, err error) entity.AvailabilityResult {
	return entity.AvailabilityResult{
		HotelID: query.HotelID,
		Reason:  reason,
		Err:     err,
	}
}
