package availability

import (
	"errors"
	"net/http"
)

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeInvalidParameters
	outcomeRouteMissing
	outcomeTransient
)

func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeInvalidParameters:
		return "invalid_parameters"
	case outcomeRouteMissing:
		return "route_missing"
	case outcomeTransient:
		return "transient"
	default:
		return "unknown"
	}
}

type statusCoder interface {
	StatusCode() int
}

func classify(err error) outcome {
	if err == nil {
		return outcomeSuccess
	}

	var sc statusCoder
	if !errors.As(err, &sc) {
		return outcomeTransient
	}

	switch sc.StatusCode() {
	case http.StatusBadRequest:
		return outcomeInvalidParameters
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return outcomeRouteMissing
	default:
		return outcomeTransient
	}
}
