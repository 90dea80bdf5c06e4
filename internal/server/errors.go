package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-tailor-api/internal/parsing"
	"github.com/jonathan/resume-tailor-api/internal/tailoring"
)

// HTTPStatus maps a domain error to an HTTP status code.
func HTTPStatus(err error) int {
	var validationErr *tailoring.ValidationError
	var notFoundErr *tailoring.NotFoundError
	var parseErr *parsing.ParseError
	var upstreamErr *tailoring.UpstreamError
	var storeErr *tailoring.StoreError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
