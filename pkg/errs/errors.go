package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusBadGateway     = http.StatusBadGateway
	ErrStatusTimeout        = http.StatusGatewayTimeout
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotFound       = errors.New("Resource not found")
	ErrUpstream       = errors.New("Upstream service unavailable")
	ErrTimeout        = errors.New("Upstream request timed out")
	ErrNoData         = errors.New("No data available")
)

// ordered so that the most specific sentinel wins when several are wrapped together
var errorStatuses = []struct {
	err  error
	code int
}{
	{ErrNotFound, ErrStatusNotFound},
	{ErrClient, ErrStatusClient},
	{ErrTimeout, ErrStatusTimeout},
	{ErrUpstream, ErrStatusBadGateway},
	{ErrInternalServer, ErrStatusInternalServer},
}

func GetErrorStatusCode(err error) int {
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.err) {
			return candidate.code
		}
	}
	return ErrStatusInternalServer
}

// IsSoft reports whether err only degrades a view instead of blocking it.
func IsSoft(err error) bool {
	return errors.Is(err, ErrNoData)
}
