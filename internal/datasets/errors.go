package datasets

import (
	"errors"
	"net/http"
)

// Dataset errors returned by System implementations.
var (
	// ErrNotFound indicates the key does not name a regular file under the
	// data directory.
	ErrNotFound = errors.New("datasets: not found")

	// ErrPermissionDenied indicates insufficient permissions to read the file.
	ErrPermissionDenied = errors.New("datasets: permission denied")

	// ErrInvalidKey indicates the key is empty, absolute, or escapes the
	// data directory.
	ErrInvalidKey = errors.New("datasets: invalid key")
)

// MapHTTPStatus maps dataset errors to HTTP status codes. Invalid keys
// answer 404 so escape attempts are indistinguishable from missing files.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidKey):
		return http.StatusNotFound
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
