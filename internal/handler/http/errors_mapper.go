package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-house-builder/internal/service"
	"github.com/MKhiriev/go-house-builder/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrMissingFields:     http.StatusBadRequest,
	service.ErrInvalidEmail:      http.StatusBadRequest,
	service.ErrPasswordTooShort:  http.StatusBadRequest,
	service.ErrPasswordsMismatch: http.StatusBadRequest,
	service.ErrEmailTaken:        http.StatusBadRequest,
	service.ErrWrongCredentials:  http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidEmail:      msgInvalidEmail,
	service.ErrPasswordsMismatch: msgPasswordsMismatch,
	service.ErrEmailTaken:        msgEmailExists,
	service.ErrWrongCredentials:  msgInvalidCredentials,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing message for err. missingFields
// differs between register and login.
func messageFromError(err error, missingFields string) string {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return missingFields
	case errors.Is(err, service.ErrPasswordTooShort):
		// "password too short: at least N characters"
		msg := err.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return msgInternal
}
