package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/uakit/pkg/handler"
	"github.com/dmitrymomot/uakit/pkg/sessionlog"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

var (
	errSessionNotFound = handler.NewHTTPError(http.StatusNotFound, "session_not_found")
	errInvalidSession  = handler.NewHTTPError(http.StatusForbidden, "invalid_session")
)

// mapError converts domain errors into errors the JSON renderer understands.
func mapError(err error) error {
	switch {
	case errors.Is(err, sessionlog.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, sessionlog.ErrInvalidSession):
		return errInvalidSession
	case errors.Is(err, sessionlog.ErrInvalidUserID):
		return fieldError("user_id", "must not be empty")
	case errors.Is(err, useragent.ErrEmptyUserAgent):
		return fieldError("user_agent", "must not be empty")
	}
	return err
}

func fieldError(field, msg string) handler.ValidationError {
	v := handler.NewValidationError()
	v.Add(field, msg)
	return v
}
