// Package apierror converts service errors into huma problem responses.
package apierror

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

const (
	LocationBody  = "body"
	LocationQuery = "query"
	LocationPath  = "path"

	msgNotFound = "Not found."
)

var overrideOnce sync.Once

// UseBadRequestForValidation makes huma report request validation failures,
// normally 422, as 400 like every other validation error of this API.
func UseBadRequestForValidation() {
	overrideOnce.Do(func() {
		newError := huma.NewError
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}
			return newError(status, msg, errs...)
		}
	})
}

// From maps err to a huma error. Validation field errors are reported at
// location ("body", "query" or "path"). Unknown errors become a 500 with message and
// their cause is attached to the request log.
func From(ctx context.Context, err error, location, message string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]error, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = &huma.ErrorDetail{
				Location: location + "." + f.Field,
				Message:  f.Message,
			}
		}
		return huma.Error400BadRequest("validation failed", details...)
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(msgNotFound)
	default:
		logging.Add(ctx, "cause", err.Error())
		return huma.Error500InternalServerError(message)
	}
}

// ParseID parses a path id. Anything but a positive integer addresses no
// resource and is reported as 404.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, huma.Error404NotFound(msgNotFound)
	}
	return id, nil
}
