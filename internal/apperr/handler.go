package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	notFoundBody = "not found"
	internalBody = "internal server error"
)

// FailureCounter counts requests by their final failure kind
type FailureCounter interface {
	CountFailure(kind Kind)
}

type HandlerOpt func(*handlerOpts)

type handlerOpts struct {
	counter FailureCounter
}

func WithFailureCounter(c FailureCounter) HandlerOpt {
	return func(o *handlerOpts) {
		o.counter = c
	}
}

func GlobalErrorHandler(opts ...HandlerOpt) echo.HTTPErrorHandler {
	o := handlerOpts{}
	for _, opt := range opts {
		opt(&o)
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var we *WebError
		if errors.As(err, &we) {
			if o.counter != nil {
				o.counter.CountFailure(we.Kind)
			}
			writeWebError(c, we)
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			if o.counter != nil {
				o.counter.CountFailure(KindBadRequest)
			}
			writeWebError(c, NewBadRequestWrap(ve.Error(), ve))
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			if he.Code == http.StatusNotFound {
				msg = notFoundBody
			}
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		if o.counter != nil {
			o.counter.CountFailure(KindInternal)
		}
		slog.Error("Unhandled error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": internalBody})
	}
}

func writeWebError(c echo.Context, we *WebError) {
	switch we.Kind {
	case KindBadRequest:
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": we.Reason, "title": "bad request"})
	case KindNotFound:
		slog.Debug("Resource not found", "uri", c.Request().RequestURI, "cause", we.Cause)
		_ = c.JSON(http.StatusNotFound, map[string]string{"error": notFoundBody})
	default:
		slog.Error("Internal error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", we.Cause)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": internalBody})
	}
}
