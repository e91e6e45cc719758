package app

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/response"
	"github.com/dmitrymomot/fennec/core/router"
)

// ErrorHandlerFunc converts an error of a registered kind into a result.
// Like regular handlers it may return a handler.Response or a bare value to
// wrap in the JSON envelope; a non-nil error falls back to the generic 500.
type ErrorHandlerFunc func(ctx handler.Context, err error) (any, error)

type translatorEntry struct {
	typ     reflect.Type
	matches func(error) bool
	handle  ErrorHandlerFunc
}

// Translator converts errors raised anywhere in request processing into
// structured responses. Lookup order: a handler registered for the error's
// exact concrete kind, then registered kinds matched through the wrap chain
// in registration order, then recognized HTTP-style errors (status and
// message surface verbatim), and finally a fixed-message 500. Unrecognized
// error detail is logged, never sent to the client.
type Translator struct {
	entries []translatorEntry
	logger  *slog.Logger
}

// NewTranslator creates a Translator with no registered handlers.
func NewTranslator(logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Translator{logger: logger}
}

// RegisterErrorHandler registers fn for errors of kind E.
// Registration happens during application setup only.
func RegisterErrorHandler[E error](t *Translator, fn func(ctx handler.Context, err E) (any, error)) {
	t.entries = append(t.entries, translatorEntry{
		typ: reflect.TypeOf((*E)(nil)).Elem(),
		matches: func(err error) bool {
			var e E
			return errors.As(err, &e)
		},
		handle: func(ctx handler.Context, err error) (any, error) {
			var e E
			errors.As(err, &e)
			return fn(ctx, e)
		},
	})
}

// Translate converts err into a renderable response.
func (t *Translator) Translate(ctx handler.Context, err error) handler.Response {
	// Routing misses are expected traffic shape: a plain 404 envelope,
	// never logged as an application error.
	if errors.Is(err, router.ErrNotFound) {
		return response.Fail(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}

	concrete := reflect.TypeOf(err)
	for _, e := range t.entries {
		if e.typ == concrete {
			return t.run(ctx, e, err)
		}
	}
	for _, e := range t.entries {
		if e.matches(err) {
			return t.run(ctx, e, err)
		}
	}

	var httpErr response.HTTPError
	if errors.As(err, &httpErr) {
		var details any
		if len(httpErr.Details) > 0 {
			details = httpErr.Details
		}
		return response.FailWithDetails(httpErr.Status, httpErr.Message, details)
	}

	if pe, ok := err.(PanicError); ok {
		t.logger.Error("panic during request processing",
			"value", pe.Value(),
			"stack", string(pe.Stack()),
		)
	} else {
		t.logger.Error("unhandled error during request processing", "error", err)
	}

	return response.Fail(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (t *Translator) run(ctx handler.Context, e translatorEntry, err error) handler.Response {
	result, herr := e.handle(ctx, err)
	if herr != nil {
		t.logger.Error("error handler failed", "kind", e.typ.String(), "error", herr)
		return response.Fail(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	return wrapResult(result)
}
