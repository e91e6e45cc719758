package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// The app package provides the default implementation; custom contexts only
// need to satisfy this interface.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
