package router

import "errors"

var (
	// ErrNotFound indicates no registered route matches the request.
	// Wrong path and wrong method both surface as ErrNotFound; the
	// dispatcher does not distinguish the two causes.
	ErrNotFound = errors.New("route not found")

	// Registration errors. Routes are registered during application setup,
	// so these are configuration errors raised as panics.
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrUnbalancedBraces = errors.New("unbalanced braces in route pattern")
	ErrUnknownParamType = errors.New("unknown route parameter type")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrNilHandler       = errors.New("nil route handler")
)
