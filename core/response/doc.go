// Package response provides response constructors for HTTP handlers
// along with the structured JSON envelope used across the framework.
//
// Every enveloped body has the shape:
//
//	{"status": "success", "data": {...}, "message": ""}
//
// Handlers normally return plain values and let the dispatcher wrap them,
// but may construct responses directly for full control:
//
//	func handler(ctx handler.Context) (any, error) {
//		return response.JSONWithStatus(payload, http.StatusCreated), nil
//	}
//
// HTTPError is the structured error kind recognized by the error translator:
// its status and message always surface to the client verbatim, while any
// other error renders as a generic 500 without leaking detail.
package response
