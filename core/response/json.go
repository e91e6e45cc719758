package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/fennec/core/handler"
)

// Envelope is the structured JSON body used for all enveloped responses.
// Status is either "success" or "error".
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// JSON creates an application/json response with 200 OK status.
// The value is encoded directly to the response writer.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom status code.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}
		w.WriteHeader(status)

		// 204 and 304 must not carry a body per the HTTP spec.
		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}

		return json.NewEncoder(w).Encode(v)
	}
}

// Success wraps data in a success envelope with 200 OK status.
func Success(data any) handler.Response {
	return JSONWithStatus(Envelope{Status: "success", Data: data}, http.StatusOK)
}

// Fail creates an error envelope with the given status code and message.
func Fail(status int, message string) handler.Response {
	return JSONWithStatus(Envelope{Status: "error", Message: message}, status)
}

// FailWithDetails creates an error envelope carrying additional detail data.
func FailWithDetails(status int, message string, details any) handler.Response {
	return JSONWithStatus(Envelope{Status: "error", Message: message, Data: details}, status)
}
