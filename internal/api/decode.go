package api

import "encoding/json"

// failurePayload is the wire shape a server returns as the whole body of a
// failed HTTP exchange: {"error": "<kind>", "message": "..."}.
type failurePayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DecodeFailure turns a failed transport exchange into exactly one *Error.
//
// If the body parses as a structured failure payload, the server-declared
// kind and message win and the transport status is carried as the error's
// status. Otherwise the status class decides: 0 means the call never reached
// a server (network/DNS failure), 3xx is an unexpected redirect, 4xx a
// generic client error, and everything else a generic server error. In the
// heuristic branches the raw body text becomes the message.
func DecodeFailure(status int, body []byte, opts ...Option) *Error {
	var payload failurePayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		opts = append([]Option{WithMessage(payload.Message), WithStatus(status)}, opts...)
		return NewError(Kind(payload.Error), opts...)
	}

	var kind Kind
	switch {
	case status == 0:
		kind = KindFailedConnection
	case status >= 300 && status < 400:
		kind = KindUnexpectedRedirect
	case status >= 400 && status < 500:
		kind = KindClientError
	default:
		kind = KindServerError
	}

	opts = append([]Option{WithMessage(string(body)), WithStatus(status)}, opts...)
	return NewError(kind, opts...)
}
