// Package session defines the authentication capability consumed by the
// call pipeline: something that can attach proof-of-identity to an outgoing
// request and validate the authenticity of an incoming response.
package session

import (
	"bytes"
	"context"
	"time"

	"github.com/vaultic-app/vaultic/internal/api"
	"github.com/vaultic-app/vaultic/internal/cryptox"
)

// Session authenticates outgoing requests and verifies incoming responses.
// The pipeline treats it as opaque: whatever Authenticate attaches to the
// request is forwarded unread, and Verify's boolean verdict is final.
type Session interface {
	// ID identifies the session, e.g. when revoking it.
	ID() string

	// Authenticate attaches authentication material to the request.
	// It must be called before the request is sent.
	Authenticate(ctx context.Context, req *api.Request) error

	// Verify checks the authenticity of a response. A false verdict means
	// the server responded but the response cannot be trusted; it is not
	// an error in itself.
	Verify(ctx context.Context, resp *api.Response) (bool, error)
}

// HMAC is a Session that signs requests with HMAC-SHA256 over the session
// key issued by the server at session creation.
type HMAC struct {
	id  string
	key []byte

	// now is a test seam for the timestamp embedded in signatures.
	now func() time.Time
}

var _ Session = (*HMAC)(nil)

// NewHMAC builds a session from the id and key the server returned when the
// session was created.
func NewHMAC(id string, key []byte) *HMAC {
	return &HMAC{id: id, key: key, now: time.Now}
}

func (s *HMAC) ID() string { return s.id }

// Authenticate attaches SessionAuth carrying the session id, the current
// time, and a signature over id, time, method and parameters.
func (s *HMAC) Authenticate(_ context.Context, req *api.Request) error {
	t := s.now().UTC().Format(time.RFC3339)
	req.Auth = &api.SessionAuth{
		Session:   s.id,
		Time:      t,
		Signature: cryptox.SignHMAC(s.key, requestPayload(s.id, t, req)),
	}
	return nil
}

// Verify recomputes the response signature from the session key and compares
// it with the one the server attached. A response without authentication
// material fails verification.
func (s *HMAC) Verify(_ context.Context, resp *api.Response) (bool, error) {
	if resp.Auth == nil || resp.Auth.Session != s.id {
		return false, nil
	}
	payload := responsePayload(s.id, resp.Auth.Time, resp)
	return cryptox.VerifyHMAC(s.key, payload, resp.Auth.Signature), nil
}

// requestPayload is the byte sequence signed for an outgoing request:
// id|time|method|param|param|... The separator cannot appear inside id,
// time, or method, and params are JSON, so the encoding is unambiguous
// enough for signing.
func requestPayload(id, t string, req *api.Request) []byte {
	var buf bytes.Buffer
	buf.WriteString(id)
	buf.WriteByte('|')
	buf.WriteString(t)
	buf.WriteByte('|')
	buf.WriteString(req.Method)
	for _, p := range req.Params {
		buf.WriteByte('|')
		buf.Write(p)
	}
	return buf.Bytes()
}

// responsePayload is the byte sequence signed for a response: id|time
// followed by either the raw result or the structured error code.
func responsePayload(id, t string, resp *api.Response) []byte {
	var buf bytes.Buffer
	buf.WriteString(id)
	buf.WriteByte('|')
	buf.WriteString(t)
	buf.WriteByte('|')
	if resp.Error != nil {
		buf.WriteString(resp.Error.Code)
	} else {
		buf.Write(resp.Result)
	}
	return buf.Bytes()
}

// SignResponse computes the SessionAuth a well-behaved server would attach
// to resp. Exported for tests and local fakes of the server side.
func SignResponse(id string, key []byte, t string, resp *api.Response) *api.SessionAuth {
	return &api.SessionAuth{
		Session:   id,
		Time:      t,
		Signature: cryptox.SignHMAC(key, responsePayload(id, t, resp)),
	}
}
