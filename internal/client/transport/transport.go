// Package transport moves request envelopes to the server and hands back
// response envelopes. Any transport-level failure is already normalized to a
// typed *api.Error by the time it leaves this package; the pipeline never
// sees raw HTTP details.
package transport

import (
	"context"

	"github.com/vaultic-app/vaultic/internal/api"
)

// Transport dispatches one request envelope and returns the response
// envelope. On failure it returns a *api.Error produced by api.DecodeFailure
// (or an encoding error for envelopes that cannot be marshaled).
//
// If p is non-nil the transport updates its byte counters as the transfer
// moves; it never touches the terminal error, which belongs to the pipeline.
type Transport interface {
	Send(ctx context.Context, req *api.Request, p *api.Progress) (*api.Response, error)
}
