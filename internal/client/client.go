package client

import (
	"context"
	"encoding/json"

	"github.com/vaultic-app/vaultic/internal/api"
	"github.com/vaultic-app/vaultic/internal/client/transport"
	"github.com/vaultic-app/vaultic/internal/logging"
)

// Client routes typed operations through the authenticated call pipeline.
type Client struct {
	state     *State
	transport transport.Transport
	log       logging.Logger
}

// New builds a client over the given state and transport. A nil log falls
// back to a no-op logger.
func New(state *State, t transport.Transport, log logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{state: state, transport: t, log: log}
}

// State exposes the client's state aggregate (session, account, device).
func (c *Client) State() *State { return c.state }

// Call performs one logical remote call: build the envelope, authenticate it
// with the active session (if any), send it, normalize failures, verify the
// response, and return it. p may be nil for untracked calls; when non-nil,
// its terminal error is set on every failure path before the error returns.
func (c *Client) Call(ctx context.Context, method string, params []any, p *api.Progress) (*api.Response, error) {
	req := &api.Request{Method: method, Device: c.state.Device}
	for _, param := range params {
		raw, err := json.Marshal(param)
		if err != nil {
			return nil, c.fail(ctx, method, p,
				api.NewError(api.KindEncodingError, api.WithCause(err)))
		}
		req.Params = append(req.Params, raw)
	}

	// The session captured here is used for both authenticate and verify,
	// even if State.Session is swapped while the call is in flight.
	sess := c.state.Session

	if sess != nil {
		if err := sess.Authenticate(ctx, req); err != nil {
			return nil, c.fail(ctx, method, p, err)
		}
	}

	resp, err := c.transport.Send(ctx, req, p)
	if err != nil {
		return nil, c.fail(ctx, method, p, err)
	}

	if resp.Error != nil {
		// An application-level failure is already structured; it does not
		// go through the transport-failure decoder, and the kind's table
		// default decides the caller-visible status.
		return nil, c.fail(ctx, method, p,
			api.NewError(api.Kind(resp.Error.Code), api.WithMessage(resp.Error.Message)))
	}

	if sess != nil {
		ok, err := sess.Verify(ctx, resp)
		if err != nil {
			return nil, c.fail(ctx, method, p, err)
		}
		if !ok {
			return nil, c.fail(ctx, method, p, api.NewError(api.KindInvalidResponse))
		}
	}

	c.log.Debug(ctx, "call finished", "method", method)
	return resp, nil
}

// fail records the terminal error on the progress handle (if any), logs it,
// and returns it unchanged so the caller and the handle always agree.
func (c *Client) fail(ctx context.Context, method string, p *api.Progress, err error) error {
	p.SetErr(err)
	c.log.Error(ctx, "call failed", "method", method, "error", err)
	return err
}
