package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/vaultic-app/vaultic/internal/api"
	"github.com/vaultic-app/vaultic/internal/common"
)

// HTTP sends envelopes as JSON POST requests to a single endpoint URL.
type HTTP struct {
	endpoint string
	client   *http.Client
}

var _ Transport = (*HTTP)(nil)

// NewHTTP builds a transport for the given endpoint. A zero timeout means
// no client-side timeout; server-side and context deadlines still apply.
// Redirects are not followed: a 3xx must reach the failure decoder as-is.
func NewHTTP(endpoint string, timeout time.Duration) *HTTP {
	return &HTTP{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Send posts the envelope and decodes the exchange.
//
// A network-level failure never carries an HTTP status, so it is decoded
// with status 0 (failed connection). A non-2xx response is decoded from its
// status and body. Progress counters cover the request body on the way out
// and the response body on the way in; for a download the counters are
// re-based when the response starts arriving.
func (t *HTTP) Send(ctx context.Context, req *api.Request, p *api.Progress) (*api.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, api.NewError(api.KindEncodingError, api.WithCause(err))
	}

	p.Update(0, int64(len(body)))

	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint,
		api.ProgressReader(bytes.NewReader(body), p))
	if err != nil {
		return nil, api.NewError(api.KindInvalidRequest, api.WithCause(err))
	}
	hr.ContentLength = int64(len(body))
	hr.Header.Set("Content-Type", "application/json")
	hr.Header.Set("Accept", "application/json")
	hr.Header.Set(common.APIVersionHeaderName, common.APIVersion)

	resp, err := t.client.Do(hr)
	if err != nil {
		return nil, api.DecodeFailure(0, []byte(err.Error()), api.WithCause(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, api.DecodeFailure(resp.StatusCode, raw)
	}

	// Re-base the counters for the download leg. With chunked encoding the
	// length is unknown until the body has been read, so the total is
	// settled afterwards; either way a finished transfer ends loaded==total.
	known := resp.ContentLength
	if known < 0 {
		known = 0
	}
	p.Update(0, known)
	raw, err := io.ReadAll(api.ProgressReader(resp.Body, p))
	if err != nil {
		return nil, api.DecodeFailure(0, []byte(err.Error()), api.WithCause(err))
	}
	if resp.ContentLength < 0 {
		p.Update(int64(len(raw)), int64(len(raw)))
	}

	var out api.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, api.NewError(api.KindEncodingError,
			api.WithMessage("malformed response envelope"), api.WithCause(err))
	}
	return &out, nil
}
