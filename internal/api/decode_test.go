package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFailure_StructuredPayloadWins(t *testing.T) {
	body := []byte(`{"error":"session_expired","message":"x"}`)

	e := DecodeFailure(401, body)
	require.Equal(t, KindSessionExpired, e.Kind)
	require.Equal(t, "x", e.Message)
	require.Equal(t, 401, e.Status)

	// The server-declared kind wins regardless of the status class.
	e = DecodeFailure(503, []byte(`{"error":"not_found","message":"no such vault"}`))
	require.Equal(t, KindNotFound, e.Kind)
	require.Equal(t, "no such vault", e.Message)
	require.Equal(t, 503, e.Status)
}

func TestDecodeFailure_StatusClassHeuristic(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{"never reached a server", 0, KindFailedConnection},
		{"redirect", 302, KindUnexpectedRedirect},
		{"client error", 404, KindClientError},
		{"server error", 503, KindServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := DecodeFailure(tt.status, []byte("raw body text"))
			require.Equal(t, tt.want, e.Kind)
			require.Equal(t, "raw body text", e.Message)
		})
	}
}

func TestDecodeFailure_JSONWithoutErrorFieldFallsBack(t *testing.T) {
	// Parsable JSON that is not a failure payload still takes the heuristic.
	e := DecodeFailure(404, []byte(`{"message":"x"}`))
	require.Equal(t, KindClientError, e.Kind)
	require.Equal(t, `{"message":"x"}`, e.Message)
	require.Equal(t, 404, e.Status)
}

func TestDecodeFailure_CarriesCause(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	e := DecodeFailure(0, []byte(cause.Error()), WithCause(cause))
	require.Equal(t, KindFailedConnection, e.Kind)
	require.ErrorIs(t, e, cause)
}
