package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		D Duration `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"3s"}`), &v))
	require.Equal(t, 3*time.Second, v.D.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"d":1500000000}`), &v))
	require.Equal(t, 1500*time.Millisecond, v.D.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"d":"not-a-duration"}`), &v))
	require.Error(t, json.Unmarshal([]byte(`{"d":true}`), &v))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 90 * time.Second})
	require.NoError(t, err)
	require.Equal(t, `"1m30s"`, string(b))
}
