package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaultic-app/vaultic/internal/api"
)

func TestAttachment_ProgressIsNotSerialized(t *testing.T) {
	att := &Attachment{
		ID:       "a-1",
		Vault:    "v-1",
		Data:     []byte{1, 2, 3},
		Progress: &api.Progress{},
	}
	att.Progress.Update(10, 20)

	data, err := att.Serialize()
	require.NoError(t, err)
	require.NotContains(t, string(data), "Progress")
	require.NotContains(t, string(data), "loaded")

	var back Attachment
	require.NoError(t, back.Deserialize(data))
	require.Equal(t, att.ID, back.ID)
	require.Equal(t, att.Data, back.Data)
	require.Nil(t, back.Progress)
}

func TestVault_ItemsStayRaw(t *testing.T) {
	v := &Vault{ID: "v-1", Name: "Work"}
	require.NoError(t, v.Deserialize([]byte(`{"id":"v-1","name":"Work","items":{"ct":"AAEC","iv":"AQI="}}`)))

	// The encrypted container passes through byte-for-byte.
	require.JSONEq(t, `{"ct":"AAEC","iv":"AQI="}`, string(v.Items))

	data, err := v.Serialize()
	require.NoError(t, err)
	require.Contains(t, string(data), `"ct":"AAEC"`)
}
