package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt(32)
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := GenerateSalt(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDeriveAuthKey_Deterministic(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := []byte("0123456789abcdef")

	k1 := DeriveAuthKey(password, salt, 1000)
	k2 := DeriveAuthKey(password, salt, 1000)
	require.Equal(t, k1, k2)
	require.Len(t, k1, 32)

	// Different salt or iteration count yields a different key.
	require.NotEqual(t, k1, DeriveAuthKey(password, []byte("fedcba9876543210"), 1000))
	require.NotEqual(t, k1, DeriveAuthKey(password, salt, 1001))
}

func TestMakeVerifier_DoesNotEqualKey(t *testing.T) {
	key := DeriveAuthKey([]byte("pw"), []byte("salt"), 100)
	v := MakeVerifier(key)
	require.Len(t, v, 32)
	require.NotEqual(t, key, v)
	require.Equal(t, v, MakeVerifier(key))
}

func TestHMAC_SignAndVerify(t *testing.T) {
	key := []byte("session key")
	payload := []byte("sess-1|2025-01-01T00:00:00Z|getVault")

	sig := SignHMAC(key, payload)
	require.True(t, VerifyHMAC(key, payload, sig))
	require.False(t, VerifyHMAC(key, []byte("tampered"), sig))
	require.False(t, VerifyHMAC([]byte("other key"), payload, sig))

	sig[0] ^= 0xff
	require.False(t, VerifyHMAC(key, payload, sig))
}
