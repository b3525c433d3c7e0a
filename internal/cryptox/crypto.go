// Package cryptox holds the small cryptographic primitives the client needs:
// password-based auth-key derivation, verifier computation, and the HMAC
// signing used for per-request session authentication.
package cryptox

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultAuthIterations is the PBKDF2 iteration count used when the server
// has not dictated one (e.g. when registering a new account).
const DefaultAuthIterations = 100_000

// GenerateSalt returns n cryptographically random bytes.
func GenerateSalt(n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveAuthKey derives the 32-byte authentication key from a password and
// the salt/iteration parameters announced by the server.
func DeriveAuthKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, 32, sha256.New)
}

// MakeVerifier computes the verifier sent to the server in place of the
// auth key itself. The server stores only this value.
func MakeVerifier(authKey []byte) []byte {
	hash := sha256.Sum256(authKey)
	return hash[:]
}

// SignHMAC returns the HMAC-SHA256 signature of payload under key.
func SignHMAC(key, payload []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	return mac.Sum(nil)
}

// VerifyHMAC reports whether sig is a valid HMAC-SHA256 signature of payload
// under key, in constant time.
func VerifyHMAC(key, payload, sig []byte) bool {
	return hmac.Equal(sig, SignHMAC(key, payload))
}
