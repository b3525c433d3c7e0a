package models

import "encoding/json"

// AuthParams carries the password-authentication parameters exchanged during
// initAuth/updateAuth. The derivation math happens in cryptox; this type is
// pure data forwarded through the pipeline.
//
// Verifier is only populated on the way up (updateAuth, registration); the
// server never returns it.
type AuthParams struct {
	Email      string `json:"email"`
	Salt       []byte `json:"salt"`
	Iterations int    `json:"iterations"`
	Verifier   []byte `json:"verifier,omitempty"`
}

func (a *AuthParams) Serialize() ([]byte, error) {
	return json.Marshal(a)
}

func (a *AuthParams) Deserialize(data []byte) error {
	return json.Unmarshal(data, a)
}
