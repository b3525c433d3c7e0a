package models

import (
	"encoding/json"
	"time"
)

// SessionInfo is the server's description of a session. Key is only present
// in the createSession result; listings of existing sessions omit it.
type SessionInfo struct {
	ID      string    `json:"id"`
	Account string    `json:"account"`
	Device  string    `json:"device,omitempty"`
	Key     []byte    `json:"key,omitempty"`
	Created time.Time `json:"created,omitzero"`
	Expires time.Time `json:"expires,omitzero"`
}

func (s *SessionInfo) Serialize() ([]byte, error) {
	return json.Marshal(s)
}

func (s *SessionInfo) Deserialize(data []byte) error {
	return json.Unmarshal(data, s)
}
