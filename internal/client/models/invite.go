package models

import (
	"encoding/json"
	"time"
)

// Invite represents a pending invitation of an email address into a vault.
type Invite struct {
	ID        string    `json:"id"`
	Vault     string    `json:"vault"`
	VaultName string    `json:"vaultName,omitempty"`
	Email     string    `json:"email"`
	Invitor   string    `json:"invitor,omitempty"`
	Accepted  bool      `json:"accepted,omitempty"`
	Expires   time.Time `json:"expires,omitzero"`
}

func (i *Invite) Serialize() ([]byte, error) {
	return json.Marshal(i)
}

func (i *Invite) Deserialize(data []byte) error {
	return json.Unmarshal(data, i)
}
