package models

import (
	"encoding/json"
	"time"
)

// Account is the authenticated user's profile as stored on the server.
// Vaults lists the ids of the vaults the account has access to.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PublicKey []byte    `json:"publicKey,omitempty"`
	MainVault string    `json:"mainVault,omitempty"`
	Vaults    []string  `json:"vaults,omitempty"`
	Revision  string    `json:"revision,omitempty"`
	Created   time.Time `json:"created,omitzero"`
	Updated   time.Time `json:"updated,omitzero"`
}

func (a *Account) Serialize() ([]byte, error) {
	return json.Marshal(a)
}

func (a *Account) Deserialize(data []byte) error {
	return json.Unmarshal(data, a)
}
