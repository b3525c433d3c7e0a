package models

import (
	"encoding/json"
	"time"
)

// Vault is an encrypted item collection. Items stays raw: its content is an
// encrypted container this client treats as opaque bytes.
type Vault struct {
	ID       string          `json:"id"`
	Owner    string          `json:"owner,omitempty"`
	Name     string          `json:"name"`
	Items    json.RawMessage `json:"items,omitempty"`
	Revision string          `json:"revision,omitempty"`
	Created  time.Time       `json:"created,omitzero"`
	Updated  time.Time       `json:"updated,omitzero"`
}

func (v *Vault) Serialize() ([]byte, error) {
	return json.Marshal(v)
}

func (v *Vault) Deserialize(data []byte) error {
	return json.Unmarshal(data, v)
}
