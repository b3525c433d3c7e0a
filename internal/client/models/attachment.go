package models

import (
	"encoding/json"

	"github.com/vaultic-app/vaultic/internal/api"
)

// Attachment is a large binary payload attached to a vault item. Data holds
// the (already encrypted) content; transfers of it are eligible for progress
// tracking.
//
// Progress is a per-call handle, local to this client: it is attached by the
// upload/download operation and never serialized.
type Attachment struct {
	ID    string `json:"id"`
	Vault string `json:"vault"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
	Size  int64  `json:"size,omitempty"`
	Data  []byte `json:"data,omitempty"`

	Progress *api.Progress `json:"-"`
}

func (a *Attachment) Serialize() ([]byte, error) {
	return json.Marshal(a)
}

func (a *Attachment) Deserialize(data []byte) error {
	return json.Unmarshal(data, a)
}
