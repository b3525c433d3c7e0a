package client

import (
	"github.com/vaultic-app/vaultic/internal/api"
	"github.com/vaultic-app/vaultic/internal/client/models"
	"github.com/vaultic-app/vaultic/internal/client/session"
)

// State aggregates what the pipeline reads per call: the active session (nil
// until login), the authenticated account (nil until fetched), and the
// device descriptor attached to every request.
//
// The pipeline consumes State but does not persist it; session transitions
// happen through the typed session operations, which are themselves calls
// routed through the pipeline.
type State struct {
	Session session.Session
	Account *models.Account
	Device  *api.DeviceInfo
}
