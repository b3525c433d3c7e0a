package client

import (
	"context"
	"encoding/json"

	"github.com/vaultic-app/vaultic/internal/api"
	"github.com/vaultic-app/vaultic/internal/client/models"
	"github.com/vaultic-app/vaultic/internal/client/session"
)

// Typed operations. Each one is a thin wrapper over Call: build parameters,
// dispatch, deserialize the raw result into its domain object. Correctness
// of the payload shape is the domain object's contract, not the pipeline's.

// decodeResult deserializes a raw result, normalizing JSON failures to the
// encoding_error kind.
func decodeResult(raw json.RawMessage, v interface {
	Deserialize([]byte) error
}) error {
	if err := v.Deserialize(raw); err != nil {
		return api.NewError(api.KindEncodingError, api.WithCause(err))
	}
	return nil
}

// --- email verification ---

// RequestEmailVerification asks the server to send a verification code to
// the given address.
func (c *Client) RequestEmailVerification(ctx context.Context, email string) error {
	_, err := c.Call(ctx, "requestEmailVerification", []any{email}, nil)
	return err
}

// CompleteEmailVerification exchanges the emailed code for a verification
// token consumed by CreateAccount.
func (c *Client) CompleteEmailVerification(ctx context.Context, email, code string) (string, error) {
	resp, err := c.Call(ctx, "completeEmailVerification", []any{email, code}, nil)
	if err != nil {
		return "", err
	}
	var token string
	if err := json.Unmarshal(resp.Result, &token); err != nil {
		return "", api.NewError(api.KindEncodingError, api.WithCause(err))
	}
	return token, nil
}

// --- password authentication ---

// InitAuth fetches the authentication parameters (salt, iteration count)
// for an email address, the first step of the login handshake. It runs
// without a session by design.
func (c *Client) InitAuth(ctx context.Context, email string) (*models.AuthParams, error) {
	resp, err := c.Call(ctx, "initAuth", []any{email}, nil)
	if err != nil {
		return nil, err
	}
	params := &models.AuthParams{}
	if err := decodeResult(resp.Result, params); err != nil {
		return nil, err
	}
	return params, nil
}

// UpdateAuth replaces the account's authentication parameters, e.g. after a
// password change. The params carry the new salt, iteration count and
// verifier; the server never echoes the verifier back.
func (c *Client) UpdateAuth(ctx context.Context, params *models.AuthParams) error {
	_, err := c.Call(ctx, "updateAuth", []any{params}, nil)
	return err
}

// --- account ---

// CreateAccount registers a new account. verificationToken comes from
// CompleteEmailVerification; auth carries the initial salt/verifier.
func (c *Client) CreateAccount(ctx context.Context, account *models.Account, auth *models.AuthParams, verificationToken string) (*models.Account, error) {
	resp, err := c.Call(ctx, "createAccount", []any{account, auth, verificationToken}, nil)
	if err != nil {
		return nil, err
	}
	created := &models.Account{}
	if err := decodeResult(resp.Result, created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetAccount fetches the account the active session belongs to and caches
// it on the client state.
func (c *Client) GetAccount(ctx context.Context) (*models.Account, error) {
	resp, err := c.Call(ctx, "getAccount", nil, nil)
	if err != nil {
		return nil, err
	}
	account := &models.Account{}
	if err := decodeResult(resp.Result, account); err != nil {
		return nil, err
	}
	c.state.Account = account
	return account, nil
}

// UpdateAccount pushes profile changes and returns the server's copy.
func (c *Client) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	resp, err := c.Call(ctx, "updateAccount", []any{account}, nil)
	if err != nil {
		return nil, err
	}
	updated := &models.Account{}
	if err := decodeResult(resp.Result, updated); err != nil {
		return nil, err
	}
	c.state.Account = updated
	return updated, nil
}

// RecoverAccount resets an account from a recovery flow: new auth params,
// fresh email verification token.
func (c *Client) RecoverAccount(ctx context.Context, account *models.Account, auth *models.AuthParams, verificationToken string) (*models.Account, error) {
	resp, err := c.Call(ctx, "recoverAccount", []any{account, auth, verificationToken}, nil)
	if err != nil {
		return nil, err
	}
	recovered := &models.Account{}
	if err := decodeResult(resp.Result, recovered); err != nil {
		return nil, err
	}
	return recovered, nil
}

// --- sessions ---

// CreateSession completes the login handshake: it sends the account email
// and the password-derived verifier, and installs the returned session (id
// plus HMAC key) as the active one. Runs unauthenticated, since there is no
// session yet.
func (c *Client) CreateSession(ctx context.Context, email string, verifier []byte) (*models.SessionInfo, error) {
	resp, err := c.Call(ctx, "createSession", []any{email, verifier}, nil)
	if err != nil {
		return nil, err
	}
	info := &models.SessionInfo{}
	if err := decodeResult(resp.Result, info); err != nil {
		return nil, err
	}
	c.state.Session = session.NewHMAC(info.ID, info.Key)
	return info, nil
}

// RevokeSession revokes a session by id. Revoking the active session clears
// it from the client state.
func (c *Client) RevokeSession(ctx context.Context, id string) error {
	if _, err := c.Call(ctx, "revokeSession", []any{id}, nil); err != nil {
		return err
	}
	if c.state.Session != nil && c.state.Session.ID() == id {
		c.state.Session = nil
	}
	return nil
}

// Logout revokes the active session. Returns ErrNoSession when there is
// none to revoke.
func (c *Client) Logout(ctx context.Context) error {
	if c.state.Session == nil {
		return ErrNoSession
	}
	return c.RevokeSession(ctx, c.state.Session.ID())
}

// --- vaults ---

// CreateVault creates an empty named vault owned by the current account.
func (c *Client) CreateVault(ctx context.Context, name string) (*models.Vault, error) {
	resp, err := c.Call(ctx, "createVault", []any{name}, nil)
	if err != nil {
		return nil, err
	}
	vault := &models.Vault{}
	if err := decodeResult(resp.Result, vault); err != nil {
		return nil, err
	}
	return vault, nil
}

// GetVault fetches a vault by id.
func (c *Client) GetVault(ctx context.Context, id string) (*models.Vault, error) {
	resp, err := c.Call(ctx, "getVault", []any{id}, nil)
	if err != nil {
		return nil, err
	}
	vault := &models.Vault{}
	if err := decodeResult(resp.Result, vault); err != nil {
		return nil, err
	}
	return vault, nil
}

// UpdateVault pushes a vault's new revision and returns the server's copy.
// A concurrent update elsewhere surfaces as a merge_conflict error.
func (c *Client) UpdateVault(ctx context.Context, vault *models.Vault) (*models.Vault, error) {
	resp, err := c.Call(ctx, "updateVault", []any{vault}, nil)
	if err != nil {
		return nil, err
	}
	updated := &models.Vault{}
	if err := decodeResult(resp.Result, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteVault deletes a vault by id.
func (c *Client) DeleteVault(ctx context.Context, id string) error {
	_, err := c.Call(ctx, "deleteVault", []any{id}, nil)
	return err
}

// --- invites ---

// GetInvite fetches a pending invite.
func (c *Client) GetInvite(ctx context.Context, vault, id string) (*models.Invite, error) {
	resp, err := c.Call(ctx, "getInvite", []any{vault, id}, nil)
	if err != nil {
		return nil, err
	}
	invite := &models.Invite{}
	if err := decodeResult(resp.Result, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// AcceptInvite confirms an invite with the secret the invitee derived from
// the shared invite code.
func (c *Client) AcceptInvite(ctx context.Context, invite *models.Invite, secret []byte) error {
	_, err := c.Call(ctx, "acceptInvite", []any{invite, secret}, nil)
	return err
}

// --- attachments ---

// CreateAttachment uploads an attachment. The caller may assign
// att.Progress beforehand to observe the transfer; otherwise a fresh handle
// is attached. The server-assigned id is stored back on att.
func (c *Client) CreateAttachment(ctx context.Context, att *models.Attachment) error {
	if att.Progress == nil {
		att.Progress = &api.Progress{}
	}
	resp, err := c.Call(ctx, "createAttachment", []any{att}, att.Progress)
	if err != nil {
		return err
	}
	var id string
	if err := json.Unmarshal(resp.Result, &id); err != nil {
		return api.NewError(api.KindEncodingError, api.WithCause(err))
	}
	att.ID = id
	return nil
}

// GetAttachment downloads the attachment identified by att.Vault/att.ID
// into att. As with uploads, att.Progress may be pre-assigned by the caller.
func (c *Client) GetAttachment(ctx context.Context, att *models.Attachment) error {
	if att.Progress == nil {
		att.Progress = &api.Progress{}
	}
	resp, err := c.Call(ctx, "getAttachment", []any{att.Vault, att.ID}, att.Progress)
	if err != nil {
		return err
	}
	return decodeResult(resp.Result, att)
}

// DeleteAttachment removes an attachment from its vault. Not a transfer, so
// no progress handle.
func (c *Client) DeleteAttachment(ctx context.Context, vault, id string) error {
	_, err := c.Call(ctx, "deleteAttachment", []any{vault, id}, nil)
	return err
}
