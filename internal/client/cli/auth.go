package cli

import (
	"context"
	"fmt"

	"github.com/vaultic-app/vaultic/internal/client/models"
	"github.com/vaultic-app/vaultic/internal/common"
	"github.com/vaultic-app/vaultic/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the account creation handshake: request an email
// verification code, confirm it, derive the password verifier locally, and
// create the account. On success the user is logged in with a fresh session.
//
// The password and the derived auth key are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if err := a.service.RequestEmailVerification(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A verification code has been sent to your email.")

	code, err := getSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		return err
	}
	token, err := a.service.CompleteEmailVerification(ctx, email, code)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	salt, err := cryptox.GenerateSalt(16)
	if err != nil {
		return err
	}
	authKey := cryptox.DeriveAuthKey(password, salt, cryptox.DefaultAuthIterations)
	defer common.WipeByteArray(authKey)
	verifier := cryptox.MakeVerifier(authKey)

	auth := &models.AuthParams{
		Email:      email,
		Salt:       salt,
		Iterations: cryptox.DefaultAuthIterations,
		Verifier:   verifier,
	}
	if _, err := a.service.CreateAccount(ctx, &models.Account{Email: email, Name: name}, auth, token); err != nil {
		return err
	}

	if _, err := a.service.CreateSession(ctx, email, verifier); err != nil {
		return err
	}
	account, err := a.service.GetAccount(ctx)
	if err != nil {
		return err
	}
	a.account = account

	fmt.Fprintln(a.out, "Account created!")
	return nil
}

// Login prompts for credentials, fetches the account's auth parameters,
// derives the verifier, and opens a session. On success the account profile
// is loaded and shown in the prompt.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	params, err := a.service.InitAuth(ctx, email)
	if err != nil {
		return err
	}

	authKey := cryptox.DeriveAuthKey(password, params.Salt, params.Iterations)
	defer common.WipeByteArray(authKey)
	verifier := cryptox.MakeVerifier(authKey)

	if _, err := a.service.CreateSession(ctx, email, verifier); err != nil {
		return err
	}

	account, err := a.service.GetAccount(ctx)
	if err != nil {
		return err
	}
	a.account = account

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Logout revokes the active session and forgets the account profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		return err
	}
	a.account = nil
	return nil
}

// WhoAmI prints the current account profile.
func (a *App) WhoAmI(ctx context.Context) error {
	account, err := a.service.GetAccount(ctx)
	if err != nil {
		return err
	}
	a.account = account

	fmt.Fprintf(a.out, "Email: %s\n", account.Email)
	if account.Name != "" {
		fmt.Fprintf(a.out, "Name: %s\n", account.Name)
	}
	fmt.Fprintf(a.out, "Vaults: %d\n", len(account.Vaults))
	return nil
}
