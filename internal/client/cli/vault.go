package cli

import (
	"context"
	"fmt"
)

// Vaults lists the vaults the account has access to, one line per vault.
// The main vault is marked with an asterisk.
func (a *App) Vaults(ctx context.Context) error {
	account, err := a.service.GetAccount(ctx)
	if err != nil {
		return err
	}
	a.account = account

	for _, id := range account.Vaults {
		vault, err := a.service.GetVault(ctx, id)
		if err != nil {
			return err
		}
		marker := " "
		if id == account.MainVault {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", marker, vault.ID, vault.Name)
	}
	return nil
}

// NewVault prompts for a name and creates an empty vault.
func (a *App) NewVault(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter vault name", a.out)
	if err != nil {
		return err
	}

	vault, err := a.service.CreateVault(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created vault %s (%s)\n", vault.Name, vault.ID)
	return nil
}
