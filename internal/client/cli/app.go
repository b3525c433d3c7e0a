package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vaultic-app/vaultic/internal/api"
	"github.com/vaultic-app/vaultic/internal/client"
	"github.com/vaultic-app/vaultic/internal/client/config"
	"github.com/vaultic-app/vaultic/internal/client/models"
	"github.com/vaultic-app/vaultic/internal/client/transport"
	"github.com/vaultic-app/vaultic/internal/logging"
)

// appVersion is reported to the server in the device descriptor of every
// request.
const appVersion = "1.0.0"

// Service is the slice of the client API the interactive app consumes.
// The real *client.Client satisfies it; tests substitute a fake.
type Service interface {
	RequestEmailVerification(ctx context.Context, email string) error
	CompleteEmailVerification(ctx context.Context, email, code string) (string, error)
	InitAuth(ctx context.Context, email string) (*models.AuthParams, error)
	CreateAccount(ctx context.Context, account *models.Account, auth *models.AuthParams, verificationToken string) (*models.Account, error)
	CreateSession(ctx context.Context, email string, verifier []byte) (*models.SessionInfo, error)
	Logout(ctx context.Context) error
	GetAccount(ctx context.Context) (*models.Account, error)
	CreateVault(ctx context.Context, name string) (*models.Vault, error)
	GetVault(ctx context.Context, id string) (*models.Vault, error)
	CreateAttachment(ctx context.Context, att *models.Attachment) error
	GetAttachment(ctx context.Context, att *models.Attachment) error
}

type App struct {
	config  *config.Config
	service Service
	account *models.Account
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	device := api.NewDeviceInfo(appVersion, c.DeviceName)

	state := &client.State{Device: device}
	tr := transport.NewHTTP(c.EndpointURL, c.RequestTimeout)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	return &App{
		config:  c,
		service: client.New(state, tr, logger),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}

func (a *App) getStatus() string {
	if a.account == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.account.Email)
}

// Run starts the interactive loop on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Vaultic CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin), a.out)
}
