package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vaultic-app/vaultic/internal/api"
	"github.com/vaultic-app/vaultic/internal/client/models"
	"github.com/vaultic-app/vaultic/internal/filex"
)

// progressInterval is how often the transfer readout is refreshed.
const progressInterval = 200 * time.Millisecond

func formatProgress(p *api.Progress) string {
	loaded, total := p.Loaded(), p.Total()
	if total > 0 {
		pct := loaded * 100 / total
		if pct > 100 {
			pct = 100
		}
		return fmt.Sprintf("%d / %d bytes (%d%%)", loaded, total, pct)
	}
	return fmt.Sprintf("%d bytes", loaded)
}

// watchProgress periodically prints the transfer counters until the returned
// stop function is called. stop blocks until the final readout is written.
func (a *App) watchProgress(p *api.Progress) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fmt.Fprintf(a.out, "\r%s", formatProgress(p))
			case <-done:
				fmt.Fprintf(a.out, "\r%s\n", formatProgress(p))
				return
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

// Upload reads a local file and stores it as an attachment in a vault,
// printing transfer progress while the upload runs.
func (a *App) Upload(ctx context.Context) error {
	vaultID, err := getSimpleText(a.reader, "Enter vault id", a.out)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Enter file path", a.out)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	att := &models.Attachment{
		Vault:    vaultID,
		Name:     filepath.Base(path),
		Size:     int64(len(data)),
		Data:     data,
		Progress: &api.Progress{},
	}

	stop := a.watchProgress(att.Progress)
	err = a.service.CreateAttachment(ctx, att)
	stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s (id %s)\n", att.Name, att.ID)
	return nil
}

// Download fetches an attachment and saves it under ./download, printing
// transfer progress while the download runs.
func (a *App) Download(ctx context.Context) error {
	vaultID, err := getSimpleText(a.reader, "Enter vault id", a.out)
	if err != nil {
		return err
	}
	id, err := getSimpleText(a.reader, "Enter attachment id", a.out)
	if err != nil {
		return err
	}

	att := &models.Attachment{
		Vault:    vaultID,
		ID:       id,
		Progress: &api.Progress{},
	}

	stop := a.watchProgress(att.Progress)
	err = a.service.GetAttachment(ctx, att)
	stop()
	if err != nil {
		return err
	}

	name := att.Name
	if name == "" {
		name = att.ID
	}
	dir, err := filex.EnsureSubDir("download")
	if err != nil {
		return err
	}
	outputFile := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(outputFile, att.Data, 0o600); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "File saved to: %s\n", outputFile)
	return nil
}
