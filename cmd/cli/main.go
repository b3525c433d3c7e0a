package main

import (
	"context"
	"log"
	"os"

	"github.com/vaultic-app/vaultic/internal/buildinfo"
	"github.com/vaultic-app/vaultic/internal/client/cli"
	"github.com/vaultic-app/vaultic/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
