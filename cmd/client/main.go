package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/storedash/internal/buildinfo"
	"github.com/dmitrijs2005/storedash/internal/client/cli"
	"github.com/dmitrijs2005/storedash/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.Load()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
