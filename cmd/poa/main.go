package main

import (
	"context"
	"os"

	"github.com/aperturerobotics/inca-poa/logctx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var rootContext context.Context
var poaCommands []cli.Command
var poaFlags []cli.Flag

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	le := logrus.NewEntry(log)
	ctx, ctxCancel := context.WithCancel(context.Background())
	defer ctxCancel()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		le.WithError(err).Warn("unable to load .env file")
	}

	rootContext = logctx.WithLogEntry(ctx, le)

	app := cli.NewApp()
	app.Name = "poa"
	app.Usage = "proof-of-authority validator set utilities"
	app.HideVersion = true
	app.Commands = poaCommands
	app.Flags = poaFlags
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err.Error())
	}
}
