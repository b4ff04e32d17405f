package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aperturerobotics/inca-poa/logctx"
	"github.com/jbenet/goprocess"
	"github.com/urfave/cli"
)

// buildProcessAction builds a CLI action from a process.
// The context passed to f is canceled when the process is closed.
func buildProcessAction(f func(context.Context) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		le := logctx.GetLogEntry(rootContext)
		ctx, ctxCancel := context.WithCancel(rootContext)
		defer ctxCancel()

		p := goprocess.Go(func(p goprocess.Process) {
			errCh := make(chan error, 1)
			p.SetTeardown(func() error {
				ctxCancel()
				return <-errCh
			})
			errCh <- f(ctx)
		})

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)
		select {
		case <-p.Closing():
		case <-sigs:
			le.Info("shutting down")
		}

		return p.Close()
	}
}
