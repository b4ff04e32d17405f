package main

import (
	"context"

	"github.com/aperturerobotics/inca-poa/client"
	"github.com/aperturerobotics/inca-poa/ethrpc"
	"github.com/aperturerobotics/inca-poa/logctx"
	"github.com/aperturerobotics/inca-poa/validators"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var reportArgs = struct {
	// Kind is the misbehaviour kind.
	Kind string
	// Validator is the reported validator address.
	Validator string
}{
	Kind: string(validators.Benign),
}

func init() {
	poaFlags = append(poaFlags, ethrpc.RpcFlags...)
	poaCommands = append(poaCommands, cli.Command{
		Name:  "report",
		Usage: "report validator misbehaviour to the validator contract",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:        "kind",
				Usage:       "misbehaviour kind: malicious, benign",
				Value:       reportArgs.Kind,
				Destination: &reportArgs.Kind,
			},
			cli.StringFlag{
				Name:        "validator",
				Usage:       "address of the misbehaving validator",
				Destination: &reportArgs.Validator,
			},
		},
		Action: buildProcessAction(cmdReport),
	})
}

func cmdReport(ctx context.Context) error {
	kind := validators.Misbehaviour(reportArgs.Kind)
	if kind != validators.Malicious && kind != validators.Benign {
		return errors.Errorf("unknown misbehaviour kind: %s", reportArgs.Kind)
	}
	if !common.IsHexAddress(reportArgs.Validator) {
		return errors.Errorf("invalid validator address: %q", reportArgs.Validator)
	}
	addr := common.HexToAddress(reportArgs.Validator)

	vs, err := GetValidatorSet()
	if err != nil {
		return err
	}

	le := logctx.GetLogEntry(rootContext)
	if !vs.Contains(addr) {
		le.WithField("validator", addr.Hex()).Warn("address is not in the active validator set")
	}

	cl, err := ethrpc.BuildCliClient(ctx, le)
	if err != nil {
		return err
	}
	handle := client.NewHandle(cl)
	defer handle.Release()

	vs.RegisterContract(handle)
	validators.Report(ctx, vs, kind, addr)
	return nil
}
