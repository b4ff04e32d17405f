package main

import (
	"sync"

	"github.com/aperturerobotics/inca-poa/logctx"
	"github.com/aperturerobotics/inca-poa/validators"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var vsetArgs = struct {
	// ConfigPath is the path to the validator set config.
	ConfigPath string
	// Height is the best block used to select a multi set.
	Height uint64
}{
	ConfigPath: "validators.json",
}

var vsetMtx sync.Mutex
var vsetCached validators.ValidatorSet

func init() {
	poaFlags = append(
		poaFlags,
		cli.StringFlag{
			Name:        "validator-config",
			Usage:       "Path to the validator set JSON config.",
			EnvVar:      "VALIDATOR_SPEC",
			Value:       vsetArgs.ConfigPath,
			Destination: &vsetArgs.ConfigPath,
		},
		cli.Uint64Flag{
			Name:        "height",
			Usage:       "Best block number used to select among multi validator sets.",
			EnvVar:      "BEST_BLOCK",
			Destination: &vsetArgs.Height,
		},
	)
}

// GetValidatorSet builds / returns the cli validator set.
func GetValidatorSet() (validators.ValidatorSet, error) {
	vsetMtx.Lock()
	defer vsetMtx.Unlock()

	if vsetCached != nil {
		return vsetCached, nil
	}

	conf, err := validators.LoadConfig(vsetArgs.ConfigPath)
	if err != nil {
		return nil, errors.WithMessage(err, "load validator set config")
	}

	le := logctx.GetLogEntry(rootContext)
	vs, err := validators.Build(le, conf, nil)
	if err != nil {
		return nil, err
	}
	if m, ok := vs.(*validators.Multi); ok {
		m.SetBestBlock(vsetArgs.Height)
	}

	vsetCached = vs
	return vs, nil
}
