package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
)

func init() {
	poaCommands = append(poaCommands, cli.Command{
		Name:   "validators",
		Usage:  "print the validator set in force at the given height",
		Action: buildProcessAction(cmdValidators),
	})
}

func cmdValidators(ctx context.Context) error {
	vs, err := GetValidatorSet()
	if err != nil {
		return err
	}

	for i := 0; i < vs.Count(); i++ {
		fmt.Printf("%d\t%s\n", i, vs.Get(uint64(i)).Hex())
	}
	return nil
}
