package ethrpc

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// RpcFlags are the flags we append for setting rpc connection arguments.
var RpcFlags []cli.Flag

var cliRpcArgs = struct {
	// RpcURL is the JSON-RPC endpoint.
	RpcURL string
	// SignerKey is the hex sealing account private key.
	SignerKey string
}{
	RpcURL: "http://127.0.0.1:8545",
}

func init() {
	RpcFlags = append(
		RpcFlags,
		cli.StringFlag{
			Name:        "rpc-url",
			Usage:       "JSON-RPC endpoint of the node.",
			EnvVar:      "RPC_URL",
			Value:       cliRpcArgs.RpcURL,
			Destination: &cliRpcArgs.RpcURL,
		},
		cli.StringFlag{
			Name:        "signer-key",
			Usage:       "Hex private key of the sealing account.",
			EnvVar:      "SIGNER_KEY",
			Destination: &cliRpcArgs.SignerKey,
		},
	)
}

// BuildCliClient builds the client from CLI args.
func BuildCliClient(ctx context.Context, le *logrus.Entry) (*Client, error) {
	if cliRpcArgs.SignerKey == "" {
		return nil, errors.New("signer key must be set")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cliRpcArgs.SignerKey, "0x"))
	if err != nil {
		return nil, errors.WithMessage(err, "parse signer key")
	}

	c, err := Dial(ctx, le, cliRpcArgs.RpcURL, key)
	if err != nil {
		return nil, err
	}

	le.
		WithField("url", cliRpcArgs.RpcURL).
		WithField("signer", c.GetFrom().Hex()).
		Info("connected to rpc endpoint")
	return c, nil
}
