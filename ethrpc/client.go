// Package ethrpc implements the validator set client over an Ethereum JSON-RPC
// endpoint.
package ethrpc

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/aperturerobotics/inca-poa/client"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backend is the subset of ethclient.Client used by Client.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client signs contract transactions with the node's sealing key.
type Client struct {
	le      *logrus.Entry
	backend Backend
	key     *ecdsa.PrivateKey
	from    common.Address

	// mtx serializes nonce assignment
	mtx     sync.Mutex
	chainID *big.Int
}

// NewClient builds a new client.
func NewClient(le *logrus.Entry, backend Backend, key *ecdsa.PrivateKey) *Client {
	return &Client{
		le:      le.WithField("c", "ethrpc"),
		backend: backend,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
	}
}

// Dial connects to the endpoint at url.
func Dial(ctx context.Context, le *logrus.Entry, url string, key *ecdsa.PrivateKey) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.WithMessage(err, "cannot contact rpc endpoint")
	}
	return NewClient(le, ec, key), nil
}

// GetFrom returns the sealing account address.
func (c *Client) GetFrom() common.Address {
	return c.from
}

// TransactContract submits a signed transaction calling contract with data.
func (c *Client) TransactContract(ctx context.Context, contract common.Address, data []byte) (common.Hash, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.chainID == nil {
		chainID, err := c.backend.ChainID(ctx)
		if err != nil {
			return common.Hash{}, errors.Wrap(err, "chain id")
		}
		c.chainID = chainID
	}

	nonce, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "pending nonce")
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "gas price")
	}
	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: c.from,
		To:   &contract,
		Data: data,
	})
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "estimate gas")
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &contract,
		Value:    new(big.Int),
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "sign transaction")
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, err
	}

	c.le.
		WithField("tx", signed.Hash().Hex()).
		WithField("to", contract.Hex()).
		WithField("nonce", nonce).
		Debug("submitted contract transaction")
	return signed.Hash(), nil
}

// CallContract performs a read-only call at the latest block.
func (c *Client) CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error) {
	return c.backend.CallContract(ctx, ethereum.CallMsg{
		From: c.from,
		To:   &contract,
		Data: data,
	}, nil)
}

// _ is a type assertion
var _ client.Client = ((*Client)(nil))
