package validators

import (
	"context"
	"sync"

	"github.com/aperturerobotics/inca-poa/client"
	"github.com/aperturerobotics/inca-poa/logctx"
	"github.com/aperturerobotics/inca-poa/provider"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Contract is a validator set maintained in a contract.
// Queries go to the delegate, which tracks the list in contract state.
// Misbehaviour is reported with transactions to the same contract once a
// client is registered.
type Contract struct {
	le       *logrus.Entry
	address  common.Address
	delegate AddressSet

	mtx      sync.RWMutex
	reporter *provider.Reporter
}

// NewContract builds a contract backed validator set.
func NewContract(le *logrus.Entry, address common.Address, delegate AddressSet) *Contract {
	return &Contract{
		le:       logctx.Engine(le).WithField("contract", address.Hex()),
		address:  address,
		delegate: delegate,
	}
}

// GetAddress returns the validator contract address.
func (c *Contract) GetAddress() common.Address {
	return c.address
}

// IsRegistered checks if a client has been registered.
func (c *Contract) IsRegistered() bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.reporter != nil
}

// Contains checks if the address is an authorized sealer.
func (c *Contract) Contains(addr common.Address) bool {
	return c.delegate.Contains(addr)
}

// Get returns the validator at nonce.
func (c *Contract) Get(nonce uint64) common.Address {
	return c.delegate.Get(nonce)
}

// Count returns the number of validators.
func (c *Contract) Count() int {
	return c.delegate.Count()
}

// RegisterContract registers the client with the delegate and binds a new
// reporter, replacing any previous one.
func (c *Contract) RegisterContract(ref client.Ref) {
	c.delegate.RegisterContract(ref)

	transact := func(ctx context.Context, contract common.Address, data []byte) ([]byte, error) {
		cl, err := client.Resolve(ref)
		if err != nil {
			return nil, err
		}
		if _, err := cl.TransactContract(ctx, contract, data); err != nil {
			return nil, errors.Wrap(err, "transaction import error")
		}
		return nil, nil
	}
	reporter := provider.NewReporter(c.address, transact)

	c.mtx.Lock()
	c.reporter = reporter
	c.mtx.Unlock()
	c.le.Debug("registered validator contract client")
}

// ReportMalicious reports a validator for deliberate protocol violation.
func (c *Contract) ReportMalicious(ctx context.Context, addr common.Address) {
	c.report(ctx, Malicious, addr)
}

// ReportBenign reports a validator for a non-malicious failure.
func (c *Contract) ReportBenign(ctx context.Context, addr common.Address) {
	c.report(ctx, Benign, addr)
}

func (c *Contract) report(ctx context.Context, kind Misbehaviour, addr common.Address) {
	c.mtx.RLock()
	reporter := c.reporter
	c.mtx.RUnlock()

	le := c.le.
		WithField("validator", addr.Hex()).
		WithField("misbehaviour", string(kind))
	if reporter == nil {
		le.Warn("misbehaviour could not be reported: no provider contract")
		return
	}

	var err error
	if kind == Malicious {
		err = reporter.ReportMalicious(ctx, addr)
	} else {
		err = reporter.ReportBenign(ctx, addr)
	}
	if err != nil {
		le.WithError(err).Warn("validator could not be reported")
		return
	}
	le.Info("reported validator misbehaviour")
}

// _ is a type assertion
var _ ValidatorSet = ((*Contract)(nil))
