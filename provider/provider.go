// Package provider submits validator misbehaviour reports to the validator
// contract.
package provider

import (
	"context"

	"github.com/aperturerobotics/inca-poa/abicodec"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// TransactFunc sends call data to a contract and returns the response bytes.
type TransactFunc func(ctx context.Context, contract common.Address, data []byte) ([]byte, error)

// reportingCodec is parsed once; the definition is a package constant.
var reportingCodec = mustCodec(reportingABI)

func mustCodec(def string) *abicodec.Codec {
	c, err := abicodec.New(def)
	if err != nil {
		panic(err)
	}
	return c
}

// Reporter is bound to a validator contract and a transport.
type Reporter struct {
	codec    *abicodec.Codec
	address  common.Address
	transact TransactFunc
}

// NewReporter builds a reporter for the contract at address.
func NewReporter(address common.Address, transact TransactFunc) *Reporter {
	return &Reporter{
		codec:    reportingCodec,
		address:  address,
		transact: transact,
	}
}

// GetAddress returns the contract address.
func (r *Reporter) GetAddress() common.Address {
	return r.address
}

// ReportMalicious reports a validator for deliberate protocol violation.
func (r *Reporter) ReportMalicious(ctx context.Context, validator common.Address) error {
	return r.call(ctx, ReportMaliciousFunc, validator)
}

// ReportBenign reports a validator for a non-malicious failure.
func (r *Reporter) ReportBenign(ctx context.Context, validator common.Address) error {
	return r.call(ctx, ReportBenignFunc, validator)
}

func (r *Reporter) call(ctx context.Context, fn string, validator common.Address) error {
	data, err := r.codec.Encode(fn, validator)
	if err != nil {
		return err
	}

	out, err := r.transact(ctx, r.address, data)
	if err != nil {
		return errors.WithMessage(err, fn)
	}

	_, err = r.codec.Decode(fn, out)
	return err
}
