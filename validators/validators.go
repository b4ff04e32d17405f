// Package validators resolves the accounts authorized to seal blocks and relays
// validator misbehaviour reports.
package validators

import (
	"context"

	"github.com/aperturerobotics/inca-poa/client"
	"github.com/ethereum/go-ethereum/common"
)

// AddressSet answers membership queries over an ordered validator list.
type AddressSet interface {
	// Contains checks if the address is an authorized sealer.
	Contains(addr common.Address) bool
	// Get returns the validator at nonce in consensus order.
	// Out of range behavior is defined by the implementation.
	Get(nonce uint64) common.Address
	// Count returns the number of authorized sealers.
	Count() int
	// RegisterContract supplies the live client.
	RegisterContract(ref client.Ref)
}

// ValidatorSet is the validator set used by the consensus engine.
type ValidatorSet interface {
	AddressSet

	// ReportMalicious notifies the set of deliberate protocol violation.
	// Failures are logged, never returned.
	ReportMalicious(ctx context.Context, addr common.Address)
	// ReportBenign notifies the set of a non-malicious failure, e.g. a missed turn.
	// Failures are logged, never returned.
	ReportBenign(ctx context.Context, addr common.Address)
}

// Misbehaviour is the kind of a misbehaviour report.
type Misbehaviour string

const (
	// Malicious is a deliberate protocol violation.
	Malicious Misbehaviour = "malicious"
	// Benign is a non-malicious failure.
	Benign Misbehaviour = "benign"
)

// Report dispatches a report of kind to vs.
func Report(ctx context.Context, vs ValidatorSet, kind Misbehaviour, addr common.Address) {
	switch kind {
	case Malicious:
		vs.ReportMalicious(ctx, addr)
	default:
		vs.ReportBenign(ctx, addr)
	}
}

// readOnly adapts an AddressSet that cannot accept reports.
type readOnly struct {
	AddressSet
}

func (readOnly) ReportMalicious(context.Context, common.Address) {}

func (readOnly) ReportBenign(context.Context, common.Address) {}

// _ is a type assertion
var _ ValidatorSet = readOnly{}
