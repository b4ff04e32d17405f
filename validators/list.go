package validators

import (
	"context"

	"github.com/aperturerobotics/inca-poa/client"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrEmptyValidatorSet is returned when a set would have no validators.
var ErrEmptyValidatorSet = errors.New("validator set must contain at least one address")

// List is a fixed validator list.
// Get wraps the nonce around the list length.
type List struct {
	validators []common.Address
	members    map[common.Address]struct{}
}

// NewList builds a list, dropping repeated addresses while keeping order.
func NewList(addrs []common.Address) (*List, error) {
	l := &List{members: make(map[common.Address]struct{}, len(addrs))}
	for _, addr := range addrs {
		if _, ok := l.members[addr]; ok {
			continue
		}
		l.members[addr] = struct{}{}
		l.validators = append(l.validators, addr)
	}
	if len(l.validators) == 0 {
		return nil, ErrEmptyValidatorSet
	}
	return l, nil
}

// Contains checks if the address is in the list.
func (l *List) Contains(addr common.Address) bool {
	_, ok := l.members[addr]
	return ok
}

// Get returns the validator at nonce modulo the list length.
func (l *List) Get(nonce uint64) common.Address {
	return l.validators[nonce%uint64(len(l.validators))]
}

// Count returns the list length.
func (l *List) Count() int {
	return len(l.validators)
}

// GetAddresses returns a copy of the list.
func (l *List) GetAddresses() []common.Address {
	out := make([]common.Address, len(l.validators))
	copy(out, l.validators)
	return out
}

// RegisterContract does nothing, the list never changes.
func (l *List) RegisterContract(client.Ref) {}

// ReportMalicious does nothing, the list cannot be governed.
func (l *List) ReportMalicious(context.Context, common.Address) {}

// ReportBenign does nothing, the list cannot be governed.
func (l *List) ReportBenign(context.Context, common.Address) {}

// _ is a type assertion
var _ ValidatorSet = ((*List)(nil))
