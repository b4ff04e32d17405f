package validators

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/aperturerobotics/inca-poa/client"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Multi switches between validator sets by block number.
// The set with the greatest starting block not above the best block is active.
type Multi struct {
	starts []uint64
	sets   map[uint64]ValidatorSet
	best   atomic.Uint64
}

// NewMulti builds a multi set. A set starting at block 0 is required.
func NewMulti(sets map[uint64]ValidatorSet) (*Multi, error) {
	if _, ok := sets[0]; !ok {
		return nil, errors.New("multi validator set must start at block 0")
	}

	m := &Multi{sets: make(map[uint64]ValidatorSet, len(sets))}
	for start, vs := range sets {
		if vs == nil {
			return nil, errors.Errorf("multi validator set at block %d is empty", start)
		}
		m.starts = append(m.starts, start)
		m.sets[start] = vs
	}
	sort.Slice(m.starts, func(i, j int) bool { return m.starts[i] < m.starts[j] })
	return m, nil
}

// SetBestBlock updates the best block number.
func (m *Multi) SetBestBlock(num uint64) {
	m.best.Store(num)
}

// GetBestBlock returns the best block number.
func (m *Multi) GetBestBlock() uint64 {
	return m.best.Load()
}

// GetActive returns the set in force at the best block.
func (m *Multi) GetActive() ValidatorSet {
	return m.setAt(m.best.Load())
}

func (m *Multi) setAt(num uint64) ValidatorSet {
	idx := sort.Search(len(m.starts), func(i int) bool { return m.starts[i] > num })
	return m.sets[m.starts[idx-1]]
}

// Contains checks the active set.
func (m *Multi) Contains(addr common.Address) bool {
	return m.GetActive().Contains(addr)
}

// Get returns the validator at nonce in the active set.
func (m *Multi) Get(nonce uint64) common.Address {
	return m.GetActive().Get(nonce)
}

// Count returns the size of the active set.
func (m *Multi) Count() int {
	return m.GetActive().Count()
}

// RegisterContract registers the client with every set.
func (m *Multi) RegisterContract(ref client.Ref) {
	for _, start := range m.starts {
		m.sets[start].RegisterContract(ref)
	}
}

// ReportMalicious reports to the active set.
func (m *Multi) ReportMalicious(ctx context.Context, addr common.Address) {
	m.GetActive().ReportMalicious(ctx, addr)
}

// ReportBenign reports to the active set.
func (m *Multi) ReportBenign(ctx context.Context, addr common.Address) {
	m.GetActive().ReportBenign(ctx, addr)
}

// _ is a type assertion
var _ ValidatorSet = ((*Multi)(nil))
