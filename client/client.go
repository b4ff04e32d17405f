package client

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrNoClient is returned when a client reference no longer resolves.
var ErrNoClient = errors.New("no client available")

// Client is the narrow slice of a blockchain client used by validator sets.
type Client interface {
	// TransactContract submits a transaction calling contract with data,
	// signed by the node's sealing account.
	TransactContract(ctx context.Context, contract common.Address, data []byte) (common.Hash, error)
	// CallContract performs a read-only call against contract.
	CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error)
}

// Ref looks up a live client.
// Upgrade returns false once the client has been torn down.
type Ref interface {
	Upgrade() (Client, bool)
}

// Handle is a Ref that holds a client until it is released.
// The engine keeps a Handle while the client owner controls Release.
type Handle struct {
	mtx sync.RWMutex
	c   Client
}

// NewHandle builds a new handle around a live client.
func NewHandle(c Client) *Handle {
	return &Handle{c: c}
}

// Upgrade returns the client if it has not been released.
func (h *Handle) Upgrade() (Client, bool) {
	h.mtx.RLock()
	defer h.mtx.RUnlock()

	return h.c, h.c != nil
}

// Release drops the client. Subsequent Upgrade calls fail.
func (h *Handle) Release() {
	h.mtx.Lock()
	h.c = nil
	h.mtx.Unlock()
}

// Resolve upgrades ref, returning ErrNoClient if the client is gone.
func Resolve(ref Ref) (Client, error) {
	if ref == nil {
		return nil, ErrNoClient
	}
	c, ok := ref.Upgrade()
	if !ok {
		return nil, ErrNoClient
	}
	return c, nil
}

// _ is a type assertion
var _ Ref = ((*Handle)(nil))
