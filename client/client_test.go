package client

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type nopClient struct{}

func (nopClient) TransactContract(context.Context, common.Address, []byte) (common.Hash, error) {
	return common.Hash{}, nil
}

func (nopClient) CallContract(context.Context, common.Address, []byte) ([]byte, error) {
	return nil, nil
}

func TestHandleRelease(t *testing.T) {
	h := NewHandle(nopClient{})

	c, err := Resolve(h)
	require.NoError(t, err)
	require.NotNil(t, c)

	h.Release()
	_, ok := h.Upgrade()
	require.False(t, ok)

	_, err = Resolve(h)
	require.Equal(t, ErrNoClient, err)
}

func TestResolveNil(t *testing.T) {
	_, err := Resolve(nil)
	require.Equal(t, ErrNoClient, err)
}
