package validators

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	validatorA = common.HexToAddress("0x7d577a597b2742b498cb5cf0c26cdcd726d39e6e")
	validatorB = common.HexToAddress("0x82a978b3f5962a5b0957d9ee9eef472ee55b42f1")
	outsider   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
)

func TestListMembership(t *testing.T) {
	l, err := NewList([]common.Address{validatorA, validatorB, validatorA})
	require.NoError(t, err)

	require.True(t, l.Contains(validatorA))
	require.True(t, l.Contains(validatorB))
	require.False(t, l.Contains(outsider))
	require.Equal(t, 2, l.Count())
	require.Equal(t, []common.Address{validatorA, validatorB}, l.GetAddresses())
}

func TestListGetWraps(t *testing.T) {
	l, err := NewList([]common.Address{validatorA, validatorB})
	require.NoError(t, err)

	require.Equal(t, validatorA, l.Get(0))
	require.Equal(t, validatorB, l.Get(1))
	require.Equal(t, validatorA, l.Get(2))

	seen := make(map[common.Address]struct{})
	for i := 0; i < l.Count(); i++ {
		seen[l.Get(uint64(i))] = struct{}{}
	}
	require.Len(t, seen, l.Count())
}

func TestListEmpty(t *testing.T) {
	_, err := NewList(nil)
	require.Equal(t, ErrEmptyValidatorSet, err)
}
