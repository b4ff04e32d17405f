package validators

import (
	"context"
	"testing"

	"github.com/aperturerobotics/inca-poa/client"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMultiSwitchesByBlock(t *testing.T) {
	first, err := NewList([]common.Address{validatorA})
	require.NoError(t, err)
	second, err := NewList([]common.Address{validatorA, validatorB})
	require.NoError(t, err)

	m, err := NewMulti(map[uint64]ValidatorSet{0: first, 10: second})
	require.NoError(t, err)

	require.Equal(t, 1, m.Count())
	require.False(t, m.Contains(validatorB))

	m.SetBestBlock(9)
	require.Equal(t, 1, m.Count())

	m.SetBestBlock(10)
	require.Equal(t, 2, m.Count())
	require.True(t, m.Contains(validatorB))
	require.Equal(t, validatorB, m.Get(1))

	m.SetBestBlock(1000)
	require.Equal(t, second, m.GetActive())
	require.Equal(t, uint64(1000), m.GetBestBlock())
}

func TestMultiRequiresGenesisSet(t *testing.T) {
	l, err := NewList([]common.Address{validatorA})
	require.NoError(t, err)

	_, err = NewMulti(map[uint64]ValidatorSet{5: l})
	require.Error(t, err)

	_, err = NewMulti(map[uint64]ValidatorSet{0: l, 5: nil})
	require.Error(t, err)
}

func TestMultiForwardsToContract(t *testing.T) {
	genesis, err := NewList([]common.Address{validatorA})
	require.NoError(t, err)
	vc, delegate, hook := newTestContract(t)

	m, err := NewMulti(map[uint64]ValidatorSet{0: genesis, 20: vc})
	require.NoError(t, err)

	cl := &fakeClient{}
	m.RegisterContract(client.NewHandle(cl))
	require.Len(t, delegate.refs, 1)

	ctx := context.Background()
	m.ReportMalicious(ctx, validatorA)
	require.Empty(t, cl.getTxs())

	m.SetBestBlock(20)
	m.ReportMalicious(ctx, validatorA)
	require.Len(t, cl.getTxs(), 1)
	require.Len(t, entriesAt(hook, logrus.InfoLevel), 1)
}
