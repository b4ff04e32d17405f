package abicodec

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testABI = `[
	{"constant":false,"inputs":[{"name":"validator","type":"address"}],"name":"reportBenign","outputs":[],"payable":false,"type":"function"},
	{"constant":true,"inputs":[],"name":"disliked","outputs":[{"name":"","type":"address"}],"payable":false,"type":"function"}
]`

func newTestCodec(t *testing.T) *Codec {
	c, err := New(testABI)
	require.NoError(t, err)
	return c
}

func TestEncodeAddressArg(t *testing.T) {
	c := newTestCodec(t)
	addr := common.HexToAddress("0x7d577a597b2742b498cb5cf0c26cdcd726d39e6e")

	data, err := c.Encode("reportBenign", addr)
	require.NoError(t, err)
	require.Len(t, data, 4+32)

	sel := crypto.Keccak256([]byte("reportBenign(address)"))[:4]
	require.Equal(t, sel, data[:4])
	require.Equal(t, common.LeftPadBytes(addr.Bytes(), 32), data[4:])

	got, err := c.Selector("reportBenign")
	require.NoError(t, err)
	require.Equal(t, sel, got)
}

func TestEncodeBadArg(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Encode("reportBenign", "not an address")
	require.Error(t, err)
}

func TestUnknownFunction(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Encode("reportMalicious", common.Address{})
	require.Equal(t, ErrUnknownFunction, errors.Cause(err))

	_, err = c.Decode("reportMalicious", nil)
	require.Equal(t, ErrUnknownFunction, errors.Cause(err))
}

func TestDecodeEmptyOutputs(t *testing.T) {
	c := newTestCodec(t)

	vals, err := c.Decode("reportBenign", nil)
	require.NoError(t, err)
	require.Empty(t, vals)

	_, err = c.Decode("reportBenign", []byte{0x08, 0xc3, 0x79, 0xa0})
	require.Equal(t, ErrUnexpectedOutput, errors.Cause(err))
}

func TestDecodeAddressOutput(t *testing.T) {
	c := newTestCodec(t)
	addr := common.HexToAddress("0x7d577a597b2742b498cb5cf0c26cdcd726d39e6e")

	vals, err := c.Decode("disliked", common.LeftPadBytes(addr.Bytes(), 32))
	require.NoError(t, err)
	require.Len(t, vals, 1)
	require.Equal(t, addr, vals[0])

	_, err = c.Decode("disliked", []byte{1, 2, 3})
	require.Error(t, err)
}

func TestBadDefinition(t *testing.T) {
	_, err := New("{not json")
	require.Error(t, err)
}
