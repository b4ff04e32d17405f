// Package abicodec encodes contract calls and decodes their results from a
// JSON ABI description.
package abicodec

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownFunction is returned when a function is missing from the ABI.
	ErrUnknownFunction = errors.New("function not found in abi")
	// ErrUnexpectedOutput is returned when a function without outputs returns data.
	ErrUnexpectedOutput = errors.New("unexpected return data")
)

// Codec is a table of contract functions keyed by name.
type Codec struct {
	abi abi.ABI
}

// New parses a JSON ABI description into a Codec.
func New(def string) (*Codec, error) {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		return nil, errors.Wrap(err, "parse abi")
	}
	return &Codec{abi: parsed}, nil
}

// Method looks up a function by name.
func (c *Codec) Method(name string) (abi.Method, error) {
	m, ok := c.abi.Methods[name]
	if !ok {
		return abi.Method{}, errors.Wrap(ErrUnknownFunction, name)
	}
	return m, nil
}

// Selector returns the 4 byte function selector.
func (c *Codec) Selector(name string) ([]byte, error) {
	m, err := c.Method(name)
	if err != nil {
		return nil, err
	}
	sel := make([]byte, len(m.ID))
	copy(sel, m.ID)
	return sel, nil
}

// Encode builds call data: the selector followed by the ABI encoded args.
func (c *Codec) Encode(name string, args ...interface{}) ([]byte, error) {
	m, err := c.Method(name)
	if err != nil {
		return nil, err
	}

	packed, err := m.Inputs.Pack(args...)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", name)
	}

	data := make([]byte, 0, len(m.ID)+len(packed))
	data = append(data, m.ID...)
	return append(data, packed...), nil
}

// Decode decodes the return data of a call against the declared outputs.
// Functions with no outputs accept only an empty response.
func (c *Codec) Decode(name string, data []byte) ([]interface{}, error) {
	m, err := c.Method(name)
	if err != nil {
		return nil, err
	}

	if len(m.Outputs) == 0 {
		if len(data) != 0 {
			return nil, errors.Wrapf(ErrUnexpectedOutput, "decode %s: %d bytes", name, len(data))
		}
		return nil, nil
	}

	vals, err := m.Outputs.Unpack(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return vals, nil
}
